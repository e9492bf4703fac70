package fonts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title FontName = "title"
	Body  FontName = "body"
	Small FontName = "small"
)

// DefaultSizes are the point sizes LoadAll registers.
var DefaultSizes = map[FontName]float64{
	Title: 24,
	Body:  12,
	Small: 8,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the freetype face for text/v2 drawing.
func (f FontName) Face() text.Face {
	if face, ok := xfaces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	xfaces[f] = face
	return face
}

var (
	fonts  = map[FontName]font.Face{}
	xfaces = map[FontName]text.Face{}
	// ttfData is the TTF currently in use, kept for text/v2 sources.
	ttfData = goregular.TTF
	source  *text.GoTextFaceSource
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

// LoadFontWithSize parses ttf and registers it under name. If ttf does not
// parse, the built-in Go Regular face is registered instead and the parse
// error is returned.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		fontData, _ = truetype.Parse(goregular.TTF)
		err = fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(xfaces, name)
	return err
}

// LoadAll registers every default font from ttf, falling back to Go Regular.
func LoadAll(ttf []byte) error {
	var firstErr error
	for name, size := range DefaultSizes {
		if err := LoadFontWithSize(name, ttf, size); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		ttfData = ttf
	} else {
		ttfData = goregular.TTF
	}
	source = nil
	return firstErr
}

// LoadFile loads all default fonts from a TTF file. Any failure is logged and
// the game keeps the Go Regular fallback.
func LoadFile(path string) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		log.Warn("font load failed, using fallback", "path", path, "err", err)
		ttf = goregular.TTF
	}
	if err := LoadAll(ttf); err != nil {
		log.Warn("font load failed, using fallback", "path", path, "err", err)
	}
}

// Source returns a text/v2 face source for widgets that size text themselves.
func Source() *text.GoTextFaceSource {
	if source != nil {
		return source
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		log.Warn("font source failed, using fallback", "err", err)
		s, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
	}
	source = s
	return source
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		size, known := DefaultSizes[name]
		if !known {
			size = 10
		}
		_ = LoadFontWithSize(name, goregular.TTF, size)
		f = fonts[name]
	}
	return f
}
