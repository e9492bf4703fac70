package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/automoto/quietwood/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSizes holds the placeholder dimensions of standalone images.
var ImageSizes = map[string]struct{ W, H int }{
	"bubble":   {18, 14},
	"portrait": {48, 48},
}

// Library resolves images by key. Files from the override directory win;
// anything missing is generated procedurally so the game always has art.
type Library struct {
	override fs.FS
	images   map[string]*ebiten.Image
	frames   map[string]*ebiten.Image
}

func NewLibrary() *Library {
	return &Library{
		images: make(map[string]*ebiten.Image),
		frames: make(map[string]*ebiten.Image),
	}
}

var library = NewLibrary()

// SetAssetDir points the default library at a directory of PNG overrides.
// An empty dir disables overrides.
func SetAssetDir(dir string) {
	if dir == "" {
		library.SetOverride(nil)
		return
	}
	library.SetOverride(os.DirFS(dir))
}

// SetOverride replaces the override filesystem and drops cached images.
func (l *Library) SetOverride(fsys fs.FS) {
	l.override = fsys
	l.images = make(map[string]*ebiten.Image)
	l.frames = make(map[string]*ebiten.Image)
}

// DecodeImage reads and decodes one image from fsys.
func DecodeImage(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Source returns the decoded override for name, or the placeholder when the
// override is missing or broken.
func (l *Library) Source(name string, placeholder func() image.Image) image.Image {
	img, err := DecodeImage(l.override, name)
	if err == nil {
		return img
	}
	if !errors.Is(err, ErrAssetNotFound) {
		log.Warn("image load failed, using placeholder", "path", name, "err", err)
	}
	return placeholder()
}

func (l *Library) load(name string, placeholder func() image.Image) *ebiten.Image {
	if img, ok := l.images[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(l.Source(name, placeholder))
	l.images[name] = img
	return img
}

// Image returns a standalone image such as the chat bubble or portrait.
func (l *Library) Image(key string) *ebiten.Image {
	return l.load("images/"+key+".png", func() image.Image {
		size, ok := ImageSizes[key]
		if !ok {
			size = struct{ W, H int }{16, 16}
		}
		return PlaceholderImage(key, size.W, size.H)
	})
}

// Layer returns a parallax layer texture sized to the screen.
func (l *Library) Layer(texture string) *ebiten.Image {
	return l.load("backgrounds/"+texture+".png", func() image.Image {
		return PlaceholderLayer(texture, config.C.Width, config.C.Height)
	})
}

// Sheet returns the sprite sheet for a sheet key and state.
func (l *Library) Sheet(key string, state config.StateID) *ebiten.Image {
	name := fmt.Sprintf("spritesheets/%s/%s.png", key, state.String())
	return l.load(name, func() image.Image {
		size := config.SheetFrameSizes[key]
		frames := 1
		if def, ok := config.CharacterAnimations[key][state]; ok {
			frames = def.Last + 1
		}
		return PlaceholderSheet(key, frames, size.W, size.H)
	})
}

// Frame returns a cached sub-image for a specific animation frame.
func (l *Library) Frame(key string, state config.StateID, frameIndex int) *ebiten.Image {
	cacheKey := fmt.Sprintf("%s/%s/%d", key, state.String(), frameIndex)
	if img, ok := l.frames[cacheKey]; ok {
		return img
	}

	size := config.SheetFrameSizes[key]
	sx := frameIndex * size.W
	frame := l.Sheet(key, state).SubImage(image.Rect(sx, 0, sx+size.W, size.H)).(*ebiten.Image)
	l.frames[cacheKey] = frame
	return frame
}

func GetImage(key string) *ebiten.Image {
	return library.Image(key)
}

func GetLayer(texture string) *ebiten.Image {
	return library.Layer(texture)
}

func GetFrame(key string, state config.StateID, frameIndex int) *ebiten.Image {
	return library.Frame(key, state, frameIndex)
}

// PreloadAll decodes every sheet, layer and image up front so the first
// frames do not stall on texture uploads.
func PreloadAll() {
	for key, defs := range config.CharacterAnimations {
		for state, def := range defs {
			step := def.Step
			if step <= 0 {
				step = 1
			}
			for i := def.First; i <= def.Last; i += step {
				_ = library.Frame(key, state, i)
			}
		}
	}
	for _, layer := range config.Background.Layers {
		_ = library.Layer(layer.Texture)
	}
	for key := range ImageSizes {
		_ = library.Image(key)
	}
}
