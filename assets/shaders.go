package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// VignetteShader darkens the screen edges of the forest scene.
	VignetteShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	vignetteSrc, err := shaderFS.ReadFile("shaders/vignette.kage")
	if err != nil {
		return err
	}
	VignetteShader, err = ebiten.NewShader(vignetteSrc)
	if err != nil {
		return err
	}

	return nil
}
