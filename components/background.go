package components

import (
	"github.com/automoto/quietwood/config"
	"github.com/yohamta/donburi"
)

// ParallaxLayerData is one screen-filling background strip pinned to the
// camera. OffsetX is the horizontal texture offset in pixels.
type ParallaxLayerData struct {
	Texture string
	Mode    config.LayerMode
	Speed   float64
	OffsetX float64
	Z       int
}

var ParallaxLayer = donburi.NewComponentType[ParallaxLayerData]()
