package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData is a single static image resolved by key at draw time.
type SpriteData struct {
	ImageKey string
	Hidden   bool
	PivotX   float64
	PivotY   float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
