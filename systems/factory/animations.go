package factory

import (
	"fmt"

	"github.com/automoto/quietwood/assets/animations"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
)

// GenerateAnimations creates an AnimationData component based on the sheet key
// (e.g., "player", "creature") which maps to a set of animation definitions in config.
// Frames are resolved by the renderers, so no images are loaded here.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	size := cfg.SheetFrameSizes[key]

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		SheetKey:     key,
		FrameWidth:   size.W,
		FrameHeight:  size.H,
		CurrentSheet: cfg.StateNone,
	}

	for state, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.Once = def.Once
		animData.Animations[state] = anim
	}

	return animData
}
