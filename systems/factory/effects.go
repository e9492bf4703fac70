package factory

import (
	"github.com/automoto/quietwood/archetypes"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// vfxSheets maps an effect to the sheet key holding its frames.
var vfxSheets = map[cfg.StateID]string{
	cfg.StateJumpDust: "sfx",
}

// SpawnJumpDust creates a dust puff with its bottom-center at (x, y).
func SpawnJumpDust(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return SpawnVFX(ecs, x, y, cfg.StateJumpDust)
}

// SpawnVFX creates a visual effect entity anchored bottom-center at (x, y).
// It removes itself once its animation has played through.
func SpawnVFX(ecs *ecs.ECS, x, y float64, effectType cfg.StateID) *donburi.Entry {
	sheet, ok := vfxSheets[effectType]
	if !ok {
		return nil // Unknown effect type
	}
	size := cfg.SheetFrameSizes[sheet]

	entry := archetypes.VFXEffect.Spawn(ecs)

	// Non-colliding object, used for position only
	obj := resolv.NewObject(x-float64(size.W)/2, y-float64(size.H), float64(size.W), float64(size.H), tags.ResolvEffect)
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	animData := GenerateAnimations(sheet)
	animData.SetAnimation(effectType)
	components.Animation.Set(entry, animData)

	components.AutoDestroy.Set(entry, &components.AutoDestroyData{
		FramesRemaining:   -1,
		DestroyOnAnimLoop: true,
	})

	return entry
}
