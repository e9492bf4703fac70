package factory

import (
	"github.com/automoto/quietwood/archetypes"
	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an interactable from a level spawn point, together
// with its hidden affordance bubble. Unknown kinds are skipped.
func CreateObstacle(ecs *ecs.ECS, spawn assets.ObstacleSpawn) *donburi.Entry {
	typeCfg, ok := cfg.Obstacle.Types[spawn.Kind]
	if !ok {
		log.Warn("unknown obstacle kind, skipping", "kind", spawn.Kind, "x", spawn.X)
		return nil
	}

	scale := typeCfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := cfg.SheetFrameSizes[typeCfg.SpriteSheetKey]
	w, h := float64(size.W)*scale, float64(size.H)*scale

	obstacle := archetypes.Obstacle.Spawn(ecs)

	// Sensor only: not tagged solid, the player walks through it.
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	animData := GenerateAnimations(typeCfg.SpriteSheetKey)
	animData.SetAnimation(cfg.Sleep)
	components.Animation.Set(obstacle, animData)
	components.State.SetValue(obstacle, components.StateData{
		CurrentState:  cfg.Sleep,
		PreviousState: cfg.StateNone,
	})

	bubble := createAffordance(ecs, typeCfg.BubbleImage, spawn.X, spawn.Y-h+typeCfg.BubbleOffsetY)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Kind:              spawn.Kind,
		X:                 spawn.X,
		Y:                 spawn.Y,
		InteractionRadius: typeCfg.InteractionRadius,
		State:             components.ObstacleDormant,
		Affordance:        bubble,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
		space.Add(components.Object.Get(bubble).Object)
	}

	return obstacle
}

// createAffordance spawns a hidden sprite whose bottom-center sits at (x, y).
func createAffordance(ecs *ecs.ECS, imageKey string, x, y float64) *donburi.Entry {
	size := assets.ImageSizes[imageKey]
	w, h := float64(size.W), float64(size.H)

	bubble := archetypes.Affordance.Spawn(ecs)
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.Data = bubble
	components.Object.SetValue(bubble, components.ObjectData{Object: obj})
	components.Sprite.SetValue(bubble, components.SpriteData{
		ImageKey: imageKey,
		Hidden:   true,
	})
	return bubble
}

// DestroyObstacle removes an obstacle and its affordance. Safe to call on
// nil, removed or partially built entries.
func DestroyObstacle(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Obstacle) {
		destroyWithObject(components.Obstacle.Get(entry).Affordance)
	}
	destroyWithObject(entry)
}

// destroyWithObject removes an entry and takes its collision object out of
// the space first.
func destroyWithObject(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}
