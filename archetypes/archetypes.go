package archetypes

import (
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	ParallaxLayer = newArchetype(
		tags.Parallax,
		components.ParallaxLayer,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Animation,
		components.State,
	)
	Affordance = newArchetype(
		tags.Affordance,
		components.Object,
		components.Sprite,
	)
	QuestBoard = newArchetype(
		components.QuestBoard,
	)
	VFXEffect = newArchetype(
		tags.Effect,
		components.Object,
		components.Animation,
		components.AutoDestroy,
	)
	Debug = newArchetype(
		components.Debug,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity on the world layer with the archetype's
// components plus any extras.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return a.SpawnOnLayer(ecs, cfg.LayerWorld, cs...)
}

func (a *archetype) SpawnOnLayer(e *ecs.ECS, layer ecs.LayerID, cs ...donburi.IComponentType) *donburi.Entry {
	comps := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return e.World.Entry(e.Create(layer, comps...))
}
