package systems

import (
	"testing"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeInput is a scripted keyboard.
type fakeInput struct {
	keys map[ebiten.Key]bool
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID { return ids }

func (f *fakeInput) IsButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

func (f *fakeInput) AxisValue(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64 { return 0 }

func (f *fakeInput) press(keys ...ebiten.Key) {
	for _, k := range keys {
		f.keys[k] = true
	}
}

func (f *fakeInput) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.keys, k)
	}
}

func (f *fakeInput) releaseAll() {
	f.keys = map[ebiten.Key]bool{}
}

func useFakeInput(t *testing.T) *fakeInput {
	t.Helper()
	f := &fakeInput{keys: map[ebiten.Key]bool{}}
	SetInputSource(f)
	t.Cleanup(func() { SetInputSource(nil) })
	return f
}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return ecs.NewECS(donburi.NewWorld())
}

const groundY = 240.0

// newTestWorld builds a flat strip of ground with the player standing on it
// at x = px.
func newTestWorld(t *testing.T, px float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)
	factory.CreateSpace(e, 1920, 272, 16, 16)
	ground := factory.CreateWall(e, 0, groundY, 1920, 32)
	player := factory.CreatePlayer(e, px, groundY)
	components.Physics.Get(player).OnGround = components.Object.Get(ground).Object
	return e, player
}

func spawnCreature(t *testing.T, e *ecs.ECS, x float64) *donburi.Entry {
	t.Helper()
	entry := factory.CreateObstacle(e, assets.ObstacleSpawn{X: x, Y: groundY, Kind: cfg.ObstacleSleepingCreature})
	require.NotNil(t, entry)
	return entry
}

// tick runs one frame of the gameplay systems in scene order.
func tick(e *ecs.ECS) {
	UpdateInput(e)
	UpdatePlayer(e)
	UpdateObstacles(e)
	UpdateQuestBoard(e)
	UpdateEffects(e)
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		tick(e)
	}
}

func countEffects(e *ecs.ECS) int {
	n := 0
	components.AutoDestroy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
