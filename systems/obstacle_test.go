package systems

import (
	"testing"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// recorder counts behavior calls and holds the done callback.
type recorder struct {
	shows, hides, interacts int
	done                    func()
}

func (r *recorder) ShowAffordance(*ecs.ECS, *donburi.Entry) { r.shows++ }
func (r *recorder) HideAffordance(*ecs.ECS, *donburi.Entry) { r.hides++ }
func (r *recorder) Interact(_ *ecs.ECS, _ *donburi.Entry, done func()) {
	r.interacts++
	r.done = done
}

func useRecorder(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	RegisterObstacleBehavior(cfg.ObstacleSleepingCreature, r)
	t.Cleanup(func() { RegisterObstacleBehavior(cfg.ObstacleSleepingCreature, NewSleepingCreature()) })
	return r
}

func movePlayerTo(player *donburi.Entry, x float64) {
	obj := components.Object.Get(player)
	obj.X = x - obj.W/2
}

func TestIsPlayerNearbyBoundary(t *testing.T) {
	obs := &components.ObstacleData{X: 200, Y: groundY, InteractionRadius: 60}

	tests := []struct {
		name string
		px   float64
		want bool
	}{
		{"inside by one", 141, true},
		{"exactly on radius", 140, false},
		{"outside by one", 139, false},
		{"on top", 200, true},
		{"other side", 259, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlayerNearby(obs, tt.px, groundY))
		})
	}
	assert.False(t, IsPlayerNearby(obs, 200, groundY-60), "radius is measured in 2D")
}

func TestAffordanceShownOnceWhileNearby(t *testing.T) {
	useFakeInput(t)
	rec := useRecorder(t)
	e, player := newTestWorld(t, 100)
	entry := spawnCreature(t, e, 200)
	obs := components.Obstacle.Get(entry)

	tick(e)
	assert.Equal(t, components.ObstacleDormant, obs.State)
	assert.Zero(t, rec.shows)
	assert.Zero(t, rec.hides, "nothing to hide on the first frame")

	movePlayerTo(player, 180)
	ticks(e, 10)
	assert.Equal(t, components.ObstacleNearby, obs.State)
	assert.Equal(t, 1, rec.shows)
	assert.True(t, obs.AffordanceVisible)

	movePlayerTo(player, 400)
	ticks(e, 10)
	assert.Equal(t, components.ObstacleDormant, obs.State)
	assert.Equal(t, 1, rec.hides)
	assert.False(t, obs.AffordanceVisible)
}

func TestInteractRequiresProximity(t *testing.T) {
	in := useFakeInput(t)
	rec := useRecorder(t)
	e, _ := newTestWorld(t, 100)
	spawnCreature(t, e, 200)

	in.press(ebiten.KeyE)
	tick(e)
	assert.Zero(t, rec.interacts)
}

func TestInteractionLocksPlayerUntilDone(t *testing.T) {
	in := useFakeInput(t)
	rec := useRecorder(t)
	e, player := newTestWorld(t, 180)
	entry := spawnCreature(t, e, 200)
	obs := components.Obstacle.Get(entry)

	tick(e)
	require.Equal(t, components.ObstacleNearby, obs.State)

	in.press(ebiten.KeyE)
	tick(e)
	assert.Equal(t, 1, rec.interacts)
	assert.Equal(t, components.ObstacleInteracting, obs.State)
	assert.Equal(t, 1, rec.hides, "affordance hidden on interaction")
	assert.False(t, components.Player.Get(player).MovementEnabled)

	in.releaseAll()
	in.press(ebiten.KeyRight)
	ticks(e, 5)
	assert.Zero(t, components.Physics.Get(player).SpeedX)
	assert.Equal(t, components.ObstacleInteracting, obs.State, "proximity ignored while interacting")

	in.release(ebiten.KeyRight)
	in.press(ebiten.KeyE)
	tick(e)
	assert.Equal(t, 1, rec.interacts, "no re-entry while interacting")

	require.NotNil(t, rec.done)
	rec.done()
	rec.done()
	assert.True(t, components.Player.Get(player).MovementEnabled)
	assert.Equal(t, components.ObstacleNearby, obs.State)

	in.releaseAll()
	tick(e)
	assert.Equal(t, 2, rec.shows, "affordance comes back after the interaction")
}

func TestSleepingCreatureOpensQuestBoard(t *testing.T) {
	in := useFakeInput(t)
	e, player := newTestWorld(t, 180)
	entry := spawnCreature(t, e, 200)
	obs := components.Obstacle.Get(entry)
	bubble := components.Sprite.Get(obs.Affordance)

	assert.True(t, bubble.Hidden)
	tick(e)
	assert.False(t, bubble.Hidden, "bubble shows when the player is close")

	in.press(ebiten.KeyE)
	tick(e)
	assert.True(t, IsQuestBoardVisible(e))
	assert.True(t, bubble.Hidden)
	assert.Equal(t, components.ObstacleInteracting, obs.State)
	assert.False(t, components.Player.Get(player).MovementEnabled)

	in.releaseAll()
	ticks(e, openFrames()+2)
	board, _ := QuestBoardState(e)
	require.Equal(t, components.QuestBoardOpen, board.Phase)

	in.press(ebiten.KeyE)
	tick(e)
	assert.Equal(t, components.QuestBoardClosing, board.Phase)
	assert.False(t, components.Player.Get(player).MovementEnabled, "still locked while fading out")

	in.releaseAll()
	ticks(e, closeFrames()+2)
	assert.False(t, IsQuestBoardVisible(e))
	assert.True(t, components.Player.Get(player).MovementEnabled)
	assert.Equal(t, components.ObstacleNearby, obs.State)
	assert.False(t, bubble.Hidden, "bubble returns once the board is gone")
}

func TestObstacleIgnoresInteractWhileBoardVisible(t *testing.T) {
	in := useFakeInput(t)
	rec := useRecorder(t)
	e, _ := newTestWorld(t, 180)
	spawnCreature(t, e, 200)

	require.True(t, OpenQuestBoard(e, nil))
	in.press(ebiten.KeyE)
	tick(e)
	assert.Zero(t, rec.interacts)
}

func TestUnknownObstacleKind(t *testing.T) {
	e := newTestECS(t)
	entry := factory.CreateObstacle(e, assets.ObstacleSpawn{X: 10, Y: 10, Kind: "dragon"})
	assert.Nil(t, entry)
	assert.Nil(t, behaviorFor("dragon"))
}

func TestDestroyObstacleRemovesAffordance(t *testing.T) {
	e, _ := newTestWorld(t, 100)
	entry := spawnCreature(t, e, 200)
	bubble := components.Obstacle.Get(entry).Affordance
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	before := len(space.Objects())

	factory.DestroyObstacle(e, entry)
	assert.False(t, entry.Valid())
	assert.False(t, bubble.Valid())
	assert.Len(t, space.Objects(), before-2)

	assert.NotPanics(t, func() {
		factory.DestroyObstacle(e, entry)
		factory.DestroyObstacle(e, nil)
	})
}
