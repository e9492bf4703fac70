package scenes

import (
	"testing"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	"github.com/automoto/quietwood/systems"
	"github.com/automoto/quietwood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type recordingChanger struct {
	scenes []Scene
	quits  int
}

func (r *recordingChanger) ChangeScene(s Scene) { r.scenes = append(r.scenes, s) }
func (r *recordingChanger) Quit()               { r.quits++ }

type keyboard map[ebiten.Key]bool

func (k keyboard) IsKeyPressed(key ebiten.Key) bool { return k[key] }
func (k keyboard) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ids
}
func (k keyboard) IsButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}
func (k keyboard) AxisValue(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64 { return 0 }

func useKeyboard(t *testing.T) keyboard {
	t.Helper()
	k := keyboard{}
	systems.SetInputSource(k)
	t.Cleanup(func() { systems.SetInputSource(nil) })
	return k
}

func count(w donburi.World, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildForest(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, buildForest(e, assets.DefaultLevel))

	_, ok := tags.Player.First(e.World)
	assert.True(t, ok, "player spawned")
	_, ok = components.Camera.First(e.World)
	assert.True(t, ok, "camera spawned")
	assert.Equal(t, 1, count(e.World, tags.Obstacle))
	assert.Equal(t, 1, count(e.World, tags.Affordance))
	assert.Positive(t, count(e.World, tags.Wall))
	assert.Positive(t, count(e.World, tags.Parallax))
}

func TestBuildForestMissingLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Error(t, buildForest(e, "levels/nowhere.tmx"))
}

func TestForestDisposeIsIdempotent(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, buildForest(e, assets.DefaultLevel))
	require.True(t, systems.OpenQuestBoard(e, nil))

	fs := &ForestScene{ecs: e, levelPath: assets.DefaultLevel}
	fs.Dispose()
	assert.Zero(t, count(e.World, tags.Obstacle))
	assert.Zero(t, count(e.World, tags.Affordance))
	_, ok := components.QuestBoard.First(e.World)
	assert.False(t, ok)

	assert.NotPanics(t, fs.Dispose)
}

func TestMenuSceneStartsForest(t *testing.T) {
	k := useKeyboard(t)
	sc := &recordingChanger{}
	ms := NewMenuScene(sc)

	ms.Update()
	k[ebiten.KeyEnter] = true
	ms.Update()

	require.Len(t, sc.scenes, 1)
	assert.IsType(t, &ForestScene{}, sc.scenes[0])
}

func TestMenuSceneExit(t *testing.T) {
	k := useKeyboard(t)
	sc := &recordingChanger{}
	ms := NewMenuScene(sc)

	ms.Update()
	k[ebiten.KeyEscape] = true
	ms.Update()
	assert.Equal(t, 1, sc.quits)
	assert.Empty(t, sc.scenes)
}
