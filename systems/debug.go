package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/fonts"
	"github.com/automoto/quietwood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateDebug returns the singleton Debug component, creating if needed
func getOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Overlay})
	}
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the overlay.
func UpdateDebug(e *ecs.ECS) {
	debug := getOrCreateDebug(e)
	if ConsumeAction(getOrCreateInput(e), cfg.ActionDebug) {
		debug.Enabled = !debug.Enabled
	}
}

var debugTextOp = &text.DrawOptions{}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(e).Enabled {
		return
	}
	dx, dy, ok := screenOffset(e, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvObstacle):
				c = cfg.Purple
			}
			vector.StrokeRect(screen, float32(obj.X+dx), float32(obj.Y+dy), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	lines := []string{fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obs := components.Obstacle.Get(entry)
		c := cfg.Red
		if obs.AffordanceVisible {
			c = cfg.Green
		}
		vector.StrokeCircle(screen, float32(obs.X+dx), float32(obs.Y+dy), float32(obs.InteractionRadius), 1, c, false)
		lines = append(lines, fmt.Sprintf("%s: %s", obs.Kind, obs.State))
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		state := components.State.Get(playerEntry)
		px, py := PlayerPosition(playerEntry)
		lines = append(lines,
			fmt.Sprintf("player %.0f,%.0f %s", px, py, state.CurrentState),
			fmt.Sprintf("speed %.2f,%.2f ground=%t move=%t", physics.SpeedX, physics.SpeedY, physics.OnGround != nil, player.MovementEnabled),
		)
	}

	if board, ok := QuestBoardState(e); ok {
		lines = append(lines, fmt.Sprintf("board %s %.2f", board.Phase, board.Progress))
	}

	face := fonts.Small.Face()
	for i, line := range lines {
		debugTextOp.GeoM.Reset()
		debugTextOp.ColorScale.Reset()
		debugTextOp.GeoM.Translate(4, 4+float64(i)*10)
		debugTextOp.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, line, face, debugTextOp)
	}
}
