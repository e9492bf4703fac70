package systems

import (
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// grassHeight is the strip of moss drawn along the top of every solid.
const grassHeight = 3

// DrawLevel draws the level's solid geometry relative to the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	dx, dy, ok := screenOffset(e, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, solid := range levelData.CurrentLevel.Solids {
		x, y := solid.X+dx, solid.Y+dy
		if x+solid.Width < 0 || x > w || y+solid.Height < 0 || y > h {
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(solid.Width), float32(solid.Height), cfg.Soil, false)
		vector.FillRect(screen, float32(x), float32(y), float32(solid.Width), grassHeight, cfg.Moss, false)
	}
}
