package systems

import (
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

var hudTextOp = &text.DrawOptions{}

// interactHint returns the interact binding for the device last used.
func interactHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Y"
	}
	return cfg.HUD.InteractHint
}

// DrawHUD draws the interact key hint above every obstacle the player can
// currently interact with.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if IsQuestBoardVisible(e) {
		return
	}
	dx, dy, ok := screenOffset(e, screen)
	if !ok {
		return
	}

	label := interactHint(getOrCreateInput(e).LastInputMethod)
	face := fonts.Small.Face()
	tw, th := text.Measure(label, face, 0)
	pad := cfg.HUD.BoxPadding

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obs := components.Obstacle.Get(entry)
		if !obs.AffordanceVisible {
			return
		}

		// Above the bubble when there is one, else above the obstacle
		top := obs.Y
		if o := components.Object.Get(entry); o != nil {
			top = o.Y
		}
		if obs.Affordance != nil && obs.Affordance.Valid() {
			top = components.Object.Get(obs.Affordance).Y
		}

		x := obs.X + dx - tw/2
		y := top + dy + cfg.HUD.HintOffsetY
		vector.FillRect(screen, float32(x-pad), float32(y-pad), float32(tw+2*pad), float32(th+2*pad), cfg.HUD.BoxColor, false)

		hudTextOp.GeoM.Reset()
		hudTextOp.ColorScale.Reset()
		hudTextOp.GeoM.Translate(x, y)
		hudTextOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
		text.Draw(screen, label, face, hudTextOp)
	})
}
