package systems

import (
	"image/color"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var menuOptions = []components.MainMenuOption{
	components.MainMenuStart,
	components.MainMenuExit,
}

// NewUpdateMenu creates the menu input system. onStart and onExit run on
// the frame the matching option is chosen.
func NewUpdateMenu(onStart, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if ConsumeAction(input, cfg.ActionMenuSelect) || ConsumeAction(input, cfg.ActionJump) {
			switch menuOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				onStart()
			case components.MainMenuExit:
				onExit()
			}
			return
		}

		// Allow back/escape to exit
		if ConsumeAction(input, cfg.ActionMenuBack) {
			onExit()
		}
	}
}

var menuTextOp = &text.DrawOptions{}

func drawCentered(screen *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	menuTextOp.GeoM.Reset()
	menuTextOp.ColorScale.Reset()
	menuTextOp.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, y)
	menuTextOp.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, menuTextOp)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Face(), cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Small.Face(), cfg.Menu.TitleY+32, cfg.Menu.TextColorNormal)

	for i := range menuOptions {
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight
		drawCentered(screen, optionLabel(i), fonts.Body.Face(), y, textColor)
	}

	hint := getMenuHint(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Face(), float64(height)-16, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// optionLabel returns the configured label for option i.
func optionLabel(i int) string {
	if i < len(cfg.Menu.MenuOptions) {
		return cfg.Menu.MenuOptions[i]
	}
	return ""
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
