package ui

import (
	"image/color"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/fonts"
	"github.com/automoto/quietwood/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// QuestBoardUI renders the quest board panel. The widget tree is drawn to an
// offscreen image so the open and close transitions can scale and fade it
// as a whole.
type QuestBoardUI struct {
	UI *ebitenui.UI

	ecs       *ecs.ECS
	offscreen *ebiten.Image

	titleFace text.Face
	bodyFace  text.Face
}

// NewQuestBoardUI builds the panel for the given world.
func NewQuestBoardUI(e *ecs.ECS) *QuestBoardUI {
	q := &QuestBoardUI{ecs: e}
	q.loadFonts()
	q.buildUI()
	return q
}

func (q *QuestBoardUI) loadFonts() {
	source := fonts.Source()
	q.titleFace = &text.GoTextFace{
		Source: source,
		Size:   cfg.QuestBoard.TitleFontSize,
	}
	q.bodyFace = &text.GoTextFace{
		Source: source,
		Size:   cfg.QuestBoard.BodyFontSize,
	}
}

func (q *QuestBoardUI) buildUI() {
	// Transparent root so only the panel shows on the offscreen image
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.QuestBoard.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.QuestBoard.Width, cfg.QuestBoard.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(cfg.QuestBoard.Title, &q.titleFace, &widget.LabelColor{
			Idle: cfg.QuestBoard.TitleColor,
		}),
	)
	panel.AddChild(title)
	panel.AddChild(q.buildBody())
	panel.AddChild(q.buildCloseButton())

	rootContainer.AddChild(panel)

	q.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildBody lays the portrait out next to the riddle text.
func (q *QuestBoardUI) buildBody() *widget.Container {
	body := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	portrait := widget.NewGraphic(
		widget.GraphicOpts.Image(assets.GetImage(cfg.QuestBoard.Portrait)),
	)
	body.AddChild(portrait)

	lines := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	for _, line := range cfg.QuestBoard.Lines {
		lines.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &q.bodyFace, &widget.LabelColor{
				Idle: cfg.QuestBoard.TextColor,
			}),
		))
	}
	body.AddChild(lines)

	return body
}

func (q *QuestBoardUI) buildCloseButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 22),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cfg.QuestBoard.CloseLabel, &q.bodyFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Amber,
			Pressed: cfg.Cream,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			requestClose(q.ecs)
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{90, 70, 50, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{120, 95, 65, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{70, 55, 40, 255}),
	}
}

// requestClose starts the close transition. Clicks during a transition are
// ignored.
func requestClose(e *ecs.ECS) bool {
	board, ok := systems.QuestBoardState(e)
	if !ok || board.Phase != components.QuestBoardOpen {
		return false
	}
	return systems.CloseQuestBoard(e)
}

// Update handles pointer input. Widgets only react while the board is fully
// open, when the drawn panel matches the widget layout.
func (q *QuestBoardUI) Update(e *ecs.ECS) {
	board, ok := systems.QuestBoardState(e)
	if !ok || board.Phase != components.QuestBoardOpen {
		return
	}
	q.UI.Update()
}

// Draw renders the overlay and the panel with the current transition applied.
func (q *QuestBoardUI) Draw(e *ecs.ECS, screen *ebiten.Image) {
	board, ok := systems.QuestBoardState(e)
	if !ok || !board.Visible {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if q.offscreen == nil || q.offscreen.Bounds().Dx() != w || q.offscreen.Bounds().Dy() != h {
		q.offscreen = ebiten.NewImage(w, h)
	}

	scale, alpha := systems.QuestBoardTransform(board)

	overlay := cfg.QuestBoard.OverlayColor
	overlay.A = uint8(float64(overlay.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), premultiply(overlay), false)

	q.offscreen.Clear()
	q.UI.Draw(q.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(q.offscreen, op)
}

// premultiply scales the color channels by alpha, as color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
