package systems

import (
	"math"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	"github.com/automoto/quietwood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping in at the screen edges.
const cullPadding = 64.0

// screenOffset converts world coordinates to screen coordinates.
func screenOffset(e *ecs.ECS, screen *ebiten.Image) (dx, dy float64, ok bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return math.Round(float64(width)/2 - camera.Position.X), math.Round(float64(height)/2 - camera.Position.Y), true
}

func visible(o *components.ObjectData, dx, dy float64, screen *ebiten.Image) bool {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	x, y := o.X+dx, o.Y+dy
	return x+o.W >= -cullPadding && x <= w+cullPadding && y+o.H >= -cullPadding && y <= h+cullPadding
}

// DrawAnimated renders obstacles, the player and effects, in that order.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	dx, dy, ok := screenOffset(e, screen)
	if !ok {
		return
	}

	draw := func(entry *donburi.Entry) {
		drawAnimatedEntry(entry, screen, dx, dy)
	}
	tags.Obstacle.Each(e.World, draw)
	tags.Player.Each(e.World, draw)
	tags.Effect.Each(e.World, draw)
}

func drawAnimatedEntry(e *donburi.Entry, screen *ebiten.Image, dx, dy float64) {
	o := components.Object.Get(e)
	if !visible(o, dx, dy, screen) {
		return
	}

	animData := components.Animation.Get(e)
	if animData.CurrentAnimation == nil {
		return
	}
	img := assets.GetFrame(animData.SheetKey, animData.CurrentSheet, animData.CurrentAnimation.Frame())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at bottom-center so feet line up with the collision box
	drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))
	if o.W != float64(animData.FrameWidth) && !e.HasComponent(components.Player) {
		scale := o.W / float64(animData.FrameWidth)
		drawOp.GeoM.Scale(scale, scale)
	}

	// Flip the sprite if facing left.
	if e.HasComponent(components.Player) && components.Player.Get(e).Direction.X < 0 {
		drawOp.GeoM.Scale(-1, 1)
	}

	drawOp.GeoM.Translate(o.X+o.W/2+dx, o.Y+o.H+dy)
	screen.DrawImage(img, drawOp)
}

// DrawSprites renders static sprites such as affordance bubbles.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	dx, dy, ok := screenOffset(e, screen)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Hidden || sprite.ImageKey == "" {
			return
		}
		o := components.Object.Get(entry)
		if !visible(o, dx, dy, screen) {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		drawOp.GeoM.Translate(o.X+dx, o.Y+dy)
		screen.DrawImage(assets.GetImage(sprite.ImageKey), drawOp)
	})
}
