package systems

import (
	"math"
	"sort"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground moves every parallax layer's texture offset. The camera
// scroll is read once per frame.
func UpdateBackground(e *ecs.ECS) {
	scrollX, _ := CameraScroll(e)
	components.ParallaxLayer.Each(e.World, func(entry *donburi.Entry) {
		applyParallax(components.ParallaxLayer.Get(entry), scrollX)
	})
}

func applyParallax(layer *components.ParallaxLayerData, scrollX float64) {
	switch layer.Mode {
	case cfg.LayerTiling:
		layer.OffsetX = scrollX * layer.Speed
	case cfg.LayerDrift:
		// Independent of the camera
		layer.OffsetX += cfg.Background.DriftStep
	}
}

var layerBuf []*components.ParallaxLayerData

// sortedLayers returns the parallax layers back-to-front.
func sortedLayers(e *ecs.ECS) []*components.ParallaxLayerData {
	layerBuf = layerBuf[:0]
	components.ParallaxLayer.Each(e.World, func(entry *donburi.Entry) {
		layerBuf = append(layerBuf, components.ParallaxLayer.Get(entry))
	})
	sort.Slice(layerBuf, func(i, j int) bool { return layerBuf[i].Z < layerBuf[j].Z })
	return layerBuf
}

// DrawBackground tiles each layer across the screen. Layers are pinned to the
// camera, so only their texture offset moves.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())

	for _, layer := range sortedLayers(e) {
		img := assets.GetLayer(layer.Texture)
		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if w <= 0 || h <= 0 {
			continue
		}
		scale := screenH / h

		if layer.Mode == cfg.LayerStatic {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Scale(screenW/w, scale)
			screen.DrawImage(img, drawOp)
			continue
		}

		tileW := w * scale
		start := -math.Mod(layer.OffsetX, tileW)
		if start > 0 {
			start -= tileW
		}
		for x := start; x < screenW; x += tileW {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Scale(scale, scale)
			drawOp.GeoM.Translate(math.Floor(x), 0)
			screen.DrawImage(img, drawOp)
		}
	}
}
