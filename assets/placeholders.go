package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Palette used by the procedural placeholder art.
var Palette = struct {
	Sky, SkyHigh      color.RGBA
	Cloud             color.RGBA
	Mountain          color.RGBA
	Hill              color.RGBA
	TreeFar, TreeNear color.RGBA
	Ground, Grass     color.RGBA
	Player, Eye       color.RGBA
	Creature, Belly   color.RGBA
	Dust              color.RGBA
	Bubble, Dots      color.RGBA
}{
	Sky:      color.RGBA{38, 52, 92, 255},
	SkyHigh:  color.RGBA{18, 24, 44, 255},
	Cloud:    color.RGBA{120, 130, 170, 200},
	Mountain: color.RGBA{52, 62, 100, 255},
	Hill:     color.RGBA{46, 78, 84, 255},
	TreeFar:  color.RGBA{36, 70, 60, 255},
	TreeNear: color.RGBA{28, 56, 40, 255},
	Ground:   color.RGBA{72, 52, 36, 255},
	Grass:    color.RGBA{96, 150, 80, 255},
	Player:   color.RGBA{230, 190, 120, 255},
	Eye:      color.RGBA{30, 20, 20, 255},
	Creature: color.RGBA{120, 100, 150, 255},
	Belly:    color.RGBA{180, 165, 200, 255},
	Dust:     color.RGBA{210, 200, 180, 180},
	Bubble:   color.RGBA{250, 250, 245, 255},
	Dots:     color.RGBA{60, 60, 70, 255},
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	for y := int(cy - ry); y <= int(cy+ry); y++ {
		for x := int(cx - rx); x <= int(cx+rx); x++ {
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// fillSilhouette fills every column below height(x), for ridge lines.
func fillSilhouette(img *image.RGBA, height func(x int) int, col color.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		fillRect(img, image.Rect(x, height(x), x+1, b.Max.Y), col)
	}
}

// PlaceholderSheet draws a horizontal strip of frames for a sheet key.
func PlaceholderSheet(key string, frames, w, h int) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, frames*w, h))
	for i := 0; i < frames; i++ {
		ox := float64(i * w)
		switch key {
		case "player":
			bob := i % 2
			fillRect(img, image.Rect(int(ox)+w/2-6, 6+bob, int(ox)+w/2+6, h-2), Palette.Player)
			fillRect(img, image.Rect(int(ox)+w/2+2, 10+bob, int(ox)+w/2+4, 12+bob), Palette.Eye)
		case "creature":
			breath := float64(i%4) * 0.75
			fillEllipse(img, ox+float64(w)/2, float64(h)*0.6, float64(w)/2-2+breath, float64(h)*0.4-breath/2, Palette.Creature)
			fillEllipse(img, ox+float64(w)/2, float64(h)*0.7, float64(w)/4, float64(h)/6, Palette.Belly)
		case "sfx":
			r := 2 + float64(i)*1.5
			fillEllipse(img, ox+float64(w)/2-r, float64(h)-r, r, r, Palette.Dust)
			fillEllipse(img, ox+float64(w)/2+r, float64(h)-r, r, r, Palette.Dust)
		default:
			fillRect(img, image.Rect(int(ox), 0, int(ox)+w, h), Palette.Dots)
		}
	}
	return img
}

// PlaceholderLayer draws a horizontally seamless background texture.
func PlaceholderLayer(texture string, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	wave := func(periods, amp, base float64) func(int) int {
		return func(x int) int {
			return int(base + amp*math.Sin(float64(x)/float64(w)*2*math.Pi*periods))
		}
	}
	fh := float64(h)

	switch texture {
	case "sky":
		for y := 0; y < h; y++ {
			t := float64(y) / fh
			c := color.RGBA{
				R: uint8(float64(Palette.SkyHigh.R)*(1-t) + float64(Palette.Sky.R)*t),
				G: uint8(float64(Palette.SkyHigh.G)*(1-t) + float64(Palette.Sky.G)*t),
				B: uint8(float64(Palette.SkyHigh.B)*(1-t) + float64(Palette.Sky.B)*t),
				A: 255,
			}
			fillRect(img, image.Rect(0, y, w, y+1), c)
		}
	case "clouds":
		for i := 0; i < 4; i++ {
			cx := float64(w) * (float64(i) + 0.5) / 4
			fillEllipse(img, cx, fh*0.18+float64(i%2)*12, 30, 8, Palette.Cloud)
		}
	case "mountains":
		fillSilhouette(img, wave(2, fh*0.12, fh*0.45), Palette.Mountain)
	case "hills":
		fillSilhouette(img, wave(3, fh*0.06, fh*0.62), Palette.Hill)
	case "trees_far":
		fillSilhouette(img, func(x int) int {
			return int(fh*0.62) - (x%24)/2 - int(6*math.Sin(float64(x)/float64(w)*2*math.Pi*5))
		}, Palette.TreeFar)
	case "trees_near":
		fillSilhouette(img, func(x int) int {
			return int(fh*0.7) - (x%40)/2 - int(8*math.Sin(float64(x)/float64(w)*2*math.Pi*4))
		}, Palette.TreeNear)
	case "ground":
		top := int(fh * 0.89)
		fillRect(img, image.Rect(0, top, w, h), Palette.Ground)
		fillRect(img, image.Rect(0, top, w, top+3), Palette.Grass)
	}
	return img
}

// PlaceholderImage draws a standalone image such as the chat bubble.
func PlaceholderImage(key string, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	switch key {
	case "bubble":
		fillRect(img, image.Rect(1, 0, w-1, h-4), Palette.Bubble)
		fillRect(img, image.Rect(0, 1, w, h-5), Palette.Bubble)
		fillRect(img, image.Rect(w/2-2, h-4, w/2+1, h-2), Palette.Bubble)
		fillRect(img, image.Rect(w/2-1, h-2, w/2, h), Palette.Bubble)
		for i := 0; i < 3; i++ {
			x := w/2 - 5 + i*4
			fillRect(img, image.Rect(x, (h-4)/2-1, x+2, (h-4)/2+1), Palette.Dots)
		}
	case "portrait":
		fillEllipse(img, float64(w)/2, float64(h)/2, float64(w)/2-1, float64(h)/2-1, Palette.Creature)
		fillEllipse(img, float64(w)/2, float64(h)*0.65, float64(w)/4, float64(h)/6, Palette.Belly)
		fillRect(img, image.Rect(w/3-3, h/3, w/3+3, h/3+1), Palette.Eye)
		fillRect(img, image.Rect(2*w/3-3, h/3, 2*w/3+3, h/3+1), Palette.Eye)
	default:
		fillRect(img, img.Bounds(), Palette.Dots)
	}
	return img
}
