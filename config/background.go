package config

import (
	"errors"
	"fmt"
)

// LayerMode selects how a parallax layer reacts to the camera.
type LayerMode int

const (
	// LayerStatic is a non-tiling backdrop that never moves.
	LayerStatic LayerMode = iota
	// LayerTiling follows the camera scroll scaled by the layer speed.
	LayerTiling
	// LayerDrift advances by a constant step every frame, ignoring the camera.
	LayerDrift
)

func (m LayerMode) String() string {
	switch m {
	case LayerStatic:
		return "static"
	case LayerTiling:
		return "tiling"
	case LayerDrift:
		return "drift"
	}
	return "unknown"
}

// UnmarshalText lets tuning files name modes instead of numbering them.
func (m *LayerMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "static":
		*m = LayerStatic
	case "tiling":
		*m = LayerTiling
	case "drift":
		*m = LayerDrift
	default:
		return fmt.Errorf("unknown layer mode %q", string(text))
	}
	return nil
}

// LayerConfig describes one parallax layer.
type LayerConfig struct {
	Texture string    `yaml:"texture"`
	Mode    LayerMode `yaml:"mode"`
	Speed   float64   `yaml:"speed"`
}

// BackgroundConfig lists the parallax layers back-to-front.
type BackgroundConfig struct {
	Layers    []LayerConfig `yaml:"layers"`
	DriftStep float64       `yaml:"drift_step"` // Texture offset added to drift layers every frame
	// GroundSpeed is the camera-to-world scroll ratio. The front layer must
	// scroll at exactly this speed so the ground tracks the player.
	GroundSpeed float64 `yaml:"ground_speed"`
}

var Background BackgroundConfig

var (
	ErrNoLayers       = errors.New("background has no layers")
	ErrLayerOrder     = errors.New("tiling layer speeds must increase toward the front")
	ErrGroundSpeed    = errors.New("front layer speed must equal the ground speed")
	ErrMultipleDrifts = errors.New("only one drift layer is allowed")
)

func init() {
	Background = BackgroundConfig{
		Layers: []LayerConfig{
			{Texture: "sky", Mode: LayerStatic},
			{Texture: "clouds", Mode: LayerDrift},
			{Texture: "mountains", Mode: LayerTiling, Speed: 0.1},
			{Texture: "hills", Mode: LayerTiling, Speed: 0.25},
			{Texture: "trees_far", Mode: LayerTiling, Speed: 0.45},
			{Texture: "trees_near", Mode: LayerTiling, Speed: 0.7},
			{Texture: "ground", Mode: LayerTiling, Speed: 1.0},
		},
		DriftStep:   0.15,
		GroundSpeed: 1.0,
	}
}

// ValidateBackground checks the parallax invariants: tiling speeds strictly
// increase back-to-front, the front layer scrolls with the world, and at
// most one layer drifts.
func ValidateBackground(bg BackgroundConfig) error {
	if len(bg.Layers) == 0 {
		return ErrNoLayers
	}

	prev := -1.0
	drifts := 0
	for i, layer := range bg.Layers {
		switch layer.Mode {
		case LayerDrift:
			drifts++
		case LayerTiling:
			if layer.Speed <= prev {
				return fmt.Errorf("layer %d (%s) speed %.2f after %.2f: %w", i, layer.Texture, layer.Speed, prev, ErrLayerOrder)
			}
			prev = layer.Speed
		}
	}
	if drifts > 1 {
		return ErrMultipleDrifts
	}

	front := bg.Layers[len(bg.Layers)-1]
	if front.Mode != LayerTiling || front.Speed != bg.GroundSpeed {
		return fmt.Errorf("layer %s: %w", front.Texture, ErrGroundSpeed)
	}
	return nil
}
