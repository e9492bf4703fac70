package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBackgroundIsValid(t *testing.T) {
	require.NoError(t, ValidateBackground(Background))

	front := Background.Layers[len(Background.Layers)-1]
	assert.Equal(t, "ground", front.Texture)
	assert.Equal(t, Background.GroundSpeed, front.Speed)
	assert.GreaterOrEqual(t, len(Background.Layers), 6)
	assert.LessOrEqual(t, len(Background.Layers), 7)
}

func TestValidateBackground(t *testing.T) {
	tests := []struct {
		name    string
		bg      BackgroundConfig
		wantErr error
	}{
		{
			name:    "empty",
			bg:      BackgroundConfig{GroundSpeed: 1},
			wantErr: ErrNoLayers,
		},
		{
			name: "speeds out of order",
			bg: BackgroundConfig{
				GroundSpeed: 1,
				Layers: []LayerConfig{
					{Texture: "a", Mode: LayerTiling, Speed: 0.5},
					{Texture: "b", Mode: LayerTiling, Speed: 0.3},
					{Texture: "c", Mode: LayerTiling, Speed: 1},
				},
			},
			wantErr: ErrLayerOrder,
		},
		{
			name: "front does not track ground",
			bg: BackgroundConfig{
				GroundSpeed: 1,
				Layers: []LayerConfig{
					{Texture: "a", Mode: LayerTiling, Speed: 0.5},
					{Texture: "b", Mode: LayerTiling, Speed: 0.9},
				},
			},
			wantErr: ErrGroundSpeed,
		},
		{
			name: "two drift layers",
			bg: BackgroundConfig{
				GroundSpeed: 1,
				Layers: []LayerConfig{
					{Texture: "a", Mode: LayerDrift},
					{Texture: "b", Mode: LayerDrift},
					{Texture: "c", Mode: LayerTiling, Speed: 1},
				},
			},
			wantErr: ErrMultipleDrifts,
		},
		{
			name: "static and drift layers are ignored for ordering",
			bg: BackgroundConfig{
				GroundSpeed: 1,
				Layers: []LayerConfig{
					{Texture: "sky", Mode: LayerStatic, Speed: 5},
					{Texture: "clouds", Mode: LayerDrift, Speed: 3},
					{Texture: "hills", Mode: LayerTiling, Speed: 0.3},
					{Texture: "ground", Mode: LayerTiling, Speed: 1},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBackground(tt.bg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLayerModeUnmarshalText(t *testing.T) {
	var m LayerMode
	require.NoError(t, m.UnmarshalText([]byte("drift")))
	assert.Equal(t, LayerDrift, m)
	assert.Equal(t, "drift", m.String())

	assert.Error(t, m.UnmarshalText([]byte("sideways")))
}
