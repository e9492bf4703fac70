package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreConfig snapshots the globals touched by LoadTuning.
func restoreConfig(t *testing.T) {
	t.Helper()
	player := Player
	background := Background
	background.Layers = append([]LayerConfig(nil), Background.Layers...)
	board := QuestBoard
	t.Cleanup(func() {
		Player = player
		Background = background
		QuestBoard = board
	})
}

func TestEmbeddedTuningApplied(t *testing.T) {
	assert.Equal(t, 2.0, Player.WalkSpeed)
	assert.Equal(t, 3.5, Player.RunSpeed)
	assert.Equal(t, 60, C.TPS)
	assert.Equal(t, "Quest Board", QuestBoard.Title, "keys absent from the sheet keep their defaults")
}

func TestLoadTuningOverlaysOnlyPresentKeys(t *testing.T) {
	restoreConfig(t)

	err := LoadTuning([]byte("player:\n  run_speed: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 5.0, Player.RunSpeed)
	assert.Equal(t, 2.0, Player.WalkSpeed)
}

func TestLoadTuningRejectsBrokenBackground(t *testing.T) {
	restoreConfig(t)
	before := len(Background.Layers)

	doc := []byte(`
background:
  layers:
    - { texture: hills, mode: tiling, speed: 0.5 }
    - { texture: ground, mode: tiling, speed: 0.4 }
`)
	err := LoadTuning(doc)
	require.ErrorIs(t, err, ErrLayerOrder)
	assert.Len(t, Background.Layers, before, "previous layers restored")
}

func TestLoadTuningRejectsMalformedYAML(t *testing.T) {
	restoreConfig(t)
	assert.Error(t, LoadTuning([]byte("player: [unterminated")))
}
