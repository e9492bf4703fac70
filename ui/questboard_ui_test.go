package ui

import (
	"image/color"
	"testing"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestRequestCloseOnlyWhenOpen(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.False(t, requestClose(e), "no board yet")

	require.True(t, systems.OpenQuestBoard(e, nil))
	assert.False(t, requestClose(e), "ignored while opening")

	for i := 0; i < 2*cfg.C.TPS; i++ {
		systems.UpdateQuestBoard(e)
	}
	board, _ := systems.QuestBoardState(e)
	require.Equal(t, components.QuestBoardOpen, board.Phase)

	assert.True(t, requestClose(e))
	assert.Equal(t, components.QuestBoardClosing, board.Phase)
	assert.False(t, requestClose(e), "ignored while closing")
}

func TestPremultiply(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 255}, premultiply(color.RGBA{R: 100, G: 50, B: 0, A: 255}))
	assert.Equal(t, color.RGBA{R: 49, G: 24, B: 0, A: 127}, premultiply(color.RGBA{R: 100, G: 50, B: 0, A: 127}))
	assert.Equal(t, color.RGBA{}, premultiply(color.RGBA{R: 200, G: 200, B: 200}))
}
