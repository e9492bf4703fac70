package systems

import (
	"math"
	"testing"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFrames() int {
	return int(math.Ceil(cfg.QuestBoard.FadeInSeconds * float64(cfg.C.TPS)))
}

func closeFrames() int {
	return int(math.Ceil(cfg.QuestBoard.FadeOutSeconds * float64(cfg.C.TPS)))
}

func TestQuestBoardOpenIsIdempotent(t *testing.T) {
	e := newTestECS(t)
	first, second := 0, 0

	require.True(t, OpenQuestBoard(e, func() { first++ }))
	assert.False(t, OpenQuestBoard(e, func() { second++ }), "already visible")

	board, ok := QuestBoardState(e)
	require.True(t, ok)
	assert.Equal(t, components.QuestBoardOpening, board.Phase)

	for i := 0; i < openFrames()+2; i++ {
		UpdateQuestBoard(e)
	}
	assert.Equal(t, components.QuestBoardOpen, board.Phase)
	assert.InDelta(t, 1.0, board.Progress, 1e-6)

	require.True(t, CloseQuestBoard(e))
	for i := 0; i < closeFrames()+2; i++ {
		UpdateQuestBoard(e)
	}
	assert.Equal(t, 1, first)
	assert.Zero(t, second, "the rejected open keeps the original callback")
}

func TestQuestBoardCallbackWaitsForFadeOut(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	OpenQuestBoard(e, func() { calls++ })
	for i := 0; i < openFrames()+2; i++ {
		UpdateQuestBoard(e)
	}

	require.True(t, CloseQuestBoard(e))
	assert.Zero(t, calls, "never synchronous")
	assert.True(t, IsQuestBoardVisible(e), "visible while fading out")
	assert.False(t, CloseQuestBoard(e), "already closing")

	for i := 0; i < closeFrames()-2; i++ {
		UpdateQuestBoard(e)
	}
	assert.Zero(t, calls, "still fading")

	for i := 0; i < 4; i++ {
		UpdateQuestBoard(e)
	}
	assert.Equal(t, 1, calls)
	assert.False(t, IsQuestBoardVisible(e))

	board, _ := QuestBoardState(e)
	assert.Equal(t, components.QuestBoardClosed, board.Phase)
	assert.Nil(t, board.OnClose)

	for i := 0; i < 10; i++ {
		UpdateQuestBoard(e)
	}
	assert.Equal(t, 1, calls, "fires exactly once")
}

func TestQuestBoardCloseWhileOpening(t *testing.T) {
	e := newTestECS(t)
	OpenQuestBoard(e, nil)
	for i := 0; i < openFrames()/2; i++ {
		UpdateQuestBoard(e)
	}
	board, _ := QuestBoardState(e)
	mid := board.Progress
	require.Greater(t, mid, float32(0))
	require.Less(t, mid, float32(1))

	require.True(t, CloseQuestBoard(e))
	UpdateQuestBoard(e)
	assert.Less(t, board.Progress, mid, "fades out from where it was")
	assert.Equal(t, components.QuestBoardClosing, board.Phase)

	for i := 0; i < closeFrames()+2; i++ {
		UpdateQuestBoard(e)
	}
	assert.False(t, board.Visible)
	assert.Zero(t, board.Progress)
}

func TestCloseQuestBoardWithoutBoard(t *testing.T) {
	e := newTestECS(t)
	assert.False(t, CloseQuestBoard(e))
	assert.False(t, IsQuestBoardVisible(e))
	assert.NotPanics(t, func() { UpdateQuestBoard(e) })
}

func TestQuestBoardReopensAfterClose(t *testing.T) {
	e := newTestECS(t)
	OpenQuestBoard(e, nil)
	CloseQuestBoard(e)
	for i := 0; i < closeFrames()+2; i++ {
		UpdateQuestBoard(e)
	}

	assert.True(t, OpenQuestBoard(e, nil))
	assert.True(t, IsQuestBoardVisible(e))
}

func TestDestroyQuestBoardDropsCallback(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	OpenQuestBoard(e, func() { calls++ })

	factory.DestroyQuestBoard(e)
	_, ok := QuestBoardState(e)
	assert.False(t, ok)
	assert.Zero(t, calls)
	assert.NotPanics(t, func() { factory.DestroyQuestBoard(e) })
}

func TestQuestBoardTransform(t *testing.T) {
	board := &components.QuestBoardData{Progress: 0}
	scale, alpha := QuestBoardTransform(board)
	assert.InDelta(t, cfg.QuestBoard.StartScale, scale, 1e-9)
	assert.Zero(t, alpha)

	board.Progress = 1
	scale, alpha = QuestBoardTransform(board)
	assert.InDelta(t, 1.0, scale, 1e-9)
	assert.InDelta(t, 1.0, alpha, 1e-9)

	board.Progress = 1.2
	scale, _ = QuestBoardTransform(board)
	assert.InDelta(t, 1.0, scale, 1e-9, "overshoot is clamped")
}
