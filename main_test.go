package main

import (
	"testing"

	"github.com/automoto/quietwood/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScene struct {
	updates, disposals int
	onUpdate           func()
}

func (s *stubScene) Update() {
	s.updates++
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
func (s *stubScene) Draw(*ebiten.Image) {}
func (s *stubScene) Dispose()           { s.disposals++ }

var _ scenes.Scene = (*stubScene)(nil)

func TestGameSwitchesSceneAfterUpdate(t *testing.T) {
	g := &Game{}
	first, second := &stubScene{}, &stubScene{}
	first.onUpdate = func() { g.ChangeScene(second) }
	g.scene = first

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.disposals)
	assert.Same(t, second, g.scene)
	assert.Zero(t, second.updates, "new scene starts on the next update")

	require.NoError(t, g.Update())
	assert.Equal(t, 1, second.updates)
}

func TestGameQuit(t *testing.T) {
	g := &Game{}
	s := &stubScene{}
	s.onUpdate = g.Quit
	g.scene = s

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, s.disposals)
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, setupLogging("chatty"))
	assert.NoError(t, setupLogging("warn"))
}
