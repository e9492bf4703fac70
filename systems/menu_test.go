package systems

import (
	"testing"

	"github.com/automoto/quietwood/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenuNavigationWraps(t *testing.T) {
	in := useFakeInput(t)
	e := newTestECS(t)
	sys := NewUpdateMenu(func() {}, func() {})
	step := func(keys ...ebiten.Key) {
		in.releaseAll()
		in.press(keys...)
		UpdateInput(e)
		sys(e)
		in.releaseAll()
		UpdateInput(e)
		sys(e)
	}

	menu := GetOrCreateMenu(e)
	assert.Equal(t, 0, menu.SelectedIndex)

	step(ebiten.KeyDown)
	assert.Equal(t, 1, menu.SelectedIndex)
	step(ebiten.KeyDown)
	assert.Equal(t, 0, menu.SelectedIndex, "wraps past the last option")
	step(ebiten.KeyUp)
	assert.Equal(t, 1, menu.SelectedIndex, "wraps past the first option")
}

func TestMenuSelect(t *testing.T) {
	in := useFakeInput(t)
	e := newTestECS(t)
	started, exited := 0, 0
	sys := NewUpdateMenu(func() { started++ }, func() { exited++ })

	in.press(ebiten.KeyEnter)
	UpdateInput(e)
	sys(e)
	assert.Equal(t, 1, started)

	in.releaseAll()
	UpdateInput(e)
	GetOrCreateMenu(e).SelectedIndex = int(components.MainMenuExit)
	in.press(ebiten.KeyEnter)
	UpdateInput(e)
	sys(e)
	assert.Equal(t, 1, exited)
}

func TestMenuHint(t *testing.T) {
	assert.Contains(t, getMenuHint(components.InputKeyboard), "Enter")
	assert.Contains(t, getMenuHint(components.InputGamepad), "A")
}
