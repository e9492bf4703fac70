package components

import (
	"github.com/automoto/quietwood/assets/animations"
	"github.com/automoto/quietwood/config"
	"github.com/yohamta/donburi"
)

// AnimationData tracks frame playback. Frames are looked up by SheetKey and
// state at draw time, so the component itself never holds GPU images.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	SheetKey         string
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation for state and restarts it.
// Switching to the current state is a no-op so loops are not restarted.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state {
		return
	}
	a.CurrentSheet = state
	a.CurrentAnimation = a.Animations[state]
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
