package components

import "github.com/yohamta/donburi"

// AutoDestroyData marks entities that should be destroyed after a duration or animation
type AutoDestroyData struct {
	FramesRemaining   int  // frames until destruction (-1 = use animation)
	DestroyOnAnimLoop bool // destroy when animation loops
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
