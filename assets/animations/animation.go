package animations

// Animation steps through a range of sprite sheet frames at a fixed tick rate.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
	// Once stops the animation on its last frame instead of wrapping.
	Once bool
}

func (a *Animation) Update() {
	if a.Once && a.Looped {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Once {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a play-once animation has reached its last frame.
func (a *Animation) Finished() bool {
	return a.Once && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
