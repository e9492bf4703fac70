package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)

	var frames []int
	for i := 0; i < 4; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{1, 2, 0, 1}, frames)
	assert.True(t, a.Looped)
	assert.False(t, a.Finished())
}

func TestAnimationOnceHoldsLastFrame(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	a.Once = true

	for i := 0; i < 10; i++ {
		a.Update()
	}

	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Finished())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Finished())
}

func TestAnimationSpeedDelaysFrames(t *testing.T) {
	a := NewAnimation(0, 3, 1, 2)

	a.Update()
	a.Update()
	assert.Equal(t, 0, a.Frame(), "counter has not run out yet")

	a.Update()
	assert.Equal(t, 1, a.Frame())
}
