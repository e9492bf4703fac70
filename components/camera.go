package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the camera center in world coordinates.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

// ScrollX returns the world x coordinate of the left screen edge.
func (c *CameraData) ScrollX(screenWidth int) float64 {
	return c.Position.X - float64(screenWidth)/2
}

// ScrollY returns the world y coordinate of the top screen edge.
func (c *CameraData) ScrollY(screenHeight int) float64 {
	return c.Position.Y - float64(screenHeight)/2
}

var Camera = donburi.NewComponentType[CameraData]()
