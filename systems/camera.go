package systems

import (
	"math"

	"github.com/automoto/quietwood/components"
	"github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = clampToLevel(e, targetX, targetY)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps a camera center inside the level so the level always
// fills the screen.
func clampToLevel(e *ecs.ECS, x, y float64) (float64, float64) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return x, y
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return x, y
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	minX, maxX := screenWidth/2, float64(level.Width)-screenWidth/2
	minY, maxY := screenHeight/2, float64(level.Height)-screenHeight/2
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	return math.Max(minX, math.Min(maxX, x)), math.Max(minY, math.Min(maxY, y))
}

// CameraScroll returns the world position of the top-left screen corner.
func CameraScroll(e *ecs.ECS) (x, y float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.ScrollX(config.C.Width), camera.ScrollY(config.C.Height)
}

// SnapCamera moves the camera straight onto the player, skipping smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X, camera.Position.Y = clampToLevel(e, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2)
}
