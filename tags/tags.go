package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Affordance = donburi.NewTag().SetName("Affordance")
	Parallax   = donburi.NewTag().SetName("Parallax")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvObstacle = "obstacle"
	ResolvEffect   = "effect"
)
