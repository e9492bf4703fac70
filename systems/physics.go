package systems

import (
	"github.com/automoto/quietwood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity. Horizontal speed is owned by whoever sets it.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedY += physics.Gravity
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
