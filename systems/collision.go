package systems

import (
	"math"

	"github.com/automoto/quietwood/components"
	"github.com/automoto/quietwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every physics body by its speed against the level
// solids, then snaps it to whole pixels.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object)
		resolveObjectVerticalCollision(physics, obj.Object)

		// Rounded after integration so pixel art stays crisp.
		obj.X = math.Round(obj.X)
		obj.Y = math.Round(obj.Y)
	})
}

// resolveObjectHorizontalCollision handles horizontal movement and wall collision for any object
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if wall := blockingSolid(object, check, dx); wall != nil {
		contact := check.ContactWithObject(wall).X()
		if dx > 0 {
			dx = math.Min(dx, contact)
		} else {
			dx = math.Max(dx, contact)
		}
	}

	object.X += dx
}

// resolveObjectVerticalCollision handles vertical movement and ground collision for any object
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solid := verticalSolid(object, check, dy)
	if solid == nil {
		object.Y += dy
		return
	}

	contact := check.ContactWithObject(solid).Y()
	if dy < 0 {
		if contact < dy {
			object.Y += dy
			return
		}
		// Head bump
		physics.SpeedY = 0
		object.Y += contact
		return
	}

	// Cells are coarser than objects, so the solid may still be out of reach.
	if contact > checkDistance {
		object.Y += dy
		return
	}
	physics.OnGround = solid
	physics.SpeedY = 0
	object.Y += contact
}

// verticalSolid returns the closest solid above (dy < 0) or below the object
// that overlaps it horizontally. Solids that only share a cell are ignored.
func verticalSolid(object *resolv.Object, check *resolv.Collision, dy float64) *resolv.Object {
	var best *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if object.X >= solid.X+solid.W || object.X+object.W <= solid.X {
			continue
		}
		if dy < 0 {
			if solid.Y+solid.H > object.Y+1 {
				continue
			}
			if best == nil || solid.Y+solid.H > best.Y+best.H {
				best = solid
			}
			continue
		}
		if solid.Y < object.Y+object.H-1 {
			continue
		}
		if best == nil || solid.Y < best.Y {
			best = solid
		}
	}
	return best
}

// blockingSolid returns the first solid ahead of the object in the direction
// of dx that overlaps it vertically, i.e. a wall rather than the floor it
// stands on.
func blockingSolid(object *resolv.Object, check *resolv.Collision, dx float64) *resolv.Object {
	objectBottom := object.Y + object.H

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if objectBottom <= solid.Y || object.Y >= solid.Y+solid.H {
			continue
		}
		if dx > 0 && solid.X >= object.X+object.W-1 {
			return solid
		}
		if dx < 0 && solid.X+solid.W <= object.X+1 {
			return solid
		}
	}

	return nil
}

func clampVerticalSpeed(speedY float64) float64 {
	return math.Max(math.Min(speedY, 16), -16)
}
