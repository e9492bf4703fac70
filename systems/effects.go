package systems

import (
	"github.com/automoto/quietwood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances transient effects and removes the finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	updateVFXAnimations(ecs)
	updateAutoDestroy(ecs)
}

// updateVFXAnimations advances animations for VFX entities (they don't have their own update system)
func updateVFXAnimations(ecs *ecs.ECS) {
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// updateAutoDestroy handles entities that should be destroyed after duration or animation
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.DestroyOnAnimLoop && e.HasComponent(components.Animation) {
			anim := components.Animation.Get(e)
			if anim.CurrentAnimation == nil || anim.CurrentAnimation.Looped {
				toDestroy = append(toDestroy, e)
				return
			}
		}

		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// UpdateObstacleAnimations keeps idle obstacle animations playing.
func UpdateObstacleAnimations(ecs *ecs.ECS) {
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
