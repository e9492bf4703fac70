package systems

import (
	"github.com/automoto/quietwood/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every collision object after
// it has moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
