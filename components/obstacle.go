package components

import "github.com/yohamta/donburi"

// InteractionState is the obstacle interaction state.
type InteractionState int

const (
	ObstacleDormant InteractionState = iota
	ObstacleNearby
	ObstacleInteracting
)

func (s InteractionState) String() string {
	switch s {
	case ObstacleDormant:
		return "dormant"
	case ObstacleNearby:
		return "nearby"
	case ObstacleInteracting:
		return "interacting"
	}
	return "unknown"
}

// ObstacleData is a static interactable placed in the level. X and Y are the
// anchor point used for proximity checks.
type ObstacleData struct {
	Kind              string
	X, Y              float64
	InteractionRadius float64
	State             InteractionState
	AffordanceVisible bool
	Affordance        *donburi.Entry // chat bubble shown while nearby
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
