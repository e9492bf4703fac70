package systems

import (
	"math"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ObstacleBehavior is what a kind of obstacle does when the player comes
// close and interacts. Interact must eventually call done exactly once.
type ObstacleBehavior interface {
	ShowAffordance(e *ecs.ECS, entry *donburi.Entry)
	HideAffordance(e *ecs.ECS, entry *donburi.Entry)
	Interact(e *ecs.ECS, entry *donburi.Entry, done func())
}

var obstacleBehaviors = map[string]ObstacleBehavior{}

func init() {
	RegisterObstacleBehavior(cfg.ObstacleSleepingCreature, NewSleepingCreature())
}

// RegisterObstacleBehavior binds a behavior to an obstacle kind, replacing
// any previous binding.
func RegisterObstacleBehavior(kind string, b ObstacleBehavior) {
	obstacleBehaviors[kind] = b
}

var warnedKinds = map[string]bool{}

func behaviorFor(kind string) ObstacleBehavior {
	if b, ok := obstacleBehaviors[kind]; ok {
		return b
	}
	if !warnedKinds[kind] {
		warnedKinds[kind] = true
		log.Warn("no behavior registered for obstacle", "kind", kind)
	}
	return nil
}

// IsPlayerNearby reports whether (px, py) is strictly inside the obstacle's
// interaction radius.
func IsPlayerNearby(obs *components.ObstacleData, px, py float64) bool {
	return math.Hypot(px-obs.X, py-obs.Y) < obs.InteractionRadius
}

// UpdateObstacles runs the proximity and interaction check for every obstacle.
func UpdateObstacles(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	px, py := PlayerPosition(playerEntry)
	input := getOrCreateInput(e)

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		updateObstacle(e, entry, playerEntry, px, py, input)
	})
}

func updateObstacle(e *ecs.ECS, entry, playerEntry *donburi.Entry, px, py float64, input *components.InputData) {
	obs := components.Obstacle.Get(entry)
	if obs.State == components.ObstacleInteracting {
		return
	}
	behavior := behaviorFor(obs.Kind)
	if behavior == nil {
		return
	}

	near := IsPlayerNearby(obs, px, py)

	// Side effects only fire on a crossing.
	if near != obs.AffordanceVisible {
		obs.AffordanceVisible = near
		if near {
			behavior.ShowAffordance(e, entry)
		} else {
			behavior.HideAffordance(e, entry)
		}
	}
	if near {
		obs.State = components.ObstacleNearby
	} else {
		obs.State = components.ObstacleDormant
	}

	if obs.State != components.ObstacleNearby || IsQuestBoardVisible(e) {
		return
	}
	if IsInteractPressed(input) {
		startInteraction(e, entry, playerEntry, behavior)
	}
}

func startInteraction(e *ecs.ECS, entry, playerEntry *donburi.Entry, behavior ObstacleBehavior) {
	obs := components.Obstacle.Get(entry)
	obs.State = components.ObstacleInteracting
	DisableMovement(playerEntry)
	if obs.AffordanceVisible {
		obs.AffordanceVisible = false
		behavior.HideAffordance(e, entry)
	}

	fired := false
	behavior.Interact(e, entry, func() {
		if fired {
			return
		}
		fired = true
		EnableMovement(playerEntry)
		if entry.Valid() {
			// Proximity is re-evaluated next frame.
			components.Obstacle.Get(entry).State = components.ObstacleNearby
		}
	})
}

// sleepingCreature shows a chat bubble while the player is close and opens
// the quest board on interaction.
type sleepingCreature struct{}

func (sleepingCreature) ShowAffordance(_ *ecs.ECS, entry *donburi.Entry) {
	setAffordanceHidden(entry, false)
}

func (sleepingCreature) HideAffordance(_ *ecs.ECS, entry *donburi.Entry) {
	setAffordanceHidden(entry, true)
}

func (sleepingCreature) Interact(e *ecs.ECS, _ *donburi.Entry, done func()) {
	if !OpenQuestBoard(e, done) {
		done()
	}
}

func setAffordanceHidden(entry *donburi.Entry, hidden bool) {
	bubble := components.Obstacle.Get(entry).Affordance
	if bubble == nil || !bubble.Valid() {
		return
	}
	components.Sprite.Get(bubble).Hidden = hidden
}

// NewSleepingCreature returns the behavior of the quest-giving creature.
func NewSleepingCreature() ObstacleBehavior {
	return sleepingCreature{}
}
