package systems

import (
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/automoto/quietwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(e *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	handleMovementInput(input, player, physics)

	state.StateTimer++

	// Animation is only chosen on the ground; in the air the last one keeps playing.
	if physics.OnGround != nil {
		switch {
		case IsJumping(input):
			physics.SpeedY = -cfg.Player.JumpSpeed
			setPlayerState(state, cfg.Jump)
			animData.SetAnimation(cfg.Jump)
			if animData.CurrentAnimation != nil {
				animData.CurrentAnimation.Restart()
			}
			factory.SpawnJumpDust(e, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
		case physics.SpeedX != 0:
			setPlayerState(state, cfg.Running)
			animData.SetAnimation(cfg.Running)
		default:
			setPlayerState(state, cfg.Idle)
			animData.SetAnimation(cfg.Idle)
		}
	}

	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}

// handleMovementInput sets horizontal speed straight from input. There is no
// acceleration and no air damping.
func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if !player.MovementEnabled {
		physics.SpeedX = 0
		return
	}

	dir := Direction(input)
	speed := cfg.Player.WalkSpeed
	if IsRunning(input) {
		speed = cfg.Player.RunSpeed
	}
	physics.SpeedX = float64(dir) * speed

	if dir != 0 {
		player.Direction.X = float64(dir)
	}
}

func setPlayerState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// DisableMovement stops the player horizontally and ignores directional
// input until EnableMovement. Gravity and jumping are unaffected.
func DisableMovement(playerEntry *donburi.Entry) {
	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	components.Physics.Get(playerEntry).SpeedX = 0
	components.Player.Get(playerEntry).MovementEnabled = false
}

func EnableMovement(playerEntry *donburi.Entry) {
	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	components.Player.Get(playerEntry).MovementEnabled = true
}

// PlayerPosition returns the player's anchor point: horizontal center, feet.
func PlayerPosition(playerEntry *donburi.Entry) (x, y float64) {
	obj := components.Object.Get(playerEntry)
	return obj.X + obj.W/2, obj.Y + obj.H
}
