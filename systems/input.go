package systems

import (
	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports raw device state. The default polls ebiten; tests
// install a fake.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	// AppendGamepadIDs appends gamepads that expose the standard layout.
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsButtonPressed(id ebiten.GamepadID, btn ebiten.StandardGamepadButton) bool
	AxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

type ebitenSource struct{}

func (ebitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	start := len(ids)
	ids = ebiten.AppendGamepadIDs(ids)
	n := start
	for _, id := range ids[start:] {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			ids[n] = id
			n++
		}
	}
	return ids[:n]
}

func (ebitenSource) IsButtonPressed(id ebiten.GamepadID, btn ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, btn)
}

func (ebitenSource) AxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

var inputSource InputSource = ebitenSource{}

// SetInputSource replaces the device poller. nil restores ebiten polling.
func SetInputSource(src InputSource) {
	if src == nil {
		src = ebitenSource{}
	}
	inputSource = src
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput snapshots device state into the Input component once per frame.
// Must run BEFORE every system that queries input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollInput(input, inputSource)
}

func pollInput(input *components.InputData, src InputSource) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Consumed = [cfg.ActionCount]bool{}

	gamepadIDs = src.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if src.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			for _, btn := range binding.StandardGamepadButtons {
				if src.IsButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into directional actions
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		horizontal := src.AxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := src.AxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMenuUp] = true
			gamepadUsed = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMenuDown] = true
			gamepadUsed = true
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ConsumeAction reports whether id was pressed this frame and nobody else
// has claimed it yet. The first caller wins.
func ConsumeAction(input *components.InputData, id cfg.ActionID) bool {
	if !GetAction(input, id).JustPressed || input.Consumed[id] {
		return false
	}
	input.Consumed[id] = true
	return true
}

// Direction returns -1, 0 or 1. Left is checked first, so it wins when both
// directions are held.
func Direction(input *components.InputData) int {
	if input.Current[cfg.ActionMoveLeft] {
		return -1
	}
	if input.Current[cfg.ActionMoveRight] {
		return 1
	}
	return 0
}

// IsJumping is level-triggered: true while jump or up is held.
func IsJumping(input *components.InputData) bool {
	return input.Current[cfg.ActionJump] || input.Current[cfg.ActionMoveUp]
}

func IsRunning(input *components.InputData) bool {
	return input.Current[cfg.ActionRun]
}

// IsInteractPressed is true only on the frame interact goes down, and only
// for the first query that frame.
func IsInteractPressed(input *components.InputData) bool {
	return ConsumeAction(input, cfg.ActionInteract)
}

// NewMenuReturn returns a system that calls onReturn as soon as the
// menu-return binding is pressed.
func NewMenuReturn(onReturn func()) ecs.System {
	return func(e *ecs.ECS) {
		if ConsumeAction(getOrCreateInput(e), cfg.ActionMenuBack) {
			onReturn()
		}
	}
}
