package config

// StateID identifies an entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Player animation states
	Idle StateID = iota
	Running
	Jump

	// Sleeping creature
	Sleep

	// VFX states
	StateJumpDust
)

// StateToFileName maps StateID to the sprite sheet file name (without extension).
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Jump:    "jump",

	Sleep: "sleep",

	StateJumpDust: "jumpdust",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
