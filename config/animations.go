package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	// Once plays the sequence a single time and holds the last frame.
	Once bool
}

// CharacterAnimations maps a sprite sheet key (e.g., "player") to its
// animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 10},
		Running: {First: 0, Last: 5, Step: 1, Speed: 5},
		Jump:    {First: 0, Last: 2, Step: 1, Speed: 6, Once: true},
	},
	"creature": {
		Sleep: {First: 0, Last: 3, Step: 1, Speed: 20},
	},
	"sfx": {
		StateJumpDust: {First: 0, Last: 4, Step: 1, Speed: 3},
	},
}

// SheetFrameSizes holds the frame dimensions of each sprite sheet key.
var SheetFrameSizes = map[string]struct{ W, H int }{
	"player":   {32, 32},
	"creature": {64, 40},
	"sfx":      {32, 16},
}
