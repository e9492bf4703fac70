package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction       Vector
	MovementEnabled bool
}

var Player = donburi.NewComponentType[PlayerData]()
