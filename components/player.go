package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // facing, X is -1 or 1

	ControllerEnabled bool
	CombatEnabled     bool

	CoyoteTimer float64 // seconds left to jump after leaving ground
	JumpBuffer  float64 // seconds a jump press stays armed
	Grounded    bool
	WasGrounded bool

	MoveAxis float64 // deadzoned horizontal input in [-1, 1]
	LookAxis float64 // -1 up, 1 down, 0 none

	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
