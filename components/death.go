package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has died. Elapsed counts up from the moment
// of death and drives the game over delay for the player.
type DeathData struct {
	Elapsed float64
}

var Death = donburi.NewComponentType[DeathData]()
