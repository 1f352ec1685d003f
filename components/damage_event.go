package components

import "github.com/yohamta/donburi"

// DamageEventData is a hit queued against an entity, resolved by the combat
// system on the same tick.
type DamageEventData struct {
	Amount int
	Source Vector
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
