package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

// UpdateAggro polls the enemies around the player on the aggro interval.
// Enemies that entered the radius since the last poll are told to follow the
// player once; those that left are told to stop once. A dead player polls
// nothing.
func UpdateAggro(w donburi.World, dt float64) {
	player, ok := tags.Player.First(w)
	if !ok || components.Health.Get(player).Dead {
		return
	}
	aggro := components.Aggro.Get(player)
	if !aggro.Due(dt) {
		return
	}

	center := components.Object.Get(player).Center()
	var snapshot []donburi.Entity
	for _, e := range OverlapCircle(w, center, aggro.Range, tags.ResolvEnemy) {
		if hasCombat(e) {
			snapshot = append(snapshot, e.Entity())
		}
	}

	entered, exited := aggro.Update(snapshot)
	for _, entity := range entered {
		if p := pathfinderOf(w, entity); p != nil {
			p.Follow(player.Entity())
		}
	}
	for _, entity := range exited {
		// Dead enemies were already stopped when their pathfinder was disabled
		if p := pathfinderOf(w, entity); p != nil && p.Enabled {
			p.Stop()
		}
	}
}

func pathfinderOf(w donburi.World, entity donburi.Entity) *components.PathfinderData {
	if !w.Valid(entity) {
		return nil
	}
	e := w.Entry(entity)
	if !e.HasComponent(components.Pathfinder) {
		return nil
	}
	return components.Pathfinder.Get(e)
}
