package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

// UpdateDeaths ages death timers. Corpses stay in the world on the dead layer.
func UpdateDeaths(w donburi.World, dt float64) {
	components.Death.Each(w, func(e *donburi.Entry) {
		components.Death.Get(e).Elapsed += dt
	})
}

// PlayerDead reports whether the player has died.
func PlayerDead(w donburi.World) bool {
	player, ok := tags.Player.First(w)
	return ok && components.Health.Get(player).Dead
}

// GameOver reports whether the player has been dead long enough to end the run.
func GameOver(w donburi.World) bool {
	player, ok := tags.Player.First(w)
	if !ok || !player.HasComponent(components.Death) {
		return false
	}
	return components.Death.Get(player).Elapsed >= cfg.Death.PlayerGameOverDelay
}
