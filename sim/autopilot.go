package sim

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

// attackTapTicks is how long the autopilot holds attack, then releases.
const attackTapTicks = 6

// Autopilot is a scripted input source: it walks the player toward the
// nearest living enemy and taps attack once in reach.
type Autopilot struct {
	sim  *Simulation
	tick int
}

func NewAutopilot(s *Simulation) *Autopilot {
	return &Autopilot{sim: s}
}

func (a *Autopilot) Poll(in *components.InputData) {
	in.LastInputMethod = components.InputScripted
	a.tick++

	player := a.sim.Player()
	if player == nil || components.Health.Get(player).Dead {
		return
	}
	target := a.nearestEnemy(player)
	if target == nil {
		return
	}

	from := components.Object.Get(player).Center()
	to := components.Object.Get(target).Center()
	dx, dy := to.X-from.X, to.Y-from.Y
	reach := cfg.Player.AttackPointOffsetX + cfg.Player.AttackRange*0.6

	if math.Abs(dx) > reach {
		in.MoveAxis = math.Copysign(1, dx)
		in.Current[cfg.ActionMoveLeft] = dx < 0
		in.Current[cfg.ActionMoveRight] = dx > 0
		// Hop up to ledges the target is standing on
		in.Current[cfg.ActionJump] = dy < -cfg.Player.CollisionHeight && a.tick%30 < 10
		return
	}
	in.Current[cfg.ActionAttack] = a.tick%(2*attackTapTicks) < attackTapTicks
}

func (a *Autopilot) nearestEnemy(player *donburi.Entry) *donburi.Entry {
	from := components.Object.Get(player).Center()
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Enemy.Each(a.sim.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Dead {
			return
		}
		c := components.Object.Get(e).Center()
		if d := math.Hypot(c.X-from.X, c.Y-from.Y); d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}
