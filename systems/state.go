package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// UpdateStates turns animator triggers and parameters into the visual state
// the renderer draws.
func UpdateStates(w donburi.World, dt float64) {
	components.State.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer += dt
		if state.Hold > 0 {
			state.Hold = math.Max(0, state.Hold-dt)
		}

		if !e.HasComponent(components.Animator) {
			return
		}
		anim := components.Animator.Get(e)

		for _, trigger := range anim.ConsumeTriggers() {
			next, hold := triggerState(trigger)
			if next == cfg.StateNone {
				continue
			}
			state.Set(next, hold)
			state.StateTimer = 0
		}

		if state.CurrentState == cfg.Dead || state.Hold > 0 {
			return
		}
		state.Set(locomotionState(anim), 0)
	})
}

func triggerState(trigger string) (cfg.StateID, float64) {
	var s cfg.StateID
	switch trigger {
	case cfg.TriggerAttack1:
		s = cfg.Attack1
	case cfg.TriggerAttack2:
		s = cfg.Attack2
	case cfg.TriggerAttack3:
		s = cfg.Attack3
	case cfg.TriggerEnemyAttack:
		s = cfg.EnemyAttack
	case cfg.TriggerHurt:
		return cfg.Hurt, cfg.StateHolds[cfg.Hurt]
	case cfg.TriggerDeath:
		return cfg.Dead, 0
	default:
		return cfg.StateNone, 0
	}
	return s, cfg.Swings[s].Duration
}

func locomotionState(anim *components.AnimatorData) cfg.StateID {
	if !anim.Bools[cfg.ParamGrounded] {
		if anim.Floats[cfg.ParamYVelocity] < 0 {
			return cfg.Jump
		}
		return cfg.Fall
	}
	if anim.Floats[cfg.ParamHorizontalSpeed] > 0.01 {
		return cfg.Running
	}
	return cfg.Idle
}
