package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

var comboTriggers = [...]string{1: cfg.TriggerAttack1, 2: cfg.TriggerAttack2, 3: cfg.TriggerAttack3}

// UpdatePlayerAttack runs the grounded combo. Each accepted press advances
// the step, fires the matching animator trigger and starts that swing.
func UpdatePlayerAttack(w donburi.World, dt float64) {
	input := inputOf(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		combo := components.Combo.Get(e)
		combo.Tick(dt)

		if !input.JustPressed(cfg.ActionAttack) || !canAttack(e) {
			return
		}
		step := combo.Press()
		components.Animator.Get(e).SetTrigger(comboTriggers[step])
		components.MeleeAttack.Get(e).Start(cfg.AttackState(step))

		if step == 2 {
			PlaySFX(w, cfg.SoundPlayerAttackHeavy)
		} else {
			PlaySFX(w, cfg.SoundPlayerAttackLight)
		}
	})
}

func canAttack(e *donburi.Entry) bool {
	player := components.Player.Get(e)
	return player.CombatEnabled && player.ControllerEnabled && player.Grounded &&
		!components.Health.Get(e).Dead
}
