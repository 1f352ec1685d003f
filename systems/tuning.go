package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

// RefreshTuning copies the current configuration into components that took
// their values at spawn, so a reloaded tuning file applies to a running
// world. Health that was full stays full at the new maximum; anything else is
// clamped. Swings, timers and positions in progress are left alone.
func RefreshTuning(w donburi.World) {
	if player, ok := tags.Player.First(w); ok {
		refreshPlayer(player)
	}
	tags.Enemy.Each(w, refreshEnemy)

	components.CloudField.Each(w, func(e *donburi.Entry) {
		field := components.CloudField.Get(e)
		field.MovementMin = cfg.Clouds.MovementMin
		field.MovementMax = cfg.Clouds.MovementMax
		field.MaxScale = cfg.Clouds.MaxScale
		field.UnitScale = cfg.Clouds.PixelsPerUnit
	})
}

func refreshPlayer(e *donburi.Entry) {
	p := cfg.Player
	refreshHealth(components.Health.Get(e), p.MaxHealth, p.InvincibilityTime, p.KnockbackX, p.KnockbackY, p.KnockbackOnLethal)
	refreshPhysics(components.Physics.Get(e))

	components.Combo.Get(e).Window = p.AttackAnimationResetTime

	melee := components.MeleeAttack.Get(e)
	melee.Range = p.AttackRange
	melee.OffsetX = p.AttackPointOffsetX
	melee.OffsetY = p.AttackPointOffsetY
	melee.Damage = p.AttackDamage

	aggro := components.Aggro.Get(e)
	aggro.Range = cfg.Aggro.Range
	aggro.Interval = cfg.Aggro.CheckInterval

	emitter := components.Emitter.Get(e)
	emitter.Rate = cfg.Particles.FootstepRate
	emitter.Lifetime = cfg.Particles.FootstepLifetime
}

func refreshEnemy(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	t, ok := cfg.EnemyType(enemy.TypeName)
	if !ok {
		return
	}
	enemy.Type = t
	refreshHealth(components.Health.Get(e), t.MaxHealth, t.InvincibilityTime, t.KnockbackX, t.KnockbackY, t.KnockbackOnLethal)
	refreshPhysics(components.Physics.Get(e))

	melee := components.MeleeAttack.Get(e)
	melee.Range = t.AttackRange
	melee.OffsetX = t.CollisionWidth/2 + t.AttackRange/2
	melee.Damage = t.AttackDamage
}

func refreshHealth(h *components.HealthData, max int, invincibility, kbX, kbY float64, kbLethal bool) {
	full := h.Current == h.Max
	h.Max = max
	if !h.Dead && (full || h.Current > max) {
		h.Current = max
	}
	h.InvincibilityTime = invincibility
	h.KnockbackX = kbX
	h.KnockbackY = kbY
	h.KnockbackOnLethal = kbLethal
}

func refreshPhysics(p *components.PhysicsData) {
	p.Gravity = cfg.Physics.Gravity
	p.MaxFallSpeed = cfg.Physics.MaxFallSpeed
}
