package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

// TakeDamage applies a hit from source to target. While the target is
// invincible or already dead the call changes nothing.
func TakeDamage(w donburi.World, target *donburi.Entry, amount int, source components.Vector) components.DamageOutcome {
	if !target.Valid() || !target.HasComponent(components.Health) {
		return components.DamageIgnored
	}
	health := components.Health.Get(target)
	outcome := health.TakeDamage(amount)
	if outcome == components.DamageIgnored {
		return outcome
	}

	center := components.Object.Get(target).Center()
	if target.HasComponent(components.Physics) {
		physics := components.Physics.Get(target)
		physics.SpeedX, physics.SpeedY = 0, 0
		if outcome == components.DamageHurt || health.KnockbackOnLethal {
			kb := components.Knockback(center, source, facingOf(target), health.KnockbackX, health.KnockbackY)
			physics.SpeedX, physics.SpeedY = kb.X, kb.Y
			physics.StunTimer = hurtStunTime(target)
			physics.OnGround = nil
		}
	}

	if outcome == components.DamageKilled {
		kill(w, target)
		return outcome
	}

	if target.HasComponent(components.Animator) {
		components.Animator.Get(target).SetTrigger(cfg.TriggerHurt)
	}
	TriggerFlash(target, cfg.Flash.HurtDuration)
	cancelSwing(target)

	switch {
	case target.HasComponent(components.Player):
		TriggerScreenShake(w, cfg.ScreenShake.PlayerHurtIntensity, cfg.ScreenShake.PlayerHurtDuration)
		SpawnBurst(w, center.X, center.Y, cfg.Particles.HurtCount, cfg.Particles.HurtLifetime, cfg.Red)
		PlaySFX(w, cfg.SoundPlayerHurt)
	case target.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(target)
		if source.X < center.X {
			enemy.Facing = cfg.DirectionLeft
		} else if source.X > center.X {
			enemy.Facing = cfg.DirectionRight
		}
		SpawnBurst(w, center.X, center.Y, cfg.Particles.ImpactCount, cfg.Particles.ImpactLifetime, cfg.White)
		PlaySFX(w, cfg.SoundEnemyHurt)
	}
	return outcome
}

// QueueDamage records a hit to be applied by UpdateCombat. Only the first hit
// queued for an entity in a tick is kept.
func QueueDamage(target *donburi.Entry, amount int, source components.Vector) {
	if target.HasComponent(components.DamageEvent) {
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}

// UpdateCombat counts invincibility windows down and applies queued hits.
func UpdateCombat(w donburi.World, dt float64) {
	components.Health.Each(w, func(e *donburi.Entry) {
		components.Health.Get(e).Tick(dt)
	})

	var queued []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		queued = append(queued, e)
	}
	for _, e := range queued {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		TakeDamage(w, e, dmg.Amount, dmg.Source)
	}
}

// UpdateContactDamage hurts the player while an alive enemy touches it.
func UpdateContactDamage(w donburi.World) {
	player, ok := tags.Player.First(w)
	if !ok || components.Health.Get(player).Dead {
		return
	}
	obj := components.Object.Get(player)
	for _, e := range OverlapRect(w, obj.X-1, obj.Y-1, obj.W+2, obj.H+2, tags.ResolvEnemy) {
		if !hasCombat(e) {
			continue
		}
		enemy := components.Enemy.Get(e)
		if !enemy.CombatEnabled || components.Health.Get(e).Dead {
			continue
		}
		QueueDamage(player, enemy.Type.ContactDamage, components.Object.Get(e).Center())
		return
	}
}

// kill moves a combatant to the dead layer. Health guarantees this runs once.
func kill(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	obj.RemoveTags(tags.ResolvCharacter, tags.ResolvEnemy, tags.ResolvPlayer)
	obj.AddTags(tags.ResolvDead)

	if e.HasComponent(components.Animator) {
		components.Animator.Get(e).SetTrigger(cfg.TriggerDeath)
	}
	cancelSwing(e)

	center := obj.Center()
	switch {
	case e.HasComponent(components.Player):
		player := components.Player.Get(e)
		player.ControllerEnabled = false
		player.CombatEnabled = false
		player.MoveAxis, player.LookAxis = 0, 0
		components.Emitter.Get(e).Emitting = false
		if !components.Health.Get(e).KnockbackOnLethal {
			components.Physics.Get(e).Frozen = true
		}
		PlaySFX(w, cfg.SoundPlayerDeath)
	case e.HasComponent(components.Enemy):
		components.Enemy.Get(e).CombatEnabled = false
		if e.HasComponent(components.Pathfinder) {
			components.Pathfinder.Get(e).Disable()
		}
		sprite := components.Sprite.Get(e)
		sprite.SortingLayer = components.SortingDeadEnemies
		sprite.Tint = cfg.CorpseGray
		PlaySFX(w, cfg.SoundEnemyDeath)
	}
	SpawnBurst(w, center.X, center.Y, cfg.Particles.HurtCount, cfg.Particles.HurtLifetime, cfg.CorpseGray)

	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{})
	}
}

// Kill ends a combatant regardless of invincibility, as when it falls out
// of the level.
func Kill(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	health := components.Health.Get(e)
	if health.Dead {
		return
	}
	health.Current = 0
	health.Dead = true
	kill(w, e)
}

// cancelSwing interrupts a swing in progress along with any targets it had
// already collected.
func cancelSwing(e *donburi.Entry) {
	if e.HasComponent(components.MeleeAttack) {
		components.MeleeAttack.Get(e).Cancel()
	}
	if e.HasComponent(components.HitBatch) {
		components.HitBatch.Get(e).Drain()
	}
}

func hurtStunTime(e *donburi.Entry) float64 {
	if e.HasComponent(components.Enemy) {
		return components.Enemy.Get(e).Type.HurtStunTime
	}
	return cfg.Player.HurtStunTime
}
