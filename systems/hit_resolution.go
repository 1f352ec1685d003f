package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// AttackPoint is the center of an attacker's swing circle.
func AttackPoint(e *donburi.Entry) components.Vector {
	obj := components.Object.Get(e)
	melee := components.MeleeAttack.Get(e)
	c := obj.Center()
	return components.Vector{
		X: c.X + melee.OffsetX*facingOf(e),
		Y: c.Y + melee.OffsetY,
	}
}

// CollectHits is the hit-frame half of a player swing. Combat-capable
// colliders inside the attack circle join the swing's batch; targets already
// in it are not added again. It returns how many were new.
func CollectHits(w donburi.World, attacker *donburi.Entry) int {
	melee := components.MeleeAttack.Get(attacker)
	batch := components.HitBatch.Get(attacker)

	added := 0
	for _, target := range OverlapCircle(w, AttackPoint(attacker), melee.Range, melee.TargetTag) {
		if !hasCombat(target) {
			continue
		}
		if batch.Add(target.Entity()) {
			added++
		}
	}
	return added
}

// ApplyHits is the damage-frame half. Every batched target takes the attack's
// damage from the attack point, then the batch is cleared. Targets removed
// from the world since the hit-frame are skipped.
func ApplyHits(w donburi.World, attacker *donburi.Entry) int {
	melee := components.MeleeAttack.Get(attacker)
	batch := components.HitBatch.Get(attacker)
	source := AttackPoint(attacker)

	applied := 0
	for _, entity := range batch.Drain() {
		if !w.Valid(entity) {
			continue
		}
		target := w.Entry(entity)
		if !target.HasComponent(components.Health) {
			continue
		}
		if TakeDamage(w, target, melee.Damage, source) == components.DamageIgnored {
			continue
		}
		applied++
		TriggerScreenShake(w, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	}
	return applied
}

// UpdateSwings advances every swing timeline and fires its hit-frame and
// damage-frame markers.
func UpdateSwings(w donburi.World, dt float64) {
	var players, enemies []*donburi.Entry
	var hits, damages []bool

	components.MeleeAttack.Each(w, func(e *donburi.Entry) {
		melee := components.MeleeAttack.Get(e)
		if !melee.Active() {
			return
		}
		hit, damage := melee.Advance(dt, cfg.Swings[melee.Swing])
		if !hit && !damage {
			return
		}
		if e.HasComponent(components.HitBatch) {
			players = append(players, e)
			hits = append(hits, hit)
			damages = append(damages, damage)
		} else if damage {
			enemies = append(enemies, e)
		}
	})

	// Markers run after iteration since damage can change archetypes
	for i, e := range players {
		if hits[i] {
			CollectHits(w, e)
		}
		if damages[i] {
			ApplyHits(w, e)
		}
	}
	for _, e := range enemies {
		applyEnemySwing(w, e)
	}
}

// applyEnemySwing is an enemy's damage-frame: anything alive with health in
// the circle is hit directly. A swing cancelled earlier in the tick, as when
// the player's hit landed first, deals nothing.
func applyEnemySwing(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || components.Health.Get(e).Dead {
		return
	}
	melee := components.MeleeAttack.Get(e)
	if !melee.DamageFired {
		return
	}
	point := AttackPoint(e)
	for _, target := range OverlapCircle(w, point, melee.Range, melee.TargetTag) {
		if !target.HasComponent(components.Health) {
			continue
		}
		TakeDamage(w, target, melee.Damage, point)
	}
}

func facingOf(e *donburi.Entry) float64 {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Direction.X
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Facing
	}
	return 0
}
