package components

import "github.com/yohamta/donburi"

// DamageOutcome reports what a TakeDamage call did.
type DamageOutcome int

const (
	DamageIgnored DamageOutcome = iota // invincible or already dead
	DamageHurt
	DamageKilled
)

type HealthData struct {
	Current int
	Max     int

	InvincibilityRemaining float64 // seconds
	InvincibilityTime      float64 // window granted after a non-lethal hit

	KnockbackX        float64 // px/s impulse magnitudes
	KnockbackY        float64
	KnockbackOnLethal bool

	Dead bool
}

// TakeDamage applies the health part of a hit. Calls are ignored while
// invincible or after death, so death is reported exactly once.
func (h *HealthData) TakeDamage(amount int) DamageOutcome {
	if h.Dead || h.InvincibilityRemaining > 0 {
		return DamageIgnored
	}

	h.Current -= amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		return DamageKilled
	}

	h.InvincibilityRemaining = h.InvincibilityTime
	return DamageHurt
}

// Tick counts the invincibility window down.
func (h *HealthData) Tick(dt float64) {
	if h.InvincibilityRemaining > 0 {
		h.InvincibilityRemaining -= dt
		if h.InvincibilityRemaining < 0 {
			h.InvincibilityRemaining = 0
		}
	}
}

// Invincible reports whether hits are currently ignored.
func (h *HealthData) Invincible() bool {
	return h.InvincibilityRemaining > 0
}

// Reset restores full health and clears death and invincibility.
func (h *HealthData) Reset() {
	h.Current = h.Max
	h.InvincibilityRemaining = 0
	h.Dead = false
}

var Health = donburi.NewComponentType[HealthData]()
