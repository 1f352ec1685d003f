package components

import (
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// MeleeAttackData runs a swing timeline. The hit-frame collects targets into
// the HitBatch, the damage-frame applies damage to them.
type MeleeAttackData struct {
	Swing       cfg.StateID // StateNone while not swinging
	Elapsed     float64
	HitFired    bool
	DamageFired bool

	Range     float64 // attack circle radius
	OffsetX   float64 // attack point offset in front of the body center
	OffsetY   float64
	Damage    int
	TargetTag string // resolv tag queried at the hit-frame
}

// Start begins a new swing, replacing any swing in progress.
func (m *MeleeAttackData) Start(swing cfg.StateID) {
	m.Swing = swing
	m.Elapsed = 0
	m.HitFired = false
	m.DamageFired = false
}

func (m *MeleeAttackData) Active() bool {
	return m.Swing != cfg.StateNone
}

// Advance moves the timeline forward and reports which markers were crossed
// during this step. The swing ends once its duration has elapsed.
func (m *MeleeAttackData) Advance(dt float64, def cfg.SwingDef) (hit, damage bool) {
	if !m.Active() {
		return false, false
	}
	m.Elapsed += dt
	if !m.HitFired && m.Elapsed >= def.HitFrame {
		m.HitFired = true
		hit = true
	}
	if !m.DamageFired && m.Elapsed >= def.DamageFrame {
		m.DamageFired = true
		damage = true
	}
	if m.Elapsed >= def.Duration {
		m.Swing = cfg.StateNone
	}
	return hit, damage
}

// Cancel drops the swing without firing remaining markers. Markers already
// crossed in the current step are withdrawn.
func (m *MeleeAttackData) Cancel() {
	m.Swing = cfg.StateNone
	m.Elapsed = 0
	m.HitFired = false
	m.DamageFired = false
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
