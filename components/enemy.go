package components

import (
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName string
	Type     cfg.EnemyTypeConfig
	Facing   float64

	CombatEnabled  bool
	AttackCooldown float64 // seconds until the next swing may start
}

// TryAttack starts the cooldown and reports whether a swing may begin.
func (e *EnemyData) TryAttack() bool {
	if !e.CombatEnabled || e.AttackCooldown > 0 {
		return false
	}
	e.AttackCooldown = e.Type.AttackCooldown
	return true
}

func (e *EnemyData) Tick(dt float64) {
	if e.AttackCooldown > 0 {
		e.AttackCooldown -= dt
	}
}

var Enemy = donburi.NewComponentType[EnemyData]()
