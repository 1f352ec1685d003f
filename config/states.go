package config

// StateID identifies the visual state an entity is in. It is derived from
// animator triggers and read by the renderer.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	Attack1
	Attack2
	Attack3
	Hurt
	EnemyAttack
	Dead
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	Idle:        "idle",
	Running:     "running",
	Jump:        "jump",
	Fall:        "fall",
	Attack1:     "attack1",
	Attack2:     "attack2",
	Attack3:     "attack3",
	Hurt:        "hurt",
	EnemyAttack: "enemy_attack",
	Dead:        "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// AttackState returns the visual state for a combo step (1..3).
func AttackState(step int) StateID {
	switch step {
	case 1:
		return Attack1
	case 2:
		return Attack2
	case 3:
		return Attack3
	}
	return StateNone
}

// Animator trigger and parameter names.
const (
	TriggerAttack1     = "Attack1"
	TriggerAttack2     = "Attack2"
	TriggerAttack3     = "Attack3"
	TriggerEnemyAttack = "Attack"
	TriggerHurt        = "Hurt"
	TriggerDeath       = "Death"

	ParamGrounded        = "Grounded"
	ParamHorizontalSpeed = "Horizontal speed"
	ParamYVelocity       = "Y velocity"
)
