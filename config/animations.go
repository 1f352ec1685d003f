package config

// SwingDef describes an attack animation timeline. HitFrame and DamageFrame
// are offsets in seconds from the start of the swing.
type SwingDef struct {
	Duration    float64
	HitFrame    float64
	DamageFrame float64
}

// Swings maps attack states to their timelines.
var Swings = map[StateID]SwingDef{
	Attack1:     {Duration: 0.35, HitFrame: 0.10, DamageFrame: 0.20},
	Attack2:     {Duration: 0.40, HitFrame: 0.12, DamageFrame: 0.24},
	Attack3:     {Duration: 0.50, HitFrame: 0.15, DamageFrame: 0.30},
	EnemyAttack: {Duration: 0.60, HitFrame: 0.30, DamageFrame: 0.35},
}

// StateHolds is how long one-shot visual states stay before the animator
// falls back to locomotion states.
var StateHolds = map[StateID]float64{
	Hurt: 0.3,
}
