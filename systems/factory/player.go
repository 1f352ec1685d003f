package factory

import (
	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its feet at (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-width/2, y-height, width, height, tags.ResolvCharacter, tags.ResolvPlayer)
	addToSpace(w, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction:         components.Vector{X: cfg.DirectionRight},
		ControllerEnabled: true,
		CombatEnabled:     true,
		Grounded:          true,
		WasGrounded:       true,
		SpawnX:            x,
		SpawnY:            y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:           cfg.Player.MaxHealth,
		Max:               cfg.Player.MaxHealth,
		InvincibilityTime: cfg.Player.InvincibilityTime,
		KnockbackX:        cfg.Player.KnockbackX,
		KnockbackY:        cfg.Player.KnockbackY,
		KnockbackOnLethal: cfg.Player.KnockbackOnLethal,
	})
	components.Combo.SetValue(player, components.ComboData{
		Window: cfg.Player.AttackAnimationResetTime,
	})
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{
		Swing:     cfg.StateNone,
		Range:     cfg.Player.AttackRange,
		OffsetX:   cfg.Player.AttackPointOffsetX,
		OffsetY:   cfg.Player.AttackPointOffsetY,
		Damage:    cfg.Player.AttackDamage,
		TargetTag: tags.ResolvEnemy,
	})
	components.Aggro.SetValue(player, components.AggroData{
		Range:    cfg.Aggro.Range,
		Interval: cfg.Aggro.CheckInterval,
	})
	components.Animator.SetValue(player, components.NewAnimator())

	// Flash and emitter stay attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})
	components.Emitter.SetValue(player, components.EmitterData{
		Rate:     cfg.Particles.FootstepRate,
		Lifetime: cfg.Particles.FootstepLifetime,
		Color:    cfg.Stone,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Tint:         cfg.Cyan,
		SortingLayer: components.SortingDefault,
	})

	return player
}
