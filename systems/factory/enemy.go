package factory

import (
	"fmt"

	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of the named type with its feet at (x, y). An
// empty name uses the default type; an unknown one is an error.
func CreateEnemy(w donburi.World, x, y float64, typeName string) (*donburi.Entry, error) {
	enemyType, ok := cfg.EnemyType(typeName)
	if !ok {
		return nil, fmt.Errorf("factory: unknown enemy type %q", typeName)
	}

	enemy := archetypes.Enemy.Spawn(w)

	width, height := enemyType.CollisionWidth, enemyType.CollisionHeight
	obj := resolv.NewObject(x-width/2, y-height, width, height, tags.ResolvCharacter, tags.ResolvEnemy)
	addToSpace(w, enemy, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:      enemyType.Name,
		Type:          enemyType,
		Facing:        cfg.DirectionLeft,
		CombatEnabled: true,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current:           enemyType.MaxHealth,
		Max:               enemyType.MaxHealth,
		InvincibilityTime: enemyType.InvincibilityTime,
		KnockbackX:        enemyType.KnockbackX,
		KnockbackY:        enemyType.KnockbackY,
		KnockbackOnLethal: enemyType.KnockbackOnLethal,
	})
	components.MeleeAttack.SetValue(enemy, components.MeleeAttackData{
		Swing:     cfg.StateNone,
		Range:     enemyType.AttackRange,
		OffsetX:   enemyType.CollisionWidth/2 + enemyType.AttackRange/2,
		Damage:    enemyType.AttackDamage,
		TargetTag: tags.ResolvPlayer,
	})
	components.Pathfinder.SetValue(enemy, components.PathfinderData{
		Enabled: true,
	})
	components.Animator.SetValue(enemy, components.NewAnimator())
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Tint:         enemyType.TintColor,
		SortingLayer: components.SortingDefault,
	})

	return enemy, nil
}
