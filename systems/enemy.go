package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

func UpdateEnemies(w donburi.World, dt float64) {
	var target *donburi.Entry
	if playerEntry, ok := tags.Player.First(w); ok && !components.Health.Get(playerEntry).Dead {
		target = playerEntry
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		anim := components.Animator.Get(e)
		enemy.Tick(dt)

		if !components.Health.Get(e).Dead && enemy.CombatEnabled {
			updateEnemyAI(w, e, target)
		}

		anim.SetBool(cfg.ParamGrounded, physics.OnGround != nil)
		anim.SetFloat(cfg.ParamHorizontalSpeed, math.Abs(physics.SpeedX)/math.Max(1, enemy.Type.FollowSpeed))
		anim.SetFloat(cfg.ParamYVelocity, physics.SpeedY)
	})
}

func updateEnemyAI(w donburi.World, e *donburi.Entry, target *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	melee := components.MeleeAttack.Get(e)
	path := components.Pathfinder.Get(e)

	// Knockback and swings own the body until they finish
	if physics.StunTimer > 0 {
		return
	}
	if melee.Active() {
		physics.SpeedX = 0
		return
	}
	if !path.Following || target == nil || !w.Valid(path.Target) {
		physics.SpeedX = 0
		return
	}

	self := components.Object.Get(e)
	center := self.Center()
	goal := components.Object.Get(target).Center()
	dx := goal.X - center.X

	if math.Abs(dx) <= enemy.Type.AttackReach && math.Abs(goal.Y-center.Y) <= self.H {
		faceToward(enemy, dx)
		physics.SpeedX = 0
		if enemy.TryAttack() {
			melee.Start(cfg.EnemyAttack)
			components.Animator.Get(e).SetTrigger(cfg.TriggerEnemyAttack)
			PlaySFX(w, cfg.SoundEnemyAttack)
		}
		return
	}

	followPath(e, path, goal)
}

// followPath walks toward the next waypoint, dropping the ones already
// reached, and jumps when the next one is above.
func followPath(e *donburi.Entry, path *components.PathfinderData, goal components.Vector) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	feet := components.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H}
	cell := cfg.Pathfinding.CellSize
	reach := cfg.Pathfinding.WaypointReachDist

	for len(path.Waypoints) > 0 {
		wp := path.Waypoints[0]
		if math.Abs(wp.X-feet.X) <= reach && math.Abs(wp.Y-(feet.Y-cell/2)) <= cell {
			path.Waypoints = path.Waypoints[1:]
			continue
		}
		break
	}

	next := goal
	if len(path.Waypoints) > 0 {
		next = path.Waypoints[0]
	}

	dx := next.X - feet.X
	if math.Abs(dx) <= reach {
		physics.SpeedX = 0
	} else {
		physics.SpeedX = math.Copysign(enemy.Type.FollowSpeed, dx)
		faceToward(enemy, dx)
	}

	if physics.OnGround != nil && next.Y < feet.Y-cell {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
	}
}

func faceToward(enemy *components.EnemyData, dx float64) {
	if dx > 0 {
		enemy.Facing = cfg.DirectionRight
	} else if dx < 0 {
		enemy.Facing = cfg.DirectionLeft
	}
}
