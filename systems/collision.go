package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollisions moves every physics body by its velocity, stopping at
// solids. Characters pass through each other; contact is handled by combat.
func UpdateCollisions(w donburi.World, dt float64) {
	var fallen []*donburi.Entry
	deathLine := math.Inf(1)
	if levelEntry, ok := components.Level.First(w); ok {
		if level := components.Level.Get(levelEntry).Level; level != nil {
			deathLine = float64(level.Height) + cfg.Physics.DeathZoneMargin
		}
	}

	components.Physics.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if physics.Frozen {
			return
		}

		resolveHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
		obj.Update()

		if obj.Y > deathLine {
			fallen = append(fallen, e)
		}
	})

	for _, e := range fallen {
		Kill(w, e)
		components.Physics.Get(e).Frozen = true
	}
}

// resolveHorizontalCollision moves the object by dx, stopping flush against
// the nearest solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	move := dx
	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		contact := check.ContactWithObject(solid).X()
		// Only solids ahead of the object can stop it
		if dx > 0 && contact >= -0.0001 && contact < move {
			move, blocked = contact, true
		} else if dx < 0 && contact <= 0.0001 && contact > move {
			move, blocked = contact, true
		}
	}
	if blocked {
		physics.SpeedX = 0
	}
	object.X += move
}

// resolveVerticalCollision moves the object by dy and records the ground it
// lands on. A downward probe one pixel longer keeps resting bodies grounded.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}
	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	move := dy
	var ground *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		contact := check.ContactWithObject(solid).Y()
		if checkDistance > 0 && contact >= -0.0001 && contact <= move+1 {
			move = math.Min(move, contact)
			ground = solid
		} else if checkDistance < 0 && contact <= 0.0001 && contact > move {
			move = contact
			physics.SpeedY = 0
		}
	}
	if ground != nil && physics.SpeedY >= 0 {
		physics.OnGround = ground
		physics.SpeedY = 0
	}
	object.Y += move
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}
