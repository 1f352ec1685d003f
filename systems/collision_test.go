package systems

import (
	"math"
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/systems/factory"
)

func TestFallingBodyLandsFlush(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY-60)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)

	for i := 0; i < 120 && physics.OnGround == nil; i++ {
		UpdatePhysics(w, dt60)
		UpdateCollisions(w, dt60)
	}
	if physics.OnGround == nil {
		t.Fatal("body never landed")
	}
	if feet := obj.Y + obj.H; math.Abs(feet-floorY) > 0.01 {
		t.Fatalf("feet at %v, want %v", feet, floorY)
	}
	if physics.SpeedY != 0 {
		t.Fatalf("SpeedY = %v after landing", physics.SpeedY)
	}

	// Resting bodies stay grounded frame after frame
	for i := 0; i < 10; i++ {
		UpdatePhysics(w, dt60)
		UpdateCollisions(w, dt60)
		if physics.OnGround == nil {
			t.Fatalf("lost ground on frame %d", i)
		}
	}
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateWall(w, leveldata.Rect{X: 300, Y: 100, W: 16, H: 100})
	player := factory.CreatePlayer(w, 250, floorY)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)

	for i := 0; i < 60; i++ {
		physics.SpeedX = 240
		UpdatePhysics(w, dt60)
		UpdateCollisions(w, dt60)
	}
	if right := obj.X + obj.W; right > 300.01 {
		t.Fatalf("right edge at %v, passed the wall", right)
	}
	if right := obj.X + obj.W; right < 299 {
		t.Fatalf("right edge at %v, stopped short of the wall", right)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("SpeedX = %v against the wall", physics.SpeedX)
	}
}

func TestCharactersPassThroughEachOther(t *testing.T) {
	w := newTestWorld(t)
	enemy := spawnEnemy(t, w, 200, "")
	player := factory.CreatePlayer(w, 170, floorY)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)

	for i := 0; i < 30; i++ {
		physics.SpeedX = 240
		UpdatePhysics(w, dt60)
		UpdateCollisions(w, dt60)
	}
	if obj.X <= components.Object.Get(enemy).X {
		t.Fatalf("player at %v blocked by enemy", obj.X)
	}
}

func TestDeathZoneKillsAndFreezes(t *testing.T) {
	w := newTestWorld(t)
	enemy := spawnEnemy(t, w, 100, "")
	moveTo(enemy, 100, 360+cfg.Physics.DeathZoneMargin+8)

	UpdatePhysics(w, dt60)
	UpdateCollisions(w, dt60)

	if !components.Health.Get(enemy).Dead {
		t.Fatal("enemy below the death line is alive")
	}
	if !components.Physics.Get(enemy).Frozen {
		t.Fatal("fallen body not frozen")
	}
	if !enemy.HasComponent(components.Death) {
		t.Fatal("no death record")
	}
}

func TestStunDragDecaysKnockback(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	physics := components.Physics.Get(player)
	physics.SpeedX = 50
	physics.StunTimer = 1

	UpdatePhysics(w, dt60)
	if physics.SpeedX >= 50 || physics.SpeedX < 0 {
		t.Fatalf("SpeedX = %v, want drag toward zero", physics.SpeedX)
	}
	for i := 0; i < 200; i++ {
		UpdatePhysics(w, dt60)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("SpeedX = %v, want 0 after drag", physics.SpeedX)
	}
}
