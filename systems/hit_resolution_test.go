package systems

import (
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/systems/factory"
)

func TestCollectHitsDedupesAcrossHitFrames(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 124, "Grunt")

	if n := CollectHits(w, player); n != 1 {
		t.Fatalf("first hit-frame added %d, want 1", n)
	}
	if n := CollectHits(w, player); n != 0 {
		t.Fatalf("second hit-frame added %d, want 0", n)
	}
	batch := components.HitBatch.Get(player)
	if !batch.Contains(enemy.Entity()) {
		t.Fatal("enemy missing from the batch")
	}

	if n := ApplyHits(w, player); n != 1 {
		t.Fatalf("applied %d hits, want 1", n)
	}
	if got := components.Health.Get(enemy).Current; got != 1 {
		t.Fatalf("enemy health = %d, want 1", got)
	}
	if batch.Contains(enemy.Entity()) {
		t.Fatal("batch not cleared after the damage-frame")
	}
}

func TestCollectHitsIgnoresSensorsAndFarTargets(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	factory.CreateSensor(w, leveldata.Sensor{Rect: leveldata.Rect{X: 105, Y: 170, W: 20, H: 30}})
	spawnEnemy(t, w, 300, "Grunt")

	if n := CollectHits(w, player); n != 0 {
		t.Fatalf("collected %d targets, want none", n)
	}
}

func TestCollectHitsFacesAttackDirection(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	spawnEnemy(t, w, 76, "Grunt") // behind the player

	if n := CollectHits(w, player); n != 0 {
		t.Fatalf("hit %d targets behind the player", n)
	}
	components.Player.Get(player).Direction.X = cfg.DirectionLeft
	if n := CollectHits(w, player); n != 1 {
		t.Fatalf("hit %d targets after turning, want 1", n)
	}
}

func TestApplyHitsSkipsRemovedTargets(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 124, "Grunt")
	CollectHits(w, player)

	spaceOf(w).Remove(components.Object.Get(enemy).Object)
	w.Remove(enemy.Entity())

	if n := ApplyHits(w, player); n != 0 {
		t.Fatalf("applied %d hits to a removed target", n)
	}
}

func TestSwingHitsTargetOnce(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 124, "Brute")

	components.MeleeAttack.Get(player).Start(cfg.Attack1)
	for i := 0; i < 64; i++ {
		UpdateSwings(w, dt60)
		UpdateCombat(w, dt60)
	}

	health := components.Health.Get(enemy)
	if health.Current != health.Max-1 {
		t.Fatalf("enemy health = %d, want %d", health.Current, health.Max-1)
	}
}
