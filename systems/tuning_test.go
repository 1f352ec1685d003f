package systems

import (
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/systems/factory"
)

func TestRefreshTuningClampsHealth(t *testing.T) {
	types := cfg.Enemy.Types
	t.Cleanup(func() { cfg.Enemy.Types = types })

	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, floorY)
	full := spawnEnemy(t, w, 300, "Grunt")
	hurt := spawnEnemy(t, w, 400, "Brute")
	dead := spawnEnemy(t, w, 500, "Grunt")
	components.Health.Get(hurt).Current = 3
	Kill(w, dead)

	if err := cfg.ApplyTuning([]byte("enemies:\n  Grunt:\n    maxhealth: 3\n  Brute:\n    maxhealth: 2\n")); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	RefreshTuning(w)

	if h := components.Health.Get(full); h.Max != 3 || h.Current != 3 {
		t.Fatalf("full grunt = %d/%d, want 3/3", h.Current, h.Max)
	}
	if h := components.Health.Get(hurt); h.Max != 2 || h.Current != 2 {
		t.Fatalf("hurt brute = %d/%d, want clamped to 2/2", h.Current, h.Max)
	}
	if h := components.Health.Get(dead); !h.Dead || h.Current != 0 {
		t.Fatalf("dead grunt revived: %+v", h)
	}
}

func TestRefreshTuningUpdatesSwingReach(t *testing.T) {
	player := cfg.Player
	t.Cleanup(func() { cfg.Player = player })

	w := newTestWorld(t)
	p := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 160, "Grunt")

	if n := CollectHits(w, p); n != 0 {
		t.Fatalf("collected %d targets before retuning", n)
	}
	if err := cfg.ApplyTuning([]byte("player:\n  attackrange: 60\n")); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	RefreshTuning(w)
	if n := CollectHits(w, p); n != 1 || !components.HitBatch.Get(p).Contains(enemy.Entity()) {
		t.Fatalf("collected %d targets after widening the swing, want 1", n)
	}
}
