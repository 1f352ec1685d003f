package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/adrenaline-rush/assets"
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 64

func arena() *leveldata.Level {
	return &leveldata.Level{
		Name:           "arena",
		Width:          640,
		Height:         368,
		Solids:         []leveldata.Rect{{X: 0, Y: 320, W: 640, H: 48}},
		PlayerSpawn:    leveldata.Point{X: 100, Y: 320},
		HasPlayerSpawn: true,
		EnemySpawns: []leveldata.EnemySpawn{
			{Point: leveldata.Point{X: 130, Y: 320}, Type: "Grunt"},
		},
		Grass: []leveldata.GrassPatch{{Rect: leveldata.Rect{X: 0, Y: 308, W: 96, H: 12}, Blades: 12}},
	}
}

type sink struct{ played []cfg.SoundID }

func (s *sink) Play(id cfg.SoundID) { s.played = append(s.played, id) }

func TestNewFromEmbeddedLevel(t *testing.T) {
	level, err := leveldata.Load(assets.FS, assets.LevelsDir+"/level01.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := New(level, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Player() == nil {
		t.Fatal("no player")
	}
	var enemies, sensors int
	tags.Enemy.Each(s.World, func(*donburi.Entry) { enemies++ })
	tags.Sensor.Each(s.World, func(*donburi.Entry) { sensors++ })
	if enemies != len(level.EnemySpawns) || sensors != len(level.Sensors) {
		t.Fatalf("enemies/sensors = %d/%d", enemies, sensors)
	}

	field, ok := components.CloudField.First(s.World)
	if !ok {
		t.Fatal("no cloud field")
	}
	if got := len(components.CloudField.Get(field).Clouds); got != 30 {
		t.Fatalf("clouds = %d, want 30", got)
	}
	if _, ok := components.Navigation.First(s.World); !ok {
		t.Fatal("no navigation grid")
	}
	windEntry, _ := components.Wind.First(s.World)
	if got := components.Wind.Get(windEntry).Speed; got != 0.5 {
		t.Fatalf("wind speed = %v, want the grass patch's 0.5", got)
	}
}

func TestNewRejectsBadLevels(t *testing.T) {
	noSpawn := arena()
	noSpawn.HasPlayerSpawn = false
	unknown := arena()
	unknown.EnemySpawns = append(unknown.EnemySpawns, leveldata.EnemySpawn{Type: "Dragon"})
	empty := arena()
	empty.Width = 0

	tests := []struct {
		name   string
		level  *leveldata.Level
		target error
	}{
		{"no player spawn", noSpawn, ErrNoPlayerSpawn},
		{"unknown enemy", unknown, nil},
		{"zero size", empty, ErrEmptyLevel},
		{"nil", nil, ErrEmptyLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.level, Options{})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestIdleSimulationSettles(t *testing.T) {
	level := arena()
	level.EnemySpawns = nil
	s, err := New(level, Options{})
	if err != nil {
		t.Fatal(err)
	}

	s.Run(128, dt, nil)

	player := s.Player()
	obj := components.Object.Get(player)
	if feet := obj.Y + obj.H; math.Abs(feet-320) > 0.01 {
		t.Fatalf("player feet at %v, want on the floor", feet)
	}
	if components.Physics.Get(player).OnGround == nil {
		t.Fatal("player not grounded")
	}
	if got := components.State.Get(player).CurrentState; got != cfg.Idle {
		t.Fatalf("state = %v, want idle", got)
	}
	if s.Ticks() != 128 || math.Abs(s.Elapsed()-2) > 1e-9 {
		t.Fatalf("ticks/elapsed = %d/%v", s.Ticks(), s.Elapsed())
	}
}

func TestScriptedAttackerDamagesEnemy(t *testing.T) {
	out := &sink{}
	var frame int
	s, err := New(arena(), Options{
		Seed:  3,
		Audio: out,
		Input: systems.InputFunc(func(in *components.InputData) {
			// Tap attack every half second
			in.Current[cfg.ActionAttack] = frame%32 == 0
			frame++
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	enemy, _ := tags.Enemy.First(s.World)
	health := components.Health.Get(enemy)

	s.Run(64*6, dt, func(s *Simulation) bool {
		for _, e := range []*donburi.Entry{s.Player(), enemy} {
			obj := components.Object.Get(e)
			if math.IsNaN(obj.X) || math.IsNaN(obj.Y) {
				t.Fatalf("NaN position on tick %d", s.Ticks())
			}
		}
		return !health.Dead
	})

	if health.Current == health.Max {
		t.Fatal("enemy never took damage")
	}
	var attacked bool
	for _, id := range out.played {
		if id == cfg.SoundPlayerAttackLight {
			attacked = true
		}
	}
	if !attacked {
		t.Fatalf("no attack cue reached the sink: %v", out.played)
	}
	if st := s.Stats(); st.Enemies != 1 || st.Kills > 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestLoopStopsWhenAfterReturnsFalse(t *testing.T) {
	s, err := New(arena(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.Loop(ctx, 1000, func(s *Simulation) bool { return s.Ticks() < 3 })
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if s.Ticks() != 3 {
		t.Fatalf("ticks = %d, want 3", s.Ticks())
	}
}

func TestLoopHonoursCancel(t *testing.T) {
	s, err := New(arena(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Loop(ctx, 60, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Loop err = %v, want context.Canceled", err)
	}
	if err := s.Loop(context.Background(), 0, nil); err == nil {
		t.Fatal("expected error for zero tick rate")
	}
}

func TestAutopilotClosesDistance(t *testing.T) {
	level := arena()
	level.EnemySpawns[0].X = 420
	s, err := New(level, Options{})
	if err != nil {
		t.Fatal(err)
	}
	s.SetInput(NewAutopilot(s))
	startX := components.Object.Get(s.Player()).X

	s.Run(64, dt, nil)

	if x := components.Object.Get(s.Player()).X; x < startX+40 {
		t.Fatalf("player x %v, want well right of %v", x, startX)
	}
	if got := components.Input.Get(mustFirst(t, s.World, components.Input)).LastInputMethod; got != components.InputScripted {
		t.Fatalf("LastInputMethod = %v", got)
	}
}

func TestPausedStepOnlyReadsInput(t *testing.T) {
	s, err := New(arena(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	factory.CreatePause(s.World, components.SettingsData{})
	s.SetInput(systems.InputFunc(func(in *components.InputData) {
		in.Current[cfg.ActionPause] = true
	}))
	before := components.Object.Get(s.Player()).Y

	s.Run(10, dt, nil)

	if !systems.IsPaused(s.World) {
		t.Fatal("not paused")
	}
	if s.Ticks() != 0 {
		t.Fatalf("ticks = %d while paused", s.Ticks())
	}
	if y := components.Object.Get(s.Player()).Y; y != before {
		t.Fatalf("player moved from %v to %v while paused", before, y)
	}
}

func mustFirst[T any](t *testing.T, w donburi.World, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	e, ok := c.First(w)
	if !ok {
		t.Fatal("missing singleton entity")
	}
	return e
}

// keepTuning restores the tunable config sections when the test ends.
func keepTuning(t *testing.T) {
	t.Helper()
	player, physics, aggro, clouds, wind, particles, types := cfg.Player, cfg.Physics, cfg.Aggro, cfg.Clouds, cfg.Wind, cfg.Particles, cfg.Enemy.Types
	t.Cleanup(func() {
		cfg.Player, cfg.Physics, cfg.Aggro, cfg.Clouds, cfg.Wind, cfg.Particles = player, physics, aggro, clouds, wind, particles
		cfg.Enemy.Types = types
	})
}

func TestRetuneReachesLiveComponents(t *testing.T) {
	keepTuning(t)
	level := arena()
	level.Clouds = []leveldata.CloudArea{{Rect: leveldata.Rect{W: 200, H: 50}, MaxClouds: 3}}
	s, err := New(level, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Step(dt)

	err = cfg.ApplyTuning([]byte(`
aggro:
  range: 10
player:
  attackanimationresettime: 0.1
  invincibilitytime: 5
enemies:
  Grunt:
    maxhealth: 6
    knockbackx: 50
clouds:
  movementmin: 0.2
  movementmax: 0.4
wind:
  defaultspeed: 0.9
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	s.Retune()
	for i := 0; i < 5; i++ {
		s.Step(dt)
	}

	player := s.Player()
	if got := components.Combo.Get(player).Window; got != 0.1 {
		t.Fatalf("combo window = %v, want 0.1", got)
	}
	if got := components.Aggro.Get(player).Range; got != 10 {
		t.Fatalf("aggro range = %v, want 10", got)
	}
	if got := components.Health.Get(player).InvincibilityTime; got != 5 {
		t.Fatalf("player invincibility = %v, want 5", got)
	}

	grunt, ok := tags.Enemy.First(s.World)
	if !ok {
		t.Fatal("no grunt")
	}
	health := components.Health.Get(grunt)
	if health.Max != 6 || health.Current != 6 || health.KnockbackX != 50 {
		t.Fatalf("grunt health = %+v, want a full 6 with knockback 50", health)
	}
	if got := components.Enemy.Get(grunt).Type.MaxHealth; got != 6 {
		t.Fatalf("grunt type max health = %d", got)
	}

	field, _ := components.CloudField.First(s.World)
	if f := components.CloudField.Get(field); f.MovementMin != 0.2 || f.MovementMax != 0.4 {
		t.Fatalf("cloud movement = %v..%v, want 0.2..0.4", f.MovementMin, f.MovementMax)
	}
	windEntry, _ := components.Wind.First(s.World)
	if got := components.Wind.Get(windEntry).Speed; got != 0.9 {
		t.Fatalf("wind speed = %v, want the new default 0.9", got)
	}
}

func TestRetuneKeepsLevelWindSpeed(t *testing.T) {
	keepTuning(t)
	level := arena()
	level.Grass[0].WindSpeed = 0.3
	s, err := New(level, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := cfg.ApplyTuning([]byte("wind:\n  defaultspeed: 0.9\n")); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	s.Retune()
	s.Step(dt)

	windEntry, _ := components.Wind.First(s.World)
	if got := components.Wind.Get(windEntry).Speed; got != 0.3 {
		t.Fatalf("wind speed = %v, want the level's 0.3", got)
	}
}
