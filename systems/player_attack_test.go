package systems

import (
	"slices"
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/systems/factory"
)


func TestComboCyclesAndTriggers(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	combo := components.Combo.Get(player)

	var steps []int
	for i := 0; i < 4; i++ {
		UpdateInput(w, press(cfg.ActionAttack))
		UpdatePlayerAttack(w, dt60)
		steps = append(steps, combo.Step)
		UpdateInput(w, nil)
		UpdatePlayerAttack(w, dt60)
	}
	if want := []int{1, 2, 3, 1}; !slices.Equal(steps, want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}

	triggers := components.Animator.Get(player).Triggers()
	want := []string{cfg.TriggerAttack1, cfg.TriggerAttack2, cfg.TriggerAttack3, cfg.TriggerAttack1}
	if !slices.Equal(triggers, want) {
		t.Fatalf("triggers = %v, want %v", triggers, want)
	}

	sounds := pendingSounds(w)
	wantSounds := []cfg.SoundID{
		cfg.SoundPlayerAttackLight, cfg.SoundPlayerAttackHeavy,
		cfg.SoundPlayerAttackLight, cfg.SoundPlayerAttackLight,
	}
	if !slices.Equal(sounds, wantSounds) {
		t.Fatalf("sounds = %v, want %v", sounds, wantSounds)
	}
	if m := components.MeleeAttack.Get(player); m.Swing != cfg.Attack1 {
		t.Fatalf("swing = %v, want attack1", m.Swing)
	}
}

func TestComboHeldButtonFiresOnce(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)

	for i := 0; i < 5; i++ {
		UpdateInput(w, press(cfg.ActionAttack))
		UpdatePlayerAttack(w, dt60)
	}
	if got := components.Combo.Get(player).Step; got != 1 {
		t.Fatalf("step = %d after holding attack, want 1", got)
	}
}

func TestComboRestartsAfterWindow(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, floorY)
	combo := components.Combo.Get(player)

	UpdateInput(w, press(cfg.ActionAttack))
	UpdatePlayerAttack(w, dt60)
	UpdateInput(w, nil)
	UpdatePlayerAttack(w, cfg.Player.AttackAnimationResetTime+0.1)
	if combo.Step != 0 {
		t.Fatalf("step = %d after the window, want 0", combo.Step)
	}

	UpdateInput(w, press(cfg.ActionAttack))
	UpdatePlayerAttack(w, dt60)
	if combo.Step != 1 {
		t.Fatalf("step = %d, want the combo to restart at 1", combo.Step)
	}
}

func TestAttackRequiresGroundedLivingPlayer(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *components.PlayerData, h *components.HealthData)
	}{
		{"airborne", func(p *components.PlayerData, _ *components.HealthData) { p.Grounded = false }},
		{"combat disabled", func(p *components.PlayerData, _ *components.HealthData) { p.CombatEnabled = false }},
		{"dead", func(_ *components.PlayerData, h *components.HealthData) { h.Dead = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := factory.CreatePlayer(w, 100, floorY)
			tt.setup(components.Player.Get(player), components.Health.Get(player))

			UpdateInput(w, press(cfg.ActionAttack))
			UpdatePlayerAttack(w, dt60)

			if got := components.Combo.Get(player).Step; got != 0 {
				t.Fatalf("step = %d, want no attack", got)
			}
			if components.MeleeAttack.Get(player).Active() {
				t.Fatal("swing started")
			}
		})
	}
}
