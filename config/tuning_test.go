package config

import (
	"os"
	"path/filepath"
	"testing"
)

func snapshot(t *testing.T) {
	t.Helper()
	player, aggro, clouds := Player, Aggro, Clouds
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	t.Cleanup(func() {
		Player, Aggro, Clouds = player, aggro, clouds
		Enemy.Types = types
	})
}

func TestApplyTuningOverridesOnlyGivenFields(t *testing.T) {
	snapshot(t)
	speed := Player.JumpSpeed

	err := ApplyTuning([]byte(`
player:
  movespeed: 300
aggro:
  range: 200
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	if Player.MoveSpeed != 300 {
		t.Fatalf("MoveSpeed = %v, want 300", Player.MoveSpeed)
	}
	if Player.JumpSpeed != speed {
		t.Fatalf("JumpSpeed changed to %v", Player.JumpSpeed)
	}
	if Aggro.Range != 200 || Aggro.CheckInterval != 0.5 {
		t.Fatalf("Aggro = %+v", Aggro)
	}
}

func TestApplyTuningEnemyTypes(t *testing.T) {
	snapshot(t)
	defaultHealth := Enemy.Types[Enemy.DefaultType].MaxHealth

	err := ApplyTuning([]byte(`
enemies:
  Grunt:
    maxhealth: 5
  Scout:
    followspeed: 150
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	grunt, _ := EnemyType("Grunt")
	if grunt.MaxHealth != 5 || grunt.AttackDamage != 1 {
		t.Fatalf("Grunt = %+v", grunt)
	}
	scout, ok := EnemyType("Scout")
	if !ok {
		t.Fatal("Scout type not registered")
	}
	if scout.FollowSpeed != 150 || scout.MaxHealth != defaultHealth || scout.Name != "Scout" {
		t.Fatalf("Scout = %+v", scout)
	}
}

func TestApplyTuningRejectsInvalid(t *testing.T) {
	snapshot(t)
	before := Player

	tests := []struct {
		name string
		yaml string
	}{
		{"zero health", "player:\n  maxhealth: 0\n"},
		{"zero interval", "aggro:\n  checkinterval: 0\n"},
		{"inverted cloud range", "clouds:\n  movementmin: 2\n  movementmax: 1\n"},
		{"malformed", "player: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyTuning([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
			if Player != before {
				t.Fatal("player config changed on failed apply")
			}
		})
	}
}

func TestLoadTuningWrapsPath(t *testing.T) {
	snapshot(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  attackdamage: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if Player.AttackDamage != 2 {
		t.Fatalf("AttackDamage = %d", Player.AttackDamage)
	}
	if err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
