package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the overridable sections. Keys are the lowercased field
// names (e.g. player.movespeed). Sections and fields left out keep their
// current values.
type tuningFile struct {
	Player      *PlayerConfig        `yaml:"player"`
	Physics     *PhysicsConfig       `yaml:"physics"`
	Aggro       *AggroConfig         `yaml:"aggro"`
	Camera      *CameraConfig        `yaml:"camera"`
	ScreenShake *ScreenShakeConfig   `yaml:"screenshake"`
	Clouds      *CloudConfig         `yaml:"clouds"`
	Wind        *WindConfig          `yaml:"wind"`
	Particles   *ParticleConfig      `yaml:"particles"`
	Pathfinding *PathfindingConfig   `yaml:"pathfinding"`
	Enemies     map[string]yaml.Node `yaml:"enemies"`
}

// LoadTuning reads a YAML override file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning decodes YAML overrides on top of the current configuration.
// Nothing is applied if decoding fails.
func ApplyTuning(data []byte) error {
	player := Player
	physics := Physics
	aggro := Aggro
	camera := Camera
	shake := ScreenShake
	clouds := Clouds
	wind := Wind
	particles := Particles
	pathfinding := Pathfinding

	t := tuningFile{
		Player:      &player,
		Physics:     &physics,
		Aggro:       &aggro,
		Camera:      &camera,
		ScreenShake: &shake,
		Clouds:      &clouds,
		Wind:        &wind,
		Particles:   &particles,
		Pathfinding: &pathfinding,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	enemies := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, et := range Enemy.Types {
		enemies[name] = et
	}
	for name, node := range t.Enemies {
		et, ok := enemies[name]
		if !ok {
			et = Enemy.Types[Enemy.DefaultType]
			et.Name = name
		}
		if err := node.Decode(&et); err != nil {
			return fmt.Errorf("enemy %q: %w", name, err)
		}
		enemies[name] = et
	}

	if err := validateTuning(&player, &aggro, &clouds, enemies); err != nil {
		return err
	}

	Player = player
	Physics = physics
	Aggro = aggro
	Camera = camera
	ScreenShake = shake
	Clouds = clouds
	Wind = wind
	Particles = particles
	Pathfinding = pathfinding
	Enemy.Types = enemies
	return nil
}

func validateTuning(p *PlayerConfig, a *AggroConfig, c *CloudConfig, enemies map[string]EnemyTypeConfig) error {
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player.maxhealth must be positive, got %d", p.MaxHealth)
	}
	if p.AttackAnimationResetTime <= 0 {
		return fmt.Errorf("player.attackanimationresettime must be positive, got %v", p.AttackAnimationResetTime)
	}
	if a.CheckInterval <= 0 {
		return fmt.Errorf("aggro.checkinterval must be positive, got %v", a.CheckInterval)
	}
	if c.MovementMax < c.MovementMin {
		return fmt.Errorf("clouds.movementmax %v below movementmin %v", c.MovementMax, c.MovementMin)
	}
	if c.MaxScale < 1 {
		return fmt.Errorf("clouds.maxscale must be at least 1, got %v", c.MaxScale)
	}
	for name, et := range enemies {
		if et.MaxHealth <= 0 {
			return fmt.Errorf("enemy %q maxhealth must be positive, got %d", name, et.MaxHealth)
		}
	}
	return nil
}
