// Package sim assembles a level into a donburi world and steps the gameplay
// systems in order. It has no ebitengine dependency, so headless drivers and
// tests run the same pipeline as the game.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/nav"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

var (
	ErrNoPlayerSpawn = errors.New("sim: level has no player spawn")
	ErrEmptyLevel    = errors.New("sim: level has zero size")
)

const spaceCellSize = 16

// Options are the collaborators a simulation is built with. Both Input and
// Audio may be nil: the player then stands still and cues are dropped.
type Options struct {
	Seed  int64
	Path  string
	Input systems.InputSource
	Audio systems.AudioSink
}

type Simulation struct {
	World donburi.World
	Level *leveldata.Level

	input systems.InputSource
	audio systems.AudioSink

	ticks   uint64
	elapsed float64
}

// New builds the world for level. Configuration problems in the level are
// reported here rather than on the first Step.
func New(level *leveldata.Level, opts Options) (*Simulation, error) {
	if level == nil || level.Width <= 0 || level.Height <= 0 {
		return nil, ErrEmptyLevel
	}
	if !level.HasPlayerSpawn {
		return nil, fmt.Errorf("%w: %s", ErrNoPlayerSpawn, level.Name)
	}

	w := donburi.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	spaceEntry := factory.CreateSpace(w, level.Width, level.Height, spaceCellSize, spaceCellSize)
	factory.CreateLevel(w, level, opts.Path)
	factory.CreateInput(w)
	factory.CreateAudio(w)
	factory.CreateParticles(w, rng)

	for _, solid := range level.Solids {
		factory.CreateWall(w, solid)
	}
	for _, sensor := range level.Sensors {
		factory.CreateSensor(w, sensor)
	}

	spawn := level.PlayerSpawn
	factory.CreatePlayer(w, spawn.X, spawn.Y)
	factory.CreateCamera(w, spawn.X, spawn.Y)

	for _, es := range level.EnemySpawns {
		if _, err := factory.CreateEnemy(w, es.X, es.Y, es.Type); err != nil {
			return nil, fmt.Errorf("sim: enemy spawn at (%v, %v): %w", es.X, es.Y, err)
		}
	}

	for _, area := range level.Clouds {
		factory.CreateCloudField(w, area, rng)
	}
	wind := factory.CreateWind(w, windSpeed(level))
	for _, patch := range level.Grass {
		factory.CreateGrass(w, patch, wind)
	}

	grid := nav.Build(components.Space.Get(spaceEntry), level.Width, level.Height, cfg.Pathfinding.CellSize)
	factory.CreateNavigation(w, grid)

	return &Simulation{
		World: w,
		Level: level,
		input: opts.Input,
		audio: opts.Audio,
	}, nil
}

// windSpeed takes the first grass patch's speed, falling back to the
// configured default.
func windSpeed(level *leveldata.Level) float64 {
	for _, patch := range level.Grass {
		if patch.WindSpeed > 0 {
			return patch.WindSpeed
		}
	}
	return cfg.Wind.DefaultSpeed
}

func (s *Simulation) SetInput(src systems.InputSource) { s.input = src }
func (s *Simulation) SetAudio(sink systems.AudioSink)  { s.audio = sink }

// Step advances the world by dt seconds. A paused world only polls input.
func (s *Simulation) Step(dt float64) {
	w := s.World

	systems.UpdateInput(w, s.input)
	systems.UpdateGizmoToggle(w)
	if systems.UpdatePause(w) {
		systems.UpdateAudio(w, s.audio)
		return
	}

	systems.UpdatePlayer(w, dt)
	systems.UpdatePlayerAttack(w, dt)
	systems.UpdateEnemies(w, dt)
	systems.UpdatePathfinding(w, dt)

	systems.UpdatePhysics(w, dt)
	systems.UpdateCollisions(w, dt)
	systems.UpdateObjects(w)

	systems.UpdateSwings(w, dt)
	systems.UpdateContactDamage(w)
	systems.UpdateCombat(w, dt)
	systems.UpdateAggro(w, dt)

	systems.UpdateDeaths(w, dt)
	systems.UpdateEffects(w, dt)
	systems.UpdateCamera(w, dt)

	systems.UpdateClouds(w, dt)
	systems.UpdateWind(w, dt)
	systems.UpdateStates(w, dt)

	systems.UpdateAudio(w, s.audio)

	s.ticks++
	s.elapsed += dt
}

// Retune pushes the current configuration into the running world after a
// tuning reload. A level-defined wind speed keeps priority over the default.
func (s *Simulation) Retune() {
	systems.RefreshTuning(s.World)
	speed := windSpeed(s.Level)
	components.Wind.Each(s.World, func(e *donburi.Entry) {
		components.Wind.Get(e).Speed = speed
	})
}

func (s *Simulation) Ticks() uint64    { return s.ticks }
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Player returns the player entry.
func (s *Simulation) Player() *donburi.Entry {
	e, _ := tags.Player.First(s.World)
	return e
}

func (s *Simulation) GameOver() bool { return systems.GameOver(s.World) }

// Stats summarises the run so far.
type Stats struct {
	Elapsed      float64
	Kills        int
	Enemies      int
	PlayerHealth int
	PlayerDead   bool
}

// Cleared reports whether every enemy is dead and the player is not.
func (st Stats) Cleared() bool {
	return st.Enemies > 0 && st.Kills == st.Enemies && !st.PlayerDead
}

func (s *Simulation) Stats() Stats {
	st := Stats{Elapsed: s.elapsed}
	tags.Enemy.Each(s.World, func(e *donburi.Entry) {
		st.Enemies++
		if components.Health.Get(e).Dead {
			st.Kills++
		}
	})
	if player := s.Player(); player != nil {
		health := components.Health.Get(player)
		st.PlayerHealth = health.Current
		st.PlayerDead = health.Dead
	}
	return st
}
