package scenes

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/persistence"
	"github.com/automoto/adrenaline-rush/render"
	"github.com/automoto/adrenaline-rush/sim"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/automoto/adrenaline-rush/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sim          *sim.Simulation
	sceneChanger SceneChanger
	env          *Env
	pauseUI      *ui.PauseUI
	settings     *components.SettingsData
	clearedFor   float64
	once         sync.Once
}

// NewPlatformerScene creates a new run of the environment's level
func NewPlatformerScene(sc SceneChanger, env *Env) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, env: env}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	stats := ps.sim.Stats()
	if stats.Cleared() {
		ps.clearedFor += ps.dt()
	}
	if ps.sim.GameOver() || ps.clearedFor >= cfg.Death.PlayerGameOverDelay {
		ps.finish(stats)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.pauseUI.Draw(screen)
}

// Retune applies a reloaded tuning file to the run in progress. Before the
// first Update there is no world yet and the new values are picked up at
// build time.
func (ps *PlatformerScene) Retune() {
	if ps.sim != nil {
		ps.sim.Retune()
	}
}

func (ps *PlatformerScene) dt() float64 {
	return 1.0 / float64(cfg.C.TickRate)
}

func (ps *PlatformerScene) configure() {
	s, err := sim.New(ps.env.Level, sim.Options{
		Seed:  ps.env.Seed,
		Path:  ps.env.LevelPath,
		Input: ps.env.Input,
		Audio: ps.env.sink(),
	})
	if err != nil {
		panic("failed to build level: " + err.Error())
	}
	ps.sim = s

	pauseEntry := factory.CreatePause(s.World, ps.env.Settings)
	ps.settings = components.Settings.Get(pauseEntry)
	ps.pauseUI = ui.NewPauseUI(
		components.Pause.Get(pauseEntry),
		ps.settings,
		func(settings components.SettingsData) {
			ps.env.Settings = settings
			ps.env.SaveSettings()
		},
		func() { os.Exit(0) },
	)

	ps.ecs = ecs.NewECS(s.World)

	// The simulation handles pause itself; only input is read while paused
	ps.ecs.AddSystem(func(e *ecs.ECS) {
		ps.sim.Step(ps.dt())
		ps.env.Settings.Gizmos = ps.settings.Gizmos
	})
	ps.ecs.AddSystem(func(e *ecs.ECS) {
		ps.pauseUI.Update()
	})

	ps.ecs.AddRenderer(cfg.Default, render.DrawSky)
	ps.ecs.AddRenderer(cfg.Default, render.DrawClouds)
	ps.ecs.AddRenderer(cfg.Default, render.DrawLevel)
	ps.ecs.AddRenderer(cfg.Default, render.DrawCharacters)
	ps.ecs.AddRenderer(cfg.Default, render.DrawParticles)
	ps.ecs.AddRenderer(cfg.Default, render.DrawGrass)
	ps.ecs.AddRenderer(cfg.Default, render.DrawHUD)
	ps.ecs.AddRenderer(cfg.Default, render.DrawGizmos)
}

// finish records the run and moves to the game over screen.
func (ps *PlatformerScene) finish(stats sim.Stats) {
	level := ps.env.Level.Name
	best, improved := ps.env.Store.RecordRun(level, persistence.RunResult{
		Kills:   stats.Kills,
		Cleared: stats.Cleared(),
		Elapsed: stats.Elapsed,
	})
	log.Printf("Run over on %s: %d/%d kills in %.1fs (cleared=%v)",
		level, stats.Kills, stats.Enemies, stats.Elapsed, stats.Cleared())

	lines := []string{
		fmt.Sprintf("Enemies defeated: %d/%d", stats.Kills, stats.Enemies),
		fmt.Sprintf("Time: %.1fs", stats.Elapsed),
	}
	if improved {
		lines = append(lines, "New best run!")
	} else if best.Runs > 0 {
		lines = append(lines, bestLine(best))
	}

	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.env, components.GameOverData{
		Cleared: stats.Cleared(),
		Lines:   lines,
	}))
}

func bestLine(best persistence.BestRun) string {
	if best.Cleared {
		return fmt.Sprintf("Best: cleared in %.1fs", best.ClearTime)
	}
	return fmt.Sprintf("Best: %d kills", best.Kills)
}
