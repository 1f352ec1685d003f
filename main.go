package main

import (
	"flag"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/automoto/adrenaline-rush/assets"
	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/fonts"
	"github.com/automoto/adrenaline-rush/input"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/persistence"
	"github.com/automoto/adrenaline-rush/render"
	"github.com/automoto/adrenaline-rush/scenes"
	"github.com/automoto/adrenaline-rush/sfx"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/joho/godotenv"
)

const appName = "adrenaline-rush"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Retuner is a scene whose running world follows tuning reloads.
type Retuner interface {
	Retune()
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(env *scenes.Env, watcher *config.TuningWatcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, env)
	} else {
		g.scene = scenes.NewMenuScene(g, env)
	}

	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies tuning edits between ticks so systems never see a
// half-written config.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := config.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			if r, ok := g.scene.(Retuner); ok {
				r.Retune()
			}
			log.Printf("Reloaded tuning from %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func main() {
	// Optional .env with ADRENALINE_* defaults
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not read .env: %v", err)
	}

	levelPath := flag.String("level", envOr("ADRENALINE_LEVEL", config.C.LevelPath), "TMX level to play (disk path or embedded levels/...)")
	tuningPath := flag.String("tuning", os.Getenv("ADRENALINE_TUNING"), "YAML tuning overrides, reloaded on save")
	seed := flag.Int64("seed", 1, "Random seed for particles and clouds")
	flag.BoolVar(&config.Debug.Gizmos, "gizmos", envBool("ADRENALINE_GIZMOS"), "Draw attack/aggro circles and paths")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", envBool("ADRENALINE_SKIPMENU"), "Skip the title menu")
	flag.Parse()

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.NewTuningWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := render.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders, using vector fallback: %v", err)
	}

	level, err := leveldata.LoadPath(assets.FS, *levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	store, err := persistence.Open(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := systems.DefaultSettings()
	if saved, ok := store.LoadSettings(); ok {
		settings = components.SettingsData{
			VolumeIndex: saved.VolumeIndex,
			Gizmos:      saved.Gizmos,
			Fullscreen:  saved.Fullscreen,
		}
	}
	if config.Debug.Gizmos {
		settings.Gizmos = true
	}

	player := sfx.New(audio.NewContext(config.Audio.SampleRate))
	player.Preload()

	env := &scenes.Env{
		Level:     level,
		LevelPath: *levelPath,
		Seed:      *seed,
		Input:     input.NewPoller(),
		Audio:     player,
		Store:     store,
		Settings:  settings,
	}

	ebiten.SetWindowTitle("Adrenaline Rush")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)
	env.ApplySettings()

	if err := ebiten.RunGame(NewGame(env, watcher)); err != nil {
		log.Fatal(err)
	}
}
