package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/fonts"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	env          *Env
	bestLine     string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, env *Env) *MenuScene {
	return &MenuScene{sceneChanger: sc, env: env}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	if best, ok := ms.env.Store.BestRun(ms.env.Level.Name); ok {
		ms.bestLine = bestLine(best)
	}

	w := donburi.NewWorld()
	factory.CreateInput(w)
	factory.CreateAudio(w)
	factory.CreateMenu(w, components.MainMenuStart, components.MainMenuGizmos, components.MainMenuExit)

	ms.ecs = ecs.NewECS(w)
	ms.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateInput(e.World, ms.env.Input)
		choice, ok := systems.UpdateMenu(e.World)
		systems.UpdateAudio(e.World, ms.env.sink())
		if !ok {
			return
		}
		switch choice {
		case components.MainMenuStart:
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.env))
		case components.MainMenuGizmos:
			ms.env.Settings.Gizmos = !ms.env.Settings.Gizmos
			ms.env.SaveSettings()
		case components.MainMenuExit:
			os.Exit(0)
		}
	})
	ms.ecs.AddRenderer(cfg.Default, ms.draw)
}

func (ms *MenuScene) label(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuGizmos:
		return "Gizmos: " + onOff(ms.env.Settings.Gizmos)
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

func (ms *MenuScene) draw(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)
	height := screen.Bounds().Dy()

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), height/4, cfg.BrightOrange)
	drawCentered(screen, ms.env.Level.Name, fonts.Regular.Get(), height/4+24, cfg.White)

	y := height / 2
	for i, option := range menu.Options {
		c := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			c = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, ms.label(option), fonts.Bold.Get(), y, c)
		y += int(cfg.Menu.ItemHeight + cfg.Menu.ItemGap)
	}

	if ms.bestLine != "" {
		drawCentered(screen, ms.bestLine, fonts.Small.Get(), height-24, cfg.White)
	}
	drawCentered(screen, "Up/Down: Navigate   Space/Enter: Select", fonts.Small.Get(), height-8, cfg.White)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
