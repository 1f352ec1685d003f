package scenes

import (
	"image/color"
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

var gameOverOptions = []string{"Retry", "Menu"}

// GameOverScene displays the result of a run
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	env          *Env
	data         components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, env *Env, data components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, env: env, data: data}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	w := donburi.NewWorld()
	factory.CreateInput(w)
	factory.CreateAudio(w)
	factory.CreateGameOver(w, gs.data)

	gs.ecs = ecs.NewECS(w)
	gs.ecs.AddSystem(func(e *ecs.ECS) {
		systems.UpdateInput(e.World, gs.env.Input)
		choice, ok := systems.UpdateGameOver(e.World)
		systems.UpdateAudio(e.World, gs.env.sink())
		if !ok {
			return
		}
		switch choice {
		case components.GameOverRetry:
			gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.env))
		case components.GameOverQuit:
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.env))
		}
	})
	gs.ecs.AddRenderer(cfg.Default, drawGameOver)
}

func drawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)
	height := screen.Bounds().Dy()

	title, titleColor := "GAME OVER", color.Color(cfg.LightRed)
	if gameOver.Cleared {
		title, titleColor = "LEVEL CLEARED", cfg.Yellow
	}
	drawCentered(screen, title, fonts.Title.Get(), height/4, titleColor)

	y := height/4 + 32
	for _, line := range gameOver.Lines {
		drawCentered(screen, line, fonts.Regular.Get(), y, cfg.White)
		y += 16
	}

	y = height * 2 / 3
	for i, option := range gameOverOptions {
		c := cfg.Menu.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			c = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, option, fonts.Bold.Get(), y, c)
		y += int(cfg.Menu.ItemHeight + cfg.Menu.ItemGap)
	}
}
