package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

func selectPressed(in *components.InputData) bool {
	return in.JustPressed(cfg.ActionJump) ||
		in.JustPressed(cfg.ActionAttack) ||
		in.JustPressed(cfg.ActionRestart)
}

// navigate moves a wrapping selection by one on up/down presses.
func navigate(w donburi.World, in *components.InputData, index, count int) int {
	if count == 0 {
		return 0
	}
	switch {
	case in.JustPressed(cfg.ActionLookUp):
		index = (index - 1 + count) % count
		PlaySFX(w, cfg.SoundMenuNavigate)
	case in.JustPressed(cfg.ActionLookDown):
		index = (index + 1) % count
		PlaySFX(w, cfg.SoundMenuNavigate)
	}
	return index
}

// UpdateMenu handles title menu navigation. It reports the option picked
// this tick, if any.
func UpdateMenu(w donburi.World) (components.MainMenuOption, bool) {
	entry, ok := components.Menu.First(w)
	if !ok {
		return 0, false
	}
	menu := components.Menu.Get(entry)
	in := inputOf(w)

	menu.SelectedIndex = navigate(w, in, menu.SelectedIndex, len(menu.Options))
	if len(menu.Options) == 0 || !selectPressed(in) {
		return 0, false
	}
	PlaySFX(w, cfg.SoundMenuSelect)
	return menu.Options[menu.SelectedIndex], true
}

// UpdateGameOver handles the retry/quit choice on the game over screen.
func UpdateGameOver(w donburi.World) (components.GameOverOption, bool) {
	entry, ok := components.GameOver.First(w)
	if !ok {
		return 0, false
	}
	gameOver := components.GameOver.Get(entry)
	in := inputOf(w)

	numOptions := int(components.GameOverQuit) + 1
	gameOver.SelectedOption = components.GameOverOption(
		navigate(w, in, int(gameOver.SelectedOption), numOptions),
	)
	if in.JustPressed(cfg.ActionRestart) {
		PlaySFX(w, cfg.SoundMenuSelect)
		return components.GameOverRetry, true
	}
	if !selectPressed(in) {
		return 0, false
	}
	PlaySFX(w, cfg.SoundMenuSelect)
	return gameOver.SelectedOption, true
}

// UpdatePause toggles pause on the pause action and reports whether the
// world is paused. Worlds without a pause entity never pause.
func UpdatePause(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	if !ok {
		return false
	}
	pause := components.Pause.Get(entry)
	if inputOf(w).JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
		PlaySFX(w, cfg.SoundMenuSelect)
	}
	return pause.IsPaused
}

// IsPaused reports the pause flag without consuming input.
func IsPaused(w donburi.World) bool {
	if entry, ok := components.Pause.First(w); ok {
		return components.Pause.Get(entry).IsPaused
	}
	return false
}

// UpdateGizmoToggle flips debug gizmos on the toggle action.
func UpdateGizmoToggle(w donburi.World) {
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	if inputOf(w).JustPressed(cfg.ActionToggleGizmos) {
		settings := components.Settings.Get(entry)
		settings.Gizmos = !settings.Gizmos
	}
}
