package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// GameOverData stores the game over menu and the summary of the run.
type GameOverData struct {
	SelectedOption GameOverOption
	Cleared        bool
	Lines          []string
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
