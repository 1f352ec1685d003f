package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state (singleton component)
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
