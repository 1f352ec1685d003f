package components

import (
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputScripted
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog axes. JustPressed/JustReleased are computed by
// comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	MoveAxis        float64 // -1..1, raw
	LookAxis        float64 // -1 up .. 1 down, raw
	LastInputMethod InputMethod
}

// Advance rolls the current frame into the previous one.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.MoveAxis = 0
	in.LookAxis = 0
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
