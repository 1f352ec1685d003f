package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	"github.com/yohamta/donburi"
)

// InputSource fills the current frame's raw input state.
type InputSource interface {
	Poll(in *components.InputData)
}

// InputFunc adapts a function to InputSource.
type InputFunc func(in *components.InputData)

func (f InputFunc) Poll(in *components.InputData) { f(in) }

// UpdateInput rolls the last frame into Previous and polls the new one, so
// JustPressed and JustReleased hold for exactly one tick.
func UpdateInput(w donburi.World, src InputSource) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.Advance()
	if src != nil {
		src.Poll(in)
	}
}

func inputOf(w donburi.World) *components.InputData {
	if entry, ok := components.Input.First(w); ok {
		return components.Input.Get(entry)
	}
	return &components.InputData{}
}
