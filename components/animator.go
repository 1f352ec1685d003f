package components

import "github.com/yohamta/donburi"

// AnimatorData records the triggers and parameters gameplay sends to the
// animation layer. Triggers are one-shot and consumed by the state system.
type AnimatorData struct {
	triggers []string
	Bools    map[string]bool
	Floats   map[string]float64
}

func NewAnimator() AnimatorData {
	return AnimatorData{
		Bools:  map[string]bool{},
		Floats: map[string]float64{},
	}
}

func (a *AnimatorData) SetTrigger(name string) {
	a.triggers = append(a.triggers, name)
}

func (a *AnimatorData) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = map[string]bool{}
	}
	a.Bools[name] = v
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = map[string]float64{}
	}
	a.Floats[name] = v
}

// Triggers returns pending triggers without consuming them.
func (a *AnimatorData) Triggers() []string {
	return append([]string(nil), a.triggers...)
}

// ConsumeTriggers returns pending triggers in the order they were set and
// clears them.
func (a *AnimatorData) ConsumeTriggers() []string {
	out := a.triggers
	a.triggers = nil
	return out
}

var Animator = donburi.NewComponentType[AnimatorData]()
