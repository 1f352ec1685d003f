package components

import (
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    float64 // seconds in the current state
	Hold          float64 // seconds a one-shot state is kept before locomotion resumes
}

// Set switches state and resets the timer when the state changes.
func (s *StateData) Set(state cfg.StateID, hold float64) {
	if s.CurrentState != state {
		s.PreviousState = s.CurrentState
		s.StateTimer = 0
	}
	s.CurrentState = state
	s.Hold = hold
}

var State = donburi.NewComponentType[StateData]()
