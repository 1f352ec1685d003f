package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

// AggroData tracks which enemies were inside the aggro radius at the last
// poll. Polls run every Interval seconds rather than every frame.
type AggroData struct {
	Range    float64
	Interval float64
	Elapsed  float64

	current []donburi.Entity
}

// Due accumulates dt and reports whether a poll should run now. At most one
// poll fires per call.
func (a *AggroData) Due(dt float64) bool {
	a.Elapsed += dt
	if a.Interval <= 0 || a.Elapsed < a.Interval {
		return false
	}
	a.Elapsed -= a.Interval
	if a.Elapsed >= a.Interval {
		a.Elapsed = 0
	}
	return true
}

// Update stores the new snapshot and returns the entities that entered and
// exited since the previous one. An entity is never in both.
func (a *AggroData) Update(snapshot []donburi.Entity) (entered, exited []donburi.Entity) {
	next := make([]donburi.Entity, 0, len(snapshot))
	for _, e := range snapshot {
		if !slices.Contains(next, e) {
			next = append(next, e)
		}
	}

	for _, e := range next {
		if !slices.Contains(a.current, e) {
			entered = append(entered, e)
		}
	}
	for _, e := range a.current {
		if !slices.Contains(next, e) {
			exited = append(exited, e)
		}
	}

	a.current = next
	return entered, exited
}

// Current returns a copy of the last snapshot.
func (a *AggroData) Current() []donburi.Entity {
	return slices.Clone(a.current)
}

var Aggro = donburi.NewComponentType[AggroData]()
