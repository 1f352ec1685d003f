package components

import (
	"github.com/yohamta/donburi"
)

// HitBatchData is the set of targets collected by the current swing. Order
// of first insertion is kept so damage is applied deterministically.
type HitBatchData struct {
	targets []donburi.Entity
}

// Add inserts e and reports whether it was new to the batch.
func (b *HitBatchData) Add(e donburi.Entity) bool {
	if b.Contains(e) {
		return false
	}
	b.targets = append(b.targets, e)
	return true
}

func (b *HitBatchData) Contains(e donburi.Entity) bool {
	for _, t := range b.targets {
		if t == e {
			return true
		}
	}
	return false
}

// Drain returns the batch and empties it.
func (b *HitBatchData) Drain() []donburi.Entity {
	out := b.targets
	b.targets = nil
	return out
}

var HitBatch = donburi.NewComponentType[HitBatchData]()
