package components

import "github.com/yohamta/donburi"

// PathfinderData is an enemy's follow state. Waypoints are world positions
// from the current A* path, nearest first.
type PathfinderData struct {
	Enabled     bool
	Following   bool
	Target      donburi.Entity
	Waypoints   []Vector
	RepathTimer float64
}

// Follow starts chasing target. The next pathfinding pass repaths at once.
func (p *PathfinderData) Follow(target donburi.Entity) {
	if !p.Enabled {
		return
	}
	p.Following = true
	p.Target = target
	p.RepathTimer = 0
}

// Stop halts the chase and drops the current path.
func (p *PathfinderData) Stop() {
	p.Following = false
	p.Waypoints = nil
}

// Disable stops following for good.
func (p *PathfinderData) Disable() {
	p.Stop()
	p.Enabled = false
}

var Pathfinder = donburi.NewComponentType[PathfinderData]()
