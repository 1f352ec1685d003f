package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/nav"
	"github.com/yohamta/donburi"
)

// UpdatePathfinding repaths following enemies toward their target every
// RepathInterval seconds.
func UpdatePathfinding(w donburi.World, dt float64) {
	grid := navGridOf(w)
	if grid == nil {
		return
	}

	components.Pathfinder.Each(w, func(e *donburi.Entry) {
		path := components.Pathfinder.Get(e)
		if !path.Enabled || !path.Following {
			return
		}
		path.RepathTimer -= dt
		if path.RepathTimer > 0 {
			return
		}
		path.RepathTimer = cfg.Pathfinding.RepathInterval

		if !w.Valid(path.Target) {
			path.Stop()
			return
		}
		target := w.Entry(path.Target)
		if !target.HasComponent(components.Object) {
			path.Stop()
			return
		}

		points := grid.FindPath(feetOf(e), feetOf(target))
		path.Waypoints = path.Waypoints[:0]
		for _, p := range points {
			path.Waypoints = append(path.Waypoints, components.Vector{X: p.X, Y: p.Y})
		}
	})
}

// feetOf samples the cell just above the collider's bottom edge.
func feetOf(e *donburi.Entry) nav.Point {
	obj := components.Object.Get(e)
	return nav.Point{X: obj.X + obj.W/2, Y: obj.Y + obj.H - 1}
}

func navGridOf(w donburi.World) *nav.Grid {
	if e, ok := components.Navigation.First(w); ok {
		return components.Navigation.Get(e).Grid
	}
	return nil
}
