package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/adrenaline-rush/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func spaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

// OverlapCircle returns the entities whose colliders carry tag and overlap the
// circle, in entity id order. The space is only a broadphase; each candidate
// is checked exactly against the circle.
func OverlapCircle(w donburi.World, center components.Vector, radius float64, tag string) []*donburi.Entry {
	if radius < 0 {
		return nil
	}
	candidates := broadphase(w, center.X-radius, center.Y-radius, radius*2, radius*2, tag)
	out := candidates[:0]
	for _, c := range candidates {
		obj := components.Object.Get(c)
		if circleIntersectsRect(center, radius, obj.X, obj.Y, obj.W, obj.H) {
			out = append(out, c)
		}
	}
	return out
}

// OverlapRect returns the entities whose colliders carry tag and overlap or
// touch the rectangle, in entity id order.
func OverlapRect(w donburi.World, x, y, width, height float64, tag string) []*donburi.Entry {
	candidates := broadphase(w, x, y, width, height, tag)
	out := candidates[:0]
	for _, c := range candidates {
		obj := components.Object.Get(c)
		if x <= obj.X+obj.W && obj.X <= x+width && y <= obj.Y+obj.H && obj.Y <= y+height {
			out = append(out, c)
		}
	}
	return out
}

func broadphase(w donburi.World, x, y, width, height float64, tag string) []*donburi.Entry {
	space := spaceOf(w)
	if space == nil {
		return nil
	}

	probe := resolv.NewObject(x, y, width, height)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entity, ok := o.Data.(donburi.Entity)
		if !ok || !w.Valid(entity) {
			continue
		}
		if slices.ContainsFunc(out, func(e *donburi.Entry) bool { return e.Entity() == entity }) {
			continue
		}
		e := w.Entry(entity)
		if !e.HasComponent(components.Object) {
			continue
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		return cmp.Compare(a.Entity(), b.Entity())
	})
	return out
}

func circleIntersectsRect(c components.Vector, r, x, y, w, h float64) bool {
	nx := max(x, min(c.X, x+w))
	ny := max(y, min(c.Y, y+h))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= r*r
}

// hasCombat reports whether e can take part in combat as an enemy. Sensors
// share the enemy collision tag but carry no health.
func hasCombat(e *donburi.Entry) bool {
	return e.Valid() && e.HasComponent(components.Enemy) && e.HasComponent(components.Health)
}
