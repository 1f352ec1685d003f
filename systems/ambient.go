package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	"github.com/yohamta/donburi"
)

// UpdateClouds drifts every cloud right by a random step each frame. A cloud
// found past the right edge is first replaced by a new one on the left edge,
// which then takes the frame's step.
func UpdateClouds(w donburi.World, dt float64) {
	components.CloudField.Each(w, func(e *donburi.Entry) {
		field := components.CloudField.Get(e)
		ext := field.Extension()
		for i := range field.Clouds {
			c := &field.Clouds[i]
			if c.X >= ext {
				*c = field.NewCloud(true)
			}
			step := (field.MovementMin + field.Rand.Float64()*(field.MovementMax-field.MovementMin)) * field.UnitScale
			c.X = lerp(c.X, c.X+step, dt)
		}
	})
}

// UpdateWind keeps every material's wind parameter at the controller's speed
// and advances grass sway.
func UpdateWind(w donburi.World, dt float64) {
	components.Wind.Each(w, func(e *donburi.Entry) {
		SyncWind(components.Wind.Get(e))
	})
	components.Grass.Each(w, func(e *donburi.Entry) {
		grass := components.Grass.Get(e)
		if grass.Material == nil {
			return
		}
		grass.Phase = math.Mod(grass.Phase+dt*(1+grass.Material.GetFloat(windParam(w))*4), 2*math.Pi)
	})
}

// SyncWind writes the wind speed to every material when the first one is out
// of date. It reports whether anything was written.
func SyncWind(wind *components.WindData) bool {
	if len(wind.Materials) == 0 {
		return false
	}
	if wind.Materials[0].GetFloat(wind.Param) == wind.Speed {
		return false
	}
	for _, m := range wind.Materials {
		m.SetFloat(wind.Param, wind.Speed)
	}
	return true
}

func windParam(w donburi.World) string {
	if e, ok := components.Wind.First(w); ok {
		return components.Wind.Get(e).Param
	}
	return ""
}

// lerp interpolates with t clamped to [0, 1].
func lerp(a, b, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return a + (b-a)*t
}
