package components

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Knockback returns the impulse pushing self away from source, scaled per
// axis. When the two positions coincide the push goes against facing, or
// toward +X when facing is unknown.
func Knockback(self, source Vector, facing, magX, magY float64) Vector {
	d := dmath.NewVec2(self.X, self.Y).Sub(dmath.NewVec2(source.X, source.Y))
	if m := d.Magnitude(); d.IsZero() || m <= dmath.Epsilon || math.IsNaN(m) || math.IsInf(m, 0) {
		d = dmath.NewVec2(1, 0)
		if facing > 0 {
			d.X = -1
		}
	} else {
		d = d.Normalized()
	}
	return Vector{X: d.X * magX, Y: d.Y * magY}
}
