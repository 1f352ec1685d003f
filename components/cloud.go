package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// Cloud positions are local to the field: X in [-W/2, W/2], Y in [0, H].
type Cloud struct {
	X, Y    float64
	Scale   float64
	Variant int
}

// CloudFieldData is a box that keeps a fixed number of clouds drifting right.
type CloudFieldData struct {
	X, Y          float64 // world position of the box's top-left corner
	Width, Height float64

	Max         int
	MovementMin float64 // random per-frame step range in units
	MovementMax float64
	MaxScale    float64
	Variants    int
	UnitScale   float64 // pixels per unit

	Clouds []Cloud
	Rand   *rand.Rand
}

// Extension is the local X at which a cloud leaves the field.
func (f *CloudFieldData) Extension() float64 {
	return f.Width / 2
}

// NewCloud creates a cloud at a random spot, or on the left edge when
// entering at runtime.
func (f *CloudFieldData) NewCloud(atLeftEdge bool) Cloud {
	ext := f.Extension()
	c := Cloud{
		X:     -ext + f.Rand.Float64()*2*ext,
		Y:     f.Rand.Float64() * f.Height,
		Scale: 1 + f.Rand.Float64()*(f.MaxScale-1),
	}
	if atLeftEdge {
		c.X = -ext
	}
	if f.Variants > 0 {
		c.Variant = f.Rand.Intn(f.Variants)
	}
	return c
}

// Fill populates the field with Max clouds.
func (f *CloudFieldData) Fill() {
	f.Clouds = f.Clouds[:0]
	for i := 0; i < f.Max; i++ {
		f.Clouds = append(f.Clouds, f.NewCloud(false))
	}
}

var CloudField = donburi.NewComponentType[CloudFieldData]()
