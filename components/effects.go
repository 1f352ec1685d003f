package components

import (
	"image/color"
	"math/rand"

	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64
	OffsetX   float64
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hurt flash)
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers (1,1,1 = white)
}

var Flash = donburi.NewComponentType[FlashData]()

// Particle is a single short-lived dot.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64
	Lifetime float64
	Size     float64
	Color    color.RGBA
}

// ParticlesData holds every live particle (singleton component).
type ParticlesData struct {
	Items []Particle
	Rand  *rand.Rand
}

var Particles = donburi.NewComponentType[ParticlesData]()

// EmitterData continuously emits particles at an entity's feet.
type EmitterData struct {
	Rate        float64 // particles per second
	Emitting    bool
	Accumulator float64
	Lifetime    float64
	Color       color.RGBA
}

var Emitter = donburi.NewComponentType[EmitterData]()
