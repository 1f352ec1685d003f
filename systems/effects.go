package systems

import (
	"image/color"
	"math"

	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// UpdateEffects processes flash timers, emitters and live particles.
func UpdateEffects(w donburi.World, dt float64) {
	updateFlashEffects(w, dt)
	updateEmitters(w, dt)
	updateParticles(w, dt)
}

func updateFlashEffects(w donburi.World, dt float64) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining = math.Max(0, flash.Remaining-dt)
		}
	})
}

// updateEmitters spawns footstep dust at the feet of moving grounded entities.
func updateEmitters(w donburi.World, dt float64) {
	pe, ok := components.Particles.First(w)
	if !ok {
		return
	}
	pool := components.Particles.Get(pe)

	components.Emitter.Each(w, func(e *donburi.Entry) {
		emitter := components.Emitter.Get(e)
		if !emitter.Emitting || emitter.Rate <= 0 {
			emitter.Accumulator = 0
			return
		}
		emitter.Accumulator += dt * emitter.Rate
		obj := components.Object.Get(e)
		for emitter.Accumulator >= 1 {
			emitter.Accumulator--
			pool.Items = append(pool.Items, components.Particle{
				X:        obj.X + pool.Rand.Float64()*obj.W,
				Y:        obj.Y + obj.H,
				VX:       (pool.Rand.Float64()*2 - 1) * config.Particles.Speed * 0.25,
				VY:       -pool.Rand.Float64() * config.Particles.Speed * 0.5,
				Lifetime: emitter.Lifetime,
				Size:     1 + pool.Rand.Float64(),
				Color:    emitter.Color,
			})
		}
	})
}

func updateParticles(w donburi.World, dt float64) {
	pe, ok := components.Particles.First(w)
	if !ok {
		return
	}
	pool := components.Particles.Get(pe)
	live := pool.Items[:0]
	for _, p := range pool.Items {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.VY += config.Particles.Gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		live = append(live, p)
	}
	pool.Items = live
}

// SpawnBurst throws count particles outward from (x, y).
func SpawnBurst(w donburi.World, x, y float64, count int, lifetime float64, c color.RGBA) {
	pe, ok := components.Particles.First(w)
	if !ok {
		return
	}
	pool := components.Particles.Get(pe)
	for i := 0; i < count; i++ {
		angle := pool.Rand.Float64() * 2 * math.Pi
		speed := config.Particles.Speed * (0.5 + pool.Rand.Float64())
		pool.Items = append(pool.Items, components.Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Lifetime: lifetime * (0.5 + pool.Rand.Float64()*0.5),
			Size:     1.5 + pool.Rand.Float64()*1.5,
			Color:    c,
		})
	}
}

// TriggerFlash makes an entity's sprite flash white
func TriggerFlash(e *donburi.Entry, duration float64) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Remaining = duration
	flash.R, flash.G, flash.B = 1, 1, 1
}
