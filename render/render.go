package render

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawList []*donburi.Entry

// DrawCharacters draws every sprite entity as a shaded body. The dead layer
// is drawn first so corpses sit behind the living.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}

	drawList = drawList[:0]
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		drawList = append(drawList, e)
	})
	slices.SortStableFunc(drawList, func(a, b *donburi.Entry) int {
		return cmp.Compare(layerOrder(a), layerOrder(b))
	})

	for _, e := range drawList {
		drawCharacter(screen, v, e)
	}
}

func layerOrder(e *donburi.Entry) int {
	if components.Sprite.Get(e).SortingLayer == components.SortingDeadEnemies {
		return 0
	}
	return 1
}

func drawCharacter(screen *ebiten.Image, v view, e *donburi.Entry) {
	o := components.Object.Get(e)
	sprite := components.Sprite.Get(e)
	body := sprite.Tint

	state := cfg.Idle
	var stateTimer float64
	if e.HasComponent(components.State) {
		s := components.State.Get(e)
		state, stateTimer = s.CurrentState, s.StateTimer
	}

	// Flash overrides other color effects while it runs
	if e.HasComponent(components.Flash) {
		if flash := components.Flash.Get(e); flash.Remaining > 0 {
			body = color.RGBA{R: channel(flash.R), G: channel(flash.G), B: channel(flash.B), A: 255}
		}
	}

	x, y, w, h := o.X, o.Y, o.W, o.H
	switch state {
	case cfg.Dead:
		// Lying down: wide and flat at the feet
		y, h = o.Y+o.H-o.W/2, o.W/2
		x, w = o.X+o.W/2-o.H/2, o.H
	case cfg.Running:
		y -= math.Abs(math.Sin(stateTimer*14)) * 2
	case cfg.Hurt:
		x += math.Sin(stateTimer*60) * 1.5
	}

	sx, sy := v.point(x, y)
	vector.FillRect(screen, sx, sy, float32(w), float32(h), body, false)

	if state == cfg.Dead {
		return
	}

	facing := facingOf(e)
	eyeX := x + w/2 + facing*w/4 - 1.5
	ex, ey := v.point(eyeX, y+h*0.2)
	vector.FillRect(screen, ex, ey, 3, 3, cfg.White, false)

	if e.HasComponent(components.MeleeAttack) {
		if melee := components.MeleeAttack.Get(e); melee.Active() {
			drawSwing(screen, v, o, melee, facing)
		}
	}
}

// drawSwing sketches the swing as an arc of dots in front of the body.
func drawSwing(screen *ebiten.Image, v view, o *components.ObjectData, melee *components.MeleeAttackData, facing float64) {
	def := cfg.Swings[melee.Swing]
	if def.Duration <= 0 {
		return
	}
	progress := math.Min(1, melee.Elapsed/def.Duration)
	center := o.Center()
	cx := center.X + melee.OffsetX*facing*0.5
	cy := center.Y + melee.OffsetY

	const dots = 5
	for i := 0; i < dots; i++ {
		a := -math.Pi/2 + math.Pi*progress*float64(i+1)/dots
		px, py := v.point(cx+math.Cos(a)*melee.Range*facing, cy+math.Sin(a)*melee.Range)
		vector.DrawFilledCircle(screen, px, py, 1.5, cfg.Yellow, true)
	}
}

func facingOf(e *donburi.Entry) float64 {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Direction.X
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Facing
	}
	return 1
}

func channel(f float32) uint8 {
	return uint8(math.Max(0, math.Min(1, float64(f))) * 255)
}

// DrawParticles draws live particles fading out over their lifetime.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	for _, p := range components.Particles.Get(entry).Items {
		if !v.visible(p.X, p.Y, p.Size, p.Size) {
			continue
		}
		alpha := 1.0
		if p.Lifetime > 0 {
			alpha = math.Max(0, 1-p.Age/p.Lifetime)
		}
		c := p.Color
		c.R = uint8(float64(c.R) * alpha)
		c.G = uint8(float64(c.G) * alpha)
		c.B = uint8(float64(c.B) * alpha)
		c.A = uint8(float64(c.A) * alpha)
		x, y := v.point(p.X-p.Size/2, p.Y-p.Size/2)
		vector.FillRect(screen, x, y, float32(p.Size), float32(p.Size), c, false)
	}
}
