package render

import (
	"image/color"
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cloud puffs per variant, as (dx, dy, radius) in units of the base radius.
var cloudShapes = [][][3]float64{
	{{0, 0, 1}, {0.9, 0.2, 0.7}, {-0.9, 0.25, 0.65}},
	{{0, 0, 0.8}, {0.8, 0.1, 0.9}, {1.7, 0.3, 0.5}},
	{{0, 0.1, 0.7}, {0.7, -0.1, 1}, {1.5, 0.2, 0.6}, {-0.6, 0.3, 0.5}},
}

const cloudBaseRadius = 10

// DrawClouds draws every cloud field behind the level.
func DrawClouds(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}
	components.CloudField.Each(ecs.World, func(e *donburi.Entry) {
		field := components.CloudField.Get(e)
		cx := field.X + field.Width/2
		for _, c := range field.Clouds {
			x, y := cx+c.X, field.Y+c.Y
			r := cloudBaseRadius * c.Scale
			if !v.visible(x-3*r, y-2*r, 6*r, 4*r) {
				continue
			}
			shape := cloudShapes[c.Variant%len(cloudShapes)]
			alpha := uint8(150 + 30*(c.Variant%3))
			clr := color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}
			for _, puff := range shape {
				px, py := v.point(x+puff[0]*r, y+puff[1]*r)
				vector.DrawFilledCircle(screen, px, py, float32(puff[2]*r), clr, true)
			}
		}
	})
}

var grassShaderOp = &ebiten.DrawRectShaderOptions{}

// DrawGrass draws the foreground grass, swaying by the wind material.
func DrawGrass(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}
	param := cfg.Wind.Param
	components.Grass.Each(ecs.World, func(e *donburi.Entry) {
		grass := components.Grass.Get(e)
		if grass.Material == nil || grass.Blades <= 0 {
			return
		}
		height := grassHeight
		top := grass.Y - height
		if !v.visible(grass.X, top, grass.Width, height) {
			return
		}
		wind := grass.Material.GetFloat(param)

		if GrassShader != nil {
			x, y := v.point(grass.X, top)
			grassShaderOp.GeoM.Reset()
			grassShaderOp.GeoM.Translate(float64(x), float64(y))
			grassShaderOp.Uniforms = map[string]any{
				"Origin":    []float32{x, y},
				"Size":      []float32{float32(grass.Width), float32(height)},
				"Blades":    float32(grass.Blades),
				"Phase":     float32(grass.Phase),
				"WindSpeed": float32(wind),
				"Color":     []float32{70.0 / 255, 160.0 / 255, 60.0 / 255, 1},
			}
			screen.DrawRectShader(int(math.Ceil(grass.Width)), int(height), GrassShader, grassShaderOp)
			return
		}

		spacing := grass.Width / float64(grass.Blades)
		for i := 0; i < grass.Blades; i++ {
			bx := grass.X + (float64(i)+0.5)*spacing
			sway := math.Sin(grass.Phase+float64(i)*0.7) * wind * 0.6 * height
			x0, y0 := v.point(bx, grass.Y)
			x1, y1 := v.point(bx+sway, top)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, cfg.GrassGreen, true)
		}
	})
}

const grassHeight = 10.0
