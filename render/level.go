package render

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawSky clears the screen to the sky color.
func DrawSky(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)
}

// DrawLevel draws the level's solids.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	for _, r := range level.Solids {
		if !v.visible(r.X, r.Y, r.W, r.H) {
			continue
		}
		x, y := v.point(r.X, r.Y)
		vector.FillRect(screen, x, y, float32(r.W), float32(r.H), cfg.Stone, false)
		// Lighter top edge so platforms read against the sky
		vector.FillRect(screen, x, y, float32(r.W), 2, cfg.GrassGreen, false)
	}
}
