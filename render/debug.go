package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/fonts"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	gizmoSolid  = color.RGBA{100, 100, 100, 255}
	gizmoPlayer = color.RGBA{0, 0, 255, 255}
	gizmoEnemy  = color.RGBA{255, 0, 0, 255}
	gizmoAggro  = color.RGBA{255, 180, 50, 160}
	gizmoPath   = color.RGBA{0, 255, 120, 255}
)

// DrawGizmos outlines colliders and draws attack circles, the aggro radius
// and enemy paths while gizmos are enabled.
func DrawGizmos(ecs *ecs.ECS, screen *ebiten.Image) {
	if !gizmosEnabled(ecs.World) {
		return
	}
	v, ok := viewOf(ecs.World, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			c := cfg.Cyan
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = gizmoSolid
			case obj.HasTags(tags.ResolvPlayer):
				c = gizmoPlayer
			case obj.HasTags(tags.ResolvEnemy):
				c = gizmoEnemy
			case obj.HasTags(tags.ResolvDead):
				c = cfg.CorpseGray
			}
			x, y := v.point(obj.X, obj.Y)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	components.MeleeAttack.Each(ecs.World, func(e *donburi.Entry) {
		melee := components.MeleeAttack.Get(e)
		if !melee.Active() || !e.HasComponent(components.Object) {
			return
		}
		p := systems.AttackPoint(e)
		x, y := v.point(p.X, p.Y)
		vector.StrokeCircle(screen, x, y, float32(melee.Range), 1, cfg.Yellow, true)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		aggro := components.Aggro.Get(playerEntry)
		c := components.Object.Get(playerEntry).Center()
		x, y := v.point(c.X, c.Y)
		vector.StrokeCircle(screen, x, y, float32(aggro.Range), 1, gizmoAggro, true)
	}

	components.Pathfinder.Each(ecs.World, func(e *donburi.Entry) {
		path := components.Pathfinder.Get(e)
		if !path.Following || len(path.Waypoints) == 0 {
			return
		}
		o := components.Object.Get(e)
		px, py := v.point(o.X+o.W/2, o.Y+o.H)
		for _, wp := range path.Waypoints {
			x, y := v.point(wp.X, wp.Y)
			vector.StrokeLine(screen, px, py, x, y, 1, gizmoPath, true)
			vector.DrawFilledCircle(screen, x, y, 2, gizmoPath, true)
			px, py = x, y
		}
	})

	info := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	text.Draw(screen, info, fonts.Small.Get(), 4, screen.Bounds().Dy()-6, cfg.White)
}
