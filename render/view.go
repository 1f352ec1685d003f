// Package render draws the simulation world with ebitengine vector shapes.
package render

import (
	"github.com/automoto/adrenaline-rush/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// A small padding is used to prevent shapes from popping in/out at the edges.
const cullPadding = 64.0

// view maps world coordinates to the screen and culls off-screen shapes.
type view struct {
	offX, offY             float64
	minX, minY, maxX, maxY float64
}

func viewOf(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	v := view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - cullPadding,
		maxX: camera.Position.X + width/2 + cullPadding,
		minY: camera.Position.Y - height/2 - cullPadding,
		maxY: camera.Position.Y + height/2 + cullPadding,
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		v.offX += shake.OffsetX
		v.offY += shake.OffsetY
	}
	return v, true
}

func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x + v.offX), float32(y + v.offY)
}

func gizmosEnabled(w donburi.World) bool {
	if e, ok := components.Settings.First(w); ok {
		return components.Settings.Get(e).Gizmos
	}
	return false
}
