package factory

import (
	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
