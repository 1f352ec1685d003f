package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookOffset float64 // current vertical look offset in pixels
	LookTarget float64 // offset the tween is heading to
	LookTween  *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
