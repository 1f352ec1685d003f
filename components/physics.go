package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX       float64 // px/s
	SpeedY       float64 // px/s, positive is down
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object
	StunTimer    float64 // while > 0 movement input is ignored and drag slows SpeedX
	Frozen       bool    // skip integration entirely (dead player)
}

var Physics = donburi.NewComponentType[PhysicsData]()
