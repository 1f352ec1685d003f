package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

func UpdatePhysics(w donburi.World, dt float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Frozen {
			physics.SpeedX, physics.SpeedY = 0, 0
			return
		}

		// Knockback decays while stunned
		if physics.StunTimer > 0 {
			physics.StunTimer = math.Max(0, physics.StunTimer-dt)
			drag := cfg.Physics.StunDrag * dt
			if math.Abs(physics.SpeedX) <= drag {
				physics.SpeedX = 0
			} else {
				physics.SpeedX -= math.Copysign(drag, physics.SpeedX)
			}
		} else if physics.OnGround != nil && e.HasComponent(components.Health) && components.Health.Get(e).Dead {
			physics.SpeedX = 0
		}

		physics.SpeedY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
