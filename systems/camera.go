package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func UpdateCamera(w donburi.World, dt float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, dt)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)

	updateLookOffset(camera, playerData, dt)

	center := playerObject.Center()
	targetX := center.X
	targetY := center.Y + camera.LookOffset

	// Keep the level filling the screen when it is large enough
	if levelEntry, ok := components.Level.First(w); ok {
		if level := components.Level.Get(levelEntry).Level; level != nil {
			targetX = clampAxis(targetX, float64(config.C.Width), float64(level.Width))
			targetY = clampAxis(targetY, float64(config.C.Height), float64(level.Height))
		}
	}

	// FollowSmoothing is tuned per 1/60 s
	t := 1 - math.Pow(1-config.Camera.FollowSmoothing, dt*60)
	camera.Position.X += (targetX - camera.Position.X) * t
	camera.Position.Y += (targetY - camera.Position.Y) * t
}

// updateLookOffset eases the vertical look offset toward the player's look
// input. Looking only works while standing still on the ground.
func updateLookOffset(camera *components.CameraData, player *components.PlayerData, dt float64) {
	target := 0.0
	if player.ControllerEnabled && player.Grounded && player.MoveAxis == 0 {
		target = player.LookAxis * config.Player.LookAtDistance
	}
	if target != camera.LookTarget {
		camera.LookTarget = target
		camera.LookTween = gween.New(float32(camera.LookOffset), float32(target), config.Camera.LookTweenDuration, ease.OutQuad)
	}
	if camera.LookTween == nil {
		return
	}
	v, done := camera.LookTween.Update(float32(dt))
	camera.LookOffset = float64(v)
	if done {
		camera.LookOffset = camera.LookTarget
		camera.LookTween = nil
	}
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// updateScreenShake computes the decaying shake offset for this frame.
func updateScreenShake(cameraEntry *donburi.Entry, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 {
		shake.OffsetX, shake.OffsetY = 0, 0
		return
	}

	shake.Elapsed += dt
	current := currentShake(shake)

	// Oscillate at roughly the old per-frame rate
	phase := shake.Elapsed * 60
	shake.OffsetX = math.Sin(phase*1.1) * current
	shake.OffsetY = math.Cos(phase*1.3) * current

	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

func currentShake(shake *components.ScreenShakeData) float64 {
	if shake.Duration <= 0 {
		return 0
	}
	progress := (shake.Duration - shake.Elapsed) / shake.Duration
	if progress < 0 {
		progress = 0
	}
	return shake.Intensity * progress
}

// TriggerScreenShake starts a camera impulse. A weaker impulse does not
// replace a stronger one still running.
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if intensity < currentShake(shake) {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
