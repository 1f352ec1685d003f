package systems

import (
	"math"
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/systems/factory"
)

func TestStrongestShakeWins(t *testing.T) {
	w := newTestWorld(t)
	cameraEntry, _ := components.Camera.First(w)
	shake := components.ScreenShake.Get(cameraEntry)

	TriggerScreenShake(w, 4, 0.5)
	TriggerScreenShake(w, 2, 1)
	if shake.Intensity != 4 || shake.Duration != 0.5 {
		t.Fatalf("shake = %+v, weaker impulse replaced stronger", *shake)
	}

	// Decayed to half; a 3px impulse now wins
	UpdateCamera(w, 0.25)
	TriggerScreenShake(w, 3, 0.2)
	if shake.Intensity != 3 || shake.Elapsed != 0 {
		t.Fatalf("shake = %+v, want the new impulse", *shake)
	}

	UpdateCamera(w, 0.3)
	if shake.OffsetX != 0 || shake.OffsetY != 0 || shake.Duration != 0 {
		t.Fatalf("shake = %+v, want settled", *shake)
	}
}

func TestShakeOffsetBounded(t *testing.T) {
	w := newTestWorld(t)
	cameraEntry, _ := components.Camera.First(w)
	shake := components.ScreenShake.Get(cameraEntry)

	TriggerScreenShake(w, 5, 1)
	for i := 0; i < 30; i++ {
		UpdateCamera(w, dt60)
		if math.Abs(shake.OffsetX) > 5 || math.Abs(shake.OffsetY) > 5 {
			t.Fatalf("offset (%v, %v) exceeds intensity", shake.OffsetX, shake.OffsetY)
		}
	}
}

func TestLookOffsetTweensToTarget(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 320, floorY)
	cameraEntry, _ := components.Camera.First(w)
	camera := components.Camera.Get(cameraEntry)
	pd := components.Player.Get(player)

	pd.LookAxis = 1
	UpdateCamera(w, dt60)
	if camera.LookOffset <= 0 || camera.LookOffset >= cfg.Player.LookAtDistance {
		t.Fatalf("LookOffset = %v, want partway", camera.LookOffset)
	}
	for i := 0; i < 60; i++ {
		UpdateCamera(w, dt60)
	}
	if camera.LookOffset != cfg.Player.LookAtDistance {
		t.Fatalf("LookOffset = %v, want %v", camera.LookOffset, cfg.Player.LookAtDistance)
	}

	// Moving cancels the look
	pd.MoveAxis = 1
	for i := 0; i < 60; i++ {
		UpdateCamera(w, dt60)
	}
	if camera.LookOffset != 0 {
		t.Fatalf("LookOffset = %v while moving, want 0", camera.LookOffset)
	}
}

func TestCameraClampsToSmallLevel(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 20, floorY)
	cameraEntry, _ := components.Camera.First(w)
	camera := components.Camera.Get(cameraEntry)

	for i := 0; i < 600; i++ {
		UpdateCamera(w, dt60)
	}
	// The test level is exactly one screen, so the camera centers on it
	if math.Abs(camera.Position.X-320) > 0.5 || math.Abs(camera.Position.Y-180) > 0.5 {
		t.Fatalf("camera at %v, want level center", camera.Position)
	}
}
