package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/yohamta/donburi"
)

const (
	floorY = 200.0
	dt60   = 1.0 / 64 // exact in binary so timers land on their marks
)

// newTestWorld builds a 640x360 space with a floor at floorY and the
// singletons the systems expect.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 640, 360, 16, 16)
	factory.CreateWall(w, leveldata.Rect{X: 0, Y: floorY, W: 640, H: 16})
	factory.CreateInput(w)
	factory.CreateAudio(w)
	factory.CreateParticles(w, rand.New(rand.NewSource(1)))
	factory.CreateCamera(w, 320, 180)
	factory.CreateLevel(w, &leveldata.Level{Name: "test", Width: 640, Height: 360}, "test")
	return w
}

func spawnEnemy(t *testing.T, w donburi.World, x float64, typeName string) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(w, x, floorY, typeName)
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}
	return e
}

// press returns an input source holding the given actions down.
func press(actions ...cfg.ActionID) InputSource {
	return InputFunc(func(in *components.InputData) {
		for _, a := range actions {
			in.Current[a] = true
		}
	})
}

func pendingSounds(w donburi.World) []cfg.SoundID {
	entry, _ := components.Audio.First(w)
	return components.Audio.Get(entry).PendingSFX
}

type recordingSink struct {
	played []cfg.SoundID
}

func (r *recordingSink) Play(id cfg.SoundID) {
	r.played = append(r.played, id)
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}
