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

func TestCloudsDriftRightAndRespawnLeft(t *testing.T) {
	w := donburi.NewWorld()
	e := factory.CreateCloudField(w, leveldata.CloudArea{
		Rect:      leveldata.Rect{W: 200, H: 50},
		MaxClouds: 5,
	}, rand.New(rand.NewSource(7)))
	field := components.CloudField.Get(e)

	if len(field.Clouds) != 5 {
		t.Fatalf("got %d clouds, want 5", len(field.Clouds))
	}
	before := make([]float64, len(field.Clouds))
	for i, c := range field.Clouds {
		before[i] = c.X
	}

	UpdateClouds(w, dt60)
	for i, c := range field.Clouds {
		if c.X <= before[i] && c.X != -field.Extension() {
			t.Fatalf("cloud %d moved from %v to %v", i, before[i], c.X)
		}
	}

	field.Clouds[0].X = field.Extension() - 0.001
	for i := 0; i < 10; i++ {
		UpdateClouds(w, dt60)
	}
	if len(field.Clouds) != 5 {
		t.Fatalf("cloud count changed to %d", len(field.Clouds))
	}
	if x := field.Clouds[0].X; x > -field.Extension()+10*cfg.Clouds.MovementMax*cfg.Clouds.PixelsPerUnit*dt60 {
		t.Fatalf("cloud 0 at %v, want respawned on the left edge", x)
	}
	for i, c := range field.Clouds {
		if c.Y < 0 || c.Y > field.Height {
			t.Fatalf("cloud %d Y = %v outside the box", i, c.Y)
		}
		if c.Scale < 1 || c.Scale > cfg.Clouds.MaxScale {
			t.Fatalf("cloud %d scale = %v", i, c.Scale)
		}
	}
}

func TestCloudRespawnsBeforeMoving(t *testing.T) {
	w := donburi.NewWorld()
	e := factory.CreateCloudField(w, leveldata.CloudArea{
		Rect:      leveldata.Rect{W: 200, H: 50},
		MaxClouds: 1,
	}, rand.New(rand.NewSource(5)))
	field := components.CloudField.Get(e)
	ext := field.Extension()
	maxStep := cfg.Clouds.MovementMax * cfg.Clouds.PixelsPerUnit * dt60

	// Just inside the edge: the step carries it past, and it stays there
	// until the next frame's check
	field.Clouds[0].X = ext - 1e-9
	UpdateClouds(w, dt60)
	if x := field.Clouds[0].X; x < ext {
		t.Fatalf("cloud at %v, want moved past the edge %v", x, ext)
	}

	// Past the edge: respawned on the left, then moved in the same frame
	UpdateClouds(w, dt60)
	if x := field.Clouds[0].X; x <= -ext || x > -ext+maxStep {
		t.Fatalf("cloud at %v, want one step right of the left edge %v", x, -ext)
	}
}

func TestCloudStepNeverOvershootsWithLargeDelta(t *testing.T) {
	w := donburi.NewWorld()
	e := factory.CreateCloudField(w, leveldata.CloudArea{
		Rect:      leveldata.Rect{W: 1000, H: 50},
		MaxClouds: 1,
	}, rand.New(rand.NewSource(3)))
	field := components.CloudField.Get(e)
	field.Clouds[0].X = 0

	UpdateClouds(w, 5)
	if x := field.Clouds[0].X; x > cfg.Clouds.MovementMax*cfg.Clouds.PixelsPerUnit {
		t.Fatalf("cloud moved %v in one frame", x)
	}
}

func TestSyncWindWritesOnlyWhenStale(t *testing.T) {
	a, b := components.NewMaterial("a"), components.NewMaterial("b")
	wind := &components.WindData{Speed: 0.8, Param: cfg.Wind.Param, Materials: []*components.Material{a, b}}

	if !SyncWind(wind) {
		t.Fatal("first sync wrote nothing")
	}
	if a.GetFloat(cfg.Wind.Param) != 0.8 || b.GetFloat(cfg.Wind.Param) != 0.8 {
		t.Fatal("materials not updated")
	}
	if SyncWind(wind) {
		t.Fatal("second sync wrote again")
	}

	wind.Speed = 0.2
	if !SyncWind(wind) || a.GetFloat(cfg.Wind.Param) != 0.2 || b.GetFloat(cfg.Wind.Param) != 0.2 {
		t.Fatal("speed change not propagated")
	}
	if SyncWind(wind) {
		t.Fatal("sync after the change wrote again")
	}
}

func TestSyncWindEmptyIsNoop(t *testing.T) {
	wind := &components.WindData{Speed: 1, Param: cfg.Wind.Param}
	if SyncWind(wind) {
		t.Fatal("sync with no materials reported a write")
	}
}

func TestUpdateWindSwaysGrass(t *testing.T) {
	w := donburi.NewWorld()
	windEntry := factory.CreateWind(w, 0.5)
	grassEntry := factory.CreateGrass(w, leveldata.GrassPatch{
		Rect:   leveldata.Rect{X: 10, Y: 100, W: 64, H: 12},
		Blades: 8,
	}, windEntry)

	UpdateWind(w, dt60)

	grass := components.Grass.Get(grassEntry)
	if got := grass.Material.GetFloat(cfg.Wind.Param); got != 0.5 {
		t.Fatalf("grass wind = %v, want 0.5", got)
	}
	if grass.Phase <= 0 {
		t.Fatal("grass phase did not advance")
	}
}
