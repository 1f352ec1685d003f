package factory

import (
	"math/rand"

	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/nav"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, level *leveldata.Level, path string) *donburi.Entry {
	e := archetypes.Level.Spawn(w)
	components.Level.Set(e, &components.LevelData{Level: level, Path: path})
	return e
}

func CreateNavigation(w donburi.World, grid *nav.Grid) *donburi.Entry {
	e := archetypes.Navigation.Spawn(w)
	components.Navigation.Set(e, &components.NavigationData{Grid: grid})
	return e
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateAudio(w donburi.World) *donburi.Entry {
	return archetypes.Audio.Spawn(w)
}

// CreatePause spawns the pause and settings singleton.
func CreatePause(w donburi.World, settings components.SettingsData) *donburi.Entry {
	e := archetypes.Pause.Spawn(w)
	components.Settings.SetValue(e, settings)
	return e
}

func CreateGameOver(w donburi.World, data components.GameOverData) *donburi.Entry {
	e := archetypes.GameOver.Spawn(w)
	components.GameOver.SetValue(e, data)
	return e
}

func CreateMenu(w donburi.World, options ...components.MainMenuOption) *donburi.Entry {
	e := archetypes.Menu.Spawn(w)
	components.Menu.SetValue(e, components.MenuData{Options: options})
	return e
}

// CreateCloudField fills a cloud range box. A MaxClouds of 0 uses the
// configured count.
func CreateCloudField(w donburi.World, area leveldata.CloudArea, rng *rand.Rand) *donburi.Entry {
	maxClouds := area.MaxClouds
	if maxClouds <= 0 {
		maxClouds = cfg.Clouds.MaxClouds
	}
	e := archetypes.CloudField.Spawn(w)
	field := &components.CloudFieldData{
		X:           area.X,
		Y:           area.Y,
		Width:       area.W,
		Height:      area.H,
		Max:         maxClouds,
		MovementMin: cfg.Clouds.MovementMin,
		MovementMax: cfg.Clouds.MovementMax,
		MaxScale:    cfg.Clouds.MaxScale,
		Variants:    cfg.Clouds.Variants,
		UnitScale:   cfg.Clouds.PixelsPerUnit,
		Rand:        rng,
	}
	field.Fill()
	components.CloudField.Set(e, field)
	return e
}

// CreateWind spawns the wind controller. Grass patches register their
// materials with it as they are created.
func CreateWind(w donburi.World, speed float64) *donburi.Entry {
	e := archetypes.Wind.Spawn(w)
	components.Wind.Set(e, &components.WindData{
		Speed: speed,
		Param: cfg.Wind.Param,
	})
	return e
}

func CreateGrass(w donburi.World, patch leveldata.GrassPatch, wind *donburi.Entry) *donburi.Entry {
	e := archetypes.Grass.Spawn(w)
	mat := components.NewMaterial("grass")
	components.Grass.Set(e, &components.GrassData{
		X:        patch.X,
		Y:        patch.Y + patch.H,
		Width:    patch.W,
		Blades:   patch.Blades,
		Material: mat,
	})
	if wind != nil {
		wd := components.Wind.Get(wind)
		wd.Materials = append(wd.Materials, mat)
	}
	return e
}
