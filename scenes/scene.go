package scenes

import (
	"image/color"

	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/persistence"
	"github.com/automoto/adrenaline-rush/sfx"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Env is what every scene shares: the loaded level, devices and saved
// settings. Audio and Store may be nil.
type Env struct {
	Level     *leveldata.Level
	LevelPath string
	Seed      int64
	Input     systems.InputSource
	Audio     *sfx.Player
	Store     *persistence.Store
	Settings  components.SettingsData
}

// sink keeps a nil player from becoming a non-nil interface.
func (env *Env) sink() systems.AudioSink {
	if env.Audio == nil {
		return nil
	}
	return env.Audio
}

// ApplySettings pushes the current settings to the audio player and window.
func (env *Env) ApplySettings() {
	if env.Audio != nil {
		env.Audio.SetVolume(systems.Volume(&env.Settings))
	}
	ebiten.SetFullscreen(env.Settings.Fullscreen)
}

// SaveSettings applies and persists the current settings.
func (env *Env) SaveSettings() {
	env.ApplySettings()
	// The store logs its own failures
	_ = env.Store.SaveSettings(persistence.Settings{
		VolumeIndex: env.Settings.VolumeIndex,
		Gizmos:      env.Settings.Gizmos,
		Fullscreen:  env.Settings.Fullscreen,
	})
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	width := font.MeasureString(face, s).Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, y, c)
}
