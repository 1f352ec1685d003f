package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
)

// Volume returns the volume for the settings' step, clamping stale indices.
func Volume(s *components.SettingsData) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return cfg.Audio.DefaultSFXVol
	}
	i := s.VolumeIndex
	if i < 0 || i >= len(steps) {
		i = min(max(cfg.Settings.DefaultVolumeIndex, 0), len(steps)-1)
	}
	return steps[i]
}

// CycleVolume advances to the next volume step, wrapping to mute.
func CycleVolume(s *components.SettingsData) {
	if n := len(cfg.Settings.VolumeSteps); n > 0 {
		s.VolumeIndex = (s.VolumeIndex + 1) % n
	}
}

// DefaultSettings is used when nothing was saved.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		VolumeIndex: cfg.Settings.DefaultVolumeIndex,
		Gizmos:      cfg.Debug.Gizmos,
	}
}
