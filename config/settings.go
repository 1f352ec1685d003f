package config

// SettingsConfig contains the adjustable options exposed in the pause overlay
type SettingsConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
	}
}
