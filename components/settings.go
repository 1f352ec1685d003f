package components

import "github.com/yohamta/donburi"

// SettingsData holds the options the pause overlay can change (singleton).
type SettingsData struct {
	VolumeIndex int // index into config.Settings.VolumeSteps
	Gizmos      bool
	Fullscreen  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
