package components

import (
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// AudioData queues one-shot cues for the audio sink (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
