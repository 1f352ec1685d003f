package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/yohamta/donburi"
)

// AudioSink plays sound cues. The game plays them through ebiten audio;
// headless runs record or drop them.
type AudioSink interface {
	Play(id cfg.SoundID)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(w donburi.World, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// UpdateAudio drains pending sound effects into sink. A nil sink drops them.
func UpdateAudio(w donburi.World, sink AudioSink) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if sink != nil {
		for _, soundID := range audioData.PendingSFX {
			sink.Play(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
