package systems

import (
	"slices"
	"testing"

	cfg "github.com/automoto/adrenaline-rush/config"
)

func TestUpdateAudioDrainsInOrder(t *testing.T) {
	w := newTestWorld(t)
	PlaySFX(w, cfg.SoundJump)
	PlaySFX(w, cfg.SoundLand)

	sink := &recordingSink{}
	UpdateAudio(w, sink)
	if want := []cfg.SoundID{cfg.SoundJump, cfg.SoundLand}; !slices.Equal(sink.played, want) {
		t.Fatalf("played %v, want %v", sink.played, want)
	}
	if len(pendingSounds(w)) != 0 {
		t.Fatal("queue not drained")
	}
}

func TestUpdateAudioNilSinkDrops(t *testing.T) {
	w := newTestWorld(t)
	PlaySFX(w, cfg.SoundJump)
	UpdateAudio(w, nil)
	if len(pendingSounds(w)) != 0 {
		t.Fatal("nil sink left cues queued")
	}
}
