// Package sfx plays the game's synthesised sound cues through ebitengine
// audio.
package sfx

import (
	"log"
	"math/rand"

	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player caches rendered cues and plays them. It satisfies
// systems.AudioSink.
type Player struct {
	context *audio.Context
	cache   map[cfg.SoundID][]byte
	volume  float64
	rng     *rand.Rand
}

// New creates a player on ctx. Creating the context is left to the caller
// since ebitengine allows only one per process.
func New(ctx *audio.Context) *Player {
	return &Player{
		context: ctx,
		cache:   make(map[cfg.SoundID][]byte),
		volume:  cfg.Audio.DefaultSFXVol,
		rng:     rand.New(rand.NewSource(1)),
	}
}

// Preload renders every configured cue so the first play does not stall.
func (p *Player) Preload() {
	for id := range cfg.Sound.Tones {
		p.pcm(id)
	}
}

func (p *Player) SetVolume(v float64) {
	p.volume = v
}

func (p *Player) Volume() float64 {
	return p.volume
}

// Play starts a new voice for id. Unknown cues are ignored.
func (p *Player) Play(id cfg.SoundID) {
	if p == nil || p.context == nil || p.volume <= 0 {
		return
	}
	data := p.pcm(id)
	if data == nil {
		return
	}
	player := p.context.NewPlayerFromBytes(data)
	vol := p.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	player.SetVolume(min(vol, 1))
	player.Play()
}

func (p *Player) pcm(id cfg.SoundID) []byte {
	if data, ok := p.cache[id]; ok {
		return data
	}
	def, ok := cfg.Sound.Tones[id]
	if !ok {
		log.Printf("Warning: no tone for sound %s", id)
		p.cache[id] = nil
		return nil
	}
	data := Render(def, p.context.SampleRate(), p.rng)
	p.cache[id] = data
	return data
}
