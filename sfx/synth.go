package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/adrenaline-rush/config"
)

// Render synthesises a tone into 16-bit little-endian stereo PCM. The pitch
// sweeps exponentially from StartHz to EndHz under a linear decay envelope.
func Render(def cfg.ToneDef, sampleRate int, rng *rand.Rand) []byte {
	n := int(def.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)

	start, end := math.Max(def.StartHz, 1), math.Max(def.EndHz, 1)
	noise := math.Max(0, math.Min(1, def.Noise))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := start * math.Pow(end/start, t)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		// Square-ish body reads better than a pure sine at low volume
		tone := math.Tanh(3 * math.Sin(phase))
		v := tone * (1 - noise)
		if noise > 0 && rng != nil {
			v += (rng.Float64()*2 - 1) * noise
		}
		v *= 1 - t

		sample := int16(math.Max(-1, math.Min(1, v)) * 0.6 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))
	}
	return out
}
