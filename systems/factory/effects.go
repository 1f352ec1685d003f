package factory

import (
	"math/rand"

	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/components"
	"github.com/yohamta/donburi"
)

// CreateParticles spawns the particle pool singleton.
func CreateParticles(w donburi.World, rng *rand.Rand) *donburi.Entry {
	e := archetypes.Particles.Spawn(w)
	components.Particles.Set(e, &components.ParticlesData{Rand: rng})
	return e
}
