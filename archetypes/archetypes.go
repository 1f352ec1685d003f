package archetypes

import (
	"github.com/automoto/adrenaline-rush/components"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animator,
		components.Physics,
		components.State,
		components.Combo,
		components.MeleeAttack,
		components.HitBatch,
		components.Aggro,
		components.Flash,
		components.Emitter,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animator,
		components.Physics,
		components.State,
		components.MeleeAttack,
		components.Pathfinder,
		components.Flash,
		components.Sprite,
	)
	Sensor = newArchetype(
		tags.Sensor,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Particles = newArchetype(
		components.Particles,
	)
	Navigation = newArchetype(
		components.Navigation,
	)
	CloudField = newArchetype(
		tags.CloudField,
		components.CloudField,
	)
	Wind = newArchetype(
		components.Wind,
	)
	Grass = newArchetype(
		tags.Grass,
		components.Grass,
	)
	Pause = newArchetype(
		components.Pause,
		components.Settings,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
