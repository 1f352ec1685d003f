package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPlayerAttackLight
	SoundPlayerAttackHeavy
	SoundPlayerHurt
	SoundPlayerDeath
	SoundEnemyAttack
	SoundEnemyHurt
	SoundEnemyDeath
	// Movement sounds
	SoundJump
	SoundLand
	// Menu sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// SoundNames are the cue names the sounds were authored under.
var SoundNames = map[SoundID]string{
	SoundPlayerAttackLight: "Player_Attack1",
	SoundPlayerAttackHeavy: "Player_Attack2",
	SoundPlayerHurt:        "Player_Hurt",
	SoundPlayerDeath:       "Player_Death",
	SoundEnemyAttack:       "Enemy_Attack",
	SoundEnemyHurt:         "Enemy_Hurt",
	SoundEnemyDeath:        "Enemy_Death",
	SoundJump:              "Jump",
	SoundLand:              "Land",
	SoundMenuNavigate:      "Menu_Navigate",
	SoundMenuSelect:        "Menu_Select",
}

func (s SoundID) String() string {
	if name, ok := SoundNames[s]; ok {
		return name
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneDef describes a synthesized cue: a frequency sweep with a decay envelope.
type ToneDef struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Noise    float64 // 0..1 mix of white noise
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones             map[SoundID]ToneDef
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundPlayerAttackLight: {StartHz: 900, EndHz: 300, Duration: 0.08, Noise: 0.6},
			SoundPlayerAttackHeavy: {StartHz: 600, EndHz: 120, Duration: 0.14, Noise: 0.7},
			SoundPlayerHurt:        {StartHz: 300, EndHz: 90, Duration: 0.2, Noise: 0.3},
			SoundPlayerDeath:       {StartHz: 400, EndHz: 40, Duration: 0.6, Noise: 0.2},
			SoundEnemyAttack:       {StartHz: 500, EndHz: 200, Duration: 0.1, Noise: 0.5},
			SoundEnemyHurt:         {StartHz: 250, EndHz: 150, Duration: 0.1, Noise: 0.4},
			SoundEnemyDeath:        {StartHz: 200, EndHz: 50, Duration: 0.35, Noise: 0.5},
			SoundJump:              {StartHz: 300, EndHz: 700, Duration: 0.1},
			SoundLand:              {StartHz: 120, EndHz: 60, Duration: 0.06, Noise: 0.8},
			SoundMenuNavigate:      {StartHz: 660, EndHz: 660, Duration: 0.04},
			SoundMenuSelect:        {StartHz: 520, EndHz: 1040, Duration: 0.09},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEnemyHurt:  1.3,
			SoundPlayerHurt: 1.3,
		},
	}
}
