package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed          float64 // px/s at full axis deflection
	MoveDeadzone       float64 // axis values inside +-deadzone count as zero
	JumpSpeed          float64 // px/s upward on jump
	HangTime           float64 // coyote time in seconds
	JumpBufferTime     float64 // seconds a jump press stays armed
	ShortHopMultiplier float64 // vy multiplier when jump is released while rising
	LookAtDistance     float64 // camera vertical look offset in pixels

	// Ground check
	GroundCheckRadius float64

	// Combat
	MaxHealth                int
	AttackDamage             int
	AttackRange              float64 // radius of the attack circle
	AttackPointOffsetX       float64 // attack point distance in front of the body center
	AttackPointOffsetY       float64
	AttackAnimationResetTime float64 // combo window in seconds
	InvincibilityTime        float64
	KnockbackX               float64 // px/s impulse magnitude
	KnockbackY               float64
	KnockbackOnLethal        bool
	HurtStunTime             float64 // seconds movement input is ignored after a hit

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name              string
	MaxHealth         int
	AttackDamage      int
	ContactDamage     int
	AttackRange       float64 // radius of the swing circle
	AttackReach       float64 // horizontal distance at which a swing starts
	AttackCooldown    float64
	InvincibilityTime float64
	KnockbackX        float64
	KnockbackY        float64
	KnockbackOnLethal bool
	FollowSpeed       float64
	HurtStunTime      float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// AggroConfig drives the periodic aggro poll around the player
type AggroConfig struct {
	Range         float64
	CheckInterval float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         float64 // px/s^2
	MaxFallSpeed    float64
	StunDrag        float64 // px/s^2 horizontal deceleration while hurt-stunned
	DeathZoneMargin float64 // pixels below the map before an entity is killed
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing   float64 // fraction of the distance covered per 1/60 s
	LookTweenDuration float32 // seconds for the vertical look offset to settle
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	PlayerHurtIntensity float64 // pixels
	PlayerHurtDuration  float64 // seconds
	HitIntensity        float64
	HitDuration         float64
}

// FlashConfig holds sprite flash durations in seconds
type FlashConfig struct {
	HurtDuration float64
}

// CloudConfig tunes the procedural cloud field
type CloudConfig struct {
	MaxClouds     int
	MovementMin   float64
	MovementMax   float64
	MaxScale      float64
	PixelsPerUnit float64 // converts the unit-based movement range to pixels
	Variants      int
}

// WindConfig tunes the wind controller
type WindConfig struct {
	DefaultSpeed float64
	Param        string
}

// ParticleConfig contains particle emitter configuration
type ParticleConfig struct {
	FootstepRate     float64 // particles per second
	FootstepLifetime float64
	ImpactCount      int
	ImpactLifetime   float64
	HurtCount        int
	HurtLifetime     float64
	Gravity          float64
	Speed            float64
}

// PathfindingConfig contains nav grid and follow behaviour values
type PathfindingConfig struct {
	CellSize          float64
	RepathInterval    float64
	MaxJumpHeight     float64
	MaxJumpDistance   float64
	WaypointReachDist float64
}

// DeathConfig contains timings for the death sequence
type DeathConfig struct {
	PlayerGameOverDelay float64 // seconds from player death to game over
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HeartSize     float64
	HeartGap      float64
	HUDMargin     float64
	HUDFontSize   float64
	DebugFontSize float64
}

// MenuConfig contains layout and colors for the title and game over menus
type MenuConfig struct {
	Title             string
	ItemHeight        float64
	ItemGap           float64
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	OverlayColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	TickRate  int
	LevelPath string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip the title and go directly to the level
	Gizmos   bool // Draw attack/aggro circles and A* paths
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Aggro AggroConfig
var Physics PhysicsConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Flash FlashConfig
var Clouds CloudConfig
var Wind WindConfig
var Particles ParticleConfig
var Pathfinding PathfindingConfig
var Death DeathConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	GrassGreen   = color.RGBA{R: 70, G: 160, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 170, B: 230, A: 255}
	Stone        = color.RGBA{R: 70, G: 60, B: 80, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	CorpseGray   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		TickRate:  60,
		LevelPath: "levels/level01.tmx",
	}

	Physics = PhysicsConfig{
		Gravity:         1200,
		MaxFallSpeed:    720,
		StunDrag:        900,
		DeathZoneMargin: 64,
	}

	// Unity units were converted at 32 px per unit
	Player = PlayerConfig{
		MoveSpeed:          224,
		MoveDeadzone:       0.4,
		JumpSpeed:          420,
		HangTime:           0.05,
		JumpBufferTime:     0.1,
		ShortHopMultiplier: 0.3,
		LookAtDistance:     112,

		GroundCheckRadius: 4,

		MaxHealth:                3,
		AttackDamage:             1,
		AttackRange:              16,
		AttackPointOffsetX:       14,
		AttackPointOffsetY:       0,
		AttackAnimationResetTime: 0.8,
		InvincibilityTime:        1,
		KnockbackX:               320,
		KnockbackY:               180,
		KnockbackOnLethal:        false,
		HurtStunTime:             0.25,

		CollisionWidth:  14,
		CollisionHeight: 28,
	}

	grunt := EnemyTypeConfig{
		Name:              "Grunt",
		MaxHealth:         2,
		AttackDamage:      1,
		ContactDamage:     1,
		AttackRange:       16,
		AttackReach:       22,
		AttackCooldown:    1,
		InvincibilityTime: 0.2,
		KnockbackX:        320,
		KnockbackY:        180,
		KnockbackOnLethal: true,
		FollowSpeed:       96,
		HurtStunTime:      0.3,
		CollisionWidth:    14,
		CollisionHeight:   24,
		TintColor:         LightRed,
	}

	brute := EnemyTypeConfig{
		Name:              "Brute",
		MaxHealth:         4,
		AttackDamage:      1,
		ContactDamage:     1,
		AttackRange:       20,
		AttackReach:       28,
		AttackCooldown:    1.6,
		InvincibilityTime: 0.3,
		KnockbackX:        200,
		KnockbackY:        120,
		KnockbackOnLethal: true,
		FollowSpeed:       64,
		HurtStunTime:      0.2,
		CollisionWidth:    20,
		CollisionHeight:   30,
		TintColor:         Purple,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Grunt": grunt,
			"Brute": brute,
		},
		DefaultType: "Grunt",
	}

	Aggro = AggroConfig{
		Range:         160,
		CheckInterval: 0.5,
	}

	Camera = CameraConfig{
		FollowSmoothing:   0.12,
		LookTweenDuration: 0.4,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerHurtIntensity: 4,
		PlayerHurtDuration:  0.25,
		HitIntensity:        2.5,
		HitDuration:         0.15,
	}

	Flash = FlashConfig{
		HurtDuration: 0.1,
	}

	Clouds = CloudConfig{
		MaxClouds:     30,
		MovementMin:   0.1,
		MovementMax:   1.5,
		MaxScale:      2,
		PixelsPerUnit: 32,
		Variants:      3,
	}

	Wind = WindConfig{
		DefaultSpeed: 0.5,
		Param:        "_WindSpeed",
	}

	Particles = ParticleConfig{
		FootstepRate:     20,
		FootstepLifetime: 0.35,
		ImpactCount:      10,
		ImpactLifetime:   0.4,
		HurtCount:        14,
		HurtLifetime:     0.5,
		Gravity:          400,
		Speed:            90,
	}

	Pathfinding = PathfindingConfig{
		CellSize:          16,
		RepathInterval:    0.5,
		MaxJumpHeight:     64,
		MaxJumpDistance:   96,
		WaypointReachDist: 6,
	}

	Death = DeathConfig{
		PlayerGameOverDelay: 1.5,
	}

	UI = UIConfig{
		HeartSize:     10,
		HeartGap:      4,
		HUDMargin:     8,
		HUDFontSize:   12,
		DebugFontSize: 10,
	}

	Menu = MenuConfig{
		Title:             "ADRENALINE RUSH",
		ItemHeight:        24,
		ItemGap:           8,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		OverlayColor:      BlackOverlay,
	}
}

// EnemyType returns the configuration for the named enemy type.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	if name == "" {
		name = Enemy.DefaultType
	}
	t, ok := Enemy.Types[name]
	return t, ok
}
