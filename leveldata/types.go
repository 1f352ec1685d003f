// Package leveldata parses TMX levels into plain data. It has no dependencies
// on ebitengine, donburi or resolv so the simulation can load levels headless.
package leveldata

// Rect is an axis-aligned box in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name   string
	Width  int // pixels
	Height int

	Solids []Rect

	// Spawns are feet positions: the bottom center of the collider.
	PlayerSpawn    Point
	HasPlayerSpawn bool
	EnemySpawns    []EnemySpawn

	Sensors []Sensor
	Clouds  []CloudArea
	Grass   []GrassPatch
}

// EnemySpawn places one enemy. An empty Type means the default enemy type.
type EnemySpawn struct {
	Point
	Type string
}

// Sensor is an enemy-tagged collider without combat.
type Sensor struct {
	Rect
	Name string
}

// CloudArea is the range box clouds drift across.
type CloudArea struct {
	Rect
	MaxClouds int // 0 keeps the configured default
}

// GrassPatch is a strip of foreground grass driven by the wind parameter.
type GrassPatch struct {
	Rect
	Blades    int
	WindSpeed float64 // 0 keeps the configured default
}
