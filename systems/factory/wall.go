package factory

import (
	"github.com/automoto/adrenaline-rush/archetypes"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	addToSpace(w, wall, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid))
	return wall
}

// CreateSensor adds an enemy-tagged collider that has no combat components.
// Overlap queries against the enemy tag see it and must filter it out.
func CreateSensor(w donburi.World, s leveldata.Sensor) *donburi.Entry {
	sensor := archetypes.Sensor.Spawn(w)
	addToSpace(w, sensor, resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvEnemy))
	return sensor
}
