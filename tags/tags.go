package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Sensor     = donburi.NewTag().SetName("Sensor")
	CloudField = donburi.NewTag().SetName("CloudField")
	Grass      = donburi.NewTag().SetName("Grass")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	// ResolvDead is the collision layer for corpses. Solids still stop
	// them but nothing queries it for contacts.
	ResolvDead      = "dead"
	ResolvCharacter = "character"
	ResolvProbe     = "probe"
)
