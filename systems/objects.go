package systems

import (
	"github.com/automoto/adrenaline-rush/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects re-registers every collider with the cells it now covers.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
