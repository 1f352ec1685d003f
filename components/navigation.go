package components

import (
	"github.com/automoto/adrenaline-rush/nav"
	"github.com/yohamta/donburi"
)

// NavigationData holds the level's nav grid (singleton component).
type NavigationData struct {
	Grid *nav.Grid
}

var Navigation = donburi.NewComponentType[NavigationData]()
