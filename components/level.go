package components

import (
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Path  string
}

var Level = donburi.NewComponentType[LevelData]()
