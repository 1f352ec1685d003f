package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Sorting layers, drawn in this order.
const (
	SortingDeadEnemies = "DeadEnemies"
	SortingDefault     = "Default"
)

type SpriteData struct {
	Tint         color.RGBA
	SortingLayer string
}

var Sprite = donburi.NewComponentType[SpriteData]()
