package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available title menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuGizmos
	MainMenuExit
)

// MenuData stores the current state of the title menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
}

// Menu is the component type for title menu state
var Menu = donburi.NewComponentType[MenuData]()
