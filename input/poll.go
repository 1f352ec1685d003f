// Package input polls ebitengine keyboard and gamepad state into the
// simulation's input component.
package input

import (
	"strings"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller reads devices once per tick. It satisfies systems.InputSource.
type Poller struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
	// Cache controller types to avoid string allocation every frame
	controllerTypes map[ebiten.GamepadID]components.InputMethod
}

func NewPoller() *Poller {
	return &Poller{controllerTypes: make(map[ebiten.GamepadID]components.InputMethod)}
}

// Poll fills the current frame. Digital directions and the left stick both
// feed the raw axes; the player controller applies its own deadzone.
func (p *Poller) Poll(in *components.InputData) {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	in.MoveAxis = digitalAxis(in.Current[cfg.ActionMoveLeft], in.Current[cfg.ActionMoveRight])
	in.LookAxis = digitalAxis(in.Current[cfg.ActionLookUp], in.Current[cfg.ActionLookDown])

	if h, v, gpID, ok := p.analogStick(); ok {
		if in.MoveAxis == 0 {
			in.MoveAxis = h
		}
		if in.LookAxis == 0 {
			in.LookAxis = v
		}
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		in.LastInputMethod = p.controllerType(activeGamepadID)
	} else if keyboardUsed {
		in.LastInputMethod = components.InputKeyboard
	}
}

func digitalAxis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}

// analogStick returns the first left stick outside the deadzone.
func (p *Poller) analogStick() (h, v float64, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h > -deadzone && h < deadzone {
			h = 0
		}
		if v > -deadzone && v < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return h, v, id, true
		}
	}
	return 0, 0, 0, false
}

// controllerType returns the cached controller type, detecting on first access
func (p *Poller) controllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := p.controllerTypes[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	p.controllerTypes[gpID] = method
	return method
}
