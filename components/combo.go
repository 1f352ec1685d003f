package components

import "github.com/yohamta/donburi"

// ComboData tracks the grounded attack chain. Step is 0 when idle and cycles
// 1, 2, 3, 1 while presses land inside Window seconds of each other.
type ComboData struct {
	Step       int
	ResetTimer float64
	Window     float64
}

// Press advances the combo and returns the step to play.
func (c *ComboData) Press() int {
	if c.ResetTimer > 0 {
		if c.Step >= 3 {
			c.Step = 1
		} else {
			c.Step++
		}
	} else {
		c.Step = 1
	}
	c.ResetTimer = c.Window
	return c.Step
}

// Tick counts the window down and drops back to idle once it runs out.
func (c *ComboData) Tick(dt float64) {
	if c.ResetTimer > 0 {
		c.ResetTimer -= dt
		if c.ResetTimer > 0 {
			return
		}
		c.ResetTimer = 0
	}
	c.Step = 0
}

var Combo = donburi.NewComponentType[ComboData]()
