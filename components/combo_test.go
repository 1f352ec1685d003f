package components

import "testing"

func TestComboCyclesWithinWindow(t *testing.T) {
	c := ComboData{Window: 0.8}
	want := []int{1, 2, 3, 1, 2, 3, 1}
	for i, w := range want {
		if i > 0 {
			c.Tick(0.3)
		}
		if got := c.Press(); got != w {
			t.Fatalf("press %d: step = %d, want %d", i, got, w)
		}
	}
}

func TestComboRestartsAfterGap(t *testing.T) {
	tests := []struct {
		name  string
		steps int // presses before the gap
		gap   float64
	}{
		{"after step 1", 1, 0.81},
		{"after step 2", 2, 1.5},
		{"after step 3", 3, 10},
		{"exactly the window", 2, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComboData{Window: 0.8}
			for i := 0; i < tt.steps; i++ {
				c.Press()
				c.Tick(0.1)
			}
			c.Tick(tt.gap)
			if got := c.Press(); got != 1 {
				t.Fatalf("step = %d, want 1", got)
			}
		})
	}
}

func TestComboTimerExpiryResetsToIdle(t *testing.T) {
	c := ComboData{Window: 0.8}
	c.Press()
	c.Press()
	if c.Step != 2 {
		t.Fatalf("step = %d, want 2", c.Step)
	}
	for i := 0; i < 10; i++ {
		c.Tick(0.1)
	}
	if c.Step != 0 || c.ResetTimer != 0 {
		t.Fatalf("combo = %+v, want idle", c)
	}
}

func TestComboPressRefreshesWindow(t *testing.T) {
	c := ComboData{Window: 0.8}
	c.Press()
	c.Tick(0.7)
	c.Press()
	if c.ResetTimer != 0.8 {
		t.Fatalf("ResetTimer = %v, want full window", c.ResetTimer)
	}
	c.Tick(0.7)
	if got := c.Press(); got != 3 {
		t.Fatalf("step = %d, want 3", got)
	}
}
