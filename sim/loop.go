package sim

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Loop steps the simulation on a ticker at tickRate until ctx is cancelled
// or after returns false. after runs once per tick and may be nil.
func (s *Simulation) Loop(ctx context.Context, tickRate int, after func(*Simulation) bool) error {
	if tickRate <= 0 {
		return fmt.Errorf("sim: invalid tick rate %d", tickRate)
	}
	dt := 1 / float64(tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Simulation loop stopped after %d ticks", s.ticks)
			return ctx.Err()
		case <-ticker.C:
			s.Step(dt)
			if after != nil && !after(s) {
				log.Printf("Simulation loop finished after %d ticks", s.ticks)
				return nil
			}
		}
	}
}

// Run steps the simulation as fast as possible for n ticks of dt, stopping
// early when after returns false.
func (s *Simulation) Run(n int, dt float64, after func(*Simulation) bool) {
	for i := 0; i < n; i++ {
		s.Step(dt)
		if after != nil && !after(s) {
			return
		}
	}
}
