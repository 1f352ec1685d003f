// Command headless runs a level without a window. The player is driven by
// the autopilot and a summary is logged when the run ends.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/adrenaline-rush/assets"
	"github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/leveldata"
	"github.com/automoto/adrenaline-rush/sim"
	"github.com/joho/godotenv"
)

// cueCounter tallies sound cues instead of playing them.
type cueCounter map[config.SoundID]int

func (c cueCounter) Play(id config.SoundID) { c[id]++ }

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not read .env: %v", err)
	}

	levelPath := flag.String("level", config.C.LevelPath, "TMX level to run")
	tuningPath := flag.String("tuning", os.Getenv("ADRENALINE_TUNING"), "YAML tuning overrides")
	seed := flag.Int64("seed", 1, "Random seed")
	seconds := flag.Float64("seconds", 60, "Simulated seconds before giving up")
	realtime := flag.Bool("realtime", false, "Step on a wall-clock ticker instead of as fast as possible")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	level, err := leveldata.LoadPath(assets.FS, *levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	cues := cueCounter{}
	s, err := sim.New(level, sim.Options{Seed: *seed, Path: *levelPath, Audio: cues})
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	s.SetInput(sim.NewAutopilot(s))

	tickRate := config.C.TickRate
	maxTicks := int(*seconds * float64(tickRate))
	running := func(s *sim.Simulation) bool {
		return int(s.Ticks()) < maxTicks && !s.GameOver() && !s.Stats().Cleared()
	}

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := s.Loop(ctx, tickRate, running); err != nil && ctx.Err() == nil {
			log.Fatalf("Simulation loop: %v", err)
		}
	} else {
		s.Run(maxTicks, 1/float64(tickRate), running)
	}

	st := s.Stats()
	log.Printf("Level %s: %d/%d enemies defeated in %.2fs, player health %d, cleared=%v",
		level.Name, st.Kills, st.Enemies, st.Elapsed, st.PlayerHealth, st.Cleared())
	for id, n := range cues {
		log.Printf("  %-16s x%d", id, n)
	}
}
