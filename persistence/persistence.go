// Package persistence stores settings and best-run statistics through gdata.
// Failures are logged and the game carries on with defaults.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	settingsKey   = "settings"
	bestRunPrefix = "best_"
)

// Settings represents the settings data stored on disk
type Settings struct {
	VolumeIndex int  `json:"volumeIndex"`
	Gizmos      bool `json:"gizmos"`
	Fullscreen  bool `json:"fullscreen"`
}

// BestRun is the best result recorded for one level.
type BestRun struct {
	Level     string  `json:"level"`
	Runs      int     `json:"runs"`
	Kills     int     `json:"kills"`
	Cleared   bool    `json:"cleared"`
	ClearTime float64 `json:"clearTime"` // seconds, only meaningful when Cleared
}

// RunResult is the outcome of a single run.
type RunResult struct {
	Kills   int
	Cleared bool
	Elapsed float64
}

// ItemStore is the subset of gdata.Manager the store uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes saved data. A nil *Store is valid and does nothing.
type Store struct {
	items ItemStore
}

// Open initializes the gdata manager for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("persistence: open %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// LoadSettings returns the saved settings and whether any were found.
func (s *Store) LoadSettings() (Settings, bool) {
	var settings Settings
	if !s.load(settingsKey, &settings) {
		return Settings{}, false
	}
	return settings, true
}

func (s *Store) SaveSettings(settings Settings) error {
	return s.save(settingsKey, settings)
}

// BestRun returns the best run recorded for level.
func (s *Store) BestRun(level string) (BestRun, bool) {
	var best BestRun
	if !s.load(bestRunPrefix+level, &best) {
		return BestRun{Level: level}, false
	}
	return best, true
}

// RecordRun merges a finished run into the level's best and saves it. It
// returns the stored best and whether this run improved it.
func (s *Store) RecordRun(level string, run RunResult) (BestRun, bool) {
	best, _ := s.BestRun(level)
	best.Level = level
	best.Runs++

	improved := Better(run, best)
	if improved {
		best.Kills = run.Kills
		best.Cleared = run.Cleared
		best.ClearTime = 0
		if run.Cleared {
			best.ClearTime = run.Elapsed
		}
	}
	_ = s.save(bestRunPrefix+level, best)
	return best, improved
}

// Better reports whether run beats best. A clear beats any non-clear, faster
// clears beat slower ones, and otherwise more kills win.
func Better(run RunResult, best BestRun) bool {
	switch {
	case run.Cleared && !best.Cleared:
		return true
	case run.Cleared && best.Cleared:
		return run.Elapsed < best.ClearTime
	case !run.Cleared && best.Cleared:
		return false
	}
	return run.Kills > best.Kills
}

func (s *Store) load(key string, v any) bool {
	if s == nil || s.items == nil {
		return false
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) save(key string, v any) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := s.items.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
