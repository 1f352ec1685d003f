package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tile layer and object group names read from TMX files.
const (
	SolidTileLayer    = "wg-tiles"
	SolidsGroup       = "Solids"
	PlayerSpawnGroup  = "PlayerSpawn"
	EnemySpawnGroup   = "EnemySpawn"
	SensorsGroup      = "Sensors"
	CloudsGroup       = "Clouds"
	GrassGroup        = "Grass"
	defaultGrassBlade = 8.0 // pixels of patch width per blade when unset
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if level.Width <= 0 || level.Height <= 0 {
		return nil, fmt.Errorf("leveldata: %s has an empty map", tmxPath)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidTileLayer {
			continue
		}
		level.Solids = append(level.Solids, solidRuns(layer, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidsGroup:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerSpawnGroup:
			// Leftmost spawn wins when a map carries several
			for _, o := range og.Objects {
				if !level.HasPlayerSpawn || o.X < level.PlayerSpawn.X {
					level.PlayerSpawn = Point{X: o.X, Y: o.Y}
					level.HasPlayerSpawn = true
				}
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Point: Point{X: o.X, Y: o.Y},
					Type:  o.Properties.GetString("type"),
				})
			}
		case SensorsGroup:
			for _, o := range og.Objects {
				level.Sensors = append(level.Sensors, Sensor{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Name: o.Name,
				})
			}
		case CloudsGroup:
			for _, o := range og.Objects {
				level.Clouds = append(level.Clouds, CloudArea{
					Rect:      Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					MaxClouds: o.Properties.GetInt("maxClouds"),
				})
			}
		case GrassGroup:
			for _, o := range og.Objects {
				blades := o.Properties.GetInt("blades")
				if blades <= 0 {
					blades = max(1, int(o.Width/defaultGrassBlade))
				}
				level.Grass = append(level.Grass, GrassPatch{
					Rect:      Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Blades:    blades,
					WindSpeed: o.Properties.GetFloat("windSpeed"),
				})
			}
		}
	}

	// Spawn order left to right for consistent entity ids
	sort.SliceStable(level.EnemySpawns, func(i, j int) bool {
		return level.EnemySpawns[i].X < level.EnemySpawns[j].X
	})

	return level, nil
}

// solidRuns merges each row's consecutive solid tiles into one rectangle.
func solidRuns(layer *tiled.Layer, width, height int, tileW, tileH float64) []Rect {
	var rects []Rect
	for y := 0; y < height; y++ {
		start := -1
		for x := 0; x <= width; x++ {
			solid := x < width && !layer.Tiles[y*width+x].IsNil()
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				rects = append(rects, Rect{
					X: float64(start) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-start) * tileW,
					H: tileH,
				})
				start = -1
			}
		}
	}
	return rects
}

// LoadPath reads a level by path. A path that exists on disk is read from
// there so edited maps load without a rebuild; anything else comes from
// fallback, normally the embedded assets.
func LoadPath(fallback fs.FS, p string) (*Level, error) {
	if _, err := os.Stat(p); err == nil {
		return Load(os.DirFS(filepath.Dir(p)), filepath.Base(p))
	}
	return Load(fallback, p)
}

// LoadAll discovers all .tmx files in dir within fsys and loads each, keyed by
// stem name, plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("leveldata: no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}
	sort.Strings(names)
	return levels, names, nil
}
