// Package assets embeds the game's level files.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// FS is the root of the embedded assets. Level paths look like
// "levels/level01.tmx".
var FS fs.FS = levelFS

// LevelsDir is the directory holding the TMX files inside FS.
const LevelsDir = "levels"
