package render

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GrassShader sways grass blades by the wind parameter. When nil the
	// blades are drawn as vector lines.
	GrassShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	grassSrc, err := shaderFS.ReadFile("shaders/grass.kage")
	if err != nil {
		return fmt.Errorf("render: read grass shader: %w", err)
	}
	GrassShader, err = ebiten.NewShader(grassSrc)
	if err != nil {
		return fmt.Errorf("render: compile grass shader: %w", err)
	}
	return nil
}
