package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/fonts"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	emptyHeart = color.RGBA{R: 60, G: 30, B: 30, A: 255}

	heartVs  []ebiten.Vertex
	heartIs  []uint16
	whiteImg *ebiten.Image
)

// DrawHUD renders the player's hearts and the current combo step in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	size := cfg.UI.HeartSize
	margin := cfg.UI.HUDMargin
	for i := 0; i < hp.Max; i++ {
		c := cfg.Red
		if i >= hp.Current {
			c = emptyHeart
		}
		drawHeart(screen, margin+float64(i)*(size+cfg.UI.HeartGap), margin, size, c)
	}

	combo := components.Combo.Get(playerEntry)
	if combo.Step > 0 {
		label := fmt.Sprintf("COMBO %d", combo.Step)
		text.Draw(screen, label, fonts.Regular.Get(), int(margin), int(margin+size+cfg.UI.HUDFontSize+4), cfg.Yellow)
	}
}

// drawHeart draws two lobes over a triangle.
func drawHeart(screen *ebiten.Image, x, y, size float64, c color.RGBA) {
	r := float32(size / 4)
	fx, fy, fs := float32(x), float32(y), float32(size)
	vector.DrawFilledCircle(screen, fx+r, fy+r, r, c, true)
	vector.DrawFilledCircle(screen, fx+3*r, fy+r, r, c, true)

	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	path := vector.Path{}
	path.MoveTo(fx, fy+r)
	path.LineTo(fx+fs, fy+r)
	path.LineTo(fx+fs/2, fy+fs)
	path.Close()

	heartVs, heartIs = path.AppendVerticesAndIndicesForFilling(heartVs[:0], heartIs[:0])
	for i := range heartVs {
		heartVs[i].ColorR = float32(c.R) / 255
		heartVs[i].ColorG = float32(c.G) / 255
		heartVs[i].ColorB = float32(c.B) / 255
		heartVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(heartVs, heartIs, whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
