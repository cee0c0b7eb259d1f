// pkg/render/color.go
package render

import (
	"image/color"

	"go-siege/internal/defs"
)

// SceneColors holds the colours used for the static parts of the scene.
type SceneColors struct {
	Sky         color.RGBA
	Ground      color.RGBA
	Cannon      color.RGBA
	Coin        color.RGBA
	Turret      color.RGBA
	HostileShot color.RGBA
	Flash       color.RGBA
	StrokeWidth float32
}

// BlockColors maps block types to their fill colour.
var BlockColors = map[defs.BlockType]color.RGBA{
	defs.BlockStone:         {128, 128, 128, 255},
	defs.BlockIron:          {96, 105, 120, 255},
	defs.BlockGold:          {230, 190, 40, 255},
	defs.BlockSilver:        {200, 205, 215, 255},
	defs.BlockDiamond:       {120, 230, 240, 255},
	defs.BlockWindow:        {150, 200, 240, 160},
	defs.BlockRoof:          {150, 60, 45, 255},
	defs.BlockTreasureChest: {160, 100, 30, 255},
}

// DarkenColor scales the brightness of c by factor, keeping alpha.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// DamagedColor darkens a block colour as it loses health, down to half
// brightness when nearly destroyed.
func DamagedColor(c color.RGBA, damagePercent float64) color.RGBA {
	damagePercent = min(max(damagePercent, 0), 1)
	return DarkenColor(c, 1-0.5*damagePercent)
}

// MixColor blends a towards b by t in [0, 1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
