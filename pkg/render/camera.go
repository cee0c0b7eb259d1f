// pkg/render/camera.go
package render

import (
	"go-siege/internal/config"
	"go-siege/pkg/utils"
)

// WorldToScreen maps a world point (y up, ground at 0) to screen pixels.
func WorldToScreen(p utils.Vec2) (float32, float32) {
	return float32(p.X * config.PixelsPerUnit), float32(config.GroundScreenY - p.Y*config.PixelsPerUnit)
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(x, y int) utils.Vec2 {
	return utils.Vec2{
		X: float64(x) / config.PixelsPerUnit,
		Y: (config.GroundScreenY - float64(y)) / config.PixelsPerUnit,
	}
}

// Units converts a world length to pixels.
func Units(l float64) float32 {
	return float32(l * config.PixelsPerUnit)
}
