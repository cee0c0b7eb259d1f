// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

var emptyCell = color.RGBA{0, 0, 0, 255}

// PlayerHealthIndicator shows the hull and the shield as rows of pips.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw renders the hull pips and, when maxShield > 0, the shield pips below
// them.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth, shield, maxShield int) {
	rows := i.drawPips(screen, i.Y, health, maxHealth, config.HullColor)
	if maxShield > 0 {
		i.drawPips(screen, i.Y+float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing), shield, maxShield, config.ShieldColor)
	}

	label := "Hull " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	if maxShield > 0 {
		label += "  Shield " + strconv.Itoa(shield) + "/" + strconv.Itoa(maxShield)
	}
	text.Draw(screen, label, face, int(i.X), int(i.Y)-config.TextOffsetY*2, config.TextLightColor)
}

func (i *PlayerHealthIndicator) drawPips(screen *ebiten.Image, top float32, value, maxValue int, clr color.RGBA) int {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxValue; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := top + float32(j/HealthCols)*step + HealthCircleRadius
		fill := emptyCell
		if j < value {
			fill = clr
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.IndicatorStroke, true)
	}
	return (maxValue + HealthCols - 1) / HealthCols
}
