// internal/ui/level_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LevelIndicator shows the level number in Roman numerals with an outline.
type LevelIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewLevelIndicator(x, y int) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            config.PhaseColors[1],
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the level number centred on X. Every fifth level is drawn in
// the failure colour.
func (i *LevelIndicator) Draw(screen *ebiten.Image, face font.Face, number int) {
	label := toRoman(number)
	if label == "" {
		return
	}

	clr := i.Color
	if number%5 == 0 {
		clr = config.PhaseColors[len(config.PhaseColors)-1]
	}

	x := i.X - text.BoundString(face, label).Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, clr)
}
