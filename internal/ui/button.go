// internal/ui/button.go
package ui

import (
	"image/color"

	"go-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	X, Y          float32
	Width, Height float32
	Text          string
	Enabled       bool
}

func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{X: x, Y: y, Width: width, Height: height, Text: label, Enabled: true}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Clicked reports a click on an enabled button.
func (b *Button) Clicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := config.ButtonColor
	fg := config.TextLightColor
	if !b.Enabled {
		bg = config.ButtonDisabled
		fg = color.RGBA{170, 170, 170, 255}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, config.StrokeWidth, config.IndicatorStroke, false)

	bounds := text.BoundString(face, b.Text)
	tx := int(b.X) + (int(b.Width)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, fg)
}
