// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"go-siege/internal/component"
	"go-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a coloured circle showing the session phase. It pulses
// briefly whenever the phase changes.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	phase      component.Phase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// SetPhase records the phase to display.
func (i *StateIndicator) SetPhase(p component.Phase) {
	if p != i.phase {
		i.phase = p
		i.LastChange = time.Now()
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := i.Radius * float32(scale)

	clr := config.PhaseColors[0]
	if int(i.phase) < len(config.PhaseColors) {
		clr = config.PhaseColors[i.phase]
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, radius, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, config.StrokeWidth, config.IndicatorStroke, true)
}
