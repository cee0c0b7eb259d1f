// internal/state/menu_state.go
package state

import (
	"go-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the title screen. Leaving it begins the game.
type MenuState struct {
	sm   *StateMachine
	play *GameState
}

func NewMenuState(sm *StateMachine, play *GameState) *MenuState {
	return &MenuState{sm: sm, play: play}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.play)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"SIEGE",
		"",
		"Destroy the treasure chest in each fortress.",
		"Aim with the mouse, click or hold Space to fire, 1-3 pick the ammo tier.",
		"Spend the coins you collect in the store between levels.",
		"",
		"Press Space to begin",
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
