// internal/tui/renderer.go
package tui

import (
	"errors"
	"fmt"
	"math"

	"go-siege/internal/app"
	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/system"
	"go-siege/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// colsPerUnit keeps world cells roughly square on a terminal grid.
const colsPerUnit = 2

var blockColors = map[defs.BlockType]tcell.Color{
	defs.BlockStone:         tcell.ColorGray,
	defs.BlockIron:          tcell.ColorSlateGray,
	defs.BlockGold:          tcell.ColorGold,
	defs.BlockSilver:        tcell.ColorSilver,
	defs.BlockDiamond:       tcell.ColorAqua,
	defs.BlockWindow:        tcell.ColorLightBlue,
	defs.BlockRoof:          tcell.ColorMaroon,
	defs.BlockTreasureChest: tcell.ColorYellow,
}

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleCoin   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
)

// Renderer draws a Game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) groundRow() int {
	_, h := r.screen.Size()
	return h - 3
}

// cell maps a world point to a screen column and row.
func (r *Renderer) cell(p utils.Vec2) (int, int) {
	return int(math.Floor(p.X * colsPerUnit)), r.groundRow() - 1 - int(math.Floor(p.Y))
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, style)
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(g *app.Game, aim utils.Vec2, tier defs.Tier) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	ground := r.groundRow()
	for x := 0; x < w; x++ {
		r.put(x, ground, '=', styleGround)
	}

	r.drawBlocks(g)
	r.drawCannon(g, aim)
	r.drawProjectiles(g)
	if g.Coins != nil {
		for _, c := range g.Coins.Coins() {
			x, y := r.cell(c.Position)
			r.put(x, y, '$', styleCoin)
		}
	}
	r.drawHUD(g, tier)

	switch g.Phase() {
	case component.PhaseMainMenu:
		r.text(2, 3, "SIEGE  -  press Enter to begin, Esc to quit", styleText)
	case component.PhasePreparing:
		r.drawStore(g)
	case component.PhaseResolving:
		r.text(2, 3, "Objective destroyed! Gathering coins...", styleGood)
	case component.PhaseFailed:
		r.text(2, 3, "Level failed. Enter to retry, R to restart.", styleAlert)
	}
	if err := g.SessionSystem.LastError(); err != nil {
		r.text(2, ground+1, err.Error(), styleAlert)
	}

	r.screen.Show()
}

func (r *Renderer) drawBlocks(g *app.Game) {
	for _, id := range g.ECS.BlockIDs() {
		b := g.ECS.Blocks[id]
		x, y := r.cell(b.Position.Sub(utils.Vec2{X: config.CellSize / 2}))
		style := tcell.StyleDefault.Foreground(blockColors[b.Type])
		if b.DamagePercent() >= 0.5 {
			style = style.Dim(true)
		}
		glyph := rune(b.Type.Glyph())
		for i := 0; i < colsPerUnit; i++ {
			r.put(x+i, y, glyph, style)
		}
	}
	for _, id := range g.ECS.TurretIDs() {
		x, y := r.cell(g.ECS.Turrets[id].Position)
		r.put(x, y, 'X', styleAlert)
	}
}

func (r *Renderer) drawCannon(g *app.Game, aim utils.Vec2) {
	x, y := r.cell(g.ECS.Cannon.Position)
	r.put(x, y, 'C', styleText)
	for i := 1; i <= 3; i++ {
		px, py := r.cell(g.MuzzlePosition(aim).Add(aim.Normalize().Scale(float64(i) * 0.6)))
		r.put(px, py, '.', styleDim)
	}
}

func (r *Renderer) drawProjectiles(g *app.Game) {
	for _, id := range g.ECS.ProjectileIDs() {
		p := g.ECS.Projectiles[id]
		x, y := r.cell(*g.ECS.Positions[id])
		switch {
		case p.Hostile:
			r.put(x, y, '*', styleAlert)
		case p.Weak:
			r.put(x, y, '.', styleText)
		default:
			r.put(x, y, 'o', styleText)
		}
	}
}

func (r *Renderer) drawHUD(g *app.Game, tier defs.Tier) {
	sess := g.Session()
	eco := g.Economy()

	level := "-"
	if sess.Level != nil {
		level = fmt.Sprintf("%d %s", sess.Level.Number, sess.Level.Name)
	}
	r.text(0, 0, fmt.Sprintf("[%s] Level %s", sess.Phase, level), styleText)

	hud := fmt.Sprintf("Coins %d  Ammo %d/%d  Tier %s  Hull %d/%d",
		eco.Coins, eco.AmmoCurrent, eco.AmmoMax, min(tier, eco.AmmoTier), eco.HealthCurrent, eco.HealthMax)
	if eco.ShieldUnlocked {
		hud += fmt.Sprintf("  Shield %d/%d", eco.ShieldCurrentHP, eco.ShieldMaxHP)
	}
	if eco.AmmoCurrent == 0 && sess.Phase == component.PhaseActive {
		hud += "  WEAK SHOTS ONLY"
	}
	r.text(0, 1, hud, styleText)

	if sess.Phase == component.PhaseActive && sess.HasTimeLimit {
		left := sess.TimeRemaining()
		style := styleText
		if left <= 5 {
			style = styleAlert
		}
		r.text(0, 2, fmt.Sprintf("Time %.0f", math.Ceil(left)), style)
	}
}

func (r *Renderer) drawStore(g *app.Game) {
	r.text(2, 3, "STORE  (number to buy, Enter to start)", styleText)
	for i, id := range defs.StoreOrder {
		cost, err := g.Ledger.Cost(id)
		price := fmt.Sprintf("%d", cost)
		style := styleText
		switch {
		case errors.Is(err, system.ErrUpgradeMaxed):
			price, style = "MAX", styleDim
		case err != nil:
			price, style = "locked", styleDim
		case cost > g.Ledger.Coins():
			style = styleDim
		}
		r.text(4, 4+i, fmt.Sprintf("%d  %-16s %s", i+1, id.Label(), price), style)
	}
}
