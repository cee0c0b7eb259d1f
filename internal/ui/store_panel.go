// internal/ui/store_panel.go
package ui

import (
	"errors"
	"fmt"

	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/interfaces"
	"go-siege/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	storeButtonWidth  = 260
	storeButtonHeight = 32
	storeButtonGap    = 8
)

// Pricer quotes store prices against the current balance.
type Pricer interface {
	Cost(id defs.UpgradeID) (int, error)
	Coins() int
}

// StorePanel lists the upgrades and the start button while preparing.
type StorePanel struct {
	X, Y    float32
	items   []*Button
	ids     []defs.UpgradeID
	start   *Button
	message string
}

func NewStorePanel(x, y float32) *StorePanel {
	p := &StorePanel{X: x, Y: y}
	for i, id := range defs.StoreOrder {
		by := y + 30 + float32(i)*(storeButtonHeight+storeButtonGap)
		p.items = append(p.items, NewButton(x, by, storeButtonWidth, storeButtonHeight, id.Label()))
		p.ids = append(p.ids, id)
	}
	sy := y + 30 + float32(len(p.items))*(storeButtonHeight+storeButtonGap) + storeButtonGap
	p.start = NewButton(x, sy, storeButtonWidth, storeButtonHeight+8, "Start level")
	return p
}

// Refresh updates prices and enables what the player can afford.
func (p *StorePanel) Refresh(pricer Pricer) {
	coins := pricer.Coins()
	for i, id := range p.ids {
		b := p.items[i]
		cost, err := pricer.Cost(id)
		switch {
		case errors.Is(err, system.ErrUpgradeMaxed):
			b.Text, b.Enabled = id.Label()+"  MAX", false
		case err != nil:
			b.Text, b.Enabled = id.Label()+"  locked", false
		default:
			b.Text, b.Enabled = fmt.Sprintf("%s  %d", id.Label(), cost), cost <= coins
		}
	}
}

// SetMessage shows a line under the title, e.g. a purchase result.
func (p *StorePanel) SetMessage(msg string) {
	p.message = msg
}

// Click maps a click to a store request.
func (p *StorePanel) Click(x, y int) (interfaces.Request, bool) {
	if p.start.Clicked(x, y) {
		return interfaces.Request{Kind: interfaces.RequestConfirmStart}, true
	}
	for i, b := range p.items {
		if b.Contains(x, y) {
			return interfaces.Request{Kind: interfaces.RequestPurchase, Upgrade: p.ids[i]}, true
		}
	}
	return interfaces.Request{}, false
}

func (p *StorePanel) Draw(screen *ebiten.Image, face font.Face) {
	h := p.start.Y + p.start.Height - p.Y + storeButtonGap
	vector.DrawFilledRect(screen, p.X-storeButtonGap, p.Y-storeButtonGap, storeButtonWidth+2*storeButtonGap, h+storeButtonGap, config.BackgroundColor, false)
	text.Draw(screen, "STORE", face, int(p.X), int(p.Y)+12, config.TextLightColor)
	if p.message != "" {
		text.Draw(screen, p.message, face, int(p.X)+60, int(p.Y)+12, config.CoinColor)
	}
	for _, b := range p.items {
		b.Draw(screen, face)
	}
	p.start.Draw(screen, face)
}
