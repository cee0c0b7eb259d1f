// internal/pickup/coins.go
package pickup

import (
	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/utils"
	putils "go-siege/pkg/utils"
)

// Wallet is credited once per collected coin.
type Wallet interface {
	AddCoins(n int)
}

// CoinField owns the coin pickups tossed out of destroyed blocks and the
// victory fountain. Coins fall, bounce on the ground and are collected either
// by the player or automatically once they have settled for a while.
type CoinField struct {
	wallet    Wallet
	rng       *utils.PRNGService
	coins     []component.CoinPickup
	collected int
}

func NewCoinField(wallet Wallet, rng *utils.PRNGService) *CoinField {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &CoinField{wallet: wallet, rng: rng}
}

// SpawnCoins tosses count coins from pos with a random upward impulse.
func (f *CoinField) SpawnCoins(pos putils.Vec2, count int) {
	for range count {
		f.coins = append(f.coins, component.CoinPickup{
			Position: pos,
			Velocity: putils.Vec2{
				X: f.rng.Range(config.CoinTossMinX, config.CoinTossMaxX),
				Y: f.rng.Range(config.CoinTossMinY, config.CoinTossMaxY),
			},
		})
	}
}

// ClearCoins drops every uncollected coin without crediting it.
func (f *CoinField) ClearCoins() {
	f.coins = f.coins[:0]
}

// Update moves the coins and auto-collects the ones old enough.
func (f *CoinField) Update(deltaTime float64) {
	kept := f.coins[:0]
	for _, c := range f.coins {
		c.Age += deltaTime
		if !c.Resting {
			c.Velocity.Y -= config.Gravity * deltaTime
			c.Position = c.Position.Add(c.Velocity.Scale(deltaTime))
			if c.Position.Y <= config.GroundY {
				c.Position.Y = config.GroundY
				c.Velocity = putils.Vec2{X: c.Velocity.X * config.CoinBounce, Y: -c.Velocity.Y * config.CoinBounce}
				if c.Velocity.Y < 0.5 {
					c.Velocity = putils.Vec2{}
					c.Resting = true
				}
			}
		}
		if c.Age >= config.CoinAutoCollectAge {
			f.credit()
			continue
		}
		kept = append(kept, c)
	}
	f.coins = kept
}

// CollectNear collects every coin within radius of pos and returns how many
// were taken.
func (f *CoinField) CollectNear(pos putils.Vec2, radius float64) int {
	kept := f.coins[:0]
	n := 0
	for _, c := range f.coins {
		if c.Position.Dist(pos) <= radius {
			f.credit()
			n++
			continue
		}
		kept = append(kept, c)
	}
	f.coins = kept
	return n
}

func (f *CoinField) credit() {
	f.collected++
	if f.wallet != nil {
		f.wallet.AddCoins(1)
	}
}

// Pending is the number of coins still on the field.
func (f *CoinField) Pending() int { return len(f.coins) }

// Collected is the number of coins credited since the field was created.
func (f *CoinField) Collected() int { return f.collected }

// Coins returns a snapshot of the live coins for drawing.
func (f *CoinField) Coins() []component.CoinPickup {
	out := make([]component.CoinPickup, len(f.coins))
	copy(out, f.coins)
	return out
}
