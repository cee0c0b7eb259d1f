// internal/defs/tiers.go
package defs

import (
	"fmt"
	"strings"
)

// Tier is the ammunition class. Tiers only ever go up.
type Tier int

const (
	TierStandard Tier = iota
	TierHeavy
	TierExplosive
)

// MaxTier is the highest purchasable tier.
const MaxTier = TierExplosive

var tierNames = [...]string{"standard", "heavy", "explosive"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < 0 || t > MaxTier {
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	name := strings.ToLower(string(b))
	for i, n := range tierNames {
		if n == name {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(b))
}

// TierDefinition describes the ballistics and price of one tier.
type TierDefinition struct {
	Tier             Tier    `json:"tier"`
	Speed            float64 `json:"speed"`
	DamageMultiplier int     `json:"damage_multiplier"`
	GravityScale     float64 `json:"gravity_scale"`
	SplashRadius     float64 `json:"splash_radius,omitempty"` // zero means no splash
	UpgradeCost      int     `json:"upgrade_cost"`            // price to unlock this tier
}

// TierTable is indexed by Tier.
type TierTable [MaxTier + 1]TierDefinition

// DefaultTiers returns the built-in tier table.
func DefaultTiers() TierTable {
	return TierTable{
		TierStandard:  {Tier: TierStandard, Speed: 15, DamageMultiplier: 1, GravityScale: 1},
		TierHeavy:     {Tier: TierHeavy, Speed: 13, DamageMultiplier: 2, GravityScale: 1.2, UpgradeCost: 50},
		TierExplosive: {Tier: TierExplosive, Speed: 14, DamageMultiplier: 2, GravityScale: 1, SplashRadius: 1.5, UpgradeCost: 100},
	}
}

// Get returns the definition of t clamped into the table.
func (tt TierTable) Get(t Tier) TierDefinition {
	if t < TierStandard {
		t = TierStandard
	}
	if t > MaxTier {
		t = MaxTier
	}
	return tt[t]
}
