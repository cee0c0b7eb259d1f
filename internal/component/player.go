// internal/component/player.go
package component

import "go-siege/internal/defs"

// PlayerEconomy holds the coins and the cannon upgrades. It persists across
// levels and is only changed by the ledger.
type PlayerEconomy struct {
	Coins int

	AmmoCurrent       int
	AmmoMax           int
	AmmoTier          defs.Tier
	AmmoCapacityLevel int

	DamageLevel   int
	FireRateLevel int
	Damage        int     // derived from DamageLevel
	FireCooldown  float64 // derived from FireRateLevel

	ShieldUnlocked  bool
	ShieldLevel     int
	ShieldMaxHP     int
	ShieldCurrentHP int

	HealthMax     int
	HealthCurrent int

	DoubleBarrel bool
}
