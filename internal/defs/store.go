// internal/defs/store.go
package defs

// UpgradeID names a store item.
type UpgradeID string

const (
	UpgradeAmmoPack     UpgradeID = "ammo_pack"
	UpgradeAmmoTier     UpgradeID = "ammo_tier"
	UpgradeDamage       UpgradeID = "damage"
	UpgradeFireRate     UpgradeID = "fire_rate"
	UpgradeShieldUnlock UpgradeID = "shield_unlock"
	UpgradeShieldHP     UpgradeID = "shield_hp"
	UpgradeShieldRepair UpgradeID = "shield_repair"
	UpgradeDoubleBarrel UpgradeID = "double_barrel"
)

// StoreOrder is the display order of the store items.
var StoreOrder = []UpgradeID{
	UpgradeAmmoPack,
	UpgradeAmmoTier,
	UpgradeDamage,
	UpgradeFireRate,
	UpgradeShieldUnlock,
	UpgradeShieldHP,
	UpgradeShieldRepair,
	UpgradeDoubleBarrel,
}

// Label returns a short human readable name.
func (id UpgradeID) Label() string {
	switch id {
	case UpgradeAmmoPack:
		return "Ammo Pack"
	case UpgradeAmmoTier:
		return "Ammo Tier"
	case UpgradeDamage:
		return "Damage"
	case UpgradeFireRate:
		return "Fire Rate"
	case UpgradeShieldUnlock:
		return "Shield"
	case UpgradeShieldHP:
		return "Shield HP"
	case UpgradeShieldRepair:
		return "Repair"
	case UpgradeDoubleBarrel:
		return "Double Barrel"
	}
	return string(id)
}

// Pricing holds the store cost curves and caps. Level-scaled costs are
// base × current level.
type Pricing struct {
	AmmoPackBase   int `json:"ammo_pack_base"`
	AmmoPackAmount int `json:"ammo_pack_amount"`
	DamageBase     int `json:"damage_base"`
	FireRateBase   int `json:"fire_rate_base"`
	ShieldUnlock   int `json:"shield_unlock"`
	ShieldStartHP  int `json:"shield_start_hp"`
	ShieldHPBase   int `json:"shield_hp_base"`
	ShieldHPAmount int `json:"shield_hp_amount"`
	ShieldRepair   int `json:"shield_repair"`
	DoubleBarrel   int `json:"double_barrel"`
	MaxLevel       int `json:"max_level"`
	MaxShieldLevel int `json:"max_shield_level"`
}

// DefaultPricing returns the built-in store prices.
func DefaultPricing() Pricing {
	return Pricing{
		AmmoPackBase:   10,
		AmmoPackAmount: 5,
		DamageBase:     20,
		FireRateBase:   25,
		ShieldUnlock:   100,
		ShieldStartHP:  3,
		ShieldHPBase:   30,
		ShieldHPAmount: 3,
		ShieldRepair:   15,
		DoubleBarrel:   150,
		MaxLevel:       10,
		MaxShieldLevel: 5,
	}
}
