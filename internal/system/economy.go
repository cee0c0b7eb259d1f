// internal/system/economy.go
package system

import (
	"errors"
	"log"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/event"
)

var (
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	ErrUpgradeMaxed   = errors.New("upgrade already at its cap")
	ErrUpgradeLocked  = errors.New("upgrade requirements not met")
)

// Ledger owns the player's coins and upgrades. Every mutation of
// PlayerEconomy goes through it.
type Ledger struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	pricing         defs.Pricing
	tiers           defs.TierTable
}

func NewLedger(ecs *entity.ECS, eventDispatcher *event.Dispatcher, pricing defs.Pricing, tiers defs.TierTable) *Ledger {
	l := &Ledger{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		pricing:         pricing,
		tiers:           tiers,
	}
	l.Reset()
	return l
}

// Reset restores the starting economy.
func (l *Ledger) Reset() {
	*l.ecs.Economy = component.PlayerEconomy{
		AmmoCurrent:       config.BaseAmmoMax,
		AmmoMax:           config.BaseAmmoMax,
		AmmoTier:          defs.TierStandard,
		AmmoCapacityLevel: 1,
		DamageLevel:       1,
		FireRateLevel:     1,
		Damage:            config.BaseDamage,
		FireCooldown:      config.BaseFireCooldown,
		HealthMax:         config.BaseHullHP,
		HealthCurrent:     config.BaseHullHP,
	}
}

// Economy returns a copy of the current economy.
func (l *Ledger) Economy() component.PlayerEconomy {
	return *l.ecs.Economy
}

func (l *Ledger) Coins() int { return l.ecs.Economy.Coins }

// AddCoins credits n coins. Non-positive amounts are ignored.
func (l *Ledger) AddCoins(n int) {
	if n <= 0 {
		return
	}
	l.ecs.Economy.Coins += n
}

// Spend debits amount if the balance covers it.
func (l *Ledger) Spend(amount int) bool {
	e := l.ecs.Economy
	if amount < 0 || e.Coins < amount {
		return false
	}
	e.Coins -= amount
	return true
}

// Cost returns the current price of an upgrade, or why it cannot be bought
// regardless of the balance.
func (l *Ledger) Cost(id defs.UpgradeID) (int, error) {
	e := l.ecs.Economy
	p := l.pricing

	switch id {
	case defs.UpgradeAmmoPack:
		if e.AmmoCapacityLevel >= p.MaxLevel {
			return 0, ErrUpgradeMaxed
		}
		return p.AmmoPackBase * e.AmmoCapacityLevel, nil
	case defs.UpgradeAmmoTier:
		if e.AmmoTier >= defs.MaxTier {
			return 0, ErrUpgradeMaxed
		}
		return l.tiers.Get(e.AmmoTier + 1).UpgradeCost, nil
	case defs.UpgradeDamage:
		if e.DamageLevel >= p.MaxLevel {
			return 0, ErrUpgradeMaxed
		}
		return p.DamageBase * e.DamageLevel, nil
	case defs.UpgradeFireRate:
		if e.FireRateLevel >= p.MaxLevel {
			return 0, ErrUpgradeMaxed
		}
		return p.FireRateBase * e.FireRateLevel, nil
	case defs.UpgradeShieldUnlock:
		if e.ShieldUnlocked {
			return 0, ErrUpgradeMaxed
		}
		return p.ShieldUnlock, nil
	case defs.UpgradeShieldHP:
		if !e.ShieldUnlocked {
			return 0, ErrUpgradeLocked
		}
		if e.ShieldLevel >= p.MaxShieldLevel {
			return 0, ErrUpgradeMaxed
		}
		return p.ShieldHPBase * e.ShieldLevel, nil
	case defs.UpgradeShieldRepair:
		if !e.ShieldUnlocked || e.ShieldCurrentHP >= e.ShieldMaxHP {
			return 0, ErrUpgradeLocked
		}
		return p.ShieldRepair, nil
	case defs.UpgradeDoubleBarrel:
		if e.DoubleBarrel {
			return 0, ErrUpgradeMaxed
		}
		return p.DoubleBarrel, nil
	}
	return 0, ErrUnknownUpgrade
}

// Purchase buys one step of an upgrade. It either spends and applies, or
// changes nothing. The outcome is always dispatched.
func (l *Ledger) Purchase(id defs.UpgradeID) bool {
	cost, err := l.Cost(id)
	if err != nil {
		log.Printf("Ledger: purchase %s rejected: %v", id, err)
		l.purchaseResult(id, false, 0)
		return false
	}
	if !l.Spend(cost) {
		log.Printf("Ledger: purchase %s rejected: need %d coins, have %d", id, cost, l.Coins())
		l.purchaseResult(id, false, cost)
		return false
	}

	l.apply(id)
	l.purchaseResult(id, true, cost)
	return true
}

func (l *Ledger) apply(id defs.UpgradeID) {
	e := l.ecs.Economy
	p := l.pricing

	switch id {
	case defs.UpgradeAmmoPack:
		e.AmmoCapacityLevel++
		e.AmmoMax += p.AmmoPackAmount
		e.AmmoCurrent += p.AmmoPackAmount
	case defs.UpgradeAmmoTier:
		e.AmmoTier++
	case defs.UpgradeDamage:
		e.DamageLevel++
		e.Damage = config.BaseDamage + (e.DamageLevel - 1)
	case defs.UpgradeFireRate:
		e.FireRateLevel++
		e.FireCooldown = config.BaseFireCooldown / float64(e.FireRateLevel)
	case defs.UpgradeShieldUnlock:
		e.ShieldUnlocked = true
		e.ShieldLevel = 1
		e.ShieldMaxHP = p.ShieldStartHP
		e.ShieldCurrentHP = p.ShieldStartHP
	case defs.UpgradeShieldHP:
		e.ShieldLevel++
		e.ShieldMaxHP += p.ShieldHPAmount
		e.ShieldCurrentHP += p.ShieldHPAmount
	case defs.UpgradeShieldRepair:
		e.ShieldCurrentHP = e.ShieldMaxHP
	case defs.UpgradeDoubleBarrel:
		e.DoubleBarrel = true
	}
}

func (l *Ledger) purchaseResult(id defs.UpgradeID, success bool, cost int) {
	l.eventDispatcher.Dispatch(event.Event{
		Type: event.PurchaseCompleted,
		Data: event.PurchaseData{Upgrade: id, Success: success, Cost: cost},
	})
}

// Refill restores ammo and hull for a new level attempt.
func (l *Ledger) Refill() {
	e := l.ecs.Economy
	e.AmmoCurrent = e.AmmoMax
	e.HealthCurrent = e.HealthMax
}

// ConsumeAmmo takes one round if any is left.
func (l *Ledger) ConsumeAmmo() bool {
	e := l.ecs.Economy
	if e.AmmoCurrent <= 0 {
		return false
	}
	e.AmmoCurrent--
	return true
}

func (l *Ledger) Damage() int           { return l.ecs.Economy.Damage }
func (l *Ledger) FireCooldown() float64 { return l.ecs.Economy.FireCooldown }
func (l *Ledger) AmmoTier() defs.Tier   { return l.ecs.Economy.AmmoTier }
func (l *Ledger) DoubleBarrel() bool    { return l.ecs.Economy.DoubleBarrel }

// AbsorbHit routes damage through the shield first; what the shield cannot
// absorb reaches the hull.
func (l *Ledger) AbsorbHit(damage int) (shieldHP, healthHP int) {
	e := l.ecs.Economy
	if damage <= 0 {
		return e.ShieldCurrentHP, e.HealthCurrent
	}

	overflow := max(0, damage-e.ShieldCurrentHP)
	e.ShieldCurrentHP = max(0, e.ShieldCurrentHP-damage)
	e.HealthCurrent = max(0, e.HealthCurrent-overflow)

	data := event.PlayerHitData{
		Damage:     damage,
		HullDamage: overflow,
		ShieldHP:   e.ShieldCurrentHP,
		HealthHP:   e.HealthCurrent,
	}
	l.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: data})
	if e.HealthCurrent == 0 {
		l.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated, Data: data})
	}
	return e.ShieldCurrentHP, e.HealthCurrent
}
