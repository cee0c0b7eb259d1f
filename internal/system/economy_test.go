package system

import (
	"errors"
	"testing"

	"go-siege/internal/defs"
)

func TestPurchaseAgainstBalance(t *testing.T) {
	r := newRig(t, nil)

	r.ledger.AddCoins(45)
	if r.ledger.Purchase(defs.UpgradeAmmoTier) {
		t.Fatal("45 coins bought a 50 coin upgrade")
	}
	if r.ledger.Coins() != 45 || r.ledger.AmmoTier() != defs.TierStandard {
		t.Fatalf("failed purchase changed state: coins=%d tier=%s", r.ledger.Coins(), r.ledger.AmmoTier())
	}

	r.ledger.AddCoins(10)
	if !r.ledger.Purchase(defs.UpgradeAmmoTier) {
		t.Fatal("55 coins could not buy a 50 coin upgrade")
	}
	if r.ledger.Coins() != 5 || r.ledger.AmmoTier() != defs.TierHeavy {
		t.Errorf("after purchase: coins=%d tier=%s, want 5 heavy", r.ledger.Coins(), r.ledger.AmmoTier())
	}

	got := r.sink.purchases[defs.UpgradeAmmoTier]
	if len(got) != 2 || got[0] || !got[1] {
		t.Errorf("purchase signals = %v, want [false true]", got)
	}
}

func TestSpendNeverOverdraws(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(10)

	tests := []struct {
		amount int
		ok     bool
		left   int
	}{
		{-5, false, 10},
		{11, false, 10},
		{4, true, 6},
		{6, true, 0},
		{1, false, 0},
		{0, true, 0},
	}
	for _, tt := range tests {
		if ok := r.ledger.Spend(tt.amount); ok != tt.ok {
			t.Errorf("Spend(%d) = %v, want %v", tt.amount, ok, tt.ok)
		}
		if r.ledger.Coins() != tt.left {
			t.Errorf("after Spend(%d): coins = %d, want %d", tt.amount, r.ledger.Coins(), tt.left)
		}
	}

	r.ledger.AddCoins(-3)
	if r.ledger.Coins() != 0 {
		t.Errorf("negative AddCoins changed the balance to %d", r.ledger.Coins())
	}
}

func TestUpgradeCostCurves(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(10000)

	tests := []struct {
		id    defs.UpgradeID
		costs []int
	}{
		{defs.UpgradeAmmoPack, []int{10, 20, 30}},
		{defs.UpgradeAmmoTier, []int{50, 100}},
		{defs.UpgradeDamage, []int{20, 40, 60}},
		{defs.UpgradeFireRate, []int{25, 50}},
		{defs.UpgradeShieldUnlock, []int{100}},
		{defs.UpgradeShieldHP, []int{30, 60}},
		{defs.UpgradeDoubleBarrel, []int{150}},
	}
	for _, tt := range tests {
		for i, want := range tt.costs {
			cost, err := r.ledger.Cost(tt.id)
			if err != nil || cost != want {
				t.Fatalf("%s step %d: cost = %d, %v; want %d", tt.id, i, cost, err, want)
			}
			before := r.ledger.Coins()
			if !r.ledger.Purchase(tt.id) {
				t.Fatalf("%s step %d rejected", tt.id, i)
			}
			if spent := before - r.ledger.Coins(); spent != want {
				t.Errorf("%s step %d spent %d, want %d", tt.id, i, spent, want)
			}
		}
	}

	e := r.ledger.Economy()
	if e.AmmoMax != 25 || e.AmmoCurrent != 25 || e.AmmoCapacityLevel != 4 {
		t.Errorf("ammo: max=%d current=%d level=%d", e.AmmoMax, e.AmmoCurrent, e.AmmoCapacityLevel)
	}
	if e.Damage != 4 {
		t.Errorf("damage = %d, want 4", e.Damage)
	}
	if e.FireCooldown != 0.5/3 {
		t.Errorf("fire cooldown = %v, want %v", e.FireCooldown, 0.5/3)
	}
	if e.ShieldMaxHP != 9 || e.ShieldCurrentHP != 9 {
		t.Errorf("shield = %d/%d, want 9/9", e.ShieldCurrentHP, e.ShieldMaxHP)
	}
	if !e.DoubleBarrel {
		t.Error("double barrel not applied")
	}
}

func TestUpgradeCapsFailCleanly(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(100000)

	for i := 0; i < 9; i++ {
		if !r.ledger.Purchase(defs.UpgradeDamage) {
			t.Fatalf("damage purchase %d rejected", i+1)
		}
	}
	before := r.ledger.Coins()
	if r.ledger.Purchase(defs.UpgradeDamage) {
		t.Fatal("purchase beyond level 10 accepted")
	}
	if _, err := r.ledger.Cost(defs.UpgradeDamage); !errors.Is(err, ErrUpgradeMaxed) {
		t.Errorf("Cost at cap err = %v", err)
	}
	if r.ledger.Coins() != before || r.ledger.Damage() != 10 {
		t.Errorf("capped purchase changed state: coins %d->%d damage %d", before, r.ledger.Coins(), r.ledger.Damage())
	}

	r.ledger.Purchase(defs.UpgradeAmmoTier)
	r.ledger.Purchase(defs.UpgradeAmmoTier)
	if r.ledger.Purchase(defs.UpgradeAmmoTier) {
		t.Error("ammo tier went past explosive")
	}
	if r.ledger.AmmoTier() != defs.TierExplosive {
		t.Errorf("tier = %s", r.ledger.AmmoTier())
	}

	r.ledger.Purchase(defs.UpgradeDoubleBarrel)
	if r.ledger.Purchase(defs.UpgradeDoubleBarrel) {
		t.Error("double barrel bought twice")
	}
}

func TestShieldPreconditions(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(1000)

	for _, id := range []defs.UpgradeID{defs.UpgradeShieldHP, defs.UpgradeShieldRepair} {
		if _, err := r.ledger.Cost(id); !errors.Is(err, ErrUpgradeLocked) {
			t.Errorf("%s before unlock: err = %v", id, err)
		}
		if r.ledger.Purchase(id) {
			t.Errorf("%s bought before unlock", id)
		}
	}
	if r.ledger.Coins() != 1000 {
		t.Fatalf("rejected purchases spent coins: %d", r.ledger.Coins())
	}

	r.ledger.Purchase(defs.UpgradeShieldUnlock)
	if r.ledger.Purchase(defs.UpgradeShieldRepair) {
		t.Error("repair accepted on a full shield")
	}

	r.ledger.AbsorbHit(2)
	if !r.ledger.Purchase(defs.UpgradeShieldRepair) {
		t.Error("repair rejected on a damaged shield")
	}
	if e := r.ledger.Economy(); e.ShieldCurrentHP != e.ShieldMaxHP {
		t.Errorf("shield after repair = %d/%d", e.ShieldCurrentHP, e.ShieldMaxHP)
	}

	for i := 0; i < 4; i++ {
		if !r.ledger.Purchase(defs.UpgradeShieldHP) {
			t.Fatalf("shield hp purchase %d rejected", i+1)
		}
	}
	if r.ledger.Purchase(defs.UpgradeShieldHP) {
		t.Error("shield hp went past level 5")
	}
}

func TestUnknownUpgrade(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(1000)
	if _, err := r.ledger.Cost("laser"); !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("err = %v, want ErrUnknownUpgrade", err)
	}
	if r.ledger.Purchase("laser") || r.ledger.Coins() != 1000 {
		t.Error("unknown upgrade changed state")
	}
	if got := r.sink.purchases["laser"]; len(got) != 1 || got[0] {
		t.Errorf("unknown upgrade signal = %v", got)
	}
}

func TestAbsorbHitOverflow(t *testing.T) {
	tests := []struct {
		name           string
		unlock         bool
		damage         int
		shield, health int
	}{
		{"no shield", false, 1, 0, 2},
		{"shield absorbs", true, 2, 1, 3},
		{"exact shield", true, 3, 0, 3},
		{"overflow", true, 5, 0, 1},
		{"hull floors at zero", true, 10, 0, 0},
		{"zero damage", true, 0, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			if tt.unlock {
				r.ledger.AddCoins(100)
				r.ledger.Purchase(defs.UpgradeShieldUnlock)
			}
			shield, health := r.ledger.AbsorbHit(tt.damage)
			if shield != tt.shield || health != tt.health {
				t.Errorf("AbsorbHit(%d) = %d/%d, want %d/%d", tt.damage, shield, health, tt.shield, tt.health)
			}
		})
	}
}

func TestRefillAndReset(t *testing.T) {
	r := newRig(t, nil)
	r.ledger.AddCoins(50)
	r.ledger.ConsumeAmmo()
	r.ledger.ConsumeAmmo()
	r.ledger.AbsorbHit(1)

	r.ledger.Refill()
	e := r.ledger.Economy()
	if e.AmmoCurrent != e.AmmoMax || e.HealthCurrent != e.HealthMax {
		t.Errorf("refill: ammo %d/%d health %d/%d", e.AmmoCurrent, e.AmmoMax, e.HealthCurrent, e.HealthMax)
	}
	if e.Coins != 50 {
		t.Errorf("refill touched coins: %d", e.Coins)
	}

	r.ledger.Purchase(defs.UpgradeDamage)
	r.ledger.Reset()
	e = r.ledger.Economy()
	if e.Coins != 0 || e.DamageLevel != 1 || e.AmmoMax != 10 || e.HealthMax != 3 {
		t.Errorf("reset left %+v", e)
	}
}

func TestConsumeAmmo(t *testing.T) {
	r := newRig(t, nil)
	for i := 0; i < 10; i++ {
		if !r.ledger.ConsumeAmmo() {
			t.Fatalf("round %d refused", i+1)
		}
	}
	if r.ledger.ConsumeAmmo() {
		t.Error("ammo went negative")
	}
}
