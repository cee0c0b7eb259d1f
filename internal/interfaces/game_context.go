// internal/interfaces/game_context.go
package interfaces

import (
	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/pkg/utils"
)

// LevelProvider resolves level configurations by index. Calls are replayable.
type LevelProvider interface {
	Level(index int) (defs.LevelConfig, error)
}

// CoinSpawner owns the collectible coin pickups. Collected coins are credited
// through the ledger by the spawner itself.
type CoinSpawner interface {
	SpawnCoins(pos utils.Vec2, count int)
	ClearCoins()
}

// SignalSink receives fire-and-forget notifications for presentation.
type SignalSink interface {
	OnDamage(block component.Block, damagePercent float64)
	OnBlockDestroyed(block component.Block)
	OnObjectiveDestroyed(pos utils.Vec2)
	OnLevelFailed()
	OnTick(secondsRemaining int)
	OnPurchaseResult(id defs.UpgradeID, success bool)
	OnPhaseChanged(from, to component.Phase)
	OnShot(tier defs.Tier, weak bool)
	OnPlayerHit(shieldHP, healthHP int)
	OnLevelLoadFailed(index int, err error)
	OnStoreToggled(open bool)
}

// NopSink ignores every signal. Embed it to implement only a few methods.
type NopSink struct{}

func (NopSink) OnDamage(component.Block, float64)               {}
func (NopSink) OnBlockDestroyed(component.Block)                {}
func (NopSink) OnObjectiveDestroyed(utils.Vec2)                 {}
func (NopSink) OnLevelFailed()                                  {}
func (NopSink) OnTick(int)                                      {}
func (NopSink) OnPurchaseResult(defs.UpgradeID, bool)           {}
func (NopSink) OnPhaseChanged(component.Phase, component.Phase) {}
func (NopSink) OnShot(defs.Tier, bool)                          {}
func (NopSink) OnPlayerHit(int, int)                            {}
func (NopSink) OnLevelLoadFailed(int, error)                    {}
func (NopSink) OnStoreToggled(bool)                             {}

// MultiSink forwards every signal to each sink in order.
type MultiSink []SignalSink

func (m MultiSink) OnDamage(block component.Block, damagePercent float64) {
	for _, s := range m {
		s.OnDamage(block, damagePercent)
	}
}

func (m MultiSink) OnBlockDestroyed(block component.Block) {
	for _, s := range m {
		s.OnBlockDestroyed(block)
	}
}

func (m MultiSink) OnObjectiveDestroyed(pos utils.Vec2) {
	for _, s := range m {
		s.OnObjectiveDestroyed(pos)
	}
}

func (m MultiSink) OnLevelFailed() {
	for _, s := range m {
		s.OnLevelFailed()
	}
}

func (m MultiSink) OnTick(secondsRemaining int) {
	for _, s := range m {
		s.OnTick(secondsRemaining)
	}
}

func (m MultiSink) OnPurchaseResult(id defs.UpgradeID, success bool) {
	for _, s := range m {
		s.OnPurchaseResult(id, success)
	}
}

func (m MultiSink) OnPhaseChanged(from, to component.Phase) {
	for _, s := range m {
		s.OnPhaseChanged(from, to)
	}
}

func (m MultiSink) OnShot(tier defs.Tier, weak bool) {
	for _, s := range m {
		s.OnShot(tier, weak)
	}
}

func (m MultiSink) OnPlayerHit(shieldHP, healthHP int) {
	for _, s := range m {
		s.OnPlayerHit(shieldHP, healthHP)
	}
}

func (m MultiSink) OnLevelLoadFailed(index int, err error) {
	for _, s := range m {
		s.OnLevelLoadFailed(index, err)
	}
}

func (m MultiSink) OnStoreToggled(open bool) {
	for _, s := range m {
		s.OnStoreToggled(open)
	}
}
