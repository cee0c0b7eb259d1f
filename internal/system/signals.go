// internal/system/signals.go
package system

import (
	"go-siege/internal/event"
	"go-siege/internal/interfaces"
)

// SignalBridge forwards core events to the presentation collaborators.
type SignalBridge struct {
	sink    interfaces.SignalSink
	spawner interfaces.CoinSpawner
}

func NewSignalBridge(eventDispatcher *event.Dispatcher, sink interfaces.SignalSink, spawner interfaces.CoinSpawner) *SignalBridge {
	if sink == nil {
		sink = interfaces.NopSink{}
	}
	b := &SignalBridge{sink: sink, spawner: spawner}
	eventDispatcher.SubscribeAll(b,
		event.BlockDamaged,
		event.BlockDestroyed,
		event.ObjectiveDestroyed,
		event.CoinsRequested,
		event.CoinsCleared,
		event.ShotFired,
		event.PlayerHit,
		event.PurchaseCompleted,
		event.PhaseChanged,
		event.CountdownTick,
		event.LevelFailed,
		event.LevelLoadFailed,
		event.StoreToggled,
	)
	return b
}

func (b *SignalBridge) OnEvent(e event.Event) {
	switch e.Type {
	case event.BlockDamaged:
		d := e.Data.(event.BlockData)
		b.sink.OnDamage(d.Block, d.DamagePercent)
	case event.BlockDestroyed:
		b.sink.OnBlockDestroyed(e.Data.(event.BlockData).Block)
	case event.ObjectiveDestroyed:
		b.sink.OnObjectiveDestroyed(e.Data.(event.BlockData).Block.Position)
	case event.CoinsRequested:
		if b.spawner != nil {
			d := e.Data.(event.CoinsData)
			b.spawner.SpawnCoins(d.Position, d.Count)
		}
	case event.CoinsCleared:
		if b.spawner != nil {
			b.spawner.ClearCoins()
		}
	case event.ShotFired:
		d := e.Data.(event.ShotData)
		b.sink.OnShot(d.Tier, d.Weak)
	case event.PlayerHit:
		d := e.Data.(event.PlayerHitData)
		b.sink.OnPlayerHit(d.ShieldHP, d.HealthHP)
	case event.PurchaseCompleted:
		d := e.Data.(event.PurchaseData)
		b.sink.OnPurchaseResult(d.Upgrade, d.Success)
	case event.PhaseChanged:
		d := e.Data.(event.PhaseData)
		b.sink.OnPhaseChanged(d.From, d.To)
	case event.CountdownTick:
		b.sink.OnTick(e.Data.(event.CountdownData).SecondsRemaining)
	case event.LevelFailed:
		b.sink.OnLevelFailed()
	case event.LevelLoadFailed:
		d := e.Data.(event.LoadFailedData)
		b.sink.OnLevelLoadFailed(d.Index, d.Err)
	case event.StoreToggled:
		b.sink.OnStoreToggled(e.Data.(event.StoreData).Open)
	}
}
