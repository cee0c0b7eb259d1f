// internal/event/types.go
package event

import (
	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/pkg/utils"
)

const (
	BlockDamaged       EventType = "BlockDamaged"
	BlockDestroyed     EventType = "BlockDestroyed"
	ObjectiveDestroyed EventType = "ObjectiveDestroyed"
	CoinsRequested     EventType = "CoinsRequested"
	CoinsCleared       EventType = "CoinsCleared"
	ShotFired          EventType = "ShotFired"
	PlayerHit          EventType = "PlayerHit"
	PlayerDefeated     EventType = "PlayerDefeated"
	PurchaseCompleted  EventType = "PurchaseCompleted"
	PhaseChanged       EventType = "PhaseChanged"
	CountdownTick      EventType = "CountdownTick"
	LevelFailed        EventType = "LevelFailed"
	LevelLoadFailed    EventType = "LevelLoadFailed"
	StoreToggled       EventType = "StoreToggled"
)

// BlockData is the payload of BlockDamaged, BlockDestroyed and ObjectiveDestroyed.
type BlockData struct {
	Block         component.Block // snapshot at the time of the event
	DamagePercent float64
}

type CoinsData struct {
	Position utils.Vec2
	Count    int
}

type ShotData struct {
	Origin    utils.Vec2
	Direction utils.Vec2
	Tier      defs.Tier
	Weak      bool
}

// PlayerHitData is the payload of PlayerHit and PlayerDefeated.
type PlayerHitData struct {
	Damage     int
	HullDamage int // the part the shield did not absorb
	ShieldHP   int
	HealthHP   int
}

type PurchaseData struct {
	Upgrade defs.UpgradeID
	Success bool
	Cost    int
}

type PhaseData struct {
	From, To component.Phase
}

type CountdownData struct {
	SecondsRemaining int
}

type LoadFailedData struct {
	Index int
	Err   error
}

type StoreData struct {
	Open bool
}
