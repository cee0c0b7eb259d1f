// internal/system/damage.go
package system

import (
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/internal/types"
	"go-siege/pkg/utils"
)

// DamageSystem applies hit point loss to fortress blocks and handles their
// destruction.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	objective       defs.BlockType
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		objective:       defs.BlockTreasureChest,
	}
}

// SetObjectiveType selects the block type whose destruction ends the level.
func (s *DamageSystem) SetObjectiveType(t defs.BlockType) {
	s.objective = t
}

// ApplyDamage removes amount hit points from the block. It reports whether
// this call destroyed the block. Unknown or already destroyed blocks are
// left alone.
func (s *DamageSystem) ApplyDamage(id types.EntityID, amount int) bool {
	block, ok := s.ecs.Blocks[id]
	if !ok || block.Destroyed {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	block.CurrentHP = max(0, block.CurrentHP-amount)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BlockDamaged,
		Data: event.BlockData{Block: *block, DamagePercent: block.DamagePercent()},
	})

	if block.CurrentHP > 0 {
		return false
	}

	block.Destroyed = true
	delete(s.ecs.Blocks, id)

	if block.CoinDrop > 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CoinsRequested,
			Data: event.CoinsData{Position: block.Position, Count: block.CoinDrop},
		})
	}
	data := event.BlockData{Block: *block, DamagePercent: 1}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BlockDestroyed, Data: data})
	if block.Type == s.objective {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ObjectiveDestroyed, Data: data})
	}
	return true
}

// ApplySplash damages every live block whose centre lies within radius of
// origin, except exclude, by SplashDamage(primaryDamage, fraction). Blocks are
// visited in ascending ID order. It returns the number of blocks hit.
func (s *DamageSystem) ApplySplash(origin utils.Vec2, radius float64, primaryDamage int, fraction float64, exclude types.EntityID) int {
	amount := SplashDamage(primaryDamage, fraction)
	hit := 0
	for _, id := range s.ecs.BlockIDs() {
		if id == exclude {
			continue
		}
		block, ok := s.ecs.Blocks[id]
		if !ok || block.Position.Dist(origin) > radius {
			continue
		}
		s.ApplyDamage(id, amount)
		hit++
	}
	return hit
}

// SplashDamage is the damage dealt to each neighbour of an explosive hit.
func SplashDamage(primaryDamage int, fraction float64) int {
	return utils.RoundHalfEven(float64(primaryDamage) * fraction)
}
