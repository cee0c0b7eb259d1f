// internal/system/fountain.go
package system

import (
	"go-siege/internal/config"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/pkg/utils"
)

// FountainSystem emits the victory coins one at a time. Its progress is kept
// in the session's resolve sequence so it can be resumed at any tick.
type FountainSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewFountainSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *FountainSystem {
	return &FountainSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Start emits the first of count coins at origin and queues the rest, one
// per CoinSpawnInterval.
func (s *FountainSystem) Start(origin utils.Vec2, count int) {
	r := &s.ecs.Session.Resolve
	r.Origin = origin
	r.Remaining = max(0, count)
	r.SpawnTimer = 0
	s.emitDue()
}

// Update emits the coins that are due and reports whether the fountain is
// empty.
func (s *FountainSystem) Update(deltaTime float64) bool {
	s.ecs.Session.Resolve.SpawnTimer -= deltaTime
	s.emitDue()
	return s.ecs.Session.Resolve.Remaining == 0
}

func (s *FountainSystem) emitDue() {
	r := &s.ecs.Session.Resolve
	for r.Remaining > 0 && r.SpawnTimer <= 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CoinsRequested,
			Data: event.CoinsData{Position: r.Origin, Count: 1},
		})
		r.Remaining--
		r.SpawnTimer += config.CoinSpawnInterval
	}
}

// Pending returns the coins not yet emitted.
func (s *FountainSystem) Pending() int {
	return s.ecs.Session.Resolve.Remaining
}
