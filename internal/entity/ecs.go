// internal/entity/ecs.go
package entity

import (
	"maps"
	"math"
	"slices"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Blocks      map[types.EntityID]*component.Block
	Projectiles map[types.EntityID]*component.Projectile
	Turrets     map[types.EntityID]*component.HostileTurret
	Cannon      *component.Cannon
	Economy     *component.PlayerEconomy
	Session     *component.LevelSession
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Blocks:      make(map[types.EntityID]*component.Block),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Turrets:     make(map[types.EntityID]*component.HostileTurret),
		Cannon: &component.Cannon{
			Position:     component.Position{X: config.CannonX, Y: config.CannonY},
			LastFireTime: math.Inf(-1),
			LastWeakFire: math.Inf(-1),
		},
		Economy: &component.PlayerEconomy{},
		Session: &component.LevelSession{Phase: component.PhaseMainMenu},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddBlock stores b under a fresh ID and returns it.
func (ecs *ECS) AddBlock(b component.Block) types.EntityID {
	id := ecs.NewEntity()
	b.ID = id
	ecs.Blocks[id] = &b
	return id
}

// AddProjectile stores a projectile with its movement components.
func (ecs *ECS) AddProjectile(p component.Projectile, pos component.Position, vel component.Velocity) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = &p
	ecs.Positions[id] = &pos
	ecs.Velocities[id] = &vel
	return id
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
}

// ClearProjectiles removes every live projectile.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveProjectile(id)
	}
}

// ClearBlocks removes every block without destruction side effects.
func (ecs *ECS) ClearBlocks() {
	clear(ecs.Blocks)
}

func (ecs *ECS) ClearTurrets() {
	clear(ecs.Turrets)
}

// BlockIDs returns live block IDs in ascending order.
func (ecs *ECS) BlockIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Blocks))
}

// ProjectileIDs returns live projectile IDs in ascending order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Projectiles))
}

// TurretIDs returns turret IDs in ascending order.
func (ecs *ECS) TurretIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(ecs.Turrets))
}
