// internal/system/turret.go
package system

import (
	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
)

// TurretSystem drives the hostile turrets of the current level.
type TurretSystem struct {
	ecs              *entity.ECS
	projectileSystem *ProjectileSystem
}

func NewTurretSystem(ecs *entity.ECS, projectileSystem *ProjectileSystem) *TurretSystem {
	return &TurretSystem{ecs: ecs, projectileSystem: projectileSystem}
}

// Spawn places one turret per enemy spawn entry.
func (s *TurretSystem) Spawn(spawns []defs.EnemySpawn) {
	for _, sp := range spawns {
		if sp.FireInterval <= 0 {
			continue
		}
		id := s.ecs.NewEntity()
		s.ecs.Turrets[id] = &component.HostileTurret{
			Position:     sp.Position,
			FireInterval: sp.FireInterval,
			Damage:       sp.Damage,
		}
	}
}

func (s *TurretSystem) Clear() {
	s.ecs.ClearTurrets()
}

// Update fires every turret whose interval has elapsed. Turrets only act
// while a level is active.
func (s *TurretSystem) Update(deltaTime float64) {
	if s.ecs.Session.Phase != component.PhaseActive {
		return
	}
	for _, id := range s.ecs.TurretIDs() {
		t := s.ecs.Turrets[id]
		t.Timer += deltaTime
		if t.Timer >= t.FireInterval {
			t.Timer -= t.FireInterval
			s.projectileSystem.SpawnHostile(t.Position, t.Damage)
		}
	}
}
