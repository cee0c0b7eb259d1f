package entity

import (
	"testing"

	"go-siege/internal/component"
)

func TestIDsAscendingAndUnique(t *testing.T) {
	ecs := NewECS()
	var last uint64
	for i := 0; i < 20; i++ {
		id := ecs.AddBlock(component.Block{MaxHP: 1, CurrentHP: 1})
		if uint64(id) <= last {
			t.Fatalf("id %d not greater than %d", id, last)
		}
		last = uint64(id)
	}
	ids := ecs.BlockIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("BlockIDs not sorted: %v", ids)
		}
	}
	if b := ecs.Blocks[ids[0]]; b.ID != ids[0] {
		t.Errorf("block ID field = %d, want %d", b.ID, ids[0])
	}
}

func TestClearProjectilesRemovesMovement(t *testing.T) {
	ecs := NewECS()
	id := ecs.AddProjectile(component.Projectile{Damage: 1}, component.Position{X: 1}, component.Velocity{X: 2})
	ecs.AddBlock(component.Block{MaxHP: 1, CurrentHP: 1})

	ecs.ClearProjectiles()
	if len(ecs.Projectiles) != 0 || ecs.Positions[id] != nil || ecs.Velocities[id] != nil {
		t.Error("projectile components survived ClearProjectiles")
	}
	if len(ecs.Blocks) != 1 {
		t.Error("ClearProjectiles must not touch blocks")
	}
	ecs.ClearBlocks()
	if len(ecs.Blocks) != 0 {
		t.Error("ClearBlocks left blocks behind")
	}
}

func TestNewECSStartsInMainMenu(t *testing.T) {
	ecs := NewECS()
	if ecs.Session.Phase != component.PhaseMainMenu {
		t.Errorf("phase = %s", ecs.Session.Phase)
	}
	if ecs.Cannon == nil || ecs.Economy == nil {
		t.Error("singleton components must be allocated")
	}
}
