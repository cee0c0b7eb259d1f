package system

import (
	"testing"

	"go-siege/pkg/utils"
)

func TestFountainEmitsOnePerInterval(t *testing.T) {
	r := newRig(t, nil)
	r.fountain.Start(utils.Vec2{X: 5, Y: 5}, 3)
	if r.spawner.coins != 1 {
		t.Fatalf("Start emitted %d coins, want 1", r.spawner.coins)
	}

	if done := r.fountain.Update(0.05); done || r.spawner.coins != 1 {
		t.Fatalf("within the interval: done=%v coins=%d", done, r.spawner.coins)
	}
	if done := r.fountain.Update(0.06); done || r.spawner.coins != 2 {
		t.Fatalf("after one interval: done=%v coins=%d", done, r.spawner.coins)
	}
	if !r.fountain.Update(1) {
		t.Fatal("fountain not empty after a long tick")
	}
	if r.spawner.coins != 3 || r.fountain.Pending() != 0 {
		t.Errorf("coins=%d pending=%d", r.spawner.coins, r.fountain.Pending())
	}
}

func TestEmptyFountainIsDone(t *testing.T) {
	r := newRig(t, nil)
	r.fountain.Start(utils.Vec2{}, 0)
	if !r.fountain.Update(0.1) || r.spawner.calls != 0 {
		t.Error("empty fountain emitted coins")
	}
}
