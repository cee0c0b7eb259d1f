package system

import (
	"errors"
	"math"
	"slices"
	"testing"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/pkg/utils"
)

func timedLevel(limit float64) defs.LevelConfig {
	l := testLevel()
	l.HasTimeLimit = true
	l.TimeLimit = limit
	return l
}

func TestSessionHappyPathTransitions(t *testing.T) {
	r := newRig(t, library(testLevel()))

	if r.session.Phase() != component.PhaseMainMenu {
		t.Fatalf("initial phase = %s", r.session.Phase())
	}
	r.startLevel(t)

	want := []component.Phase{component.PhasePreparing, component.PhaseActive}
	if !slices.Equal(r.sink.phases, want) {
		t.Errorf("phases = %v, want %v", r.sink.phases, want)
	}
	if len(r.ecs.Blocks) != 2 {
		t.Errorf("%d blocks built, want 2", len(r.ecs.Blocks))
	}
	if !slices.Equal(r.sink.store, []bool{true, false}) {
		t.Errorf("store signals = %v, want [true false]", r.sink.store)
	}
	if s := r.session.Session(); s.TimeElapsed != 0 || s.HasTimeLimit || !s.Perfect {
		t.Errorf("session after launch = %+v", s)
	}
}

func TestLaunchDelayIsResumable(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.session.Begin()
	r.session.ConfirmStart()

	r.session.Update(0.1)
	s := r.session.Session()
	if s.Phase != component.PhasePreparing || !s.Launch.Running || s.Launch.Step != component.LaunchDelay {
		t.Fatalf("mid-delay session = %+v", s)
	}
	if len(r.ecs.Blocks) != 0 {
		t.Fatal("fortress built before the delay elapsed")
	}
	if r.session.ConfirmStart() {
		t.Error("second ConfirmStart accepted while launching")
	}

	r.session.Update(0.1)
	if r.session.Phase() != component.PhaseActive {
		t.Errorf("phase = %s after the delay, want Active", r.session.Phase())
	}
}

func TestLaunchRefillsAmmo(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.ecs.Economy.AmmoCurrent = 2
	r.startLevel(t)
	if r.ecs.Economy.AmmoCurrent != r.ecs.Economy.AmmoMax {
		t.Errorf("ammo = %d/%d after launch", r.ecs.Economy.AmmoCurrent, r.ecs.Economy.AmmoMax)
	}
}

func TestInvalidTransitionsIgnored(t *testing.T) {
	r := newRig(t, library(testLevel()))

	if r.session.ConfirmStart() || r.session.Retry() {
		t.Error("start or retry accepted in MainMenu")
	}
	r.startLevel(t)
	if r.session.Begin() || r.session.ConfirmStart() || r.session.Retry() {
		t.Error("transition request accepted in Active")
	}
	if r.session.Phase() != component.PhaseActive {
		t.Errorf("phase = %s", r.session.Phase())
	}
}

func TestTimeLimitFailsOnExactTick(t *testing.T) {
	r := newRig(t, library(timedLevel(30)))
	r.startLevel(t)

	// 1800 frames of 1/60 s sum to slightly less than 30 in float64.
	const dt = 1.0 / 60
	for i := 1; i < 1800; i++ {
		r.session.Update(dt)
		if r.session.Phase() != component.PhaseActive {
			t.Fatalf("left Active on tick %d at elapsed %v", i, r.session.Session().TimeElapsed)
		}
	}
	r.session.Update(dt)

	s := r.session.Session()
	if s.Phase != component.PhaseFailed {
		t.Fatalf("phase = %s at elapsed %v, want Failed on tick 1800", s.Phase, s.TimeElapsed)
	}
	if math.Abs(s.TimeElapsed-30) > 1e-6 {
		t.Errorf("failed at %v, want 30", s.TimeElapsed)
	}
	if r.sink.failed != 1 {
		t.Errorf("failure signals = %d", r.sink.failed)
	}
	if !slices.Equal(r.sink.ticks, []int{5, 4, 3, 2, 1}) {
		t.Errorf("ticks = %v, want [5 4 3 2 1]", r.sink.ticks)
	}
}

func TestCountdownOncePerSecondAtFrameRate(t *testing.T) {
	r := newRig(t, library(timedLevel(8)))
	r.startLevel(t)

	for i := 0; i < 1000 && r.session.Phase() == component.PhaseActive; i++ {
		r.session.Update(1.0 / 60)
	}
	if r.session.Phase() != component.PhaseFailed {
		t.Fatalf("phase = %s", r.session.Phase())
	}
	if !slices.Equal(r.sink.ticks, []int{5, 4, 3, 2, 1}) {
		t.Errorf("ticks = %v, want [5 4 3 2 1]", r.sink.ticks)
	}
}

func TestNoTimeLimitNeverFails(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.startLevel(t)
	for i := 0; i < 100; i++ {
		r.session.Update(10)
	}
	if r.session.Phase() != component.PhaseActive || len(r.sink.ticks) != 0 {
		t.Errorf("phase = %s ticks = %v", r.session.Phase(), r.sink.ticks)
	}
}

func runResolve(t *testing.T, r *rig) float64 {
	t.Helper()
	resolving := 0.0
	for i := 0; i < 200 && r.session.Phase() == component.PhaseResolving; i++ {
		r.session.Update(0.1)
		resolving += 0.1
	}
	if r.session.Phase() != component.PhasePreparing {
		t.Fatalf("phase = %s after resolving, want Preparing", r.session.Phase())
	}
	return resolving
}

func TestObjectiveDestroyedResolves(t *testing.T) {
	r := newRig(t, library(testLevel(), testLevel()))
	r.startLevel(t)

	r.projectiles.Fire(r.ecs.Cannon.Position, utils.Vec2{X: 0, Y: 1}, defs.TierStandard)
	chest := r.blockOfType(defs.BlockTreasureChest)
	r.damage.ApplyDamage(chest.ID, 100)
	if r.session.Phase() != component.PhaseActive {
		t.Fatal("phase changed before the next tick")
	}

	r.session.Update(0.1)
	if r.session.Phase() != component.PhaseResolving {
		t.Fatalf("phase = %s, want Resolving", r.session.Phase())
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Error("projectiles survived the objective")
	}
	if r.projectiles.Fire(r.ecs.Cannon.Position, right, defs.TierStandard) {
		t.Error("fire accepted while resolving")
	}

	elapsed := runResolve(t, r)
	if elapsed < config.GatheringDuration || elapsed > config.GatheringDuration+2 {
		t.Errorf("resolving took %v", elapsed)
	}

	chestDrop := defs.DefaultBlocks()[defs.BlockTreasureChest].CoinDrop
	if want := chestDrop + 10 + 5; r.spawner.coins != want {
		t.Errorf("coins requested = %d, want %d", r.spawner.coins, want)
	}
	if r.spawner.cleared != 1 {
		t.Errorf("ClearCoins called %d times", r.spawner.cleared)
	}
	s := r.session.Session()
	if s.LevelIndex != 1 || s.Level == nil {
		t.Errorf("next level not resolved: %+v", s)
	}
	if last := r.sink.store[len(r.sink.store)-1]; !last {
		t.Error("store not re-opened")
	}
}

func TestHullDamageForfeitsPerfectBonus(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.startLevel(t)
	r.ledger.AbsorbHit(1)

	r.damage.ApplyDamage(r.blockOfType(defs.BlockTreasureChest).ID, 100)
	r.session.Update(0.1)
	runResolve(t, r)

	chestDrop := defs.DefaultBlocks()[defs.BlockTreasureChest].CoinDrop
	if want := chestDrop + 10; r.spawner.coins != want {
		t.Errorf("coins requested = %d, want %d", r.spawner.coins, want)
	}
}

func TestShieldedHitKeepsPerfectBonus(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.startLevel(t)
	r.ledger.AddCoins(100)
	if !r.ledger.Purchase(defs.UpgradeShieldUnlock) {
		t.Fatal("shield unlock failed")
	}

	shield, hull := r.ledger.AbsorbHit(1)
	if hull != r.ecs.Economy.HealthMax || shield != r.ecs.Economy.ShieldMaxHP-1 {
		t.Fatalf("after hit shield %d hull %d", shield, hull)
	}
	if !r.session.Session().Perfect {
		t.Fatal("absorbed hit cleared the perfect flag")
	}

	r.damage.ApplyDamage(r.blockOfType(defs.BlockTreasureChest).ID, 100)
	r.session.Update(0.1)
	runResolve(t, r)

	chestDrop := defs.DefaultBlocks()[defs.BlockTreasureChest].CoinDrop
	if want := chestDrop + 10 + 5; r.spawner.coins != want {
		t.Errorf("coins requested = %d, want %d", r.spawner.coins, want)
	}
}

func TestLevelsLoopAfterTheLast(t *testing.T) {
	first := testLevel()
	r := newRig(t, library(first))
	r.startLevel(t)
	r.damage.ApplyDamage(r.blockOfType(defs.BlockTreasureChest).ID, 100)
	r.session.Update(0.1)
	runResolve(t, r)

	s := r.session.Session()
	if s.LevelIndex != 1 || s.Level == nil || s.Level.Name != first.Name {
		t.Errorf("index %d level %v, want loop to %q", s.LevelIndex, s.Level, first.Name)
	}
	if r.session.LastError() != nil {
		t.Errorf("unexpected error %v", r.session.LastError())
	}
}

func TestMissingConfigHoldsPreparing(t *testing.T) {
	r := newRig(t, &defs.LevelLibrary{Strict: true})

	r.session.Begin()
	if !errors.Is(r.session.LastError(), defs.ErrLevelNotFound) {
		t.Fatalf("LastError = %v", r.session.LastError())
	}

	r.session.ConfirmStart()
	err := r.session.Update(0.2)
	if !errors.Is(err, defs.ErrLevelNotFound) {
		t.Fatalf("Update err = %v, want ErrLevelNotFound", err)
	}
	s := r.session.Session()
	if s.Phase != component.PhasePreparing || s.Launch.Running {
		t.Errorf("session = %+v, want idle Preparing", s)
	}
	if len(r.sink.loadFailures) != 2 {
		t.Errorf("load failure signals = %d, want 2", len(r.sink.loadFailures))
	}
	if len(r.ecs.Blocks) != 0 {
		t.Error("fortress built without a config")
	}
	if last := r.sink.store[len(r.sink.store)-1]; !last {
		t.Error("store left closed after the failed launch")
	}
}

func TestMissingNextLevelIsFatal(t *testing.T) {
	lib := library(testLevel())
	lib.Strict = true
	r := newRig(t, lib)
	r.startLevel(t)
	r.damage.ApplyDamage(r.blockOfType(defs.BlockTreasureChest).ID, 100)
	r.session.Update(0.1)

	var err error
	for i := 0; i < 200 && r.session.Phase() == component.PhaseResolving; i++ {
		err = r.session.Update(0.1)
	}
	if !errors.Is(err, defs.ErrLevelNotFound) {
		t.Fatalf("err = %v, want ErrLevelNotFound", err)
	}
	if r.session.Phase() != component.PhasePreparing {
		t.Errorf("phase = %s, want Preparing", r.session.Phase())
	}
}

func TestRetryRelaunchesSameLevel(t *testing.T) {
	r := newRig(t, library(timedLevel(2), testLevel()))
	r.startLevel(t)

	r.damage.ApplyDamage(r.blockOfType(defs.BlockStone).ID, 100)
	r.projectiles.Fire(r.ecs.Cannon.Position, utils.Vec2{X: 0, Y: 1}, defs.TierStandard)
	for i := 0; i < 4; i++ {
		r.session.Update(0.5)
	}
	if r.session.Phase() != component.PhaseFailed {
		t.Fatalf("phase = %s, want Failed", r.session.Phase())
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Error("projectiles survived the failure")
	}

	if !r.session.Retry() {
		t.Fatal("Retry rejected")
	}
	r.session.Update(0.2)
	s := r.session.Session()
	if s.Phase != component.PhaseActive || s.LevelIndex != 0 || s.TimeElapsed != 0 {
		t.Fatalf("after retry: %+v", s)
	}
	if len(r.ecs.Blocks) != 2 {
		t.Errorf("fortress not rebuilt: %d blocks", len(r.ecs.Blocks))
	}
	if r.ecs.Economy.AmmoCurrent != r.ecs.Economy.AmmoMax {
		t.Error("ammo not refilled on retry")
	}
}

func TestHullDestroyedFails(t *testing.T) {
	r := newRig(t, library(testLevel()))
	r.startLevel(t)
	stone := r.blockOfType(defs.BlockStone)

	r.projectiles.Fire(r.ecs.Cannon.Position, right, defs.TierStandard)
	r.ledger.AbsorbHit(config.BaseHullHP)
	r.session.Update(0.1)
	if r.session.Phase() != component.PhaseFailed {
		t.Fatalf("phase = %s, want Failed", r.session.Phase())
	}

	for i := 0; i < 20; i++ {
		r.session.Update(0.1)
	}
	if stone.CurrentHP != stone.MaxHP {
		t.Error("block damaged outside Active")
	}
}

func TestRestart(t *testing.T) {
	r := newRig(t, library(testLevel()))
	run := r.session.RunID()
	r.startLevel(t)
	r.ledger.AddCoins(99)

	r.session.Restart()
	s := r.session.Session()
	if s.Phase != component.PhaseMainMenu || s.LevelIndex != 0 {
		t.Errorf("after restart: %+v", s)
	}
	if s.RunID == run {
		t.Error("run ID not renewed")
	}
	if r.ledger.Coins() != 0 || len(r.ecs.Blocks) != 0 {
		t.Errorf("restart left coins=%d blocks=%d", r.ledger.Coins(), len(r.ecs.Blocks))
	}
	if r.spawner.cleared == 0 {
		t.Error("restart kept coin pickups")
	}
	r.startLevel(t)
}

func TestPhaseExclusiveTimers(t *testing.T) {
	r := newRig(t, library(timedLevel(30)))
	r.startLevel(t)
	r.damage.ApplyDamage(r.blockOfType(defs.BlockTreasureChest).ID, 100)
	r.session.Update(0.1)

	elapsed := r.session.Session().TimeElapsed
	for i := 0; i < 10; i++ {
		r.session.Update(0.1)
	}
	if got := r.session.Session().TimeElapsed; got != elapsed {
		t.Errorf("level clock ran while resolving: %v -> %v", elapsed, got)
	}
}
