package system

import (
	"testing"

	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/internal/interfaces"
	"go-siege/pkg/utils"
)

// recordingSink remembers every signal it receives.
type recordingSink struct {
	interfaces.NopSink
	damages      []float64
	destroyed    []defs.BlockType
	objectives   []utils.Vec2
	failed       int
	ticks        []int
	purchases    map[defs.UpgradeID][]bool
	phases       []component.Phase
	loadFailures []error
	store        []bool
	shots        []defs.Tier
	hits         [][2]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{purchases: make(map[defs.UpgradeID][]bool)}
}

func (r *recordingSink) OnDamage(_ component.Block, pct float64) { r.damages = append(r.damages, pct) }
func (r *recordingSink) OnBlockDestroyed(b component.Block)      { r.destroyed = append(r.destroyed, b.Type) }
func (r *recordingSink) OnObjectiveDestroyed(p utils.Vec2)       { r.objectives = append(r.objectives, p) }
func (r *recordingSink) OnLevelFailed()                          { r.failed++ }
func (r *recordingSink) OnTick(s int)                            { r.ticks = append(r.ticks, s) }
func (r *recordingSink) OnShot(t defs.Tier, _ bool)              { r.shots = append(r.shots, t) }
func (r *recordingSink) OnPlayerHit(shield, health int)          { r.hits = append(r.hits, [2]int{shield, health}) }
func (r *recordingSink) OnStoreToggled(open bool)                { r.store = append(r.store, open) }
func (r *recordingSink) OnLevelLoadFailed(_ int, err error)      { r.loadFailures = append(r.loadFailures, err) }

func (r *recordingSink) OnPurchaseResult(id defs.UpgradeID, ok bool) {
	r.purchases[id] = append(r.purchases[id], ok)
}

func (r *recordingSink) OnPhaseChanged(_, to component.Phase) {
	r.phases = append(r.phases, to)
}

// countingSpawner counts requested coins.
type countingSpawner struct {
	coins   int
	calls   int
	cleared int
}

func (c *countingSpawner) SpawnCoins(_ utils.Vec2, n int) {
	c.coins += n
	c.calls++
}

func (c *countingSpawner) ClearCoins() { c.cleared++ }

type rig struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	ledger      *Ledger
	damage      *DamageSystem
	projectiles *ProjectileSystem
	fortress    *FortressSystem
	turrets     *TurretSystem
	fountain    *FountainSystem
	session     *SessionSystem
	sink        *recordingSink
	spawner     *countingSpawner
}

func newRig(t *testing.T, provider interfaces.LevelProvider) *rig {
	t.Helper()
	r := &rig{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		sink:       newRecordingSink(),
		spawner:    &countingSpawner{},
	}
	tiers := defs.DefaultTiers()
	r.ledger = NewLedger(r.ecs, r.dispatcher, defs.DefaultPricing(), tiers)
	r.damage = NewDamageSystem(r.ecs, r.dispatcher)
	r.projectiles = NewProjectileSystem(r.ecs, r.dispatcher, r.damage, r.ledger, tiers)
	r.fortress = NewFortressSystem(r.ecs, defs.DefaultBlocks())
	r.turrets = NewTurretSystem(r.ecs, r.projectiles)
	r.fountain = NewFountainSystem(r.ecs, r.dispatcher)
	NewSignalBridge(r.dispatcher, r.sink, r.spawner)
	if provider != nil {
		r.session = NewSessionSystem(r.ecs, r.dispatcher, provider, r.ledger, r.fortress, r.projectiles, r.turrets, r.fountain, r.damage)
	}
	return r
}

// testLevel is a flat two-block fortress without gravity: a stone in front
// of the chest.
func testLevel() defs.LevelConfig {
	return defs.LevelConfig{
		Number:        1,
		Name:          "Test",
		Layout:        defs.MustParseLayout("ST"),
		SpawnPosition: utils.Vec2{X: 20, Y: 0.5},
		ObjectiveType: defs.BlockTreasureChest,
		RewardCoins:   10,
		PerfectBonus:  5,
		NoGravity:     true,
	}
}

func library(levels ...defs.LevelConfig) *defs.LevelLibrary {
	return &defs.LevelLibrary{Levels: levels}
}

// startLevel drives the session from the main menu into Active.
func (r *rig) startLevel(t *testing.T) {
	t.Helper()
	if !r.session.Begin() {
		t.Fatal("Begin rejected")
	}
	if !r.session.ConfirmStart() {
		t.Fatal("ConfirmStart rejected")
	}
	if err := r.session.Update(0.2); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if r.session.Phase() != component.PhaseActive {
		t.Fatalf("phase = %s after launch, want Active", r.session.Phase())
	}
}

func (r *rig) blockOfType(bt defs.BlockType) *component.Block {
	for _, id := range r.ecs.BlockIDs() {
		if b := r.ecs.Blocks[id]; b.Type == bt {
			return b
		}
	}
	return nil
}
