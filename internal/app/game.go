// internal/app/game.go
package app

import (
	"log"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/internal/interfaces"
	"go-siege/internal/pickup"
	"go-siege/internal/system"
	"go-siege/internal/utils"
	putils "go-siege/pkg/utils"
)

// Options configures a Game. Zero values fall back to the built-in
// definitions.
type Options struct {
	Levels  interfaces.LevelProvider
	Blocks  defs.BlockLibrary
	Pricing defs.Pricing
	Tiers   defs.TierTable
	Sink    interfaces.SignalSink
	Input   interfaces.InputSource
	// Spawner replaces the built-in coin field. The replacement is
	// responsible for crediting collected coins to the ledger.
	Spawner interfaces.CoinSpawner
	Seed    int64
}

// Game holds the simulation state and the systems that drive it.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Ledger           *system.Ledger
	DamageSystem     *system.DamageSystem
	ProjectileSystem *system.ProjectileSystem
	FortressSystem   *system.FortressSystem
	TurretSystem     *system.TurretSystem
	FountainSystem   *system.FountainSystem
	SessionSystem    *system.SessionSystem
	SignalBridge     *system.SignalBridge
	Coins            *pickup.CoinField // nil when Options.Spawner is set
	Rng              *utils.PRNGService

	input interfaces.InputSource
}

// NewGame initializes a new game instance sitting in the main menu.
func NewGame(opts Options) *Game {
	if opts.Levels == nil {
		opts.Levels = defs.DefaultLevels()
	}
	if opts.Blocks == nil {
		opts.Blocks = defs.DefaultBlocks()
	}
	if opts.Pricing == (defs.Pricing{}) {
		opts.Pricing = defs.DefaultPricing()
	}
	if opts.Tiers == (defs.TierTable{}) {
		opts.Tiers = defs.DefaultTiers()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		input:           opts.Input,
	}
	g.Ledger = system.NewLedger(ecs, eventDispatcher, opts.Pricing, opts.Tiers)
	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.DamageSystem, g.Ledger, opts.Tiers)
	g.FortressSystem = system.NewFortressSystem(ecs, opts.Blocks)
	g.TurretSystem = system.NewTurretSystem(ecs, g.ProjectileSystem)
	g.FountainSystem = system.NewFountainSystem(ecs, eventDispatcher)

	spawner := opts.Spawner
	if spawner == nil {
		g.Coins = pickup.NewCoinField(g.Ledger, g.Rng)
		spawner = g.Coins
	}
	g.SignalBridge = system.NewSignalBridge(eventDispatcher, opts.Sink, spawner)
	g.SessionSystem = system.NewSessionSystem(ecs, eventDispatcher, opts.Levels,
		g.Ledger, g.FortressSystem, g.ProjectileSystem, g.TurretSystem, g.FountainSystem, g.DamageSystem)

	log.Printf("Game: run %s started", g.SessionSystem.RunID())
	return g
}

// Update polls input, applies it and advances the simulation by deltaTime.
// The returned error is a fatal level configuration error; the game stays
// usable and holds in Preparing.
func (g *Game) Update(deltaTime float64) error {
	if g.input != nil {
		in := g.input.Poll()
		for _, r := range in.Requests {
			g.Handle(r)
		}
		if in.Fire != nil {
			g.Fire(in.Fire.Direction, in.Fire.Tier)
		}
	}
	err := g.SessionSystem.Update(deltaTime)
	if g.Coins != nil {
		g.Coins.Update(deltaTime)
	}
	return err
}

// Handle applies one discrete request. Requests that make no sense in the
// current phase are ignored.
func (g *Game) Handle(r interfaces.Request) bool {
	switch r.Kind {
	case interfaces.RequestBeginGame:
		return g.SessionSystem.Begin()
	case interfaces.RequestConfirmStart:
		return g.SessionSystem.ConfirmStart()
	case interfaces.RequestRetry:
		return g.SessionSystem.Retry()
	case interfaces.RequestPurchase:
		if g.Phase() != component.PhasePreparing {
			log.Printf("Game: purchase of %s ignored in %s", r.Upgrade, g.Phase())
			return false
		}
		return g.Ledger.Purchase(r.Upgrade)
	case interfaces.RequestRestart:
		g.SessionSystem.Restart()
		return true
	}
	log.Printf("Game: unknown request %s", r.Kind)
	return false
}

// Fire shoots from the muzzle along direction.
func (g *Game) Fire(direction putils.Vec2, tier defs.Tier) bool {
	return g.ProjectileSystem.Fire(g.MuzzlePosition(direction), direction, tier)
}

// MuzzlePosition is where shots aimed along direction leave the barrel.
func (g *Game) MuzzlePosition(direction putils.Vec2) putils.Vec2 {
	return g.ECS.Cannon.Position.Add(direction.Normalize().Scale(config.MuzzleLength))
}

// CollectCoins picks up the coins near pos, when the built-in coin field is
// in use.
func (g *Game) CollectCoins(pos putils.Vec2) int {
	if g.Coins == nil {
		return 0
	}
	return g.Coins.CollectNear(pos, config.CoinCollectRadius)
}

func (g *Game) Phase() component.Phase {
	return g.SessionSystem.Phase()
}

func (g *Game) Session() component.LevelSession {
	return g.SessionSystem.Session()
}

func (g *Game) Economy() component.PlayerEconomy {
	return g.Ledger.Economy()
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}
