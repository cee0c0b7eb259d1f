// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"go-siege/internal/app"
	"go-siege/internal/audio"
	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/input"
	"go-siege/internal/interfaces"
	"go-siege/internal/ui"
	"go-siege/pkg/render"
	"go-siege/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var tierKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState is the playing screen: it turns mouse and keyboard into queued
// input, steps the game and draws it.
type GameState struct {
	interfaces.NopSink

	sm        *StateMachine
	game      *app.Game
	queue     *input.Queue
	sound     *audio.SoundSink
	muted     bool
	renderer  *render.FortressRenderer
	indicator *ui.StateIndicator
	level     *ui.LevelIndicator
	health    *ui.PlayerHealthIndicator
	store     *ui.StorePanel
	face      font.Face

	lastClickTime time.Time
	lastErr       error
}

// NewGameState builds the game from opts. sound may be nil.
func NewGameState(sm *StateMachine, opts app.Options, sound *audio.SoundSink) *GameState {
	g := &GameState{
		sm:    sm,
		queue: input.NewQueue(),
		sound: sound,
		renderer: render.NewFortressRenderer(&render.SceneColors{
			Sky:         config.SkyColor,
			Ground:      config.GroundColor,
			Cannon:      config.CannonColor,
			Coin:        config.CoinColor,
			Turret:      config.TurretColor,
			HostileShot: config.HostileShotColor,
			Flash:       config.TextLightColor,
			StrokeWidth: float32(config.StrokeWidth),
		}),
		indicator: ui.NewStateIndicator(config.ScreenWidth-40, 40, 18),
		level:     ui.NewLevelIndicator(config.ScreenWidth-100, 46),
		health:    ui.NewPlayerHealthIndicator(20, 80),
		store:     ui.NewStorePanel(config.ScreenWidth/2-130, 120),
		face:      basicfont.Face7x13,
	}

	sinks := interfaces.MultiSink{g.renderer, g}
	if sound != nil {
		g.muted = sound.Muted()
		sinks = append(sinks, sound)
	}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}
	opts.Sink = sinks
	opts.Input = g.queue
	g.game = app.NewGame(opts)
	return g
}

func (g *GameState) OnPurchaseResult(id defs.UpgradeID, success bool) {
	if success {
		g.store.SetMessage("Bought " + id.Label())
		return
	}
	g.store.SetMessage("Cannot buy " + id.Label())
}

func (g *GameState) OnLevelLoadFailed(index int, err error) {
	g.lastErr = err
}

func (g *GameState) OnPhaseChanged(_, to component.Phase) {
	if to == component.PhasePreparing {
		g.store.SetMessage("")
	}
	if to == component.PhaseActive {
		g.lastErr = nil
	}
}

// Enter begins the game when coming from the title screen.
func (g *GameState) Enter() {
	if g.game.Phase() == component.PhaseMainMenu {
		g.queue.Push(interfaces.Request{Kind: interfaces.RequestBeginGame})
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		g.muted = !g.muted
		g.sound.SetMuted(g.muted)
	}

	phase := g.game.Phase()
	mx, my := ebiten.CursorPosition()
	cursor := render.ScreenToWorld(mx, my)
	g.queue.Aim(cursor.Sub(g.game.ECS.Cannon.Position))

	for i, k := range tierKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.queue.SelectTier(defs.Tier(i))
		}
	}

	switch phase {
	case component.PhasePreparing:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.queue.Push(interfaces.Request{Kind: interfaces.RequestConfirmStart})
		}
	case component.PhaseActive:
		if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.queue.Fire()
		}
	case component.PhaseFailed:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.queue.Push(interfaces.Request{Kind: interfaces.RequestRetry})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.queue.Push(interfaces.Request{Kind: interfaces.RequestRestart})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		g.handleClick(phase, mx, my, cursor)
		g.lastClickTime = time.Now()
	}

	if err := g.game.Update(deltaTime); err != nil {
		log.Printf("GameState: %v", err)
	}
	g.renderer.Update(deltaTime)
	g.indicator.SetPhase(g.game.Phase())
	if g.game.Phase() == component.PhasePreparing {
		g.store.Refresh(g.game.Ledger)
	}

	if g.game.Phase() == component.PhaseMainMenu {
		g.sm.SetState(NewMenuState(g.sm, g))
	}
}

// handleClick routes a click by phase: the store while preparing, coin
// pickup while resolving. Shots are handled with the held button.
func (g *GameState) handleClick(phase component.Phase, mx, my int, cursor utils.Vec2) {
	switch phase {
	case component.PhasePreparing:
		if req, ok := g.store.Click(mx, my); ok {
			g.queue.Push(req)
		}
	case component.PhaseResolving:
		if n := g.game.CollectCoins(cursor); n > 0 {
			log.Printf("GameState: collected %d coins", n)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	var coins []component.CoinPickup
	if g.game.Coins != nil {
		coins = g.game.Coins.Coins()
	}
	g.renderer.Draw(screen, g.game.ECS, coins, g.queue.AimDirection())

	sess := g.game.Session()
	eco := g.game.Economy()

	g.indicator.Draw(screen)
	if sess.Level != nil {
		g.level.Draw(screen, g.face, sess.Level.Number)
		text.Draw(screen, sess.Level.Name, g.face, 20, 24, config.TextLightColor)
		if sess.Phase == component.PhasePreparing {
			text.Draw(screen, sess.Level.Description, g.face, 20, 42, config.TextLightColor)
		}
	}

	maxShield := 0
	if eco.ShieldUnlocked {
		maxShield = eco.ShieldMaxHP
	}
	g.health.Draw(screen, g.face, eco.HealthCurrent, eco.HealthMax, eco.ShieldCurrentHP, maxShield)

	tier := min(g.queue.Tier(), eco.AmmoTier)
	status := fmt.Sprintf("Coins %d   Ammo %d/%d   Tier %s", eco.Coins, eco.AmmoCurrent, eco.AmmoMax, tier)
	if eco.AmmoCurrent == 0 && sess.Phase == component.PhaseActive {
		status += "   WEAK SHOTS ONLY"
	}
	text.Draw(screen, status, g.face, 20, 60, config.CoinColor)

	if sess.Phase == component.PhaseActive && sess.HasTimeLimit {
		left := sess.TimeRemaining()
		clr := config.TextLightColor
		if left <= config.CountdownThreshold {
			clr = config.HullColor
		}
		text.Draw(screen, fmt.Sprintf("%.1f", left), g.face, config.ScreenWidth/2-14, 30, clr)
	}

	switch sess.Phase {
	case component.PhasePreparing:
		g.store.Draw(screen, g.face)
	case component.PhaseResolving:
		g.centered(screen, "Objective destroyed! Click the coins to collect them.", config.CoinColor)
	case component.PhaseFailed:
		g.centered(screen, "Level failed. Enter to retry, Shift+R to restart.", config.HullColor)
	}
	if g.lastErr != nil {
		text.Draw(screen, g.lastErr.Error(), g.face, 20, config.ScreenHeight-20, config.HullColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), config.ScreenWidth-80, config.ScreenHeight-20)
}

func (g *GameState) centered(screen *ebiten.Image, msg string, clr color.Color) {
	x := (config.ScreenWidth - len(msg)*config.TextCharWidth) / 2
	text.Draw(screen, msg, g.face, x, config.ScreenHeight/3, clr)
}

func (g *GameState) Exit() {}
