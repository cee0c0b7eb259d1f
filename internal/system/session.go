// internal/system/session.go
package system

import (
	"fmt"
	"log"
	"math"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/internal/interfaces"
	"go-siege/pkg/utils"

	"github.com/google/uuid"
)

// SessionSystem runs the level state machine:
//
//	MainMenu -> Preparing -> Active -> Resolving -> Preparing
//	                           Active -> Failed -> Active
//
// Multi-step transitions are stored on the session component and advanced by
// Update, one tick at a time.
type SessionSystem struct {
	ecs              *entity.ECS
	eventDispatcher  *event.Dispatcher
	provider         interfaces.LevelProvider
	ledger           *Ledger
	fortressSystem   *FortressSystem
	projectileSystem *ProjectileSystem
	turretSystem     *TurretSystem
	fountainSystem   *FountainSystem
	damageSystem     *DamageSystem

	objectiveDown bool
	objectivePos  utils.Vec2
	defeated      bool
}

func NewSessionSystem(
	ecs *entity.ECS,
	eventDispatcher *event.Dispatcher,
	provider interfaces.LevelProvider,
	ledger *Ledger,
	fortressSystem *FortressSystem,
	projectileSystem *ProjectileSystem,
	turretSystem *TurretSystem,
	fountainSystem *FountainSystem,
	damageSystem *DamageSystem,
) *SessionSystem {
	s := &SessionSystem{
		ecs:              ecs,
		eventDispatcher:  eventDispatcher,
		provider:         provider,
		ledger:           ledger,
		fortressSystem:   fortressSystem,
		projectileSystem: projectileSystem,
		turretSystem:     turretSystem,
		fountainSystem:   fountainSystem,
		damageSystem:     damageSystem,
	}
	ecs.Session.RunID = uuid.New()
	eventDispatcher.SubscribeAll(s, event.ObjectiveDestroyed, event.PlayerHit, event.PlayerDefeated)
	return s
}

func (s *SessionSystem) OnEvent(e event.Event) {
	sess := s.ecs.Session
	switch e.Type {
	case event.ObjectiveDestroyed:
		if sess.Phase == component.PhaseActive && !s.objectiveDown {
			s.objectiveDown = true
			s.objectivePos = e.Data.(event.BlockData).Block.Position
		}
	case event.PlayerHit:
		if e.Data.(event.PlayerHitData).HullDamage > 0 {
			sess.Perfect = false
		}
	case event.PlayerDefeated:
		if sess.Phase == component.PhaseActive {
			s.defeated = true
		}
	}
}

// Phase returns the current phase.
func (s *SessionSystem) Phase() component.Phase {
	return s.ecs.Session.Phase
}

// Session returns a copy of the session component.
func (s *SessionSystem) Session() component.LevelSession {
	return *s.ecs.Session
}

// RunID identifies the current play-through.
func (s *SessionSystem) RunID() uuid.UUID {
	return s.ecs.Session.RunID
}

// LastError returns the most recent fatal configuration error, if any.
func (s *SessionSystem) LastError() error {
	return s.ecs.Session.LastError
}

// Begin leaves the main menu and opens the store.
func (s *SessionSystem) Begin() bool {
	if s.ecs.Session.Phase != component.PhaseMainMenu {
		log.Printf("SessionSystem: begin ignored in %s", s.ecs.Session.Phase)
		return false
	}
	s.setPhase(component.PhasePreparing)
	s.storeToggled(true)
	s.peekLevel()
	return true
}

// ConfirmStart starts the launch sequence for the current level.
func (s *SessionSystem) ConfirmStart() bool {
	sess := s.ecs.Session
	if sess.Phase != component.PhasePreparing || sess.Launch.Running {
		log.Printf("SessionSystem: start ignored in %s", sess.Phase)
		return false
	}
	s.startLaunch()
	return true
}

// Retry relaunches the failed level with the same index.
func (s *SessionSystem) Retry() bool {
	sess := s.ecs.Session
	if sess.Phase != component.PhaseFailed || sess.Launch.Running {
		log.Printf("SessionSystem: retry ignored in %s", sess.Phase)
		return false
	}
	s.startLaunch()
	return true
}

// Restart abandons the play-through: economy back to defaults, first level,
// main menu and a fresh run ID.
func (s *SessionSystem) Restart() {
	s.projectileSystem.Clear()
	s.turretSystem.Clear()
	s.fortressSystem.Teardown()
	s.eventDispatcher.Dispatch(event.Event{Type: event.CoinsCleared})
	s.ledger.Reset()

	s.objectiveDown = false
	s.defeated = false
	s.ecs.Cannon.LastFireTime = math.Inf(-1)
	s.ecs.Cannon.LastWeakFire = math.Inf(-1)

	sess := s.ecs.Session
	phase := sess.Phase
	*sess = component.LevelSession{RunID: uuid.New(), Phase: phase}
	s.setPhase(component.PhaseMainMenu)
	log.Printf("SessionSystem: restarted, run %s", sess.RunID)
}

// Update advances the simulation clock and the current phase by deltaTime.
// It returns the fatal error of a configuration lookup made during this tick.
func (s *SessionSystem) Update(deltaTime float64) error {
	s.ecs.GameTime += deltaTime
	sess := s.ecs.Session

	switch sess.Phase {
	case component.PhasePreparing, component.PhaseFailed:
		if sess.Launch.Running {
			return s.advanceLaunch(deltaTime)
		}
	case component.PhaseActive:
		s.updateActive(deltaTime)
	case component.PhaseResolving:
		return s.advanceResolve(deltaTime)
	}
	return nil
}

func (s *SessionSystem) startLaunch() {
	sess := s.ecs.Session
	sess.Launch = component.LaunchSequence{Running: true, Step: component.LaunchDelay}
	sess.LastError = nil
}

func (s *SessionSystem) advanceLaunch(deltaTime float64) error {
	sess := s.ecs.Session
	l := &sess.Launch

	for l.Running {
		switch l.Step {
		case component.LaunchDelay:
			l.Elapsed += deltaTime
			deltaTime = 0
			if l.Elapsed < config.LaunchDelay {
				return nil
			}
		case component.LaunchCloseStore:
			s.storeToggled(false)
		case component.LaunchLoadConfig:
			cfg, err := s.provider.Level(sess.LevelIndex)
			if err != nil {
				*l = component.LaunchSequence{}
				err = s.fatal(err)
				if sess.Phase == component.PhasePreparing {
					s.storeToggled(true)
				}
				return err
			}
			sess.Level = &cfg
			s.projectileSystem.SetEnvironment(!cfg.NoGravity, cfg.Wind)
			s.damageSystem.SetObjectiveType(cfg.ObjectiveType)
		case component.LaunchRefill:
			s.ledger.Refill()
			sess.Perfect = true
			s.objectiveDown = false
			s.defeated = false
		case component.LaunchBuildFortress:
			s.projectileSystem.Clear()
			s.turretSystem.Clear()
			s.fortressSystem.Teardown()
			n := s.fortressSystem.Build(sess.Level.Layout, sess.Level.SpawnPosition)
			s.turretSystem.Spawn(sess.Level.EnemySpawns)
			log.Printf("SessionSystem: level %d %q built with %d blocks", sess.LevelIndex, sess.Level.Name, n)
		case component.LaunchArm:
			sess.TimeElapsed = 0
			sess.HasTimeLimit = sess.Level.HasTimeLimit
			sess.TimeLimit = sess.Level.TimeLimit
			*l = component.LaunchSequence{}
			s.setPhase(component.PhaseActive)
			return nil
		}
		l.Step++
		l.Elapsed = 0
	}
	return nil
}

// timeEpsilon absorbs the rounding drift of summing frame deltas, so that
// 1800 ticks of 1/60 s reach a 30 s limit.
const timeEpsilon = 1e-9

// remaining is the time left on the clock with drift snapped to whole
// seconds.
func remaining(limit, elapsed float64) float64 {
	r := limit - elapsed
	if w := math.Round(r); math.Abs(r-w) <= timeEpsilon {
		return w
	}
	return r
}

func (s *SessionSystem) updateActive(deltaTime float64) {
	sess := s.ecs.Session
	prev := sess.TimeElapsed
	sess.TimeElapsed += deltaTime
	if sess.HasTimeLimit {
		s.countdown(remaining(sess.TimeLimit, prev), remaining(sess.TimeLimit, sess.TimeElapsed))
	}

	s.turretSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)

	switch {
	case s.objectiveDown:
		s.enterResolving()
	case s.defeated:
		s.fail("hull destroyed")
	case sess.HasTimeLimit && remaining(sess.TimeLimit, sess.TimeElapsed) <= 0:
		s.fail("time limit reached")
	}
}

// countdown signals every whole second of remaining time crossed between two
// ticks, within the final CountdownThreshold seconds.
func (s *SessionSystem) countdown(before, after float64) {
	high := int(math.Ceil(before)) - 1
	low := int(math.Ceil(after))
	high = min(high, config.CountdownThreshold)
	low = max(low, 1)
	for k := high; k >= low; k-- {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CountdownTick,
			Data: event.CountdownData{SecondsRemaining: k},
		})
	}
}

func (s *SessionSystem) enterResolving() {
	sess := s.ecs.Session
	s.objectiveDown = false
	s.projectileSystem.Clear()

	coins := 0
	if sess.Level != nil {
		coins = sess.Level.RewardCoins
		if sess.Perfect {
			coins += sess.Level.PerfectBonus
		}
	}
	sess.Resolve = component.ResolveSequence{Step: component.ResolveFountain}
	s.fountainSystem.Start(s.objectivePos, coins)
	s.setPhase(component.PhaseResolving)
	log.Printf("SessionSystem: objective destroyed after %.2fs, %d reward coins", sess.TimeElapsed, coins)
}

func (s *SessionSystem) advanceResolve(deltaTime float64) error {
	r := &s.ecs.Session.Resolve
	switch r.Step {
	case component.ResolveFountain:
		if s.fountainSystem.Update(deltaTime) {
			r.Step = component.ResolveGathering
			r.Elapsed = 0
		}
	case component.ResolveGathering:
		r.Elapsed += deltaTime
		if r.Elapsed >= config.GatheringDuration {
			return s.finishLevel()
		}
	}
	return nil
}

func (s *SessionSystem) finishLevel() error {
	sess := s.ecs.Session
	s.eventDispatcher.Dispatch(event.Event{Type: event.CoinsCleared})
	s.turretSystem.Clear()
	sess.LevelIndex++
	sess.Resolve = component.ResolveSequence{}
	s.setPhase(component.PhasePreparing)
	s.storeToggled(true)
	return s.peekLevel()
}

// peekLevel resolves the configuration for the current index ahead of launch.
func (s *SessionSystem) peekLevel() error {
	sess := s.ecs.Session
	cfg, err := s.provider.Level(sess.LevelIndex)
	if err != nil {
		sess.Level = nil
		return s.fatal(err)
	}
	sess.Level = &cfg
	return nil
}

func (s *SessionSystem) fail(reason string) {
	s.defeated = false
	s.projectileSystem.Clear()
	s.setPhase(component.PhaseFailed)
	log.Printf("SessionSystem: level %d failed: %s", s.ecs.Session.LevelIndex, reason)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelFailed})
}

func (s *SessionSystem) fatal(err error) error {
	sess := s.ecs.Session
	err = fmt.Errorf("session %s: %w", sess.RunID, err)
	sess.LastError = err
	log.Printf("SessionSystem: cannot load level %d: %v", sess.LevelIndex, err)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.LevelLoadFailed,
		Data: event.LoadFailedData{Index: sess.LevelIndex, Err: err},
	})
	return err
}

func (s *SessionSystem) setPhase(to component.Phase) {
	sess := s.ecs.Session
	from := sess.Phase
	if from == to {
		return
	}
	sess.Phase = to
	log.Printf("SessionSystem: %s -> %s", from, to)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: from, To: to}})
}

func (s *SessionSystem) storeToggled(open bool) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.StoreToggled, Data: event.StoreData{Open: open}})
}
