// internal/component/game_state.go
package component

import (
	"fmt"

	"go-siege/internal/defs"
	"go-siege/pkg/utils"

	"github.com/google/uuid"
)

// Phase is the level session state. Exactly one phase is current.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePreparing
	PhaseActive
	PhaseResolving
	PhaseFailed
)

var phaseNames = [...]string{"MainMenu", "Preparing", "Active", "Resolving", "Failed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Launch steps, run in order when a level starts.
const (
	LaunchDelay = iota
	LaunchCloseStore
	LaunchLoadConfig
	LaunchRefill
	LaunchBuildFortress
	LaunchArm
)

// LaunchSequence is the persisted progress of a level start.
type LaunchSequence struct {
	Running bool
	Step    int
	Elapsed float64 // time spent in the current step
}

// Resolve steps, run in order after the objective falls.
const (
	ResolveFountain = iota
	ResolveGathering
)

// ResolveSequence is the persisted progress of a level victory.
type ResolveSequence struct {
	Step       int
	Elapsed    float64
	Origin     utils.Vec2
	Remaining  int     // fountain coins still to emit
	SpawnTimer float64 // time until the next fountain coin
}

// LevelSession is the single session component.
type LevelSession struct {
	RunID        uuid.UUID
	Phase        Phase
	LevelIndex   int
	Level        *defs.LevelConfig // nil until a config is resolved
	TimeElapsed  float64
	TimeLimit    float64
	HasTimeLimit bool
	Perfect      bool // no hull damage taken this level
	Launch       LaunchSequence
	Resolve      ResolveSequence
	LastError    error
}

// TimeRemaining returns the seconds left on the clock, or -1 without a limit.
func (s *LevelSession) TimeRemaining() float64 {
	if !s.HasTimeLimit {
		return -1
	}
	r := s.TimeLimit - s.TimeElapsed
	if r < 0 {
		return 0
	}
	return r
}
