// internal/tui/controls.go
package tui

import (
	"math"

	"go-siege/internal/component"
	"go-siege/internal/defs"
	"go-siege/internal/input"
	"go-siege/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

const aimStep = math.Pi / 90

// Action is what the frontend itself has to do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMute
)

// Controls translates key presses into queued game input.
type Controls struct {
	queue *input.Queue
}

func NewControls(queue *input.Queue) *Controls {
	return &Controls{queue: queue}
}

// HandleKey queues the request bound to ev in the given phase. Number keys
// buy store items while preparing and pick the ammo tier otherwise.
func (c *Controls) HandleKey(ev *tcell.EventKey, phase component.Phase) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		switch phase {
		case component.PhaseMainMenu:
			c.request(interfaces.RequestBeginGame)
		case component.PhasePreparing:
			c.request(interfaces.RequestConfirmStart)
		case component.PhaseFailed:
			c.request(interfaces.RequestRetry)
		}
	case tcell.KeyUp, tcell.KeyLeft:
		c.queue.Nudge(aimStep)
	case tcell.KeyDown, tcell.KeyRight:
		c.queue.Nudge(-aimStep)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune(), phase)
	}
	return ActionNone
}

func (c *Controls) handleRune(r rune, phase component.Phase) Action {
	switch {
	case r == ' ' || r == 'f':
		c.queue.Fire()
	case r == 'm':
		return ActionToggleMute
	case r == 'R':
		c.request(interfaces.RequestRestart)
	case r == 'w' || r == 'a':
		c.queue.Nudge(aimStep)
	case r == 's' || r == 'd':
		c.queue.Nudge(-aimStep)
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if phase == component.PhasePreparing {
			if i < len(defs.StoreOrder) {
				c.queue.Purchase(defs.StoreOrder[i])
			}
			break
		}
		if i <= int(defs.MaxTier) {
			c.queue.SelectTier(defs.Tier(i))
		}
	}
	return ActionNone
}

func (c *Controls) request(kind interfaces.RequestKind) {
	c.queue.Push(interfaces.Request{Kind: kind})
}
