// internal/input/queue.go
package input

import (
	"sync"

	"go-siege/internal/defs"
	"go-siege/internal/interfaces"
	"go-siege/pkg/utils"
)

// Queue collects player input from a frontend and hands it to the core on
// Poll. It is safe to push from another goroutine.
type Queue struct {
	mu       sync.Mutex
	fire     *interfaces.FireRequest
	requests []interfaces.Request
	aim      utils.Vec2
	tier     defs.Tier
}

func NewQueue() *Queue {
	return &Queue{aim: utils.Vec2{X: 1, Y: 1}.Normalize()}
}

// Push queues a discrete request.
func (q *Queue) Push(r interfaces.Request) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.requests = append(q.requests, r)
}

// Purchase queues a store purchase.
func (q *Queue) Purchase(id defs.UpgradeID) {
	q.Push(interfaces.Request{Kind: interfaces.RequestPurchase, Upgrade: id})
}

// Aim sets the direction used by the next Fire. Zero vectors are ignored.
func (q *Queue) Aim(dir utils.Vec2) {
	if dir.Len() == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.aim = dir.Normalize()
}

// Nudge rotates the current aim by angle radians.
func (q *Queue) Nudge(angle float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.aim = q.aim.Rotate(angle)
}

// AimDirection returns the current aim.
func (q *Queue) AimDirection() utils.Vec2 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.aim
}

// SelectTier sets the tier requested by later shots.
func (q *Queue) SelectTier(t defs.Tier) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tier = t
}

// Tier returns the selected tier.
func (q *Queue) Tier() defs.Tier {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tier
}

// Fire requests one shot along the current aim. Only the latest fire request
// between two polls is kept.
func (q *Queue) Fire() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fire = &interfaces.FireRequest{Direction: q.aim, Tier: q.tier}
}

// Poll drains the queue.
func (q *Queue) Poll() interfaces.Input {
	q.mu.Lock()
	defer q.mu.Unlock()
	in := interfaces.Input{Fire: q.fire, Requests: q.requests}
	q.fire = nil
	q.requests = nil
	return in
}
