// internal/interfaces/input.go
package interfaces

import (
	"go-siege/internal/defs"
	"go-siege/pkg/utils"
)

// RequestKind enumerates the discrete player requests.
type RequestKind int

const (
	RequestBeginGame RequestKind = iota
	RequestConfirmStart
	RequestRetry
	RequestPurchase
	RequestRestart
)

func (k RequestKind) String() string {
	switch k {
	case RequestBeginGame:
		return "BeginGame"
	case RequestConfirmStart:
		return "ConfirmStart"
	case RequestRetry:
		return "Retry"
	case RequestPurchase:
		return "Purchase"
	case RequestRestart:
		return "Restart"
	}
	return "Unknown"
}

// Request is a single discrete input. Upgrade is set for purchases only.
type Request struct {
	Kind    RequestKind
	Upgrade defs.UpgradeID
}

// FireRequest aims the cannon and asks for a shot of the given tier.
type FireRequest struct {
	Direction utils.Vec2
	Tier      defs.Tier
}

// Input is everything the player asked for since the previous poll.
type Input struct {
	Fire     *FireRequest
	Requests []Request
}

// InputSource is polled once per tick on the game thread.
type InputSource interface {
	Poll() Input
}
