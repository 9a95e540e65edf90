package auth

import (
	"fmt"

	"shobukan/keikoban/internal/constants"
)

// DenyReason classifies why a profile mutation was refused.
type DenyReason string

const (
	DenyNotManagement    DenyReason = "NOT_MANAGEMENT"
	DenyInsufficientRank DenyReason = "INSUFFICIENT_RANK"
)

// Decision is the outcome of the role-hierarchy check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason DenyReason) Decision { return Decision{Reason: reason} }

// Authorize decides whether an actor may change another member's role
// or profile. The actor must hold a management role and must strictly
// outrank both the target's current role and the role being assigned.
// Pure; safe to call with unknown roles (they rank below member and
// always lose comparisons).
func Authorize(actor, currentTarget, requested constants.ClubRole) Decision {
	if !actor.IsManagement() {
		return deny(DenyNotManagement)
	}
	if !actor.Outranks(currentTarget) {
		return deny(DenyInsufficientRank)
	}
	if !actor.Outranks(requested) {
		return deny(DenyInsufficientRank)
	}
	return allow()
}

// ForbiddenError carries a deny decision across the service boundary so
// handlers can map it to a 403.
type ForbiddenError struct {
	Reason DenyReason
}

func (e *ForbiddenError) Error() string {
	switch e.Reason {
	case DenyNotManagement:
		return "forbidden: management role required"
	case DenyInsufficientRank:
		return "forbidden: insufficient rank"
	default:
		return fmt.Sprintf("forbidden: %s", string(e.Reason))
	}
}
