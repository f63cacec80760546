package service

import "location-production-backend/internal/database/models"

// TransitionPolicy decides which stage status changes the lifecycle manager
// accepts. A policy without a table accepts every transition.
type TransitionPolicy struct {
	allowed map[models.StageStatus]map[models.StageStatus]bool
}

// PermissiveTransitions allows any status to move to any other status
func PermissiveTransitions() *TransitionPolicy {
	return &TransitionPolicy{}
}

// StrictTransitions only allows forward moves, pauses and explicit reopening:
// closed stages (completed, cancelled) can be reopened but not jump elsewhere,
// and a stage on hold has to resume before it can complete.
func StrictTransitions() *TransitionPolicy {
	return &TransitionPolicy{
		allowed: map[models.StageStatus]map[models.StageStatus]bool{
			models.StageStatusPending: {
				models.StageStatusInProgress: true,
				models.StageStatusOnHold:     true,
				models.StageStatusCompleted:  true,
				models.StageStatusCancelled:  true,
			},
			models.StageStatusInProgress: {
				models.StageStatusPending:   true,
				models.StageStatusOnHold:    true,
				models.StageStatusCompleted: true,
				models.StageStatusCancelled: true,
			},
			models.StageStatusOnHold: {
				models.StageStatusPending:    true,
				models.StageStatusInProgress: true,
				models.StageStatusCancelled:  true,
			},
			models.StageStatusCompleted: {
				models.StageStatusInProgress: true,
			},
			models.StageStatusCancelled: {
				models.StageStatusPending: true,
			},
		},
	}
}

// NewTransitionPolicy returns the strict policy when strict is set, the permissive one otherwise
func NewTransitionPolicy(strict bool) *TransitionPolicy {
	if strict {
		return StrictTransitions()
	}
	return PermissiveTransitions()
}

// Allows reports whether a stage may move from one status to another.
// Staying in the same status is always allowed.
func (p *TransitionPolicy) Allows(from, to models.StageStatus) bool {
	if from == to {
		return true
	}
	if p == nil || p.allowed == nil {
		return true
	}
	return p.allowed[from][to]
}

// IsStrict reports whether the policy carries a transition table
func (p *TransitionPolicy) IsStrict() bool {
	return p != nil && p.allowed != nil
}
