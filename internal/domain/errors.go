package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Lifecycle errors
	ErrMsgInvalidTransition = "invalid transition"
	ErrMsgAlreadyCompleted  = "already completed"
	ErrMsgAlreadyStarted    = "already started"
	ErrMsgSubTasksPending   = "sub-tasks are not all completed"
	ErrMsgStepsPending      = "mission steps are not all recorded"
	ErrMsgStepOutOfRange    = "mission step out of range"

	// Quota errors
	ErrMsgRejectedByQuota  = "rejected by quota"
	ErrMsgSideQuestsLocked = "side quests are locked"

	// Redemption errors
	ErrMsgRedemptionUnavailable = "redemption unavailable"
	ErrMsgNotCursed             = "not cursed"
	ErrMsgRecoveryPending       = "a recovery batch is already pending"
	ErrMsgNoRecoveryPending     = "no recovery batch is pending"
	ErrMsgRedemptionUsed        = "redemption already used this week"

	// Catalog errors
	ErrMsgTemplateNotFound = "catalog template not found"

	// Persistence errors
	ErrMsgPersistenceFailure = "persistence failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrInvalidTransition     = errors.New(ErrMsgInvalidTransition)
	ErrRejectedByQuota       = errors.New(ErrMsgRejectedByQuota)
	ErrRedemptionUnavailable = errors.New(ErrMsgRedemptionUnavailable)
	ErrTemplateNotFound      = errors.New(ErrMsgTemplateNotFound)
	ErrPersistenceFailure    = errors.New(ErrMsgPersistenceFailure)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)
)

// Quota rejection kinds
const (
	QuotaKindMainQuest  = "main_quest"
	QuotaKindSideQuest  = "side_quest"
	QuotaKindMission    = "mission"
	QuotaKindSideLocked = "side_quest_lock"
)

// QuotaError reports why a start or completion was refused by the rank quota.
type QuotaError struct {
	Kind   string     `json:"kind"`
	Reason string     `json:"reason"`
	Rank   Rank       `json:"rank"`
	Limit  int        `json:"limit"`
	Used   int        `json:"used"`
	Until  *time.Time `json:"until,omitempty"`
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgRejectedByQuota, e.Reason)
}

// Unwrap lets errors.Is match ErrRejectedByQuota.
func (e *QuotaError) Unwrap() error {
	return ErrRejectedByQuota
}
