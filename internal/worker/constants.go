package worker

import (
	"errors"
	"time"
)

var (
	// ErrPoolStopped is returned by Enqueue after Stop
	ErrPoolStopped = errors.New("worker pool stopped")
	// ErrQueueFull is returned by TryEnqueue when no queue slot is free
	ErrQueueFull = errors.New("worker queue full")
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Reconcile Worker
// ============================================================================

// Log messages for the midnight reconcile worker
const (
	LogMsgReconcileStarting  = "Midnight reconcile starting"
	LogMsgReconcileCompleted = "Midnight reconcile completed"
	LogMsgReconcileFailed    = "Midnight reconcile failed"
	LogMsgReconcileStandby   = "Midnight reconcile standby"
	LogMsgReconcileApproach  = "Midnight reconcile scheduled"
)

// Two-stage scheduling windows for the reconcile worker
const (
	// StandbyThreshold is how far out the worker sleeps in standby mode
	StandbyThreshold = time.Hour
	// ApproachLead is how early the standby timer wakes before midnight
	ApproachLead = 45 * time.Minute
	// EarlyFireTolerance is the slack accepted when a timer fires before midnight
	EarlyFireTolerance = 10 * time.Second
	// ReconcileGrace runs the reconcile slightly after midnight so day boundaries are crossed
	ReconcileGrace = time.Second
)
