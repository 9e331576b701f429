package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// Reconciler applies every time-based transition due at the current instant
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

// MidnightReconcileWorker runs Reconcile just after each local midnight so
// expiries, the weekly reset and missed deadlines land without user activity.
type MidnightReconcileWorker struct {
	reconciler Reconciler
	loc        *time.Location
	now        func() time.Time
	timer      *time.Timer
	shutdown   chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
}

// NewMidnightReconcileWorker creates a worker for the given zone
func NewMidnightReconcileWorker(r Reconciler, loc *time.Location) *MidnightReconcileWorker {
	if loc == nil {
		loc = time.Local
	}
	return &MidnightReconcileWorker{
		reconciler: r,
		loc:        loc,
		now:        time.Now,
		shutdown:   make(chan struct{}),
	}
}

// Start schedules the first run
func (w *MidnightReconcileWorker) Start() {
	w.scheduleNext()
}

func (w *MidnightReconcileWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := timeUntilNextMidnight(w.now(), w.loc)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two stages so an early timer fire never causes a tight reschedule loop
	if duration > StandbyThreshold {
		wait := duration - ApproachLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgReconcileStandby, "next_check_at", w.now().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration+ReconcileGrace, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		rem := timeUntilNextMidnight(w.now(), w.loc)
		if rem > EarlyFireTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.Trigger()
		w.scheduleNext()
	})
	log.Info(LogMsgReconcileApproach, "next_run_at", w.now().Add(duration+ReconcileGrace))
}

// Trigger runs one reconcile in a tracked goroutine
func (w *MidnightReconcileWorker) Trigger() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgReconcileStarting)

		if err := w.reconciler.Reconcile(ctx); err != nil {
			log.Error(LogMsgReconcileFailed, "error", err)
			return
		}
		log.Info(LogMsgReconcileCompleted)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight run
func (w *MidnightReconcileWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Midnight reconcile worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Midnight reconcile worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextMidnight returns the wait until the next local midnight in loc
func timeUntilNextMidnight(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	return utils.NextMidnight(local).Sub(local)
}
