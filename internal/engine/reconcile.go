package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/penalty"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// Reconcile runs the time-based transitions at the current time.
// It satisfies worker.Reconciler.
func (s *service) Reconcile(ctx context.Context) error {
	_, err := s.ReconcileAt(ctx, s.now())
	return err
}

// ReconcileAt runs the time-based transitions as of now. Running it twice for
// the same now changes nothing the second time.
func (s *service) ReconcileAt(ctx context.Context, now time.Time) (ReconcileResult, error) {
	return s.run(ctx, OpReconcile, now.In(s.loc), func(*domain.State, time.Time) ([]domain.Effect, error) {
		return nil, nil
	})
}

// reconcileLocked commits the time-based transitions as their own version.
// Callers hold s.mu.
func (s *service) reconcileLocked(ctx context.Context, now time.Time) ReconcileResult {
	next := s.state.Clone()
	effects, missed := reconcileState(&next, now)
	if len(effects) == 0 {
		return ReconcileResult{Version: s.state.Version}
	}

	s.commit(ctx, OpReconcile, next, effects)

	res := ReconcileResult{
		Version:       s.state.Version,
		Missed:        missed,
		Notifications: domain.Notifications(effects),
	}
	logger.FromContext(ctx).Info(LogMsgReconciled,
		"version", res.Version,
		"missed", len(res.Missed),
		"notifications", len(res.Notifications))
	return res
}

// reconcileState records every newly missed deadline, runs expiries and the
// weekly reset, then settles a pending redemption batch. Misses whose deadline
// falls before a pending weekly reset are charged to the week they belong to,
// so the reset clears them.
func reconcileState(st *domain.State, now time.Time) ([]domain.Effect, []lifecycle.MissedItem) {
	missed := lifecycle.Sweep(st, now)

	var effects []domain.Effect
	current := missed
	weekStart := utils.StartOfPenaltyWeek(now)
	if ws := st.Punishment.WeekStart; ws != nil && weekStart.After(*ws) {
		i := 0
		for i < len(missed) && missed[i].Deadline.Before(weekStart) {
			effects = append(effects, missEffects(st, missed[i], missed[i].Deadline, now)...)
			i++
		}
		current = missed[i:]
	}

	effects = append(effects, penalty.Reconcile(&st.Punishment, now)...)
	for _, m := range current {
		effects = append(effects, missEffects(st, m, now, now)...)
	}

	if resolved := penalty.ResolveRedemption(st, now); len(resolved) > 0 {
		effects = append(effects, resolved...)
	}
	return effects, missed
}

// missEffects records one missed deadline against the penalty state as of chargeAt
func missEffects(st *domain.State, m lifecycle.MissedItem, chargeAt, now time.Time) []domain.Effect {
	effects := []domain.Effect{
		domain.SaveItem(m.Kind, m.ID),
		domain.Notify(domain.Notification{
			Type:     domain.NotificationItemMissed,
			Message:  fmt.Sprintf(MsgItemMissed, m.Kind, m.Title),
			ItemKind: m.Kind,
			ItemID:   m.ID,
			At:       now,
		}),
	}
	return append(effects, penalty.RecordMiss(&st.Punishment, m.MainQuest, chargeAt)...)
}
