package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/metrics"
	"github.com/osse101/Ascendant_Go/internal/repository"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

// persist queues the writes for a committed state. Values are copied at
// enqueue time and the single worker keeps them in commit order. A failed
// write is logged and counted; the in-memory state is never rolled back.
func (s *service) persist(ctx context.Context, st *domain.State, effects []domain.Effect) {
	if s.repo == nil {
		return
	}

	seen := make(map[string]bool, len(effects))
	for _, e := range effects {
		key := string(e.Type) + ":" + string(e.ItemKind) + ":" + e.ItemID
		if e.Type == domain.EffectNotify || seen[key] {
			continue
		}
		seen[key] = true

		var (
			op  string
			run func(ctx context.Context) error
		)
		switch e.Type {
		case domain.EffectSaveItem:
			op, run = PersistSaveItem, s.saveItem(st, e.ItemKind, e.ItemID)
		case domain.EffectDeleteItem:
			op, run = PersistDeleteItem, s.deleteItem(e.ItemKind, e.ItemID)
		case domain.EffectSaveProfile:
			profile := st.Profile()
			op, run = PersistSaveProfile, func(ctx context.Context) error {
				return s.repo.Profile.Save(ctx, profile)
			}
		}
		if run == nil {
			continue
		}
		s.enqueue(ctx, op, e.ItemKind, e.ItemID, run)
	}
}

func (s *service) enqueue(ctx context.Context, op string, kind domain.ItemKind, id string, run func(ctx context.Context) error) {
	requestID := logger.GetRequestID(ctx)
	job := worker.JobFunc(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, PersistTimeout)
		defer cancel()
		if requestID != "" {
			ctx = logger.WithRequestID(ctx, requestID)
		}

		if err := run(ctx); err != nil {
			metrics.PersistenceFailures.WithLabelValues(op).Inc()
			logger.FromContext(ctx).Error(LogMsgPersistFailed,
				"operation", op,
				"kind", kind,
				"id", id,
				"error", fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err))
		}
		return nil
	})

	// Commits hold s.mu, so a full queue drops the write rather than wait on storage
	switch err := s.persistQueue.TryEnqueue(job); {
	case errors.Is(err, worker.ErrQueueFull):
		metrics.PersistenceFailures.WithLabelValues(op).Inc()
		logger.FromContext(ctx).Error(LogMsgPersistDropped,
			"operation", op,
			"kind", kind,
			"id", id,
			"error", fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err))
	case err != nil:
		logger.FromContext(ctx).Warn(LogMsgPersistDisabled, "operation", op, "kind", kind, "id", id)
	}
}

func (s *service) saveItem(st *domain.State, kind domain.ItemKind, id string) func(ctx context.Context) error {
	switch kind {
	case domain.KindTask:
		if t := st.Task(id); t != nil {
			item := t.Clone()
			return func(ctx context.Context) error { return upsert(ctx, s.repo.Tasks, item) }
		}
	case domain.KindQuest:
		if q := st.Quest(id); q != nil {
			item := q.Clone()
			return func(ctx context.Context) error { return upsert(ctx, s.repo.Quests, item) }
		}
	case domain.KindMission:
		if m := st.Mission(id); m != nil {
			item := m.Clone()
			return func(ctx context.Context) error { return upsert(ctx, s.repo.Missions, item) }
		}
	}
	// Removed later in the same transition.
	return nil
}

func (s *service) deleteItem(kind domain.ItemKind, id string) func(ctx context.Context) error {
	var del func(ctx context.Context, id string) error
	switch kind {
	case domain.KindTask:
		del = s.repo.Tasks.Delete
	case domain.KindQuest:
		del = s.repo.Quests.Delete
	case domain.KindMission:
		del = s.repo.Missions.Delete
	default:
		return nil
	}
	return func(ctx context.Context) error {
		if err := del(ctx, id); err != nil && !errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return nil
	}
}

// upsert updates the stored item, creating it on first save
func upsert[T domain.Item](ctx context.Context, store repository.ItemStore[T], item T) error {
	_, err := store.Update(ctx, item.GetID(), item)
	if !errors.Is(err, domain.ErrItemNotFound) {
		return err
	}
	_, err = store.Create(ctx, item)
	return err
}
