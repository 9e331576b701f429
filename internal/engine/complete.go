package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/metrics"
	"github.com/osse101/Ascendant_Go/internal/penalty"
	"github.com/osse101/Ascendant_Go/internal/progression"
	"github.com/osse101/Ascendant_Go/internal/quota"
)

// completion selects the item a completion applies to
type completion struct {
	kind      domain.ItemKind
	item      *domain.WorkItem
	mainQuest bool
	// recovery items never feed the chance counter
	recovery bool
	gold     int64
	// the stored record that owns item; sub-tasks live inside their quest
	ownerKind domain.ItemKind
	ownerID   string
	// after runs once the completion is applied
	after func(st *domain.State, now time.Time) []domain.Effect
}

// CompleteTask completes a standalone task
func (s *service) CompleteTask(ctx context.Context, id string) (domain.Outcome, error) {
	return s.completeOp(ctx, OpCompleteTask, func(st *domain.State, _ time.Time) (completion, error) {
		t := st.Task(id)
		if t == nil {
			return completion{}, notFound(domain.KindTask, id)
		}
		return completion{kind: domain.KindTask, item: &t.WorkItem, ownerKind: domain.KindTask, ownerID: t.ID}, nil
	})
}

// CompleteSubTask completes one checklist task of a quest
func (s *service) CompleteSubTask(ctx context.Context, questID, taskID string) (domain.Outcome, error) {
	return s.completeOp(ctx, OpCompleteSubTask, func(st *domain.State, _ time.Time) (completion, error) {
		q := st.Quest(questID)
		if q == nil {
			return completion{}, notFound(domain.KindQuest, questID)
		}
		if q.Completed {
			return completion{}, fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, q.ID, domain.ErrMsgAlreadyCompleted)
		}
		t, err := lifecycle.SubTask(q, taskID)
		if err != nil {
			return completion{}, err
		}
		return completion{
			kind:      domain.KindTask,
			item:      &t.WorkItem,
			recovery:  q.IsRecoveryQuest,
			ownerKind: domain.KindQuest,
			ownerID:   q.ID,
		}, nil
	})
}

// CompleteQuest completes a quest whose sub-tasks are all done. Completing the
// last quest of a redemption batch resolves the redemption.
func (s *service) CompleteQuest(ctx context.Context, id string) (domain.Outcome, error) {
	return s.completeOp(ctx, OpCompleteQuest, func(st *domain.State, now time.Time) (completion, error) {
		q := st.Quest(id)
		if q == nil {
			return completion{}, notFound(domain.KindQuest, id)
		}
		if err := lifecycle.CheckQuestReady(q); err != nil {
			return completion{}, err
		}
		if err := quota.CheckQuest(s.quota, st, q, now); err != nil {
			return completion{}, err
		}

		c := completion{
			kind:      domain.KindQuest,
			item:      &q.WorkItem,
			mainQuest: q.IsMainQuest,
			recovery:  q.IsRecoveryQuest,
			gold:      q.GoldReward,
			ownerKind: domain.KindQuest,
			ownerID:   q.ID,
		}
		if q.IsRecoveryQuest {
			c.after = penalty.ResolveRedemption
		}
		return c, nil
	})
}

// CompleteMission completes a mission whose steps are all recorded
func (s *service) CompleteMission(ctx context.Context, id string) (domain.Outcome, error) {
	return s.completeOp(ctx, OpCompleteMission, func(st *domain.State, now time.Time) (completion, error) {
		m := st.Mission(id)
		if m == nil {
			return completion{}, notFound(domain.KindMission, id)
		}
		if err := lifecycle.CheckMissionReady(m); err != nil {
			return completion{}, err
		}
		if err := quota.CheckMission(s.quota, st, m, now); err != nil {
			return completion{}, err
		}
		return completion{
			kind:      domain.KindMission,
			item:      &m.WorkItem,
			gold:      m.GoldReward,
			ownerKind: domain.KindMission,
			ownerID:   m.ID,
		}, nil
	})
}

func (s *service) completeOp(ctx context.Context, op string, pick func(st *domain.State, now time.Time) (completion, error)) (domain.Outcome, error) {
	var out domain.Outcome
	err := s.transact(ctx, op, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		c, err := pick(st, now)
		if err != nil {
			return nil, err
		}
		o, effects, err := applyCompletion(st, c, now)
		if err != nil {
			return nil, err
		}
		if c.after != nil {
			effects = append(effects, c.after(st, now)...)
		}
		o.Notifications = domain.Notifications(effects)
		out = o
		return effects, nil
	})
	if err != nil {
		return out, err
	}

	path := metrics.RewardPathOnTime
	if out.Missed {
		path = metrics.RewardPathLate
	}
	metrics.ItemsCompleted.WithLabelValues(string(out.ItemKind), path).Inc()
	if out.GoldAwarded > 0 {
		metrics.GoldAwarded.Add(float64(out.GoldAwarded))
	}
	return out, nil
}

// applyCompletion flips the item to completed and pays the reward.
// A late completion records the miss first and pays half the snapshotted
// reward with no modifier and no gold.
func applyCompletion(st *domain.State, c completion, now time.Time) (domain.Outcome, []domain.Effect, error) {
	levelBefore := st.User.Level
	path, err := lifecycle.Complete(c.item, now)
	if err != nil {
		return domain.Outcome{}, nil, err
	}

	var effects []domain.Effect
	if path.NewlyMissed && !c.recovery {
		effects = append(effects, missEffects(st, lifecycle.MissedItem{
			Kind:      c.kind,
			ID:        c.item.ID,
			Title:     c.item.Title,
			MainQuest: c.mainQuest,
		}, now, now)...)
	}

	reward := lifecycle.Reward(*c.item, path, penalty.ExpModifier(st.Punishment), st.User.Rank)
	gold := c.gold
	msg := MsgItemCompleted
	if path.Late {
		gold = 0
		msg = MsgItemCompletedLate
	}

	effects = append(effects,
		domain.SaveItem(c.ownerKind, c.ownerID),
		domain.Notify(domain.Notification{
			Type:     domain.NotificationItemCompleted,
			Message:  fmt.Sprintf(msg, c.kind, c.item.Title),
			ItemKind: c.kind,
			ItemID:   c.item.ID,
			Amount:   reward,
			Category: c.item.Category,
			At:       now,
		}))

	if reward > 0 {
		effects = append(effects, domain.Notify(domain.Notification{
			Type:     domain.NotificationExpAwarded,
			Message:  fmt.Sprintf(MsgExpAwarded, reward),
			ItemKind: c.kind,
			ItemID:   c.item.ID,
			Amount:   reward,
			Category: c.item.Category,
			At:       now,
		}))
		effects = append(effects, progression.AwardExp(&st.User, reward, now)...)
		progression.AwardStat(&st.User, c.item.Category, reward)
	}
	progression.AddGold(&st.User, gold)
	effects = append(effects, progression.RecordActivity(&st.User, c.item.Category, now)...)
	effects = append(effects, domain.SaveProfile())

	return domain.Outcome{
		ItemKind:    c.kind,
		ItemID:      c.item.ID,
		ExpAwarded:  reward,
		GoldAwarded: gold,
		Missed:      path.Late,
		LevelBefore: levelBefore,
		LevelAfter:  st.User.Level,
		Rank:        st.User.Rank,
	}, effects, nil
}
