package penalty

import (
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/progression"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// Available reports nil when a redemption may start, otherwise the reason it may not
func Available(p domain.PunishmentState, now time.Time) error {
	switch {
	case !p.IsCursed:
		return fmt.Errorf("%w: %s", domain.ErrRedemptionUnavailable, domain.ErrMsgNotCursed)
	case p.HasPendingRecovery:
		return fmt.Errorf("%w: %s", domain.ErrRedemptionUnavailable, domain.ErrMsgRecoveryPending)
	case p.LastRedemptionDate != nil && !p.LastRedemptionDate.Before(utils.StartOfPenaltyWeek(now)):
		return fmt.Errorf("%w: %s", domain.ErrRedemptionUnavailable, domain.ErrMsgRedemptionUsed)
	}
	return nil
}

// StartRedemption creates the recovery batch, due at the end of today.
// The weekly attempt is consumed immediately.
func StartRedemption(s *domain.State, batch []domain.QuestTemplate, newID func() string, now time.Time) ([]domain.Effect, error) {
	if err := Available(s.Punishment, now); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no redemption challenges available", domain.ErrTemplateNotFound)
	}

	deadline := utils.EndOfDay(now)
	ids := make([]string, 0, len(batch))
	var effects []domain.Effect

	for _, tpl := range batch {
		q, err := lifecycle.NewQuest(newID(), domain.CreateQuestInput{
			Title:       tpl.Title,
			Description: tpl.Description,
			Category:    tpl.Category,
			Difficulty:  tpl.Difficulty,
			ExpReward:   tpl.ExpReward,
			Deadline:    &deadline,
			Tasks:       tpl.Tasks,
			TemplateID:  tpl.ID,
			Recovery:    true,
		}, newID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to build recovery quest %s: %w", tpl.ID, err)
		}
		s.Quests = append(s.Quests, q)
		ids = append(ids, q.ID)
		effects = append(effects, domain.SaveItem(domain.KindQuest, q.ID))
	}

	p := &s.Punishment
	p.HasPendingRecovery = true
	p.ActiveRecoveryQuestIDs = ids
	p.LastRedemptionDate = &now

	effects = append(effects, domain.SaveProfile(), domain.Notify(domain.Notification{
		Type:    domain.NotificationRedemptionStarted,
		Message: fmt.Sprintf(MsgRedemptionStarted, len(ids)),
		Amount:  int64(len(ids)),
		Until:   &deadline,
		At:      now,
	}))
	return effects, nil
}

// ResolveRedemption settles a pending batch: success once every quest is
// completed on time, failure once the deadline passes with any left open.
// A failed batch leaves every quest in it completed and missed, including
// quests finished before the deadline.
func ResolveRedemption(s *domain.State, now time.Time) []domain.Effect {
	p := &s.Punishment
	if !p.HasPendingRecovery {
		return nil
	}

	batch := make([]*domain.Quest, 0, len(p.ActiveRecoveryQuestIDs))
	for _, id := range p.ActiveRecoveryQuestIDs {
		if q := s.Quest(id); q != nil {
			batch = append(batch, q)
		}
	}

	allDone := len(batch) > 0
	expired := len(batch) == 0
	for _, q := range batch {
		if !q.Completed || q.Missed {
			allDone = false
		}
		if !q.Completed && q.Overdue(now) {
			expired = true
		}
	}

	switch {
	case allDone:
		return succeed(s, now, true)
	case expired:
		var effects []domain.Effect
		for _, q := range batch {
			if lifecycle.ForceFail(&q.WorkItem, now) {
				effects = append(effects, domain.SaveItem(domain.KindQuest, q.ID))
			}
		}
		clearPending(p)
		return append(effects, domain.SaveProfile(), domain.Notify(domain.Notification{
			Type:    domain.NotificationRedemptionFailed,
			Message: MsgRedemptionFailed,
			At:      now,
		}))
	}
	return nil
}

// AbandonRedemption drops the pending batch. The curse stays and the weekly
// attempt remains consumed.
func AbandonRedemption(s *domain.State, now time.Time) ([]domain.Effect, error) {
	p := &s.Punishment
	if !p.HasPendingRecovery {
		return nil, fmt.Errorf("%w: %s", domain.ErrRedemptionUnavailable, domain.ErrMsgNoRecoveryPending)
	}

	var effects []domain.Effect
	for _, id := range p.ActiveRecoveryQuestIDs {
		if s.Remove(domain.KindQuest, id) {
			effects = append(effects, domain.DeleteItem(domain.KindQuest, id))
		}
	}
	clearPending(p)

	return append(effects, domain.SaveProfile(), domain.Notify(domain.Notification{
		Type:    domain.NotificationRedemptionAbandoned,
		Message: MsgRedemptionAbandoned,
		At:      now,
	})), nil
}

// AttemptRedemption resolves a redemption as a single pass/fail outcome.
// A pass lifts the curse like a completed batch; a fail costs one level and the
// current level's EXP.
func AttemptRedemption(s *domain.State, passed bool, now time.Time) ([]domain.Effect, error) {
	if err := Available(s.Punishment, now); err != nil {
		return nil, err
	}
	s.Punishment.LastRedemptionDate = &now

	if passed {
		return succeed(s, now, false), nil
	}

	effects := progression.Demote(&s.User, now)
	return append(effects, domain.SaveProfile(), domain.Notify(domain.Notification{
		Type:    domain.NotificationRedemptionFailed,
		Message: fmt.Sprintf(MsgRedemptionFailedHard, s.User.Level),
		Level:   s.User.Level,
		At:      now,
	})), nil
}

func succeed(s *domain.State, now time.Time, fromBatch bool) []domain.Effect {
	p := &s.Punishment
	end := utils.EndOfPenaltyWeek(now)

	p.IsCursed = false
	p.CursedUntil = nil
	p.ChanceCounter = utils.MaxInt(0, p.ChanceCounter-1)
	p.HasShadowFatigue = true
	p.ShadowFatigueUntil = &end
	if fromBatch {
		clearPending(p)
	}

	return []domain.Effect{
		domain.SaveProfile(),
		domain.Notify(domain.Notification{
			Type:    domain.NotificationRedemptionSucceeded,
			Message: MsgRedemptionSucceeded,
			At:      now,
		}),
		domain.Notify(domain.Notification{
			Type:    domain.NotificationCurseLifted,
			Message: MsgCurseLifted,
			Until:   &end,
			At:      now,
		}),
	}
}

func clearPending(p *domain.PunishmentState) {
	p.HasPendingRecovery = false
	p.ActiveRecoveryQuestIDs = nil
}

// IsActiveRecoveryQuest reports whether id belongs to the pending batch
func IsActiveRecoveryQuest(p domain.PunishmentState, id string) bool {
	if !p.HasPendingRecovery {
		return false
	}
	for _, v := range p.ActiveRecoveryQuestIDs {
		if v == id {
			return true
		}
	}
	return false
}
