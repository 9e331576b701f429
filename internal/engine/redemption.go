package engine

import (
	"context"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/penalty"
	"github.com/osse101/Ascendant_Go/internal/progression"
	"github.com/osse101/Ascendant_Go/internal/quota"
)

// StartRedemption creates the recovery batch from the catalog
func (s *service) StartRedemption(ctx context.Context) ([]domain.Quest, error) {
	var batch []domain.Quest
	err := s.transact(ctx, OpStartRedemption, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		effects, err := penalty.StartRedemption(st, s.catalog.RedemptionBatch(), s.newID, now)
		if err != nil {
			return nil, err
		}
		for _, id := range st.Punishment.ActiveRecoveryQuestIDs {
			if q := st.Quest(id); q != nil {
				batch = append(batch, q.Clone())
			}
		}
		return effects, nil
	})
	return batch, err
}

// AbandonRedemption drops the pending batch; the curse stays
func (s *service) AbandonRedemption(ctx context.Context) error {
	return s.transact(ctx, OpAbandonRedemption, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		return penalty.AbandonRedemption(st, now)
	})
}

// AttemptRedemption resolves a redemption as a single pass or fail outcome
func (s *service) AttemptRedemption(ctx context.Context, passed bool) (domain.Status, error) {
	var status domain.Status
	err := s.transact(ctx, OpAttemptRedemption, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		effects, err := penalty.AttemptRedemption(st, passed, now)
		if err != nil {
			return nil, err
		}
		status = s.buildStatus(st, now)
		status.Version = st.Version + 1
		return effects, nil
	})
	if err == nil {
		logger.FromContext(ctx).Info(LogMsgRedemptionResolved, "passed", passed, "level", status.User.Level)
	}
	return status, err
}

// Status reconciles and returns the read model
func (s *service) Status(ctx context.Context) (domain.Status, error) {
	var status domain.Status
	err := s.view(ctx, OpStatus, func(st *domain.State, now time.Time) error {
		status = s.buildStatus(st, now)
		return nil
	})
	return status, err
}

func (s *service) buildStatus(st *domain.State, now time.Time) domain.Status {
	return domain.Status{
		Version:             st.Version,
		User:                st.User.Clone(),
		ExpModifier:         penalty.ExpModifier(st.Punishment),
		RankBonus:           progression.RankExpBonus(st.User.Rank),
		Punishment:          st.Punishment.Clone(),
		QuotaLimits:         s.quota.Limits(st.User.Rank),
		QuotaUsage:          quota.Usage(st, now),
		RedemptionAvailable: penalty.Available(st.Punishment, now) == nil,
		SideQuestsLocked:    st.Punishment.SideQuestsLocked(now),
		At:                  now,
	}
}
