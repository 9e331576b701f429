package penalty

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/progression"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

var challenges = []domain.QuestTemplate{
	{ID: "rc-1", Title: "Cold shower", Category: domain.CategoryPhysical, Difficulty: domain.DifficultyEasy},
	{ID: "rc-2", Title: "Journal", Category: domain.CategoryEmotional, Difficulty: domain.DifficultyMedium, Tasks: []string{"write a page"}},
	{ID: "rc-3", Title: "Meditate", Category: domain.CategorySpiritual, Difficulty: domain.DifficultyEasy},
}

func idGen() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func cursedState() domain.State {
	weekStart := utils.StartOfPenaltyWeek(testNow)
	end := utils.EndOfPenaltyWeek(testNow)
	return domain.State{
		User: progression.NewUser(),
		Punishment: domain.PunishmentState{
			ChanceCounter: 5,
			IsCursed:      true,
			CursedUntil:   &end,
			WeekStart:     &weekStart,
		},
	}
}

func completeBatch(t *testing.T, s *domain.State, at time.Time) {
	t.Helper()
	for _, id := range s.Punishment.ActiveRecoveryQuestIDs {
		q := s.Quest(id)
		require.NotNil(t, q)
		for i := range q.Tasks {
			_, err := lifecycle.Complete(&q.Tasks[i].WorkItem, at)
			require.NoError(t, err)
		}
		_, err := lifecycle.Complete(&q.WorkItem, at)
		require.NoError(t, err)
	}
}

func TestAvailable(t *testing.T) {
	assert.ErrorIs(t, Available(domain.PunishmentState{}, testNow), domain.ErrRedemptionUnavailable)

	s := cursedState()
	assert.NoError(t, Available(s.Punishment, testNow))

	s.Punishment.HasPendingRecovery = true
	err := Available(s.Punishment, testNow)
	assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)
	assert.Contains(t, err.Error(), domain.ErrMsgRecoveryPending)

	s.Punishment.HasPendingRecovery = false
	s.Punishment.LastRedemptionDate = timePtr(testNow.Add(-time.Hour))
	err = Available(s.Punishment, testNow)
	assert.Contains(t, err.Error(), domain.ErrMsgRedemptionUsed)
}

func TestStartRedemption(t *testing.T) {
	s := cursedState()

	effects, err := StartRedemption(&s, challenges, idGen(), testNow)
	require.NoError(t, err)

	assert.True(t, s.Punishment.HasPendingRecovery)
	assert.Len(t, s.Punishment.ActiveRecoveryQuestIDs, 3)
	assert.Equal(t, testNow, *s.Punishment.LastRedemptionDate)
	assert.Len(t, s.Quests, 3)
	for _, q := range s.Quests {
		assert.True(t, q.IsRecoveryQuest)
		assert.Equal(t, utils.EndOfDay(testNow), *q.Deadline)
	}
	assert.Equal(t, 1, countType(effects, domain.NotificationRedemptionStarted))

	_, err = StartRedemption(&s, challenges, idGen(), testNow)
	assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)
}

func TestStartRedemption_NotCursed(t *testing.T) {
	s := domain.State{}
	_, err := StartRedemption(&s, challenges, idGen(), testNow)
	assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)
	assert.Empty(t, s.Quests)
}

func TestResolveRedemption_Success(t *testing.T) {
	s := cursedState()
	_, err := StartRedemption(&s, challenges, idGen(), testNow)
	require.NoError(t, err)

	assert.Empty(t, ResolveRedemption(&s, testNow), "nothing to resolve while quests are open and in time")

	completeBatch(t, &s, testNow.Add(time.Hour))
	effects := ResolveRedemption(&s, testNow.Add(time.Hour))

	p := s.Punishment
	assert.False(t, p.IsCursed)
	assert.Equal(t, 4, p.ChanceCounter)
	assert.True(t, p.HasShadowFatigue)
	assert.Equal(t, utils.EndOfPenaltyWeek(testNow), *p.ShadowFatigueUntil)
	assert.False(t, p.HasPendingRecovery)
	assert.Nil(t, p.ActiveRecoveryQuestIDs)
	assert.NotNil(t, p.LastRedemptionDate)
	assert.Equal(t, 1, countType(effects, domain.NotificationRedemptionSucceeded))
}

func TestResolveRedemption_CounterFloorsAtZero(t *testing.T) {
	s := cursedState()
	s.Punishment.ChanceCounter = 0
	_, err := StartRedemption(&s, challenges[:1], idGen(), testNow)
	require.NoError(t, err)
	completeBatch(t, &s, testNow)

	ResolveRedemption(&s, testNow)
	assert.Equal(t, 0, s.Punishment.ChanceCounter)
}

func TestResolveRedemption_DeadlinePasses(t *testing.T) {
	s := cursedState()
	_, err := StartRedemption(&s, challenges, idGen(), testNow)
	require.NoError(t, err)

	first := s.Quest(s.Punishment.ActiveRecoveryQuestIDs[0])
	_, err = lifecycle.Complete(&first.WorkItem, testNow.Add(time.Hour))
	require.NoError(t, err)

	tomorrow := utils.NextMidnight(testNow).Add(time.Minute)
	effects := ResolveRedemption(&s, tomorrow)

	for _, q := range s.Quests {
		assert.True(t, q.Completed, q.ID)
		assert.True(t, q.Missed, q.ID)
	}
	assert.Equal(t, testNow.Add(time.Hour), *s.Quests[0].CompletedAt, "quest finished in time keeps its completion time")
	saved := 0
	for _, e := range effects {
		if e.Type == domain.EffectSaveItem {
			saved++
		}
	}
	assert.Equal(t, 3, saved, "every batch quest is persisted")
	assert.False(t, s.Punishment.HasPendingRecovery)
	assert.True(t, s.Punishment.IsCursed)
	assert.Equal(t, 5, s.Punishment.ChanceCounter)
	assert.Equal(t, 1, countType(effects, domain.NotificationRedemptionFailed))

	assert.Empty(t, ResolveRedemption(&s, tomorrow))
}

func TestAbandonRedemption(t *testing.T) {
	s := cursedState()
	_, err := AbandonRedemption(&s, testNow)
	assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)

	_, err = StartRedemption(&s, challenges, idGen(), testNow)
	require.NoError(t, err)

	effects, err := AbandonRedemption(&s, testNow)
	require.NoError(t, err)
	assert.Empty(t, s.Quests)
	assert.False(t, s.Punishment.HasPendingRecovery)
	assert.True(t, s.Punishment.IsCursed)
	assert.NotNil(t, s.Punishment.LastRedemptionDate)
	assert.Equal(t, 1, countType(effects, domain.NotificationRedemptionAbandoned))

	err = Available(s.Punishment, testNow)
	assert.Contains(t, err.Error(), domain.ErrMsgRedemptionUsed)
}

func TestAttemptRedemption(t *testing.T) {
	t.Run("fail demotes", func(t *testing.T) {
		s := cursedState()
		progression.AwardExp(&s.User, 250, testNow)
		require.Equal(t, 3, s.User.Level)

		_, err := AttemptRedemption(&s, false, testNow)
		require.NoError(t, err)
		assert.Equal(t, 2, s.User.Level)
		assert.Equal(t, int64(0), s.User.Exp)
		assert.True(t, s.Punishment.IsCursed)

		_, err = AttemptRedemption(&s, false, testNow)
		assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)
		assert.Equal(t, 2, s.User.Level)
	})

	t.Run("fail at level one", func(t *testing.T) {
		s := cursedState()
		_, err := AttemptRedemption(&s, false, testNow)
		require.NoError(t, err)
		assert.Equal(t, 1, s.User.Level)
	})

	t.Run("pass lifts curse", func(t *testing.T) {
		s := cursedState()
		_, err := AttemptRedemption(&s, true, testNow)
		require.NoError(t, err)
		assert.False(t, s.Punishment.IsCursed)
		assert.Equal(t, 4, s.Punishment.ChanceCounter)
		assert.True(t, s.Punishment.HasShadowFatigue)
	})
}

func TestIsActiveRecoveryQuest(t *testing.T) {
	s := cursedState()
	_, err := StartRedemption(&s, challenges, idGen(), testNow)
	require.NoError(t, err)

	assert.True(t, IsActiveRecoveryQuest(s.Punishment, s.Punishment.ActiveRecoveryQuestIDs[0]))
	assert.False(t, IsActiveRecoveryQuest(s.Punishment, "other"))
}
