package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

var testNow = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

func notificationTypes(effects []domain.Effect) []domain.NotificationType {
	var out []domain.NotificationType
	for _, n := range domain.Notifications(effects) {
		out = append(out, n.Type)
	}
	return out
}

func TestNewUser(t *testing.T) {
	u := NewUser()
	assert.Equal(t, 1, u.Level)
	assert.Equal(t, int64(0), u.Exp)
	assert.Equal(t, int64(100), u.ExpToNextLevel)
	assert.Equal(t, domain.RankF, u.Rank)
	assert.Equal(t, 1, u.Stats.Cognitive.Level)
}

func TestAwardExp_TenMediumTasksReachLevelTwo(t *testing.T) {
	u := NewUser()

	AwardExp(&u, 10, testNow)
	assert.Equal(t, 1, u.Level)
	assert.Equal(t, int64(10), u.Exp)

	var last []domain.Effect
	for i := 0; i < 9; i++ {
		last = AwardExp(&u, 10, testNow)
	}

	assert.Equal(t, 2, u.Level)
	assert.Equal(t, int64(0), u.Exp)
	assert.Equal(t, int64(120), u.ExpToNextLevel)
	assert.Equal(t, []domain.NotificationType{domain.NotificationLevelUp}, notificationTypes(last))
}

func TestAwardExp_MultiLevelRollover(t *testing.T) {
	u := NewUser()
	u.Exp = 50

	// 50 + 200 = 250: level 1 needs 100, level 2 needs 120, leaves 30 at level 3
	effects := AwardExp(&u, 200, testNow)

	assert.Equal(t, 3, u.Level)
	assert.Equal(t, int64(30), u.Exp)
	assert.Equal(t, int64(144), u.ExpToNextLevel)
	require.Len(t, domain.Notifications(effects), 1)
	assert.Equal(t, int64(2), domain.Notifications(effects)[0].Amount)
}

func TestAwardExp_InvariantHolds(t *testing.T) {
	u := NewUser()
	for _, amount := range []int64{1, 99, 7, 500, 12345, 3, 0, -5} {
		AwardExp(&u, amount, testNow)
		assert.GreaterOrEqual(t, u.Exp, int64(0))
		assert.Less(t, u.Exp, u.ExpToNextLevel)
		assert.Equal(t, ExpToNextLevel(u.Level), u.ExpToNextLevel)
	}
}

func TestAwardExp_RankUp(t *testing.T) {
	u := NewUser()
	u.Level = 29
	Normalize(&u)

	effects := AwardExp(&u, ExpToNextLevel(29), testNow)
	assert.Equal(t, domain.RankE, u.Rank)
	assert.Equal(t, []domain.NotificationType{domain.NotificationLevelUp, domain.NotificationRankUp}, notificationTypes(effects))
}

func TestNormalize(t *testing.T) {
	u := domain.User{Level: 0, Exp: 250}
	Normalize(&u)
	assert.Equal(t, 3, u.Level)
	assert.Equal(t, int64(30), u.Exp)
	assert.Equal(t, domain.RankF, u.Rank)
	assert.Equal(t, 1, u.Stats.Social.Level)
}

func TestAwardStat(t *testing.T) {
	u := NewUser()
	AwardStat(&u, domain.CategoryIntelligence, 150)
	assert.Equal(t, 2, u.Stats.Cognitive.Level)
	assert.Equal(t, int64(50), u.Stats.Cognitive.Exp)

	AwardStat(&u, domain.CategoryMental, 30)
	assert.Equal(t, int64(30), u.Stats.Emotional.Exp)

	AwardStat(&u, "unknown", 30)
	AwardStat(&u, domain.CategoryPhysical, -10)
	assert.Equal(t, int64(0), u.Stats.Physical.Exp)
}

func TestRecordActivity(t *testing.T) {
	u := NewUser()

	effects := RecordActivity(&u, domain.CategoryPhysical, testNow)
	assert.Equal(t, []domain.NotificationType{domain.NotificationDailyWin, domain.NotificationStreakUpdated}, notificationTypes(effects))
	assert.Equal(t, 1, u.StreakDays)

	effects = RecordActivity(&u, domain.CategoryPhysical, testNow.Add(time.Hour))
	assert.Empty(t, effects, "second completion in the same category and day is silent")

	effects = RecordActivity(&u, domain.CategorySocial, testNow.Add(2*time.Hour))
	assert.Equal(t, []domain.NotificationType{domain.NotificationDailyWin}, notificationTypes(effects))

	RecordActivity(&u, domain.CategoryPhysical, testNow.AddDate(0, 0, 1))
	assert.Equal(t, 2, u.StreakDays)
	assert.Equal(t, []domain.Category{domain.CategoryPhysical}, u.DailyWins.Categories)

	RecordActivity(&u, domain.CategoryPhysical, testNow.AddDate(0, 0, 4))
	assert.Equal(t, 1, u.StreakDays)
	assert.Equal(t, 2, u.LongestStreak)
}

func TestDemote(t *testing.T) {
	u := NewUser()
	AwardExp(&u, 250, testNow)
	require.Equal(t, 3, u.Level)

	effects := Demote(&u, testNow)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, int64(0), u.Exp)
	assert.Equal(t, int64(120), u.ExpToNextLevel)
	assert.Equal(t, []domain.NotificationType{domain.NotificationLevelDown}, notificationTypes(effects))

	u = NewUser()
	Demote(&u, testNow)
	assert.Equal(t, 1, u.Level, "level floors at 1")
}
