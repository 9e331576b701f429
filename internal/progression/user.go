package progression

import (
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// NewUser returns a level 1 user with every attribute at level 1
func NewUser() domain.User {
	u := domain.User{Level: 1}
	for _, a := range domain.Attributes {
		u.Stats.For(a).Level = 1
	}
	refresh(&u)
	return u
}

// Normalize repairs a loaded snapshot so the level invariants hold
func Normalize(u *domain.User) {
	if u.Level < 1 {
		u.Level = 1
	}
	if u.Exp < 0 {
		u.Exp = 0
	}
	for _, a := range domain.Attributes {
		s := u.Stats.For(a)
		if s.Level < 1 {
			s.Level = 1
		}
	}
	rollover(u)
	refresh(u)
}

func refresh(u *domain.User) {
	u.ExpToNextLevel = ExpToNextLevel(u.Level)
	u.Rank = RankFromLevel(u.Level)
}

// rollover converts surplus EXP into levels and returns how many were gained
func rollover(u *domain.User) int {
	gained := 0
	for u.Level < MaxLevel {
		need := ExpToNextLevel(u.Level)
		if u.Exp < need {
			break
		}
		u.Exp -= need
		u.Level++
		gained++
	}
	return gained
}

// AwardExp adds amount to the pool, rolling any overflow into level-ups
func AwardExp(u *domain.User, amount int64, now time.Time) []domain.Effect {
	if amount <= 0 {
		return nil
	}

	oldRank := u.Rank
	u.Exp += amount
	u.TotalExp += amount
	gained := rollover(u)
	refresh(u)

	var effects []domain.Effect
	if gained > 0 {
		effects = append(effects, domain.Notify(domain.Notification{
			Type:    domain.NotificationLevelUp,
			Message: fmt.Sprintf(MsgLevelUp, u.Level),
			Amount:  int64(gained),
			Level:   u.Level,
			Rank:    u.Rank,
			At:      now,
		}))
	}
	if oldRank != "" && u.Rank != oldRank {
		effects = append(effects, domain.Notify(domain.Notification{
			Type:    domain.NotificationRankUp,
			Message: fmt.Sprintf(MsgRankUp, u.Rank),
			Level:   u.Level,
			Rank:    u.Rank,
			At:      now,
		}))
	}
	return effects
}

// AwardStat feeds amount into the attribute mapped from category
func AwardStat(u *domain.User, category domain.Category, amount int64) {
	if amount <= 0 {
		return
	}
	s := u.Stats.For(category.Attribute())
	if s == nil {
		return
	}
	s.Exp += amount
	for s.Exp >= StatBarSize {
		s.Exp -= StatBarSize
		s.Level++
	}
}

// AddGold credits gold; negative amounts are ignored
func AddGold(u *domain.User, amount int64) {
	if amount > 0 {
		u.Gold += amount
	}
}

// RecordActivity updates the per-category daily win and the day streak for a completion at now
func RecordActivity(u *domain.User, category domain.Category, now time.Time) []domain.Effect {
	var effects []domain.Effect
	today := utils.DayKey(now)

	if !u.DailyWins.Has(today, category) {
		if u.DailyWins.Date != today {
			u.DailyWins = domain.DailyWins{Date: today}
		}
		u.DailyWins.Categories = append(u.DailyWins.Categories, category)
		effects = append(effects, domain.Notify(domain.Notification{
			Type:     domain.NotificationDailyWin,
			Message:  fmt.Sprintf(MsgDailyWin, category),
			Category: category,
			At:       now,
		}))
	}

	if u.LastActiveDate == today {
		return effects
	}

	yesterday := utils.DayKey(utils.StartOfDay(now).AddDate(0, 0, -1))
	msg := MsgStreak
	if u.LastActiveDate == yesterday {
		u.StreakDays++
	} else {
		if u.StreakDays > 0 {
			msg = MsgStreakBroken + ". " + MsgStreak
		}
		u.StreakDays = 1
	}
	u.LastActiveDate = today
	if u.StreakDays > u.LongestStreak {
		u.LongestStreak = u.StreakDays
	}

	effects = append(effects, domain.Notify(domain.Notification{
		Type:    domain.NotificationStreakUpdated,
		Message: fmt.Sprintf(msg, u.StreakDays),
		Amount:  int64(u.StreakDays),
		At:      now,
	}))
	return effects
}

// Demote drops one level (floor 1) and zeroes current-level EXP
func Demote(u *domain.User, now time.Time) []domain.Effect {
	if u.Level > 1 {
		u.Level--
	}
	u.Exp = 0
	refresh(u)

	return []domain.Effect{domain.Notify(domain.Notification{
		Type:    domain.NotificationLevelDown,
		Message: fmt.Sprintf(MsgLevelDown, u.Level),
		Level:   u.Level,
		Rank:    u.Rank,
		At:      now,
	})}
}
