// Package quota enforces the per-rank daily caps on quests and missions.
package quota

import (
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// Table maps each rank to its daily limits
type Table map[domain.Rank]domain.QuotaLimits

// DefaultTable returns the built-in limits; values rise with rank
func DefaultTable() Table {
	low := domain.QuotaLimits{MainQuestsPerDay: 2, SideQuestsPerDay: 2, DailyQuestsPerDay: 5, MissionsPerDay: 3}
	mid := domain.QuotaLimits{MainQuestsPerDay: 3, SideQuestsPerDay: 3, DailyQuestsPerDay: 6, MissionsPerDay: 4}
	high := domain.QuotaLimits{MainQuestsPerDay: 4, SideQuestsPerDay: 4, DailyQuestsPerDay: 7, MissionsPerDay: 5}
	top := domain.QuotaLimits{MainQuestsPerDay: 5, SideQuestsPerDay: 5, DailyQuestsPerDay: 8, MissionsPerDay: 6}

	return Table{
		domain.RankF:   low,
		domain.RankE:   low,
		domain.RankD:   mid,
		domain.RankC:   mid,
		domain.RankB:   high,
		domain.RankA:   high,
		domain.RankS:   top,
		domain.RankSS:  top,
		domain.RankSSS: {MainQuestsPerDay: 5, SideQuestsPerDay: 5, DailyQuestsPerDay: 10, MissionsPerDay: 6},
	}
}

// Merge returns a copy of t with the given rows replaced
func (t Table) Merge(overrides map[domain.Rank]domain.QuotaLimits) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Limits returns the row for rank, falling back to rank F
func (t Table) Limits(rank domain.Rank) domain.QuotaLimits {
	if l, ok := t[rank]; ok {
		return l
	}
	return t[domain.RankF]
}

// CountedToday reports whether an item was started or completed within now's local day
func CountedToday(w domain.WorkItem, now time.Time) bool {
	if w.Started {
		startedAt := w.CreatedAt
		if w.StartedAt != nil {
			startedAt = *w.StartedAt
		}
		if utils.SameDay(startedAt, now) {
			return true
		}
	}
	return w.Completed && w.CompletedAt != nil && utils.SameDay(*w.CompletedAt, now)
}

// Usage counts today's quota consumption. Recovery quests never count.
func Usage(s *domain.State, now time.Time) domain.QuotaUsage {
	var u domain.QuotaUsage
	for _, q := range s.Quests {
		if q.IsRecoveryQuest || !CountedToday(q.WorkItem, now) {
			continue
		}
		switch {
		case q.IsDaily:
			u.DailyQuests++
		case q.IsMainQuest:
			u.MainQuests++
		default:
			u.SideQuests++
		}
	}
	for _, m := range s.Missions {
		if CountedToday(m.WorkItem, now) {
			u.Missions++
		}
	}
	return u
}

// CheckQuest returns a *domain.QuotaError when q may not be started or completed now.
// An item already counted today does not consume a second slot.
func CheckQuest(t Table, s *domain.State, q *domain.Quest, now time.Time) error {
	if q.QuotaExempt() {
		return nil
	}

	rank := s.User.Rank
	if q.IsSideQuest() && s.Punishment.SideQuestsLocked(now) {
		until := *s.Punishment.LockedSideQuestsUntil
		return &domain.QuotaError{
			Kind:   domain.QuotaKindSideLocked,
			Reason: fmt.Sprintf("%s until %s", domain.ErrMsgSideQuestsLocked, until.Format(time.RFC3339)),
			Rank:   rank,
			Until:  &until,
		}
	}

	if CountedToday(q.WorkItem, now) {
		return nil
	}

	limits := t.Limits(rank)
	usage := Usage(s, now)
	if q.IsMainQuest {
		return checkLimit(domain.QuotaKindMainQuest, "main quests", rank, usage.MainQuests, limits.MainQuestsPerDay)
	}
	return checkLimit(domain.QuotaKindSideQuest, "side quests", rank, usage.SideQuests, limits.SideQuestsPerDay)
}

// CheckMission returns a *domain.QuotaError when m may not be started or completed now
func CheckMission(t Table, s *domain.State, m *domain.Mission, now time.Time) error {
	if CountedToday(m.WorkItem, now) {
		return nil
	}
	rank := s.User.Rank
	return checkLimit(domain.QuotaKindMission, "missions", rank, Usage(s, now).Missions, t.Limits(rank).MissionsPerDay)
}

func checkLimit(kind, label string, rank domain.Rank, used, limit int) error {
	if used < limit {
		return nil
	}
	return &domain.QuotaError{
		Kind:   kind,
		Reason: fmt.Sprintf("rank %s allows %d %s per day and %d are used", rank, limit, label, used),
		Rank:   rank,
		Limit:  limit,
		Used:   used,
	}
}
