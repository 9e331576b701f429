package lifecycle

import (
	"sort"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

// MissedItem is one item flagged by a deadline sweep
type MissedItem struct {
	Kind      domain.ItemKind
	ID        string
	Title     string
	MainQuest bool
	Deadline  time.Time
	CreatedAt time.Time
}

func missedFrom(kind domain.ItemKind, w domain.WorkItem, main bool) MissedItem {
	return MissedItem{Kind: kind, ID: w.ID, Title: w.Title, MainQuest: main, Deadline: *w.Deadline, CreatedAt: w.CreatedAt}
}

// Sweep flags every incomplete item whose deadline elapsed before now.
// Items already missed are skipped, so a second sweep returns nothing.
// The result is ordered by deadline, then creation time, then ID.
// Recovery quests are left to redemption resolution.
func Sweep(s *domain.State, now time.Time) []MissedItem {
	var missed []MissedItem

	for i := range s.Tasks {
		t := &s.Tasks[i]
		if MarkMissed(&t.WorkItem, now) {
			missed = append(missed, missedFrom(domain.KindTask, t.WorkItem, false))
		}
	}
	for i := range s.Quests {
		q := &s.Quests[i]
		if q.IsRecoveryQuest {
			continue
		}
		if MarkMissed(&q.WorkItem, now) {
			missed = append(missed, missedFrom(domain.KindQuest, q.WorkItem, q.IsMainQuest))
		}
	}
	for i := range s.Missions {
		m := &s.Missions[i]
		if MarkMissed(&m.WorkItem, now) {
			missed = append(missed, missedFrom(domain.KindMission, m.WorkItem, false))
		}
	}

	sort.SliceStable(missed, func(i, j int) bool {
		a, b := missed[i], missed[j]
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return missed
}
