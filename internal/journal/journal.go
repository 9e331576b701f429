// Package journal derives the daily and weekly reward-journal status.
// It only reads state.
package journal

import (
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// Requirements are the completion bars for a day and a week
type Requirements struct {
	DailyQuests       int `json:"daily_quests" toml:"daily_quests"`
	DailyMissions     int `json:"daily_missions" toml:"daily_missions"`
	WeeklyDailyQuests int `json:"weekly_daily_quests" toml:"weekly_daily_quests"`
	WeeklyMainQuests  int `json:"weekly_main_quests" toml:"weekly_main_quests"`
	WeeklySideQuests  int `json:"weekly_side_quests" toml:"weekly_side_quests"`
	WeeklyMissions    int `json:"weekly_missions" toml:"weekly_missions"`
}

// DefaultRequirements returns the full bars
func DefaultRequirements() Requirements {
	return Requirements{
		DailyQuests:       5,
		DailyMissions:     3,
		WeeklyDailyQuests: 30,
		WeeklyMainQuests:  5,
		WeeklySideQuests:  5,
		WeeklyMissions:    18,
	}
}

// Reduced halves every bar, rounding up
func (r Requirements) Reduced() Requirements {
	return Requirements{
		DailyQuests:       utils.CeilHalf(r.DailyQuests),
		DailyMissions:     utils.CeilHalf(r.DailyMissions),
		WeeklyDailyQuests: utils.CeilHalf(r.WeeklyDailyQuests),
		WeeklyMainQuests:  utils.CeilHalf(r.WeeklyMainQuests),
		WeeklySideQuests:  utils.CeilHalf(r.WeeklySideQuests),
		WeeklyMissions:    utils.CeilHalf(r.WeeklyMissions),
	}
}

// DailyReport is the journal status of one calendar date
type DailyReport struct {
	Date                    string `json:"date"`
	ScheduledTasks          int    `json:"scheduled_tasks"`
	CompletedScheduledTasks int    `json:"completed_scheduled_tasks"`
	DailyQuests             int    `json:"daily_quests"`
	RequiredDailyQuests     int    `json:"required_daily_quests"`
	Missions                int    `json:"missions"`
	RequiredMissions        int    `json:"required_missions"`
	Complete                bool   `json:"complete"`
}

// WeeklyReport is the journal status of one Sunday-started week
type WeeklyReport struct {
	WeekStart           string `json:"week_start"`
	OpenTasks           int    `json:"open_tasks"`
	CompletedOpenTasks  int    `json:"completed_open_tasks"`
	DailyQuests         int    `json:"daily_quests"`
	RequiredDailyQuests int    `json:"required_daily_quests"`
	MainQuests          int    `json:"main_quests"`
	RequiredMainQuests  int    `json:"required_main_quests"`
	SideQuests          int    `json:"side_quests"`
	RequiredSideQuests  int    `json:"required_side_quests"`
	Missions            int    `json:"missions"`
	RequiredMissions    int    `json:"required_missions"`
	Complete            bool   `json:"complete"`
}

func completedWithin(w domain.WorkItem, start, end time.Time) bool {
	if !w.Completed || w.CompletedAt == nil {
		return false
	}
	at := w.CompletedAt.In(start.Location())
	return !at.Before(start) && !at.After(end)
}

// EvaluateDay checks the date's bar: every task scheduled for the date done, plus
// enough daily quests and missions completed on it
func EvaluateDay(s *domain.State, date time.Time, req Requirements) DailyReport {
	start, end := utils.StartOfDay(date), utils.EndOfDay(date)
	r := DailyReport{
		Date:                utils.DayKey(date),
		RequiredDailyQuests: req.DailyQuests,
		RequiredMissions:    req.DailyMissions,
	}

	for _, t := range s.Tasks {
		if t.Deadline == nil || !utils.SameDay(*t.Deadline, date) {
			continue
		}
		r.ScheduledTasks++
		if t.Completed {
			r.CompletedScheduledTasks++
		}
	}
	for _, q := range s.Quests {
		if q.IsDaily && completedWithin(q.WorkItem, start, end) {
			r.DailyQuests++
		}
	}
	for _, m := range s.Missions {
		if completedWithin(m.WorkItem, start, end) {
			r.Missions++
		}
	}

	r.Complete = r.CompletedScheduledTasks == r.ScheduledTasks &&
		r.DailyQuests >= r.RequiredDailyQuests &&
		r.Missions >= r.RequiredMissions
	return r
}

// EvaluateWeek checks the week's bar. weekStart is snapped back to its Sunday.
func EvaluateWeek(s *domain.State, weekStart time.Time, req Requirements) WeeklyReport {
	start := utils.StartOfJournalWeek(weekStart)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	r := WeeklyReport{
		WeekStart:           utils.DayKey(start),
		RequiredDailyQuests: req.WeeklyDailyQuests,
		RequiredMainQuests:  req.WeeklyMainQuests,
		RequiredSideQuests:  req.WeeklySideQuests,
		RequiredMissions:    req.WeeklyMissions,
	}

	for _, t := range s.Tasks {
		created := t.CreatedAt.In(start.Location())
		if t.Deadline != nil || created.Before(start) || created.After(end) {
			continue
		}
		r.OpenTasks++
		if t.Completed {
			r.CompletedOpenTasks++
		}
	}
	for _, q := range s.Quests {
		if q.IsRecoveryQuest || !completedWithin(q.WorkItem, start, end) {
			continue
		}
		switch {
		case q.IsDaily:
			r.DailyQuests++
		case q.IsMainQuest:
			r.MainQuests++
		default:
			r.SideQuests++
		}
	}
	for _, m := range s.Missions {
		if completedWithin(m.WorkItem, start, end) {
			r.Missions++
		}
	}

	r.Complete = r.CompletedOpenTasks == r.OpenTasks &&
		r.DailyQuests >= r.RequiredDailyQuests &&
		r.MainQuests >= r.RequiredMainQuests &&
		r.SideQuests >= r.RequiredSideQuests &&
		r.Missions >= r.RequiredMissions
	return r
}
