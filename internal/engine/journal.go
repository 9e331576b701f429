package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/journal"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// DailyJournal evaluates the reward journal for date's local day.
// Reports are cached per state version.
func (s *service) DailyJournal(ctx context.Context, date time.Time) (journal.DailyReport, error) {
	date = date.In(s.loc)
	var report journal.DailyReport
	err := s.view(ctx, OpDailyJournal, func(st *domain.State, _ time.Time) error {
		key := fmt.Sprintf("daily:%s:v%d", utils.DayKey(date), st.Version)
		if cached, ok := s.journalCache.Get(key); ok {
			if r, ok := cached.(journal.DailyReport); ok {
				logger.FromContext(ctx).Debug(LogMsgJournalCacheHit, "key", key)
				report = r
				return nil
			}
		}
		report = journal.EvaluateDay(st, date, s.journal)
		s.journalCache.Add(key, report)
		return nil
	})
	return report, err
}

// WeeklyJournal evaluates the reward journal for the Sunday-started week containing weekStart
func (s *service) WeeklyJournal(ctx context.Context, weekStart time.Time) (journal.WeeklyReport, error) {
	weekStart = utils.StartOfJournalWeek(weekStart.In(s.loc))
	var report journal.WeeklyReport
	err := s.view(ctx, OpWeeklyJournal, func(st *domain.State, _ time.Time) error {
		key := fmt.Sprintf("weekly:%s:v%d", utils.DayKey(weekStart), st.Version)
		if cached, ok := s.journalCache.Get(key); ok {
			if r, ok := cached.(journal.WeeklyReport); ok {
				logger.FromContext(ctx).Debug(LogMsgJournalCacheHit, "key", key)
				report = r
				return nil
			}
		}
		report = journal.EvaluateWeek(st, weekStart, s.journal)
		s.journalCache.Add(key, report)
		return nil
	})
	return report, err
}
