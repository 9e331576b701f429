package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newJournalCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Check the daily and weekly journal bars",
	}

	var date string
	daily := &cobra.Command{
		Use:   "daily",
		Short: "Show the journal for one date",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			day, err := parseDay(date, s.now(), s.loc)
			if err != nil {
				return err
			}
			r, err := s.svc.DailyJournal(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconScroll, "Journal "+r.Date))
			journalRow(s.out, "Scheduled tasks", r.CompletedScheduledTasks, r.ScheduledTasks)
			journalRow(s.out, "Daily quests", r.DailyQuests, r.RequiredDailyQuests)
			journalRow(s.out, "Missions", r.Missions, r.RequiredMissions)
			journalVerdict(s.out, r.Complete)
			return nil
		}),
	}
	daily.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")

	var week string
	weekly := &cobra.Command{
		Use:   "weekly",
		Short: "Show the journal for the week containing a date",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			day, err := parseDay(week, s.now(), s.loc)
			if err != nil {
				return err
			}
			r, err := s.svc.WeeklyJournal(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconScroll, "Week of "+r.WeekStart))
			journalRow(s.out, "Open tasks", r.CompletedOpenTasks, r.OpenTasks)
			journalRow(s.out, "Daily quests", r.DailyQuests, r.RequiredDailyQuests)
			journalRow(s.out, "Main quests", r.MainQuests, r.RequiredMainQuests)
			journalRow(s.out, "Side quests", r.SideQuests, r.RequiredSideQuests)
			journalRow(s.out, "Missions", r.Missions, r.RequiredMissions)
			journalVerdict(s.out, r.Complete)
			return nil
		}),
	}
	weekly.Flags().StringVar(&week, "week", "", "any date in the week as YYYY-MM-DD (default this week)")

	cmd.AddCommand(daily, weekly)
	return cmd
}

func journalRow(out io.Writer, label string, done, required int) {
	value := fmt.Sprintf("%d/%d", done, required)
	if done >= required {
		value = ui.Good.Render(value)
	}
	fmt.Fprintln(out, ui.LabelValue(label, value))
}

func journalVerdict(out io.Writer, complete bool) {
	if complete {
		fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Journal complete"))
		return
	}
	fmt.Fprintln(out, ui.Muted.Render("Journal incomplete"))
}
