package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newMissionCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage rank missions",
	}
	cmd.AddCommand(
		newMissionAddCmd(opts),
		newMissionFromCatalogCmd(opts),
		newMissionListCmd(opts),
		newMissionStartCmd(opts),
		newMissionStepCmd(opts),
		newMissionDoneCmd(opts),
		newDeleteCmd(opts, domain.KindMission),
	)
	return cmd
}

func newMissionAddCmd(opts *globalOptions) *cobra.Command {
	var (
		in         domain.CreateMissionInput
		category   string
		difficulty string
		rank       string
		due        string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a custom mission",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			deadline, err := parseDeadline(due, s.now(), s.loc)
			if err != nil {
				return err
			}
			in.Title = args[0]
			in.Category = domain.Category(category)
			in.Difficulty = domain.Difficulty(difficulty)
			in.Rank = domain.Rank(rank)
			in.Deadline = deadline

			m, err := s.svc.CreateMission(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Mission accepted"))
			printMission(s.out, m, s.loc)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryPhysical), "category (physical, cognitive, emotional, spiritual, social)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.DifficultyMedium), "difficulty (easy, medium, hard, boss)")
	cmd.Flags().StringVar(&rank, "rank", string(domain.RankF), "rank the mission belongs to")
	cmd.Flags().IntVar(&in.Day, "day", 1, "mission day within the rank")
	cmd.Flags().IntVar(&in.Count, "count", 1, "number of steps")
	cmd.Flags().Int64Var(&in.ExpReward, "exp", 0, "override the difficulty exp reward")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")
	cmd.Flags().StringVar(&due, "due", "", "deadline: duration (48h), date (YYYY-MM-DD) or RFC 3339")
	return cmd
}

func newMissionFromCatalogCmd(opts *globalOptions) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "from <day>",
		Short: "Accept the catalog mission for your rank and the given day",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil || day < 1 {
				return fmt.Errorf("day must be a positive integer, got %q", args[0])
			}
			deadline, err := parseDeadline(due, s.now(), s.loc)
			if err != nil {
				return err
			}
			m, err := s.svc.CreateMissionFromCatalog(cmd.Context(), day, deadline)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Mission accepted"))
			printMission(s.out, m, s.loc)
			return nil
		}),
	}

	cmd.Flags().StringVar(&due, "due", "", "deadline: duration (48h), date (YYYY-MM-DD) or RFC 3339")
	return cmd
}

func newMissionListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List missions and their step progress",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			missions, err := s.svc.ListMissions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconMission, "Missions"))
			if len(missions) == 0 {
				fmt.Fprintln(s.out, ui.Muted.Render("No missions yet. Accept one with `ascend mission from 1`."))
				return nil
			}
			for _, m := range missions {
				printMission(s.out, m, s.loc)
			}
			return nil
		}),
	}
}

func newMissionStartCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a mission as started",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			m, err := s.svc.StartMission(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printMission(s.out, m, s.loc)
			return nil
		}),
	}
}

func newMissionStepCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "step <id> <n>",
		Short: "Record step n (starting at 1) of a mission",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("step must be a positive integer, got %q", args[1])
			}
			m, err := s.svc.CompleteMissionStep(cmd.Context(), args[0], n-1)
			if err != nil {
				return err
			}
			printMission(s.out, m, s.loc)
			if m.AllStepsDone() {
				fmt.Fprintln(s.out, ui.Good.Render("All steps done: finish with `ascend mission done "+m.ID+"`"))
			}
			return nil
		}),
	}
}

func newMissionDoneCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a mission once every step is recorded",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			o, err := s.svc.CompleteMission(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutcome(s.out, titleOf(s, domain.KindMission, args[0]), o)
			return nil
		}),
	}
}
