package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newQuestCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage main, side and daily quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(opts),
		newQuestFromCatalogCmd(opts),
		newQuestListCmd(opts),
		newQuestStartCmd(opts),
		newQuestDoneCmd(opts),
		newQuestSubCmd(opts),
		newDeleteCmd(opts, domain.KindQuest),
	)
	return cmd
}

func newQuestAddCmd(opts *globalOptions) *cobra.Command {
	var (
		in         domain.CreateQuestInput
		category   string
		difficulty string
		due        string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a custom quest",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			deadline, err := parseDeadline(due, s.now(), s.loc)
			if err != nil {
				return err
			}
			in.Title = args[0]
			in.Category = domain.Category(category)
			in.Difficulty = domain.Difficulty(difficulty)
			in.Deadline = deadline

			q, err := s.svc.CreateQuest(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Quest accepted"))
			printQuest(s.out, q, s.loc)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryCognitive), "category (physical, cognitive, emotional, spiritual, social)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.DifficultyMedium), "difficulty (easy, medium, hard, boss)")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")
	cmd.Flags().StringVar(&due, "due", "", "deadline: duration (48h), date (YYYY-MM-DD) or RFC 3339")
	cmd.Flags().BoolVar(&in.IsMainQuest, "main", false, "main quest")
	cmd.Flags().BoolVar(&in.IsDaily, "daily", false, "daily quest (quota exempt)")
	cmd.Flags().Int64Var(&in.ExpReward, "exp", 0, "override the difficulty exp reward")
	cmd.Flags().Int64Var(&in.GoldReward, "gold", 0, "override the difficulty gold reward")
	cmd.Flags().StringArrayVarP(&in.Tasks, "task", "t", nil, "sub-task title (repeatable, kept in order)")
	cmd.MarkFlagsMutuallyExclusive("main", "daily")
	return cmd
}

func newQuestFromCatalogCmd(opts *globalOptions) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "from <template-id>",
		Short: "Accept a quest from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			deadline, err := parseDeadline(due, s.now(), s.loc)
			if err != nil {
				return err
			}
			q, err := s.svc.CreateQuestFromCatalog(cmd.Context(), args[0], deadline)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Quest accepted"))
			printQuest(s.out, q, s.loc)
			return nil
		}),
	}

	cmd.Flags().StringVar(&due, "due", "", "deadline: duration (48h), date (YYYY-MM-DD) or RFC 3339")
	return cmd
}

func newQuestListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quests with their sub-tasks",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			quests, err := s.svc.ListQuests(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconQuest, "Quests"))
			if len(quests) == 0 {
				fmt.Fprintln(s.out, ui.Muted.Render("No quests yet. Try `ascend catalog` for ideas."))
				return nil
			}
			for _, q := range quests {
				printQuest(s.out, q, s.loc)
			}
			return nil
		}),
	}
}

func newQuestStartCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a quest as started",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			q, err := s.svc.StartQuest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printQuest(s.out, q, s.loc)
			return nil
		}),
	}
}

func newQuestDoneCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a quest once its sub-tasks are done",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			o, err := s.svc.CompleteQuest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutcome(s.out, titleOf(s, domain.KindQuest, args[0]), o)
			return nil
		}),
	}
}

func newQuestSubCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage a quest's sub-tasks",
	}

	add := &cobra.Command{
		Use:   "add <quest-id> <title>",
		Short: "Append a sub-task to a quest",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			t, err := s.svc.AddSubTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Sub-task added"))
			printTask(s.out, t, s.loc)
			return nil
		}),
	}

	done := &cobra.Command{
		Use:   "done <quest-id> <task-id>",
		Short: "Complete a quest sub-task",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			o, err := s.svc.CompleteSubTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printOutcome(s.out, titleOf(s, domain.KindTask, args[1]), o)
			return nil
		}),
	}

	cmd.AddCommand(add, done)
	return cmd
}
