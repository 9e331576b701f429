package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newTaskCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage standalone tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(opts),
		newTaskListCmd(opts),
		newTaskDoneCmd(opts),
		newDeleteCmd(opts, domain.KindTask),
	)
	return cmd
}

func newTaskAddCmd(opts *globalOptions) *cobra.Command {
	var (
		category    string
		difficulty  string
		description string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			deadline, err := parseDeadline(due, s.now(), s.loc)
			if err != nil {
				return err
			}
			t, err := s.svc.CreateTask(cmd.Context(), domain.CreateTaskInput{
				Title:       args[0],
				Description: description,
				Category:    domain.Category(category),
				Difficulty:  domain.Difficulty(difficulty),
				Deadline:    deadline,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render("Task created"))
			printTask(s.out, t, s.loc)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryCognitive), "category (physical, cognitive, emotional, spiritual, social)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.DifficultyMedium), "difficulty (easy, medium, hard, boss)")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&due, "due", "", "deadline: duration (48h), date (YYYY-MM-DD) or RFC 3339")
	return cmd
}

func newTaskListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List standalone tasks",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			tasks, err := s.svc.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconTask, "Tasks"))
			if len(tasks) == 0 {
				fmt.Fprintln(s.out, ui.Muted.Render("No tasks yet. Add one with `ascend task add`."))
				return nil
			}
			for _, t := range tasks {
				printTask(s.out, t, s.loc)
			}
			return nil
		}),
	}
}

func newTaskDoneCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			o, err := s.svc.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutcome(s.out, titleOf(s, domain.KindTask, args[0]), o)
			return nil
		}),
	}
}

// newDeleteCmd is shared by the task, quest and mission groups
func newDeleteCmd(opts *globalOptions, kind domain.ItemKind) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete a %s", kind),
		Args:    cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			if err := s.svc.DeleteItem(cmd.Context(), kind, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Muted.Render(fmt.Sprintf("Deleted %s %s", kind, args[0])))
			return nil
		}),
	}
}

// titleOf looks up an item title in the current snapshot for display
func titleOf(s *session, kind domain.ItemKind, id string) string {
	st := s.svc.Snapshot()
	switch kind {
	case domain.KindTask:
		for _, t := range st.Tasks {
			if t.ID == id {
				return t.Title
			}
		}
		for _, q := range st.Quests {
			for _, t := range q.Tasks {
				if t.ID == id {
					return t.Title
				}
			}
		}
	case domain.KindQuest:
		for _, q := range st.Quests {
			if q.ID == id {
				return q.Title
			}
		}
	case domain.KindMission:
		for _, m := range st.Missions {
			if m.ID == id {
				return m.Title
			}
		}
	}
	return id
}
