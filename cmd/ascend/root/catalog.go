package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse predefined quests and the missions for your rank",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			fmt.Fprintln(s.out, ui.Heading(ui.IconQuest, "Main quests"))
			printTemplates(s.out, s.cat.MainQuests)
			fmt.Fprintln(s.out, ui.Heading(ui.IconQuest, "Side quests"))
			printTemplates(s.out, s.cat.SideQuests)

			missions := s.cat.Missions
			title := "Missions"
			if !all {
				rank := s.svc.Snapshot().User.Rank
				missions = s.cat.MissionsFor(rank)
				title = fmt.Sprintf("Missions for rank %s", rank)
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconMission, title))
			for _, m := range missions {
				fmt.Fprintf(s.out, "  %s %s %s %s\n",
					ui.Key.Render(fmt.Sprintf("day %d", m.Day)),
					m.Title,
					ui.Muted.Render(fmt.Sprintf("[%s/%s rank %s, %d steps]", m.Category, m.Difficulty, m.Rank, m.Count)),
					ui.Muted.Render(m.ID))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&all, "all", false, "list missions for every rank")
	return cmd
}

func printTemplates(out io.Writer, templates []domain.QuestTemplate) {
	if len(templates) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("  (none)"))
		return
	}
	for _, t := range templates {
		fmt.Fprintf(out, "  %s %s %s\n",
			ui.Key.Render(t.ID),
			t.Title,
			ui.Muted.Render(fmt.Sprintf("[%s/%s, %d tasks]", t.Category, t.Difficulty, len(t.Tasks))))
	}
}
