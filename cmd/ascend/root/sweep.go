package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newSweepCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Apply missed deadlines, expiries and the weekly reset now",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			res, err := s.svc.ReconcileAt(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			if len(res.Missed) == 0 {
				fmt.Fprintln(s.out, ui.Good.Render("Nothing overdue"))
			}
			for _, m := range res.Missed {
				fmt.Fprintf(s.out, "%s %s %s %s\n", ui.IconMissed, ui.KindIcon(m.Kind), ui.Key.Render(m.ID), m.Title)
			}
			fmt.Fprintln(s.out, ui.Muted.Render(fmt.Sprintf("state version %d", res.Version)))
			return nil
		}),
	}
}
