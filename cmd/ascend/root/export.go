package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/ui"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the full state snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			st := s.svc.Snapshot()
			if err := utils.SaveJSON(args[0], st); err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Good.Render(fmt.Sprintf("Exported state version %d to %s", st.Version, args[0])))
			return nil
		}),
	}
}
