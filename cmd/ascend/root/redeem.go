package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/ui"
)

func newRedeemCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Work off an active curse with recovery quests",
	}

	start := &cobra.Command{
		Use:   "start",
		Short: "Accept a batch of recovery quests",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			quests, err := s.svc.StartRedemption(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Heading(ui.IconScroll, "Recovery quests"))
			for _, q := range quests {
				printQuest(s.out, q, s.loc)
			}
			fmt.Fprintln(s.out, ui.Muted.Render("Complete them, then run `ascend redeem attempt --passed`."))
			return nil
		}),
	}

	abandon := &cobra.Command{
		Use:   "abandon",
		Short: "Drop the pending recovery batch",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			if err := s.svc.AbandonRedemption(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(s.out, ui.Warn.Render("Redemption abandoned"))
			return nil
		}),
	}

	var passed bool
	attempt := &cobra.Command{
		Use:   "attempt",
		Short: "Record the redemption challenge result",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			st, err := s.svc.AttemptRedemption(cmd.Context(), passed)
			if err != nil {
				return err
			}
			if passed {
				fmt.Fprintln(s.out, ui.Good.Render("Redemption passed"))
			} else {
				fmt.Fprintln(s.out, ui.Bad.Render("Redemption failed"))
			}
			printStatus(s.out, st, s.loc)
			return nil
		}),
	}
	attempt.Flags().BoolVar(&passed, "passed", false, "whether the challenge was passed (use --passed=false for a failure)")
	_ = attempt.MarkFlagRequired("passed")

	cmd.AddCommand(start, abandon, attempt)
	return cmd
}
