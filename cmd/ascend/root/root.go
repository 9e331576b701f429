// Package root holds the ascend command tree.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/ui"
)

const Version = "0.1.0"

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	dbPath   string
	timezone string
	verbose  bool
}

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "ascend",
		Short:         "Ascendant: local-first progression tracker",
		Long:          "Ascend drives the progression and penalty engine from the terminal: tasks, quests, missions, curses and redemption.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "sqlite database path (overrides STORAGE_DRIVER and SQLITE_PATH)")
	cmd.PersistentFlags().StringVar(&opts.timezone, "tz", "", "timezone for day and week boundaries (overrides TIMEZONE)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log engine activity to stderr")

	cmd.AddCommand(
		newStatusCmd(opts),
		newTaskCmd(opts),
		newQuestCmd(opts),
		newMissionCmd(opts),
		newSweepCmd(opts),
		newRedeemCmd(opts),
		newJournalCmd(opts),
		newCatalogCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
