package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"platform-config/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		dryRun   bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Apply once, then again whenever config.xml changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("dry-run") {
				a.cfg.DryRun = dryRun
			}

			runOnce := func() {
				printReport(cmd.OutOrStdout(), a.run())
			}

			w, err := watch.New(a.cfg.Layout().SourcePath(), debounce, runOnce)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runOnce()

			return w.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes as diffs without writing")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-applying")

	return cmd
}
