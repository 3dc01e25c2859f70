package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"platform-config/internal/apply"
	"platform-config/internal/diff"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		dryRun     bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Merge config.xml into every prepared platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("dry-run") {
				a.cfg.DryRun = dryRun
			}

			if cmd.Flags().Changed("report") {
				a.cfg.Report = reportPath
			}

			report := a.run()

			printReport(cmd.OutOrStdout(), report)

			if a.cfg.Report != "" {
				if err := apply.WriteReport(a.fs, a.cfg.Report, report); err != nil {
					return err
				}
			}

			if report.Error != "" {
				return fmt.Errorf("apply failed: %s", report.Error)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes as diffs without writing")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this file")

	return cmd
}

// run performs one full merge with the current settings.
func (a *app) run() *apply.Report {
	applier := apply.New(a.fs, a.cfg.Layout(), a.cfg.PreferenceMap(), apply.WithDryRun(a.cfg.DryRun))
	return applier.Run()
}

// printReport writes a short per-platform summary and, in dry-run mode, the diffs.
func printReport(w io.Writer, report *apply.Report) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	for _, p := range report.Platforms {
		state := ok(p.State.String())
		if p.State == apply.StateFailed {
			state = bad(p.State.String())
		}

		fmt.Fprintf(w, "%s: %s (%d target(s), %d skipped)\n", p.Platform, state, len(p.Targets), len(p.Diagnostics.Infos))

		if p.Diagnostics.HasErrors() {
			for _, d := range p.Diagnostics.Errors {
				fmt.Fprintf(w, "  %s\n", bad(d.String()))
			}
		}

		for _, t := range p.Targets {
			if t.Diff == "" {
				continue
			}

			fmt.Fprint(w, diff.Result{Path: t.Path, Text: t.Diff}.Colorize())
		}
	}
}
