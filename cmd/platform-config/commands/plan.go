package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"platform-config/internal/common"
	"platform-config/internal/plan"
	"platform-config/internal/source"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		platforms []string
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the records that apply would merge, as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout := a.cfg.Layout()

			src, err := source.Load(a.fs, layout.SourcePath())
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(platforms))
			for _, p := range platforms {
				ids = append(ids, common.PlatformID(p))
			}

			if len(ids) == 0 {
				found, err := layout.Platforms(a.fs)
				if err != nil {
					return err
				}

				for _, p := range found {
					ids = append(ids, p.ID)
				}
			}

			prefs := a.cfg.PreferenceMap()

			plans := make([]*plan.Plan, 0, len(ids))
			for _, id := range ids {
				plans = append(plans, plan.Build(src, prefs, id))
			}

			if dump {
				spew.Fdump(cmd.OutOrStdout(), plans)
				return nil
			}

			data, err := plan.ExportYAML(plans...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().StringSliceVar(&platforms, "platform", nil, "Platforms to plan (defaults to every prepared platform)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw plan structures instead of YAML")

	return cmd
}
