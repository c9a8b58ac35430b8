package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/report"
	"tableflip.dev/dopamine/pkg/store"
)

func addReport(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	week := 0

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Show day completion, week average, and streak",
		Example: `
dopamine stats
dopamine stats --week 2
dopamine stats --date 2024-01-05
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := report.Report{
				Date:        do.Date,
				Week:        week,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "Program week for the average. Defaults to the date's own week.")
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
