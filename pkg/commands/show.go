package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/show"
	"tableflip.dev/dopamine/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"today", "day"},
		Short:   "Show a day's checklist, stats, and badges",
		Example: `
dopamine show
dopamine show --date 2024-01-05
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
