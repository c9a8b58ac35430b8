package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/complete"
	"tableflip.dev/dopamine/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark every item and task on a day as done",
		Example: `
dopamine complete
dopamine complete --date 2024-01-05
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
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
