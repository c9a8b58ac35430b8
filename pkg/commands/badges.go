package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/badges"
	"tableflip.dev/dopamine/pkg/store"
)

func addBadges(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List achievement badges",
		Example: `
dopamine badges
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := badges.Badges{
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
