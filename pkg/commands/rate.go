package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/rate"
	"tableflip.dev/dopamine/pkg/store"
)

func addRate(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	mood := 0
	energy := 0

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a day's mood and energy, 1 to 5",
		Example: `
dopamine rate --mood 4
dopamine rate --mood 3 --energy 5 --date 2024-01-05
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := rate.Rate{
				Mood:        mood,
				Energy:      energy,
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&mood, "mood", 0, "Mood rating, 1 to 5.")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy rating, 1 to 5.")
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
