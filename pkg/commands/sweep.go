package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/runner/sweep"
	"tableflip.dev/dopamine/pkg/sched"
	"tableflip.dev/dopamine/pkg/store"
)

func addSweep(topLevel *cobra.Command) {
	interval := sched.DefaultInterval
	once := false

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Promote due scheduled tasks onto their day",
		Example: `
dopamine sweep --once
dopamine sweep --interval 10s
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sweep.Sweep{
				Interval:    interval,
				Once:        once,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", sched.DefaultInterval, "Time between sweeps when running as a daemon.")
	cmd.Flags().BoolVar(&once, "once", false, "Sweep a single time and exit.")
	topLevel.AddCommand(cmd)
}
