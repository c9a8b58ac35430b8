package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/runner/meta"
	"tableflip.dev/dopamine/pkg/store"
)

func addPlan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show and adjust the program calendar",
		Example: `
dopamine plan
dopamine plan start 2024-01-01
dopamine plan loop false
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meta.Show{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addPlanStart(cmd)
	addPlanLoop(cmd)

	topLevel.AddCommand(cmd)
}

func addPlanStart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start [date]",
		Short: "Anchor week 1 at a date, default today",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("takes at most a date")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meta.SetStart{
				Date:        date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addPlanLoop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "loop [true|false]",
		Short: "Loop back to week 1 after the final week, or cap there",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires true or false")
			}
			if _, err := strconv.ParseBool(args[0]); err != nil {
				return errors.New("requires true or false")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			loop, _ := strconv.ParseBool(args[0])
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := meta.SetLoop{
				Loop:        loop,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
