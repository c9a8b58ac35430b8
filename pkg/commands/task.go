package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/task"
	"tableflip.dev/dopamine/pkg/store"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a day's own tasks",
		Example: `
dopamine task add write journal --minutes 10
dopamine task done 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskDone(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	minutes := 0

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task to a day",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires task text")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Add{
				Text:            strings.Join(args, " "),
				DurationMinutes: minutes,
				Date:            do.Date,
				Persistence:     p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Task duration in minutes.")
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "done [number]",
		Short: "Mark a day's task done",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task number")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("task number must be an integer")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[0])
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := task.Done{
				Index:       index,
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
