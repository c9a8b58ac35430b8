package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/schedule"
	"tableflip.dev/dopamine/pkg/store"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Manage scheduled tasks",
		Example: `
dopamine schedule add stand-up notes --at="2024-01-05 09:00" --repeat weekdays
dopamine schedule list
dopamine schedule rm 1a2b3c4d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleAdd(cmd)
	addScheduleList(cmd)
	addScheduleRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Schedule a task for a due time",
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
			s := schedule.Add{
				Text:            strings.Join(args, " "),
				Due:             so.Due,
				DurationMinutes: so.Minutes,
				Repeat:          so.Repeat,
				AutoStart:       so.AutoStart,
				Persistence:     p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddScheduleArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func addScheduleList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List scheduled tasks",
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := schedule.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addScheduleRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Remove a scheduled task",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id, see schedule list --show-id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := schedule.Remove{
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
