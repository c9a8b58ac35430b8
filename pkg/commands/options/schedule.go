package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures flags for creating a scheduled task.
type ScheduleOptions struct {
	Due       string
	Repeat    string
	Minutes   int
	AutoStart bool
}

func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.Due, "at", "",
		`Due time, example: --at="2024-01-05 09:00".`)
	cmd.Flags().StringVar(&o.Repeat, "repeat", "",
		"Repeat rule: none, daily, weekly, or weekdays.")
	cmd.Flags().IntVarP(&o.Minutes, "minutes", "m", 0,
		"Task duration in minutes.")
	cmd.Flags().BoolVar(&o.AutoStart, "autostart", false,
		"Start a countdown when the task is promoted.")
	_ = cmd.MarkFlagRequired("at")
}
