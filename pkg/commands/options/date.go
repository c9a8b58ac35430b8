// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions selects the day record a command operates on.
type DateOptions struct {
	Date string
}

// AddDateArg wires the --date flag; empty means today.
func AddDateArg(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify the day, example: --date="2024-01-05". Defaults to today.`)
}
