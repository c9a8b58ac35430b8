package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	slot := ""

	cmd := &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Run a countdown for a focus block",
		Example: `
dopamine focus 25
dopamine focus 10 --slot stretch
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("takes at most a minute count")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("minutes must be an integer")
				}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			minutes := 0
			if len(args) == 1 {
				minutes, _ = strconv.Atoi(args[0])
			}
			s := focus.Focus{
				Minutes: minutes,
				Slot:    slot,
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "", "Timer slot name. Starting a slot again restarts it.")
	topLevel.AddCommand(cmd)
}
