package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/check"
	"tableflip.dev/dopamine/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	off := false

	cmd := &cobra.Command{
		Use:       "check [action|rule] [number]",
		Short:     "Check off a plan item",
		ValidArgs: []string{check.KindAction, check.KindRule},
		Example: `
dopamine check action 1
dopamine check rule 2 --off
dopamine check action 3 --date 2024-01-05
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an item kind and a number")
			}
			if args[0] != check.KindAction && args[0] != check.KindRule {
				return errors.New("item kind must be action or rule")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("item number must be an integer")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[1])
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := check.Check{
				Kind:        args[0],
				Index:       index,
				Value:       !off,
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Uncheck instead of check.")
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
