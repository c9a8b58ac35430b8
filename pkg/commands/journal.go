package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/commands/options"
	"tableflip.dev/dopamine/pkg/runner/journal"
	"tableflip.dev/dopamine/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	clear := false

	cmd := &cobra.Command{
		Use:   "journal [text]",
		Short: "Write a day's journal entry",
		Example: `
dopamine journal slept well, skipped the late coffee
dopamine journal --clear --date 2024-01-05
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 && !clear {
				return errors.New("requires journal text, or --clear")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Set{
				Text:        strings.Join(args, " "),
				Clear:       clear,
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Erase the day's journal entry.")
	options.AddDateArg(cmd, do)
	topLevel.AddCommand(cmd)
}
