package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dopamine/pkg/runner/export"
	"tableflip.dev/dopamine/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	csv := false
	out := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records as JSON or CSV",
		Example: `
dopamine export > backup.json
dopamine export --csv -o progress.csv
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				CSV:         csv,
				Output:      out,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&csv, "csv", false, "Write flattened day rows as CSV instead of JSON.")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout.")
	topLevel.AddCommand(cmd)
}
