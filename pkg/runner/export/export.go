// Package export writes the full state as JSON or flattened CSV.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/dopamine/pkg/snapshot"
	"tableflip.dev/dopamine/pkg/store"
)

type Export struct {
	CSV         bool
	Output      string // empty writes to stdout
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	snap, err := snapshot.Take(ctx, n.Persistence)
	if err != nil {
		return err
	}

	out := os.Stdout
	if n.Output != "" {
		f, err := os.Create(n.Output)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer f.Close()
		out = f
	}

	if n.CSV {
		return snap.WriteCSV(out)
	}
	data, err := snap.Encode()
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
