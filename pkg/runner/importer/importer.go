// Package importer replaces the persisted state from a snapshot file. A
// malformed file is rejected whole; the existing state is never partially
// overwritten.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/dopamine/pkg/snapshot"
	"tableflip.dev/dopamine/pkg/store"
)

type Import struct {
	Path        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("import rejected, state unchanged: %w", err)
	}
	if err := snapshot.Restore(ctx, n.Persistence, snap); err != nil {
		return err
	}

	fmt.Printf("imported %d day(s), %d scheduled task(s)\n", len(snap.Days), len(snap.Scheduled))
	return nil
}
