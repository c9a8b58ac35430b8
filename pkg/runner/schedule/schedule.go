// Package schedule manages the scheduled task list.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

const dueLayout = "2006-01-02 15:04"

// ParseDue accepts either "2006-01-02 15:04" local time or RFC3339.
func ParseDue(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if t, err := time.ParseInLocation(dueLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad due time %q, want %q or RFC3339", input, dueLayout)
	}
	return t, nil
}

type Add struct {
	Text            string
	Due             string
	DurationMinutes int
	Repeat          string
	AutoStart       bool
	Persistence     store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not schedule, no persistence")
	}
	due, err := ParseDue(n.Due)
	if err != nil {
		return err
	}
	repeat, err := record.ParseRepeat(n.Repeat)
	if err != nil {
		return err
	}

	task := &record.ScheduledTask{
		Text:            n.Text,
		DueAt:           record.Timestamp{Time: due},
		DurationMinutes: record.NormalizeDuration(n.DurationMinutes),
		Repeat:          repeat,
		AutoStart:       n.AutoStart,
	}
	if err := n.Persistence.SaveScheduled(task); err != nil {
		return err
	}
	return list(ctx, n.Persistence, true)
}

type List struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list schedule, no persistence")
	}
	return list(ctx, n.Persistence, n.ShowID)
}

type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if err := n.Persistence.DeleteScheduled(n.ID); err != nil {
		return fmt.Errorf("remove scheduled task %s: %w", n.ID, err)
	}
	return list(ctx, n.Persistence, true)
}

func list(ctx context.Context, p store.Persistence, showID bool) error {
	pp := printers.PrettyPrint{ShowID: showID}
	pp.NewLine()
	pp.Title("scheduled")
	pp.Schedule(p.Scheduled(ctx))
	return nil
}
