// Package task manages the free-form tasks on a day record.
package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

type Add struct {
	Text            string
	DurationMinutes int
	Date            string
	Persistence     store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add task, no persistence")
	}
	if strings.TrimSpace(n.Text) == "" {
		return errors.New("task text required")
	}
	date, when, err := resolveDate(n.Date)
	if err != nil {
		return err
	}

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	day.Tasks = append(day.Tasks, record.TaskItem{
		Text:            n.Text,
		DurationMinutes: record.NormalizeDuration(n.DurationMinutes),
	})
	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}
	return show(ctx, n.Persistence, date, when)
}

type Done struct {
	Index       int // 1-based
	Date        string
	Persistence store.Persistence
}

func (n *Done) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete task, no persistence")
	}
	date, when, err := resolveDate(n.Date)
	if err != nil {
		return err
	}

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	idx := n.Index - 1
	if idx < 0 || idx >= len(day.Tasks) {
		return fmt.Errorf("task %d out of range [1,%d]", n.Index, len(day.Tasks))
	}
	day.Tasks[idx].Done = true
	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}
	return show(ctx, n.Persistence, date, when)
}

func resolveDate(date string) (string, time.Time, error) {
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	when, err := plan.ParseDay(date)
	return date, when, err
}

func show(ctx context.Context, p store.Persistence, date string, when time.Time) error {
	meta, err := p.Meta(ctx)
	if err != nil {
		return err
	}
	day, err := p.Day(ctx, date)
	if err != nil {
		return err
	}
	pl := plan.Default()
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(date)
	pp.Checklist(pl.Week(pl.WeekNumber(when, meta)), day)
	return nil
}
