// Package complete marks a whole day as done: every plan item checked,
// every task finished, and the explicit complete flag set.
package complete

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/store"
)

type Complete struct {
	Date        string
	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}
	date := n.Date
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	when, err := plan.ParseDay(date)
	if err != nil {
		return err
	}

	meta, err := n.Persistence.Meta(ctx)
	if err != nil {
		return err
	}
	p := plan.Default()
	week := p.Week(p.WeekNumber(when, meta))

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	for i := range week.Actions {
		day.SetAction(i, true)
	}
	for i := range week.Rules {
		day.SetRule(i, true)
	}
	for i := range day.Tasks {
		day.Tasks[i].Done = true
	}
	yes := true
	day.Complete = &yes

	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(date)
	pp.Checklist(week, day)
	return nil
}
