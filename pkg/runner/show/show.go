package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/dopamine/pkg/badge"
	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/stats"
	"tableflip.dev/dopamine/pkg/store"
)

// Show renders one day: checklist, stats, and badges.
type Show struct {
	Date        string
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
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
	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}

	p := plan.Default()
	engine := stats.Engine{Plan: p, Meta: meta}
	week := p.WeekNumber(when, meta)
	days := n.Persistence.Days(ctx)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(date)
	pp.Checklist(p.Week(week), day)
	pp.Summary(week, engine.Summarize(days, when))
	pp.Badges(badge.Evaluator{Engine: engine}.Evaluate(days, when))

	return nil
}
