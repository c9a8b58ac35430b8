// Package report prints completion stats for a date and its program week.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/printers"
	"tableflip.dev/dopamine/pkg/stats"
	"tableflip.dev/dopamine/pkg/store"
)

type Report struct {
	Date string

	// Week selects a specific program week for the average. Zero means auto:
	// the week the date itself falls in.
	Week int

	Persistence store.Persistence
}

func (n *Report) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
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
	engine := stats.Engine{Plan: p, Meta: meta}
	days := n.Persistence.Days(ctx)

	week := n.Week
	if week == 0 {
		week = p.WeekNumber(when, meta)
	} else if week < 1 || week > len(p) {
		return fmt.Errorf("week %d out of range [1,%d]", n.Week, len(p))
	}

	summary := stats.Summary{
		DayPercent:  engine.DayPercent(days[date], when),
		WeekAverage: engine.WeekAverage(days, week),
		Streak:      engine.Streak(days, when),
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(date)
	pp.Summary(week, summary)
	return nil
}
