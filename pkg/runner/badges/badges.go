// Package badges lists achievement badges with their earned status.
package badges

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

type Badges struct {
	Date        string
	Persistence store.Persistence
}

func (n *Badges) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list badges, no persistence")
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
	ev := badge.Evaluator{Engine: stats.Engine{Plan: plan.Default(), Meta: meta}}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("badges")
	pp.Badges(ev.Evaluate(n.Persistence.Days(ctx), when))
	return nil
}
