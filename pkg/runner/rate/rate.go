// Package rate records mood and energy ratings on a day record.
package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/store"
)

type Rate struct {
	Mood        int // 0 leaves the rating untouched
	Energy      int
	Date        string
	Persistence store.Persistence
}

func (n *Rate) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not rate, no persistence")
	}
	if n.Mood == 0 && n.Energy == 0 {
		return errors.New("nothing to rate")
	}
	date := n.Date
	if date == "" {
		date = plan.DayKey(time.Now())
	}
	if _, err := plan.ParseDay(date); err != nil {
		return err
	}

	day, err := n.Persistence.Day(ctx, date)
	if err != nil {
		return err
	}
	if n.Mood != 0 {
		if err := day.SetMood(n.Mood); err != nil {
			return err
		}
	}
	if n.Energy != 0 {
		if err := day.SetEnergy(n.Energy); err != nil {
			return err
		}
	}
	if err := n.Persistence.SaveDay(day); err != nil {
		return err
	}

	fmt.Printf("%s: mood %s energy %s\n", date, rating(day.Mood), rating(day.Energy))
	return nil
}

func rating(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/5", n)
}
