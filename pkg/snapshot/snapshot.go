// Package snapshot moves the full persisted state in and out of the store
// as structured data, and flattens history into tabular form.
package snapshot

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

// Snapshot is the logical persisted state: program meta, the date-keyed day
// records, and the scheduled task list.
type Snapshot struct {
	Meta      plan.Meta               `json:"meta"`
	Days      map[string]*record.Day  `json:"days"`
	Scheduled []*record.ScheduledTask `json:"scheduled,omitempty"`
}

// Take reads the current state out of the store.
func Take(ctx context.Context, p store.Persistence) (*Snapshot, error) {
	meta, err := p.Meta(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Meta:      meta,
		Days:      p.Days(ctx),
		Scheduled: p.Scheduled(ctx),
	}, nil
}

// Decode parses and validates a snapshot. Malformed input returns an error
// without producing a partial snapshot, so callers can safely reject the
// whole import.
func Decode(data []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("snapshot: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode serializes the snapshot as indented JSON.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Validate checks the whole snapshot shape before it may be committed.
func (s *Snapshot) Validate() error {
	if _, err := s.Meta.Start(); err != nil {
		return err
	}
	for key, d := range s.Days {
		if d == nil {
			return fmt.Errorf("snapshot: day %s is null", key)
		}
		if _, err := plan.ParseDay(key); err != nil {
			return err
		}
		if d.Date == "" {
			d.Date = key
		}
		if d.Date != key {
			return fmt.Errorf("snapshot: day key %s holds record for %s", key, d.Date)
		}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	for _, t := range s.Scheduled {
		if t == nil {
			return fmt.Errorf("snapshot: null scheduled task")
		}
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Restore replaces the store's entire state with the snapshot.
func Restore(ctx context.Context, p store.Persistence, s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return p.Replace(ctx, s.Meta, s.Days, s.Scheduled)
}

// csvHeader matches the flattened export shape: one row per date.
var csvHeader = []string{"date", "actions_done", "rules_done", "mood", "energy", "tasks_done", "tasks_total", "journal"}

// WriteCSV flattens the snapshot's history, ordered by date.
func (s *Snapshot) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	keys := make([]string, 0, len(s.Days))
	for key := range s.Days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		d := s.Days[key]
		actions := 0
		for _, c := range d.ActionChecks {
			if c {
				actions++
			}
		}
		rules := 0
		for _, c := range d.RuleChecks {
			if c {
				rules++
			}
		}
		row := []string{
			key,
			strconv.Itoa(actions),
			strconv.Itoa(rules),
			ratingField(d.Mood),
			ratingField(d.Energy),
			strconv.Itoa(d.DoneTasks()),
			strconv.Itoa(len(d.Tasks)),
			d.Journal,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ratingField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
