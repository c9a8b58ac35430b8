// Package store persists day records, scheduled tasks, and program meta to a
// local diskv-backed key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
)

// Persistence is the record store contract: a date-keyed map of day records,
// the scheduled task list, and the program meta.
type Persistence interface {
	Meta(ctx context.Context) (plan.Meta, error)
	SaveMeta(meta plan.Meta) error

	Day(ctx context.Context, date string) (*record.Day, error)
	Days(ctx context.Context) map[string]*record.Day
	SaveDay(d *record.Day) error

	Scheduled(ctx context.Context) []*record.ScheduledTask
	SaveScheduled(t *record.ScheduledTask) error
	DeleteScheduled(id string) error

	// Replace swaps the entire persisted state, all or nothing as far as
	// encoding goes: every record is marshalled before anything is written.
	Replace(ctx context.Context, meta plan.Meta, days map[string]*record.Day, scheduled []*record.ScheduledTask) error

	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	dayBucket   = "day"
	schedBucket = "sched"

	metaFile = ".meta.json"
)

// Load creates a Persistence backed by diskv using the provided config. A
// nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Day(ctx context.Context, date string) (*record.Day, error) {
	if _, err := plan.ParseDay(date); err != nil {
		return nil, err
	}
	val, err := p.d.Read(dayKey(date))
	if err != nil {
		// Absent records materialise lazily with empty defaults.
		return record.NewDay(date), nil
	}
	d, err := decodeDay(date, val)
	if err != nil {
		// Fail closed: a corrupt record yields a fresh default rather than
		// an error the caller cannot act on.
		fmt.Fprintf(os.Stderr, "store: %s: %v (starting from empty record)\n", date, err)
		return record.NewDay(date), nil
	}
	return d, nil
}

func (p *persistence) Days(ctx context.Context) map[string]*record.Day {
	all := make(map[string]*record.Day)
	for key := range p.d.Keys(ctx.Done()) {
		bucket, name := splitKey(key)
		if bucket != dayBucket {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
			continue
		}
		d, err := decodeDay(name, val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
			continue
		}
		all[name] = d
	}
	return all
}

func (p *persistence) SaveDay(d *record.Day) error {
	if d == nil {
		return errors.New("store: nil day record")
	}
	if _, err := plan.ParseDay(d.Date); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return p.d.Write(dayKey(d.Date), data)
}

func (p *persistence) Scheduled(ctx context.Context) []*record.ScheduledTask {
	all := make([]*record.ScheduledTask, 0)
	for key := range p.d.Keys(ctx.Done()) {
		bucket, name := splitKey(key)
		if bucket != schedBucket {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
			continue
		}
		t := &record.ScheduledTask{}
		if err := json.Unmarshal(val, t); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
			continue
		}
		t.ID = name
		all = append(all, t)
	}
	sortScheduled(all)
	return all
}

func (p *persistence) SaveScheduled(t *record.ScheduledTask) error {
	if t == nil {
		return errors.New("store: nil scheduled task")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	t.EnsureID()
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(schedKey(t.ID), data)
}

func (p *persistence) DeleteScheduled(id string) error {
	if id == "" {
		return errors.New("store: scheduled task id required")
	}
	return p.d.Erase(schedKey(id))
}

func (p *persistence) Meta(ctx context.Context) (plan.Meta, error) {
	path := filepath.Join(p.basePath, metaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p.defaultMeta(ctx), nil
		}
		return plan.Meta{}, fmt.Errorf("store: read meta: %w", err)
	}
	meta := plan.Meta{}
	if err := json.Unmarshal(data, &meta); err != nil {
		fmt.Fprintf(os.Stderr, "store: meta: %v (using defaults)\n", err)
		return p.defaultMeta(ctx), nil
	}
	if meta.StartDate == "" {
		return p.defaultMeta(ctx), nil
	}
	if _, err := meta.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "store: meta: %v (using defaults)\n", err)
		return p.defaultMeta(ctx), nil
	}
	return meta, nil
}

// defaultMeta anchors week 1 at the earliest recorded day, or today for an
// empty store, and loops the plan.
func (p *persistence) defaultMeta(ctx context.Context) plan.Meta {
	start := plan.DayKey(time.Now())
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucket, name := splitKey(key); bucket == dayBucket {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		start = keys[0]
	}
	return plan.Meta{StartDate: start, LoopWeeks: true}
}

func (p *persistence) SaveMeta(meta plan.Meta) error {
	if _, err := meta.Start(); err != nil {
		return err
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(p.basePath, metaFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (p *persistence) Replace(ctx context.Context, meta plan.Meta, days map[string]*record.Day, scheduled []*record.ScheduledTask) error {
	// Marshal everything up front so a bad record cannot leave the store
	// half overwritten.
	if _, err := meta.Start(); err != nil {
		return err
	}
	encodedDays := make(map[string][]byte, len(days))
	for date, d := range days {
		if d == nil {
			return fmt.Errorf("store: nil day record for %s", date)
		}
		if err := d.Validate(); err != nil {
			return err
		}
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		encodedDays[date] = data
	}
	encodedSched := make(map[string][]byte, len(scheduled))
	for _, t := range scheduled {
		if err := t.Validate(); err != nil {
			return err
		}
		t.EnsureID()
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		encodedSched[t.ID] = data
	}

	for key := range p.d.Keys(ctx.Done()) {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: clear %s: %w", key, err)
		}
	}
	for date, data := range encodedDays {
		if err := p.d.Write(dayKey(date), data); err != nil {
			return err
		}
	}
	for id, data := range encodedSched {
		if err := p.d.Write(schedKey(id), data); err != nil {
			return err
		}
	}
	return p.SaveMeta(meta)
}

func decodeDay(date string, val []byte) (*record.Day, error) {
	d := &record.Day{}
	if err := json.Unmarshal(val, d); err != nil {
		return nil, err
	}
	d.Date = date
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.ActionChecks == nil {
		d.ActionChecks = []bool{}
	}
	if d.RuleChecks == nil {
		d.RuleChecks = []bool{}
	}
	return d, nil
}

func sortScheduled(all []*record.ScheduledTask) {
	sort.SliceStable(all, func(i, j int) bool {
		lt, rt := all[i].DueAt.Time, all[j].DueAt.Time
		if lt.Equal(rt) {
			return all[i].ID < all[j].ID
		}
		return lt.Before(rt)
	})
}

func dayKey(date string) string {
	return fmt.Sprintf("%s-%s", dayBucket, date)
}

func schedKey(id string) string {
	return fmt.Sprintf("%s-%s", schedBucket, id)
}

// splitKey undoes dayKey/schedKey: the bucket is everything before the first
// dash, which keeps dashes inside day keys intact.
func splitKey(key string) (bucket, name string) {
	i := strings.Index(key, "-")
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}

func keyToPathTransform(s string) *diskv.PathKey {
	bucket, name := splitKey(s)
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
