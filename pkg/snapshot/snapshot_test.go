package snapshot

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/dopamine/pkg/plan"
	"tableflip.dev/dopamine/pkg/record"
	"tableflip.dev/dopamine/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }

func testSnapshot() *Snapshot {
	d := record.NewDay("2024-01-02")
	d.SetAction(0, true)
	d.SetAction(1, true)
	d.SetRule(0, true)
	d.Tasks = append(d.Tasks, record.TaskItem{Text: "call", Done: true}, record.TaskItem{Text: "mail"})
	d.Journal = "steady"
	_ = d.SetMood(4)

	return &Snapshot{
		Meta: plan.Meta{StartDate: "2024-01-01", LoopWeeks: true},
		Days: map[string]*record.Day{d.Date: d},
		Scheduled: []*record.ScheduledTask{{
			Text:   "stretch",
			DueAt:  record.Timestamp{Time: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)},
			Repeat: record.RepeatDaily,
		}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := testSnapshot().Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Meta.StartDate != "2024-01-01" || len(s.Days) != 1 || len(s.Scheduled) != 1 {
		t.Fatalf("round trip mismatch: %+v", s)
	}
	if s.Days["2024-01-02"].Mood != 4 {
		t.Fatalf("day fields lost: %+v", s.Days["2024-01-02"])
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte("this is not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDecodeRejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no meta", `{"days":{}}`},
		{"bad day key", `{"meta":{"startDate":"2024-01-01"},"days":{"Jan 5":{"date":"Jan 5"}}}`},
		{"bad mood", `{"meta":{"startDate":"2024-01-01"},"days":{"2024-01-05":{"date":"2024-01-05","mood":9}}}`},
		{"scheduled without due", `{"meta":{"startDate":"2024-01-01"},"days":{},"scheduled":[{"id":"x","text":"walk"}]}`},
		{"bad repeat", `{"meta":{"startDate":"2024-01-01"},"days":{},"scheduled":[{"id":"x","text":"walk","dueAt":"2024-01-03T09:00:00Z","repeat":"hourly"}]}`},
	}
	for _, tc := range cases {
		if _, err := Decode([]byte(tc.data)); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

// A rejected import must not touch existing state.
func TestFailedImportLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := Restore(ctx, p, testSnapshot()); err != nil {
		t.Fatalf("seed restore: %v", err)
	}

	if _, err := Decode([]byte(`{"meta":`)); err == nil {
		t.Fatalf("expected decode failure")
	}

	days := p.Days(ctx)
	if len(days) != 1 || days["2024-01-02"] == nil {
		t.Fatalf("prior days map changed: %v", days)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := Restore(ctx, p, testSnapshot()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := Take(ctx, p)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if len(got.Days) != 1 || len(got.Scheduled) != 1 {
		t.Fatalf("unexpected state: %+v", got)
	}
	if got.Meta.StartDate != "2024-01-01" || !got.Meta.LoopWeeks {
		t.Fatalf("meta not restored: %+v", got.Meta)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := testSnapshot().WriteCSV(&buf); err != nil {
		t.Fatalf("csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "2024-01-02,2,1,4,,1,2,steady" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}
