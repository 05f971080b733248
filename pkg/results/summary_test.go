package results

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/xitongsys/parquet-go-source/local"

	"github.com/akhildatla/beaver/internal/testutil"
	"github.com/akhildatla/beaver/pkg/enum"
	"github.com/akhildatla/beaver/pkg/turing"
)

func enumerateInto(t *testing.T, p turing.Params, sink enum.Sink, counts *enum.Counts) {
	t.Helper()
	if err := enum.Enumerate(context.Background(), p, sink, counts); err != nil {
		t.Fatalf("Enumerate(%+v) failed: %v", p, err)
	}
}

func TestSummary_Aggregates(t *testing.T) {
	mem := &testutil.MemorySink{}
	summary := NewSummary(mem)
	var counts enum.Counts

	enumerateInto(t, turing.Params{States: 1, Symbols: 2}, summary, &counts)
	enumerateInto(t, turing.Params{States: 2, Symbols: 2}, summary, &counts)

	sizes := summary.Sizes()
	if len(sizes) != 2 {
		t.Fatalf("got %d sizes, want 2", len(sizes))
	}

	one := sizes[0]
	if one.States != 1 || one.Symbols != 2 {
		t.Errorf("first size = (%d,%d), want (1,2)", one.States, one.Symbols)
	}
	if one.Machines != 64 || one.Halting != 32 || one.NonHalting != 32 {
		t.Errorf("(1,2) aggregate = %+v, want 64 machines, 32/32", one)
	}
	if one.MaxSteps != 1 {
		t.Errorf("(1,2) max steps = %d, want 1", one.MaxSteps)
	}
	if one.HaltingProbability() != 50 {
		t.Errorf("(1,2) probability = %v, want 50", one.HaltingProbability())
	}

	two := sizes[1]
	if two.Machines != 20736 {
		t.Errorf("(2,2) machines = %d, want 20736", two.Machines)
	}
	if two.MaxSteps != 6 {
		t.Errorf("(2,2) max steps = %d, want 6", two.MaxSteps)
	}
	if two.Halting+two.NonHalting != two.Machines {
		t.Errorf("(2,2) counts %d+%d do not sum to %d", two.Halting, two.NonHalting, two.Machines)
	}

	// Records pass through to the wrapped sink untouched.
	if len(mem.Records) != 64+20736 {
		t.Errorf("forwarded %d records, want %d", len(mem.Records), 64+20736)
	}
}

func TestSummary_Frame(t *testing.T) {
	summary := NewSummary(&testutil.MemorySink{})
	var counts enum.Counts
	enumerateInto(t, turing.Params{States: 1, Symbols: 2}, summary, &counts)

	df, err := summary.Frame()
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if df.NRows() != 1 {
		t.Errorf("frame has %d rows, want 1", df.NRows())
	}

	wantCols := []string{"state_count", "symbol_count", "machines", "halting", "non_halting", "max_steps", "halting_probability"}
	names := df.Names()
	if len(names) != len(wantCols) {
		t.Fatalf("frame has columns %v, want %v", names, wantCols)
	}
	for i, name := range wantCols {
		if names[i] != name {
			t.Errorf("column %d = %q, want %q", i, names[i], name)
		}
	}
}

func TestSummary_FrameEmpty(t *testing.T) {
	summary := NewSummary(&testutil.MemorySink{})
	if _, err := summary.Frame(); !errors.Is(err, ErrEmptySummary) {
		t.Errorf("Frame on empty summary = %v, want ErrEmptySummary", err)
	}
	if err := summary.ExportParquet(filepath.Join(t.TempDir(), "s.parquet")); !errors.Is(err, ErrEmptySummary) {
		t.Errorf("ExportParquet on empty summary = %v, want ErrEmptySummary", err)
	}
}

func TestSummary_ExportCSV(t *testing.T) {
	summary := NewSummary(&testutil.MemorySink{})
	var counts enum.Counts
	enumerateInto(t, turing.Params{States: 1, Symbols: 2}, summary, &counts)

	path := filepath.Join(t.TempDir(), "machine_summary.csv")
	if err := summary.ExportCSV(context.Background(), path); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	rows := testutil.ReadCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "state_count" {
		t.Errorf("header starts with %q, want state_count", rows[0][0])
	}
	if rows[1][0] != "1" || rows[1][1] != "2" {
		t.Errorf("summary row size = (%s,%s), want (1,2)", rows[1][0], rows[1][1])
	}
}

func TestSummary_ExportParquetRoundTrip(t *testing.T) {
	summary := NewSummary(&testutil.MemorySink{})
	var counts enum.Counts
	enumerateInto(t, turing.Params{States: 1, Symbols: 2}, summary, &counts)

	path := filepath.Join(t.TempDir(), "machine_summary.parquet")
	if err := summary.ExportParquet(path); err != nil {
		t.Fatalf("ExportParquet failed: %v", err)
	}

	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		t.Fatalf("failed to reopen parquet: %v", err)
	}
	defer fr.Close()

	df, err := imports.LoadFromParquet(context.Background(), fr)
	if err != nil {
		t.Fatalf("LoadFromParquet failed: %v", err)
	}
	if df.NRows() != 1 {
		t.Errorf("parquet round trip has %d rows, want 1", df.NRows())
	}
}
