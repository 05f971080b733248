// Package testutil provides shared helpers and fixtures for beaver
// tests: temp result files, CSV read-back, and the classical Busy
// Beaver champion transition tables.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/akhildatla/beaver/pkg/enum"
	"github.com/akhildatla/beaver/pkg/turing"
)

// TempResultsPath returns a path for a results file inside a test temp
// dir, cleaned up when the test finishes.
func TempResultsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "machine_results.csv")
}

// ReadCSV reads back a whole CSV file, header included.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV %s: %v", path, err)
	}
	return rows
}

// MemorySink collects records in memory. It implements enum.Sink.
type MemorySink struct {
	Records []enum.Record
}

func (s *MemorySink) WriteRecord(r enum.Record) error {
	s.Records = append(s.Records, r)
	return nil
}

// BB22Champion returns the 2-state busy beaver champion, which halts
// after exactly 6 steps:
//
//	A0 -> 1RB  A1 -> 1LB
//	B0 -> 1LA  B1 -> 1RH
func BB22Champion() (turing.Params, []turing.Output) {
	p := turing.Params{States: 2, Symbols: 2}
	table := []turing.Output{
		p.EncodeOutput(1, turing.Right, 1), // A0 -> 1RB
		p.EncodeOutput(1, turing.Left, 1),  // A1 -> 1LB
		p.EncodeOutput(1, turing.Left, 0),  // B0 -> 1LA
		p.EncodeOutput(1, turing.Right, 2), // B1 -> 1RH
	}
	return p, table
}

// BB32Champion returns the 3-state maximum-steps champion, which halts
// after exactly 21 steps:
//
//	A0 -> 1RB  A1 -> 1RH
//	B0 -> 1LB  B1 -> 0RC
//	C0 -> 1LC  C1 -> 1LA
func BB32Champion() (turing.Params, []turing.Output) {
	p := turing.Params{States: 3, Symbols: 2}
	table := []turing.Output{
		p.EncodeOutput(1, turing.Right, 1), // A0 -> 1RB
		p.EncodeOutput(1, turing.Right, 3), // A1 -> 1RH
		p.EncodeOutput(1, turing.Left, 1),  // B0 -> 1LB
		p.EncodeOutput(0, turing.Right, 2), // B1 -> 0RC
		p.EncodeOutput(1, turing.Left, 2),  // C0 -> 1LC
		p.EncodeOutput(1, turing.Left, 0),  // C1 -> 1LA
	}
	return p, table
}
