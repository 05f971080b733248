package main

import (
	"testing"
)

// A full driver run includes the 25.6-billion-machine (4,2) pass, so
// the binary is not executed here; the passes themselves are covered
// by the enum and results package tests.

func TestSizes_ValidAndOrdered(t *testing.T) {
	wantCounts := []uint64{64, 20736, 16777216, 25600000000}

	if len(sizes) != len(wantCounts) {
		t.Fatalf("got %d sizes, want %d", len(sizes), len(wantCounts))
	}
	for i, p := range sizes {
		if err := p.Validate(); err != nil {
			t.Errorf("sizes[%d] = %+v invalid: %v", i, p, err)
		}
		if p.Symbols != 2 {
			t.Errorf("sizes[%d] alphabet = %d, want binary", i, p.Symbols)
		}
		if p.States != i+1 {
			t.Errorf("sizes[%d] states = %d, want %d", i, p.States, i+1)
		}
		count, ok := p.MachineCount()
		if !ok || count != wantCounts[i] {
			t.Errorf("sizes[%d] machine count = %d, want %d", i, count, wantCounts[i])
		}
	}
}
