// Package enum walks the entire space of transition tables for a fixed
// machine size, simulating every machine exactly once in a canonical
// order and emitting one record per machine.
//
// The order is odometer order: the transition table is read as a
// little-endian numeral in base OutputCount, one digit per input, and
// advanced by increment-with-carry. The iteration index is the
// machine id; TableForID reproduces any machine's table from its id.
package enum

import (
	"github.com/akhildatla/beaver/pkg/turing"
)

// Odometer steps a transition table through every value of this size's
// machine space. The digits slice is live: it is the table a Machine
// simulates, and Increment mutates it in place between runs.
type Odometer struct {
	digits []turing.Output
	base   turing.Output
	id     uint64
}

// NewOdometer returns an odometer positioned at the all-zero table,
// machine id 0.
func NewOdometer(p turing.Params) *Odometer {
	return &Odometer{
		digits: make([]turing.Output, p.InputCount()),
		base:   turing.Output(p.OutputCount()),
	}
}

// Table returns the odometer's live transition table. The slice is
// shared with the odometer; callers must not retain it across
// Increment.
func (o *Odometer) Table() []turing.Output {
	return o.digits
}

// MachineID returns the iteration index of the current table.
func (o *Odometer) MachineID() uint64 {
	return o.id
}

// Increment advances to the next table, carrying into higher digits on
// overflow. It returns false when the odometer wraps back to the
// all-zero table, i.e. after the last table of the space.
func (o *Odometer) Increment() bool {
	o.id++
	for i := range o.digits {
		if o.digits[i] == o.base-1 {
			o.digits[i] = 0
			continue
		}
		o.digits[i]++
		return true
	}
	return false
}

// TableForID decodes a machine id into the transition table the
// odometer holds at that iteration index: the little-endian digits of
// id in base OutputCount.
func TableForID(p turing.Params, id uint64) []turing.Output {
	base := uint64(p.OutputCount())
	table := make([]turing.Output, p.InputCount())
	for i := range table {
		table[i] = turing.Output(id % base)
		id /= base
	}
	return table
}
