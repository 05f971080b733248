package enum

import (
	"context"
	"errors"

	"github.com/akhildatla/beaver/pkg/turing"
)

// Error definitions
var (
	ErrNilSink = errors.New("nil record sink")
)

// How often the enumeration loop polls the context. Matches the
// step-granularity polling of a budgeted interpreter: cheap enough to
// be invisible, frequent enough to cancel a multi-billion-machine pass
// promptly.
const contextCheckInterval = 4096

// Record is the per-machine observation emitted after classification.
// HaltingProbability is the running percentage over every machine
// classified so far, including machines from earlier passes that share
// the same counts.
type Record struct {
	States             int
	Symbols            int
	MachineID          uint64
	Steps              int
	HaltingProbability float64
}

// Sink receives records in enumeration order.
type Sink interface {
	WriteRecord(Record) error
}

// Counts holds running classification totals. A single Counts may be
// shared across passes of different sizes.
type Counts struct {
	Halting    uint64
	NonHalting uint64
}

// add classifies one simulator result.
func (c *Counts) add(steps int) {
	if steps > 0 {
		c.Halting++
	} else {
		c.NonHalting++
	}
}

// Probability returns the running halting percentage. Zero totals
// yield 0.
func (c *Counts) Probability() float64 {
	total := c.Halting + c.NonHalting
	if total == 0 {
		return 0
	}
	return 100 * float64(c.Halting) / float64(total)
}

// Total returns the number of machines classified so far.
func (c *Counts) Total() uint64 {
	return c.Halting + c.NonHalting
}

// Enumerate simulates every machine of the given size in odometer
// order, updating counts and writing one record per machine to sink.
//
// One machine (and one tape) is reused for the whole pass; the tape's
// touched range is cleared between runs so every machine starts from
// the all-zero configuration. The context is polled periodically; a
// cancelled context aborts the pass and its error is returned.
func Enumerate(ctx context.Context, p turing.Params, sink Sink, counts *Counts) error {
	if sink == nil {
		return ErrNilSink
	}
	if err := p.Validate(); err != nil {
		return err
	}

	od := NewOdometer(p)
	m, err := turing.New(p, od.Table())
	if err != nil {
		return err
	}

	for {
		steps := m.Run()
		counts.add(steps)

		rec := Record{
			States:             p.States,
			Symbols:            p.Symbols,
			MachineID:          od.MachineID(),
			Steps:              steps,
			HaltingProbability: counts.Probability(),
		}
		if err := sink.WriteRecord(rec); err != nil {
			return err
		}

		if !od.Increment() {
			return nil
		}
		m.Reset()

		if od.MachineID()%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}
