// Package turing implements a bit-packed representation and a budgeted
// step simulator for small deterministic Turing machines.
//
// A machine is defined by its size parameters and a flat transition
// table of packed outputs, one per (state, symbol) input:
//
//	p := turing.Params{States: 2, Symbols: 2}
//	table := make([]turing.Output, p.InputCount())
//	m, err := turing.New(p, table)
//	steps := m.Run() // steps to halt, or -1
//
// The step budget comes from the Busy Beaver bound table: a machine
// that has not halted after StepBound(states, symbols) steps is
// classified as non-halting.
package turing

import (
	"errors"
	"math/bits"
)

// Error definitions
var (
	ErrStateCount    = errors.New("state count out of range")
	ErrSymbolCount   = errors.New("symbol count out of range")
	ErrSymbolNotPow2 = errors.New("symbol count must be a power of two")
	ErrTableLength   = errors.New("transition table length must equal input count")
	ErrOutputRange   = errors.New("transition output out of range")
)

// Symbol is a tape cell value in [0, Symbols).
type Symbol uint8

// State is a machine state; Params.States denotes the halt state.
type State uint8

// Input indexes the transition table. Layout:
//
//	┌───────────┬──────────────┐
//	│   state   │    symbol    │
//	│ high bits │ symbol_width │
//	└───────────┴──────────────┘
//
// Because the symbol count is a power of two, the packed value is
// always less than states*symbols and indexes the flat table densely.
type Input uint8

// Output is a packed transition result. Layout (little-endian by field):
//
//	┌────────────┬──────────────┬───────────┐
//	│ next state │ write symbol │ direction │
//	│ high bits  │ symbol_width │   1 bit   │
//	└────────────┴──────────────┴───────────┘
//
// Direction bit 0 moves the head left, 1 moves it right. A next state
// equal to Params.States is the halt state.
type Output uint8

// Direction of a head move.
type Direction uint8

const (
	Left  Direction = 0
	Right Direction = 1
)

// directionOffsets maps the direction bit to a head position delta.
var directionOffsets = [2]int{-1, 1}

// Offset returns the head position delta for the direction.
func (d Direction) Offset() int {
	return directionOffsets[d&1]
}

// Params fixes the size of a machine: the number of working states
// (the halt state is not counted) and the tape symbol alphabet size.
// The zero value is invalid; Validate rejects it.
type Params struct {
	States  int
	Symbols int
}

// Validate reports whether the parameters name a supported machine
// size. The symbol count must be a power of two so that packed inputs
// index the transition table without gaps.
func (p Params) Validate() error {
	if p.States < 1 || p.States >= MaxStates {
		return ErrStateCount
	}
	if p.Symbols < 1 || p.Symbols >= MaxSymbols {
		return ErrSymbolCount
	}
	if p.Symbols&(p.Symbols-1) != 0 {
		return ErrSymbolNotPow2
	}
	return nil
}

// SymbolWidth returns the number of bits used to store one symbol.
func (p Params) SymbolWidth() int {
	if p.Symbols <= 2 {
		return 1
	}
	return bits.Len(uint(p.Symbols - 1))
}

// HaltState returns the distinguished halt state value.
func (p Params) HaltState() State {
	return State(p.States)
}

// InputCount returns the number of (state, symbol) inputs, which is
// also the transition table length.
func (p Params) InputCount() int {
	return p.States * p.Symbols
}

// OutputCount returns the number of distinct packed outputs:
// symbols × directions × (states + halt).
func (p Params) OutputCount() int {
	return p.Symbols * 2 * (p.States + 1)
}

// MachineCount returns OutputCount^InputCount, the number of distinct
// transition tables of this size. ok is false if the count overflows
// uint64; such spaces cannot be exhausted anyway.
func (p Params) MachineCount() (count uint64, ok bool) {
	count = 1
	base := uint64(p.OutputCount())
	for i := 0; i < p.InputCount(); i++ {
		hi, lo := bits.Mul64(count, base)
		if hi != 0 {
			return 0, false
		}
		count = lo
	}
	return count, true
}

// StepBudget returns the Busy Beaver step bound for this size.
func (p Params) StepBudget() int {
	return StepBound(p.States, p.Symbols)
}

// TapeSize returns the tape length: wide enough that a head respecting
// the step budget cannot run off either end, plus one cell of padding
// on each side.
func (p Params) TapeSize() int {
	return 2*p.StepBudget() + 2
}

// EncodeInput packs a (state, symbol) pair into a table index.
func (p Params) EncodeInput(s State, sym Symbol) Input {
	return Input(uint8(s)<<p.SymbolWidth() | uint8(sym))
}

// EncodeOutput packs a transition result.
func (p Params) EncodeOutput(sym Symbol, dir Direction, next State) Output {
	w := p.SymbolWidth()
	return Output(uint8(next)<<(1+w) | uint8(sym)<<1 | uint8(dir&1))
}

// Direction returns the head move encoded in the output (bit 0).
func (o Output) Direction() Direction {
	return Direction(o & 1)
}

// Symbol returns the written symbol encoded in the output.
func (o Output) Symbol(p Params) Symbol {
	return Symbol((o >> 1) & Output(1<<p.SymbolWidth()-1))
}

// NextState returns the next state encoded in the output.
func (o Output) NextState(p Params) State {
	return State(o >> (1 + p.SymbolWidth()))
}

// CheckTable verifies that a transition table has the right length and
// that every output is in [0, OutputCount). Tables produced by the
// odometer satisfy this by construction; tables built by hand (tests,
// callers decoding machine ids) should be checked.
func (p Params) CheckTable(table []Output) error {
	if len(table) != p.InputCount() {
		return ErrTableLength
	}
	max := Output(p.OutputCount())
	for _, o := range table {
		if o >= max {
			return ErrOutputRange
		}
	}
	return nil
}

// Machine is a single Turing machine ready to run: a transition table,
// a tape, a current state and a head position.
//
// The table is referenced, not copied. It must not change while Run is
// executing; callers (the enumerator) mutate it only between runs.
type Machine struct {
	params Params
	budget int
	width  int
	mask   uint8
	halt   State

	table []Output
	tape  []Symbol
	state State
	pos   int

	// Touched tape range, for cheap clearing in Reset.
	lo, hi int
}

// New creates a machine over the given transition table with a fresh
// zero tape and the head at the tape midpoint.
func New(p Params, table []Output) (*Machine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(table) != p.InputCount() {
		return nil, ErrTableLength
	}
	mid := p.TapeSize() / 2
	return &Machine{
		params: p,
		budget: p.StepBudget(),
		width:  p.SymbolWidth(),
		mask:   uint8(1<<p.SymbolWidth() - 1),
		halt:   p.HaltState(),
		table:  table,
		tape:   make([]Symbol, p.TapeSize()),
		pos:    mid,
		lo:     mid,
		hi:     mid,
	}, nil
}

// Params returns the machine's size parameters.
func (m *Machine) Params() Params {
	return m.params
}

// Run advances the machine until it reaches the halt state or exhausts
// the step budget. It returns the positive number of steps taken to
// halt, or -1 if the machine did not halt within the budget. Run never
// fails; the tape is sized so the head stays in range for any run that
// respects the budget.
func (m *Machine) Run() int {
	for step := 0; step < m.budget; step++ {
		sym := m.tape[m.pos]
		in := Input(uint8(m.state)<<m.width | uint8(sym))
		out := m.table[in]

		m.tape[m.pos] = Symbol(uint8(out>>1) & m.mask)
		m.pos += directionOffsets[out&1]
		m.state = State(out >> (1 + m.width))

		if m.pos < m.lo {
			m.lo = m.pos
		} else if m.pos > m.hi {
			m.hi = m.pos
		}

		if m.state == m.halt {
			return step + 1
		}
	}
	return -1
}

// Reset returns the machine to its initial configuration: zero tape,
// state 0, head at the midpoint. Only the cells touched since the last
// reset are cleared, so resetting between runs is cheap even on the
// OOF-sized tape.
func (m *Machine) Reset() {
	for i := m.lo; i <= m.hi; i++ {
		m.tape[i] = 0
	}
	m.pos = len(m.tape) / 2
	m.lo = m.pos
	m.hi = m.pos
	m.state = 0
}
