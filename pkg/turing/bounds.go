package turing

// OOF is the sentinel step budget used where the true Busy Beaver bound
// is unknown. It is deliberately optimistic: a halting machine that
// needs more than OOF steps is silently reported as non-halting.
// Callers comparing against published Busy Beaver values should treat
// any size whose bound is OOF as a lower-confidence result.
const OOF = 10000

// Maximum table dimensions. States does not include the halt state.
const (
	MaxStates  = 8
	MaxSymbols = 7
)

// busyBeaverBounds[s][n] is the maximum number of steps any halting
// Turing machine with n working states and s symbols can take, or OOF
// where no bound is known. Indexed [symbols][states].
var busyBeaverBounds = [MaxSymbols][MaxStates]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	// The (1,1) entry is uncertain; nothing downstream depends on it
	// beyond the trivial one-symbol budget.
	{0, 1, OOF, OOF, OOF, OOF, OOF, OOF},
	{0, 1, 6, 21, 107, OOF, OOF, OOF},
	{0, 1, 38, OOF, OOF, OOF, OOF, OOF},
	{0, 1, OOF, OOF, OOF, OOF, OOF, OOF},
	{0, 1, OOF, OOF, OOF, OOF, OOF, OOF},
	{0, 1, OOF, OOF, OOF, OOF, OOF, OOF},
}

// StepBound returns the step budget for machines with the given number
// of working states and symbols. Out-of-range sizes return 0; Validate
// on Params rejects them before any simulation.
func StepBound(states, symbols int) int {
	if symbols < 0 || symbols >= MaxSymbols || states < 0 || states >= MaxStates {
		return 0
	}
	return busyBeaverBounds[symbols][states]
}
