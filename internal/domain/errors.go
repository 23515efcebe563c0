package domain

import "errors"

// ErrMalformedInput marks puzzle text that does not describe 81 cells with
// digits 0-9. It is reported by parsing/initialization, never by the search.
var ErrMalformedInput = errors.New("malformed input")

// ErrContradictoryGivens marks a puzzle whose given cells already repeat a
// digit within a row, column, or box. Distinct from a merely unsolvable
// puzzle, which is a normal zero-solution outcome.
var ErrContradictoryGivens = errors.New("contradictory givens")
