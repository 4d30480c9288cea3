package sudoku

import "errors"

var (
	// ErrBadGrid indicates a cell value outside 0..9 (0 means empty).
	ErrBadGrid = errors.New("sudoku: cell values must be in 0..9")
	// ErrUnsolvable indicates no completion satisfies the given clues.
	ErrUnsolvable = errors.New("sudoku: no completion satisfies the givens")
)
