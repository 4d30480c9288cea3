// Package sudoku reduces classic 9×9 Sudoku to exact cover and solves it
// with the dlx engine.
//
// The reduction uses the standard four constraint families, 324 items in
// total: one item per cell (something is placed there), and one item per
// (row,digit), (column,digit) and (box,digit) pair. A candidate placement
// (r,c,d) becomes an option covering its four items; a given clue
// contributes only its own candidate, so the clue is honored by
// construction rather than by pre-covering.
package sudoku

import (
	"fmt"

	"github.com/katalvlaran/exactcover/dlx"
)

const (
	// Size is the board edge length.
	Size = 9
	// boxSize is the edge length of one sub-box.
	boxSize = 3
	// cells is the number of board cells, and also the number of items in
	// each of the four constraint families.
	cells = Size * Size
	// itemCount is the total exact cover item count (4 families × 81).
	itemCount = 4 * cells
)

// Grid is a Sudoku board in row-major order; 0 marks an empty cell.
type Grid [Size][Size]int

// Candidate labels one option of the reduction: digit Digit placed at
// (Row, Col), all 0-based except Digit which is the face value 1..9.
type Candidate struct {
	Row, Col, Digit int
}

// Item numbering, 1-based per the engine's convention. The four families
// occupy consecutive blocks of 81.

func cellItem(r, c int) int { return r*Size + c + 1 }

func rowItem(r, d int) int { return cells + r*Size + d }

func colItem(c, d int) int { return 2*cells + c*Size + d }

func boxItem(r, c, d int) int {
	b := (r/boxSize)*boxSize + c/boxSize

	return 3*cells + b*Size + d
}

// NewEngine validates g and builds a fresh engine holding its exact cover
// reduction: ≤729 options over 324 items, fewer when clues are present.
// Returns ErrBadGrid (wrapped with the offending cell) on values outside
// 0..9. The caller owns the enumeration.
func NewEngine(g Grid) (*dlx.Engine[Candidate], error) {
	// 1) Validate cell values before building anything.
	var r, c int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if g[r][c] < 0 || g[r][c] > Size {
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, g[r][c], ErrBadGrid)
			}
		}
	}

	// 2) Allocate the 324-item matrix.
	eng, err := dlx.New[Candidate](itemCount)
	if err != nil {
		return nil, err
	}

	// 3) One option per candidate. A given cell contributes only its clue;
	//    an empty cell contributes all nine digits. Indices are in range
	//    and distinct by construction, so AddOption cannot fail here.
	var d int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if g[r][c] != 0 {
				addCandidate(eng, r, c, g[r][c])

				continue
			}
			for d = 1; d <= Size; d++ {
				addCandidate(eng, r, c, d)
			}
		}
	}

	return eng, nil
}

// addCandidate wires the four-item option for placing d at (r,c).
func addCandidate(eng *dlx.Engine[Candidate], r, c, d int) {
	_ = eng.AddOption(Candidate{Row: r, Col: c, Digit: d},
		cellItem(r, c), rowItem(r, d), colItem(c, d), boxItem(r, c, d))
}

// Solve returns the first completion of g in the engine's deterministic
// enumeration order. Returns ErrBadGrid on invalid input and ErrUnsolvable
// when the clues admit no completion. Uniqueness is not required; callers
// that care can enumerate via NewEngine directly.
func Solve(g Grid) (Grid, error) {
	eng, err := NewEngine(g)
	if err != nil {
		return Grid{}, err
	}

	sol, ok := eng.NextSolution()
	if !ok {
		return Grid{}, ErrUnsolvable
	}

	var out Grid
	for _, cand := range sol {
		out[cand.Row][cand.Col] = cand.Digit
	}

	return out, nil
}
