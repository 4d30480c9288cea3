// Package queens reduces the N-Queens puzzle to exact cover and
// enumerates its solutions with the dlx engine.
//
// Ranks and files are items covered exactly once by the n queen
// placements. Both diagonal families are items too, kept primary by a
// slack trick: every diagonal gets one extra option covering only itself,
// so a diagonal is "used" either by the single queen on it or by its
// slack. That leaves at most one queen per diagonal without at-most-once
// items, which the engine does not model.
package queens

import "github.com/katalvlaran/exactcover/dlx"

// Placement is one queen at 0-based (Row, Col).
type Placement struct {
	Row, Col int
}

// label tags an option: a queen placement, or the slack absorbing one
// unused diagonal.
type label struct {
	queen Placement
	slack bool
}

// Item numbering, 1-based: n ranks, n files, 2n-1 diagonals, 2n-1
// anti-diagonals; 6n-2 items in total.

func rankItem(n, r int) int { return r + 1 }

func fileItem(n, c int) int { return n + c + 1 }

func diagItem(n, d int) int { return 2*n + d + 1 }

func antiItem(n, d int) int { return 4*n - 1 + d + 1 }

// newEngine builds the exact cover reduction for an n×n board:
// n² placement options plus 2(2n-1) diagonal slacks.
func newEngine(n int) *dlx.Engine[label] {
	eng, _ := dlx.New[label](6*n - 2)

	var r, c, d int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			_ = eng.AddOption(label{queen: Placement{Row: r, Col: c}},
				rankItem(n, r), fileItem(n, c), diagItem(n, r+c), antiItem(n, r-c+n-1))
		}
	}
	for d = 0; d < 2*n-1; d++ {
		_ = eng.AddOption(label{slack: true}, diagItem(n, d))
		_ = eng.AddOption(label{slack: true}, antiItem(n, d))
	}

	return eng
}

// Solve returns every way to place n non-attacking queens on an n×n
// board. Each solution lists its placements in rank order. Returns
// ErrBadSize for n < 1.
// The enumeration order is deterministic but unspecified.
func Solve(n int) ([][]Placement, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	var boards [][]Placement
	for sol := range newEngine(n).Solutions() {
		boards = append(boards, placements(sol, n))
	}

	return boards, nil
}

// Count returns the number of n-queens solutions without keeping them.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadSize
	}

	count := 0
	for range newEngine(n).Solutions() {
		count++
	}

	return count, nil
}

// placements strips the slack options from a cover and orders the
// remaining queens by rank.
func placements(sol []label, n int) []Placement {
	byRank := make([]Placement, n)
	for _, l := range sol {
		if !l.slack {
			byRank[l.queen.Row] = l.queen
		}
	}

	return byRank
}
