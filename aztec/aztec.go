// Package aztec enumerates domino tilings of the Aztec diamond via exact
// cover on the dlx engine.
//
// The order-n Aztec diamond is the union of lattice squares inside
// |x| + |y| ≤ n+1, a staircase-edged region of 2n(n+1) cells. Cells are
// the items; every horizontal or vertical domino that fits in the region
// is an option covering its two cells. A tiling is then exactly an exact
// cover, and the count follows the classic 2^(n(n+1)/2) formula, which
// the tests pin for small orders.
package aztec

import "github.com/katalvlaran/exactcover/dlx"

// Domino is one placed tile covering the two cells (R1,C1) and (R2,C2),
// in row-major order, on the 2n×2n bounding grid (0-based).
type Domino struct {
	R1, C1, R2, C2 int
}

// diamond precomputes the cell-to-item numbering of an order-n region.
type diamond struct {
	order int
	ids   [][]int // 1-based item per cell, 0 when outside the region
	cells int
}

// newDiamond numbers the in-region cells row-major, 1-based.
func newDiamond(n int) *diamond {
	d := &diamond{order: n, ids: make([][]int, 2*n)}
	var r, c int
	for r = 0; r < 2*n; r++ {
		d.ids[r] = make([]int, 2*n)
		for c = 0; c < 2*n; c++ {
			if inRegion(n, r, c) {
				d.cells++
				d.ids[r][c] = d.cells
			}
		}
	}

	return d
}

// inRegion reports whether cell (r,c) of the 2n×2n bounding grid belongs
// to the order-n diamond: the cell center must satisfy |x|+|y| ≤ n,
// checked as |2x|+|2y| ≤ 2n so the half-unit coordinates stay integers.
func inRegion(n, r, c int) bool {
	return abs(2*r+1-2*n)+abs(2*c+1-2*n) <= 2*n
}

// engine builds the tiling matrix: one option per domino that fits.
// Cells are visited row-major; each cell adds its horizontal domino (to the
// right) before its vertical one (downward), which fixes the enumeration
// order.
func (d *diamond) engine() *dlx.Engine[Domino] {
	eng, _ := dlx.New[Domino](d.cells)

	n := d.order
	var r, c int
	for r = 0; r < 2*n; r++ {
		for c = 0; c < 2*n; c++ {
			if d.ids[r][c] == 0 {
				continue
			}
			if c+1 < 2*n && d.ids[r][c+1] != 0 {
				_ = eng.AddOption(Domino{R1: r, C1: c, R2: r, C2: c + 1}, d.ids[r][c], d.ids[r][c+1])
			}
			if r+1 < 2*n && d.ids[r+1][c] != 0 {
				_ = eng.AddOption(Domino{R1: r, C1: c, R2: r + 1, C2: c}, d.ids[r][c], d.ids[r+1][c])
			}
		}
	}

	return eng
}

// Tilings returns every domino tiling of the order-n diamond. Dominoes
// within one tiling appear in selection order. Returns ErrBadOrder for
// n < 1. The count grows as 2^(n(n+1)/2); enumerate with care beyond
// small orders.
func Tilings(n int) ([][]Domino, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	return newDiamond(n).engine().AllSolutions(), nil
}

// Count returns the number of tilings of the order-n diamond without
// retaining them.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadOrder
	}

	count := 0
	for range newDiamond(n).engine().Solutions() {
		count++
	}

	return count, nil
}

// Cells returns the number of cells of the order-n diamond, 2n(n+1).
func Cells(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadOrder
	}

	return newDiamond(n).cells, nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
