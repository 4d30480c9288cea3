package sudoku_test

import (
	"testing"

	"github.com/katalvlaran/exactcover/sudoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicPuzzle is the textbook puzzle from the repository README;
// classicSolution is its published (and unique) completion.
var (
	classicPuzzle = sudoku.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}

	classicSolution = sudoku.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
)

// assertCompleted verifies g is a fully valid Sudoku completion.
func assertCompleted(t *testing.T, g sudoku.Grid) {
	t.Helper()
	var rows, cols, boxes [9][10]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			d := g[r][c]
			require.True(t, d >= 1 && d <= 9, "cell (%d,%d) holds %d", r, c, d)
			b := (r/3)*3 + c/3
			require.False(t, rows[r][d] || cols[c][d] || boxes[b][d], "digit %d repeats at (%d,%d)", d, r, c)
			rows[r][d], cols[c][d], boxes[b][d] = true, true, true
		}
	}
}

// TestSolve_ClassicPuzzle solves the README puzzle and checks the result
// against its published completion.
func TestSolve_ClassicPuzzle(t *testing.T) {
	got, err := sudoku.Solve(classicPuzzle)
	require.NoError(t, err)
	assert.Equal(t, classicSolution, got)
}

// TestNewEngine_ClassicPuzzleUnique verifies the README puzzle has exactly
// one completion and that the enumeration terminates after emitting it.
func TestNewEngine_ClassicPuzzleUnique(t *testing.T) {
	eng, err := sudoku.NewEngine(classicPuzzle)
	require.NoError(t, err)

	sols := eng.AllSolutions()
	require.Len(t, sols, 1, "the classic puzzle is a proper puzzle")
	assert.Len(t, sols[0], 81, "a completion assigns every cell")

	_, ok := eng.NextSolution()
	assert.False(t, ok, "enumeration stays exhausted")
}

// TestSolve_EmptyGrid verifies the blank board solves to some valid
// completion.
func TestSolve_EmptyGrid(t *testing.T) {
	got, err := sudoku.Solve(sudoku.Grid{})
	require.NoError(t, err)
	assertCompleted(t, got)
}

// TestSolve_PreservesGivens verifies every clue survives into the solution.
func TestSolve_PreservesGivens(t *testing.T) {
	got, err := sudoku.Solve(classicPuzzle)
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if classicPuzzle[r][c] != 0 {
				assert.Equal(t, classicPuzzle[r][c], got[r][c], "clue at (%d,%d)", r, c)
			}
		}
	}
}

// TestSolve_BadCellValue verifies out-of-range cell values are rejected.
func TestSolve_BadCellValue(t *testing.T) {
	g := sudoku.Grid{}
	g[4][4] = 10

	_, err := sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrBadGrid)

	g[4][4] = -1
	_, err = sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrBadGrid)
}

// TestSolve_ConflictingGivens verifies contradictory clues yield
// ErrUnsolvable rather than a bogus grid.
func TestSolve_ConflictingGivens(t *testing.T) {
	g := sudoku.Grid{}
	g[0][0], g[0][1] = 5, 5 // same digit twice in one row

	_, err := sudoku.Solve(g)
	assert.ErrorIs(t, err, sudoku.ErrUnsolvable)
}

// TestSolve_AlreadyComplete verifies a solved board round-trips unchanged.
func TestSolve_AlreadyComplete(t *testing.T) {
	got, err := sudoku.Solve(classicSolution)
	require.NoError(t, err)
	assert.Equal(t, classicSolution, got)
}
