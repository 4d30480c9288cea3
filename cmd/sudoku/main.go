// Command sudoku reads a 9×9 puzzle from standard input, solves it with
// the exact cover engine, and prints the completed board.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/exactcover/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	puzzle, err := readGrid(os.Stdin)
	if err != nil {
		fatalError(err.Error())
	}

	solution, err := sudoku.Solve(puzzle)
	if err != nil {
		fatalError(err.Error())
	}

	color.HiWhite("\nSolution:")
	printGrid(puzzle, solution)
}

// readGrid parses nine rows of nine characters; digits 1-9 are clues,
// anything else is an empty cell.
func readGrid(f *os.File) (sudoku.Grid, error) {
	var g sudoku.Grid
	scanner := bufio.NewScanner(f)

	r := 0
	for scanner.Scan() {
		if r >= 9 {
			return g, fmt.Errorf("invalid board state: too many input lines")
		}
		line := scanner.Text()
		if len(line) < 9 {
			return g, fmt.Errorf("invalid board state: input line too short")
		}
		for c := range 9 {
			if v := line[c] - '0'; v >= 1 && v <= 9 {
				g[r][c] = int(v)
			}
		}
		r++
	}
	if err := scanner.Err(); err != nil {
		return g, fmt.Errorf("error reading standard input: %w", err)
	}
	if r < 9 {
		return g, fmt.Errorf("invalid board state: not enough input lines")
	}

	return g, nil
}

func fatalError(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
