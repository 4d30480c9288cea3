package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/katalvlaran/exactcover/sudoku"
)

const (
	borderTop = "┌───────┬───────┬───────┐"
	borderBot = "└───────┴───────┴───────┘"
	divider   = "├───────┼───────┼───────┤"
	edge      = "│"
)

// printGrid renders the solved board; clues from the original puzzle are
// highlighted in yellow, solver-filled digits in white.
func printGrid(puzzle, solution sudoku.Grid) {
	color.HiWhite(borderTop)
	for r := range 9 {
		if r != 0 && r%3 == 0 {
			color.HiWhite(divider)
		}
		printRow(puzzle[r], solution[r])
	}
	color.HiWhite(borderBot)
}

func printRow(clues, row [9]int) {
	for c, v := range row {
		if c%3 == 0 {
			fmt.Print(color.HiWhiteString(edge) + " ")
		}
		fmt.Print(digitString(v, clues[c] != 0) + " ")
	}
	color.HiWhite(edge)
}

func digitString(v int, isClue bool) string {
	s := strconv.Itoa(v)
	if isClue {
		return color.HiYellowString(s)
	}

	return color.HiWhiteString(s)
}
