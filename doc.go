// Package exactcover is a small toolkit for exact cover problems in Go.
//
// 🚀 What is exactcover?
//
//	A dancing-links (DLX) implementation of Knuth's Algorithm X, plus a
//	few classic reductions built on top of it:
//
//	  • dlx/    — the engine: flat index-addressed node arena, O(1)
//	              cover/uncover splices, MRV branching, and a resumable
//	              solution iterator
//	  • sudoku/ — 9×9 Sudoku as 324 items × ≤729 options
//	  • queens/ — N-Queens with slack options keeping diagonals primary
//	  • aztec/  — domino tilings of the Aztec diamond
//
// ✨ Why choose exactcover?
//
//   - One-at-a-time enumeration — pull solutions lazily, stop any time
//   - Deterministic             — identical input order, identical output order
//   - Allocation-free search    — the arena is built once; backtracking
//     is pure pointer splicing
//   - Pure Go                   — no cgo, no hidden dependencies
//
// Quick ASCII example (the 7-item instance from Knuth's paper):
//
//	items   1 2 3 4 5 6 7
//	O1          ■   ■
//	O2      ■     ■     ■
//	O3        ■ ■     ■
//	O4      ■     ■   ■
//	O5        ■         ■
//	O6            ■ ■   ■
//
//	the unique exact cover is {O1, O4, O5}.
//
// Dive into README.md for full examples, and cmd/sudoku for an
// interactive solver.
//
//	go get github.com/katalvlaran/exactcover
package exactcover
