// Package dlx enumerates the solutions of exact cover problems with
// Knuth's Algorithm X over a dancing-links incidence structure.
//
// 🚀 What is an exact cover?
//
//	Given a finite set of items and a collection of options (each option a
//	subset of the items), an exact cover is a selection of options whose
//	disjoint union is the whole item set - every item covered exactly once.
//	Sudoku, N-Queens, polyomino packing and domino tilings all reduce to it.
//
// ✨ Key features:
//   - flat, index-addressed node arena: neighbors are integer indices, so
//     splicing stays O(1) with no pointer cycles and good cache locality
//   - cover/uncover restore the structure exactly on backtrack; search
//     allocates nothing beyond the emitted solution slices
//   - MRV column selection (fewest remaining options, first minimum wins)
//   - resumable enumeration: NextSolution yields one solution per call and
//     retains the search frontier between calls
//   - generic labels: any comparable type tags an option
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/exactcover/dlx"
//
//	eng, err := dlx.New[string](7)
//	if err != nil { ... }
//	if err = eng.AddOption("O1", 3, 5); err != nil { ... }
//	// ... more options ...
//	for sol := range eng.Solutions() {
//		fmt.Println(sol) // labels in selection order
//	}
//
// Performance:
//
//   - Build:  O(1) per node; one arena slice, no per-node allocation
//   - Search: each cover/uncover is linear in the nodes it touches; the MRV
//     heuristic keeps the branching factor small in practice
//
// Errors:
//
//   - ErrItemCount     - negative item count passed to New
//   - ErrInvalidOption - empty, out-of-range or duplicate item list
//   - ErrFrozen        - AddOption after enumeration has started
//
// Unsatisfiable problems are not errors: enumeration simply ends.
//
// See examples in example_test.go, and the sudoku, queens and aztec
// packages for complete problem encoders built on this engine.
package dlx
