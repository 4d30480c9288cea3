package dlx

import "iter"

// cover removes column c from the header ring, then hides every row that
// has a node in c: each such row can no longer participate, because item c
// is about to be covered by the chosen option.
func (e *Engine[L]) cover(c int) {
	e.hideHoriz(c)
	var i, j int
	for i = e.nodes[c].down; i != c; i = e.nodes[i].down {
		for j = e.nodes[i].right; j != i; j = e.nodes[j].right {
			e.hideVert(j)
			e.size[e.nodes[j].col]--
		}
	}
}

// uncover is the exact mirror of cover, walking up/left to restore in
// reverse order. The reversal is what keeps dormant nodes' own pointers
// valid for re-attachment; restoring forward would corrupt rows hidden
// earlier in the same cover.
func (e *Engine[L]) uncover(c int) {
	var i, j int
	for i = e.nodes[c].up; i != c; i = e.nodes[i].up {
		for j = e.nodes[i].left; j != i; j = e.nodes[j].left {
			e.size[e.nodes[j].col]++
			e.restoreVert(j)
		}
	}
	e.restoreHoriz(c)
}

// chooseColumn scans the live header ring and returns the column with the
// fewest remaining options (minimum remaining values). Ties break to the
// first minimum in ring order, which keeps enumeration deterministic.
// Must not be called on an empty ring.
func (e *Engine[L]) chooseColumn() int {
	best := e.nodes[rootIndex].right
	for c := e.nodes[best].right; c != rootIndex; c = e.nodes[c].right {
		if e.size[c] < e.size[best] {
			best = c
		}
	}

	return best
}

// descend covers the MRV column and opens a fresh frame on it. The frame
// starts with row == col: the first advance steps into the down-ring.
func (e *Engine[L]) descend() {
	c := e.chooseColumn()
	e.cover(c)
	e.stack = append(e.stack, frame{col: c, row: c})
}

// NextSolution resumes the search and returns the next exact cover as the
// labels of its options in selection order (not sorted). The second result
// is false once every branch has been explored; after that the call keeps
// returning (nil, false) and the matrix is restored to its post-build state.
//
// The first call freezes the matrix. Between calls the engine holds the
// frontier of the depth-first walk, so enumeration costs nothing beyond
// the work between consecutive solutions.
func (e *Engine[L]) NextSolution() ([]L, bool) {
	// 1) A finished enumeration stays finished.
	if e.phase == phaseDone {
		return nil, false
	}

	// 2) First call: freeze the builder and open the first frame. An empty
	//    header ring at this point means zero items, whose single exact
	//    cover is the empty selection.
	if e.phase == phaseBuild {
		e.phase = phaseSearch
		if e.nodes[rootIndex].right == rootIndex {
			e.phase = phaseDone

			return []L{}, true
		}
		e.descend()
	}

	// 3) Depth-first walk over the explicit frame stack. Each pass either
	//    advances the top frame to its next candidate row, backtracks off
	//    an exhausted column, or pushes a deeper frame.
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]

		// 3.1) Leaving a previously tried row (including the row that
		//      produced the last emitted solution): undo its column
		//      covers, right-to-left.
		if top.row != top.col {
			for j := e.nodes[top.row].left; j != top.row; j = e.nodes[j].left {
				e.uncover(e.nodes[j].col)
			}
		}

		// 3.2) Step to the next row of the column's down-ring.
		top.row = e.nodes[top.row].down
		if top.row == top.col {
			// 3.3) Ring exhausted: release the column and backtrack.
			e.uncover(top.col)
			e.stack = e.stack[:len(e.stack)-1]

			continue
		}

		// 3.4) Commit the row: cover every other column it touches.
		for j := e.nodes[top.row].right; j != top.row; j = e.nodes[j].right {
			e.cover(e.nodes[j].col)
		}

		// 3.5) An empty header ring means the stack is a full cover. State
		//      is left in place so the next call resumes by advancing this
		//      same row.
		if e.nodes[rootIndex].right == rootIndex {
			return e.solution(), true
		}

		// 3.6) Branch deeper on the next MRV column.
		e.descend()
	}

	// 4) Stack drained: every branch explored, matrix back to post-build state.
	e.phase = phaseDone

	return nil, false
}

// Solutions returns a single-use iterator over the remaining solutions.
// Ranging over it drains the same state NextSolution uses, so the two can
// be mixed; breaking out early leaves the engine resumable.
func (e *Engine[L]) Solutions() iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		for sol, ok := e.NextSolution(); ok; sol, ok = e.NextSolution() {
			if !yield(sol) {
				return
			}
		}
	}
}

// AllSolutions drains the enumeration and returns every remaining solution
// in emission order.
func (e *Engine[L]) AllSolutions() [][]L {
	var all [][]L
	for sol := range e.Solutions() {
		all = append(all, sol)
	}

	return all
}

// solution materializes the current stack as option labels in push order.
func (e *Engine[L]) solution() []L {
	sol := make([]L, len(e.stack))
	for i, fr := range e.stack {
		sol[i] = e.labels[e.nodes[fr.row].owner]
	}

	return sol
}
