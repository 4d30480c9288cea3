package dlx

// node is one cell of the toroidal incidence structure. The root, the
// column headers and the option nodes all share this shape and live in a
// single flat arena; a node's identity is its index into that arena.
// "Removal" never clears a node's own fields - splicing rewrites only the
// neighbors' pointers, which is what makes O(1) restoration possible.
type node struct {
	left, right, up, down int // neighbor indices in the arena
	col                   int // header index of the governing column
	owner                 int // option id, or headerOwner for root/headers
}

const (
	// rootIndex is the arena slot of the root header. Column headers for
	// items 1..N occupy slots 1..N, so external 1-based item indices are
	// also header indices.
	rootIndex = 0

	// headerOwner marks the root and column headers, which belong to no option.
	headerOwner = -1
)

// The four primitive splices below are the only pointer mutators used by
// cover and uncover. A hidden node keeps its own four pointers, so the
// matching restore re-attaches it exactly where it was.

// hideHoriz unlinks n from its horizontal ring.
func (e *Engine[L]) hideHoriz(n int) {
	e.nodes[e.nodes[n].left].right = e.nodes[n].right
	e.nodes[e.nodes[n].right].left = e.nodes[n].left
}

// restoreHoriz re-links n into its horizontal ring at its old position.
func (e *Engine[L]) restoreHoriz(n int) {
	e.nodes[e.nodes[n].left].right = n
	e.nodes[e.nodes[n].right].left = n
}

// hideVert unlinks n from its vertical ring.
func (e *Engine[L]) hideVert(n int) {
	e.nodes[e.nodes[n].up].down = e.nodes[n].down
	e.nodes[e.nodes[n].down].up = e.nodes[n].up
}

// restoreVert re-links n into its vertical ring at its old position.
func (e *Engine[L]) restoreVert(n int) {
	e.nodes[e.nodes[n].up].down = n
	e.nodes[e.nodes[n].down].up = n
}
