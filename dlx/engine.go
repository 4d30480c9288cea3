package dlx

import "fmt"

// phase tracks the engine lifecycle: options may only be added while
// building, and a finished enumeration stays finished.
type phase uint8

const (
	phaseBuild phase = iota // accepting options
	phaseSearch             // NextSolution has been called at least once
	phaseDone               // every branch explored
)

// frame is one level of the explicit search stack: the column covered at
// that level and the current candidate node in its down-ring. row == col
// means no candidate has been tried yet.
type frame struct {
	col int
	row int
}

// Engine holds an exact cover problem and its enumeration state. L is the
// caller-supplied option label type; labels need not be unique across
// options. An Engine is not safe for concurrent use - run two independent
// engines for two concurrent searches.
type Engine[L comparable] struct {
	nodes  []node  // flat arena: root, N column headers, then option nodes
	size   []int   // live option-node count per column, indexed by header
	labels []L     // option labels, indexed by option id
	stack  []frame // one frame per option chosen on the current branch
	phase  phase
	items  int
}

// New allocates an engine for itemCount items, numbered 1..itemCount.
// The arena starts with the root plus one self-linked header per item,
// chained horizontally in item order.
// Returns ErrItemCount if itemCount is negative.
// Complexity: O(itemCount) time and memory.
func New[L comparable](itemCount int) (*Engine[L], error) {
	if itemCount < 0 {
		return nil, ErrItemCount
	}
	e := &Engine[L]{
		nodes: make([]node, itemCount+1),
		size:  make([]int, itemCount+1),
		stack: make([]frame, 0, itemCount), // each frame covers one column
		items: itemCount,
	}
	// Each header is vertically self-linked (empty column) and chained
	// horizontally with its neighbors; the ring closes through the root.
	for i := 0; i <= itemCount; i++ {
		e.nodes[i] = node{left: i - 1, right: i + 1, up: i, down: i, col: i, owner: headerOwner}
	}
	e.nodes[rootIndex].left = itemCount
	e.nodes[itemCount].right = rootIndex

	return e, nil
}

// AddOption appends one option: a label plus the 1-based item indices it
// covers. Nodes are wired at the tail of each touched column, so a
// column's down-ring preserves option insertion order, and the new row is
// closed into a horizontal ring.
//
// Returns ErrInvalidOption (wrapped with the offending detail) when items
// is empty, contains an index outside [1, itemCount], or repeats an index;
// the arena is untouched in that case. Returns ErrFrozen once NextSolution
// has been called.
// Complexity: O(len(items)²) validation + O(len(items)) wiring.
func (e *Engine[L]) AddOption(label L, items ...int) error {
	// 1) The matrix is final once enumeration has started.
	if e.phase != phaseBuild {
		return ErrFrozen
	}

	// 2) Validate fully before touching the arena, so a rejected option
	//    leaves the engine usable.
	if len(items) == 0 {
		return fmt.Errorf("empty item list: %w", ErrInvalidOption)
	}
	var i, it int
	for i, it = range items {
		if it < 1 || it > e.items {
			return fmt.Errorf("item %d outside [1,%d]: %w", it, e.items, ErrInvalidOption)
		}
		for _, seen := range items[:i] {
			if seen == it {
				return fmt.Errorf("duplicate item %d: %w", it, ErrInvalidOption)
			}
		}
	}

	// 3) Record the label; the option id doubles as its index.
	opt := len(e.labels)
	e.labels = append(e.labels, label)

	// 4) Allocate one node per covered item. Vertical wiring goes through
	//    the column's current tail (the header's up neighbor); horizontal
	//    wiring closes the row over the k fresh indices.
	base, k := len(e.nodes), len(items)
	for i, it = range items {
		id := base + i
		tail := e.nodes[it].up
		e.nodes = append(e.nodes, node{
			left:  base + (i+k-1)%k,
			right: base + (i+1)%k,
			up:    tail,
			down:  it,
			col:   it,
			owner: opt,
		})
		e.nodes[tail].down = id
		e.nodes[it].up = id
		e.size[it]++
	}

	return nil
}

// Items returns the declared item count.
func (e *Engine[L]) Items() int { return e.items }

// Options returns the number of options added so far.
func (e *Engine[L]) Options() int { return len(e.labels) }
