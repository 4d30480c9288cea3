package dlx

// Test-Bridge (White-Box) for Structural Invariants
//
// Purpose:
//   - Expose read-only views of the private arena to dlx_test ONLY, so the
//     structural invariants (pointer symmetry, size consistency, restoration
//     equivalence) can be asserted at any quiescent point without widening
//     the production API.
//
// Provided Surface:
//   - CheckInvariants_TestOnly: walks every reachable ring and verifies
//     pointer symmetry plus per-column size counters.
//   - ArenaSnapshot_TestOnly:  deep copy of the neighbor arrays and sizes,
//     for before/after restoration comparisons.

import "fmt"

// ArenaSnapshot is a stable, test-facing copy of the arena's link state.
// Two snapshots compare equal (reflect.DeepEqual) iff the matrices are
// link-for-link identical.
type ArenaSnapshot struct {
	Left, Right, Up, Down []int
	Size                  []int
}

// ArenaSnapshot_TestOnly deep-copies the neighbor arrays and column sizes.
func (e *Engine[L]) ArenaSnapshot_TestOnly() ArenaSnapshot {
	s := ArenaSnapshot{
		Left:  make([]int, len(e.nodes)),
		Right: make([]int, len(e.nodes)),
		Up:    make([]int, len(e.nodes)),
		Down:  make([]int, len(e.nodes)),
		Size:  make([]int, len(e.size)),
	}
	for i, n := range e.nodes {
		s.Left[i], s.Right[i], s.Up[i], s.Down[i] = n.left, n.right, n.up, n.down
	}
	copy(s.Size, e.size)

	return s
}

// CheckInvariants_TestOnly verifies, for the currently linked part of the
// matrix, that every node n satisfies right[left[n]] == n and its three
// mirrors, and that each linked column's size counter matches the length
// of its down-ring. Returns a descriptive error on the first violation.
func (e *Engine[L]) CheckInvariants_TestOnly() error {
	c := rootIndex
	for {
		if e.nodes[e.nodes[c].left].right != c || e.nodes[e.nodes[c].right].left != c {
			return fmt.Errorf("header %d: horizontal asymmetry", c)
		}
		if c != rootIndex {
			count := 0
			for n := e.nodes[c].down; n != c; n = e.nodes[n].down {
				if e.nodes[e.nodes[n].up].down != n || e.nodes[e.nodes[n].down].up != n {
					return fmt.Errorf("node %d: vertical asymmetry", n)
				}
				for j := e.nodes[n].right; j != n; j = e.nodes[j].right {
					if e.nodes[e.nodes[j].left].right != j || e.nodes[e.nodes[j].right].left != j {
						return fmt.Errorf("node %d: horizontal asymmetry", j)
					}
				}
				count++
			}
			if count != e.size[c] {
				return fmt.Errorf("column %d: size counter %d, down-ring length %d", c, e.size[c], count)
			}
		}
		c = e.nodes[c].right
		if c == rootIndex {
			return nil
		}
	}
}
