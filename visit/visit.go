package visit

import (
	"github.com/covplan/bcd/cellgraph"
)

// Result holds a completed traversal.
type Result struct {
	// Order lists cells most-recently-visited first: each step of the
	// walk prepends the cell it lands on, so the cell first visited
	// ends up last in this slice and the cell visited last ends up
	// first.
	Order []int
	// Unvisited is the number of cells the traversal never reached;
	// zero iff the graph is connected from the start cell.
	Unvisited int
}

// CleaningOrder returns Order reversed: the chronological visiting
// sequence, starting with the start cell. This is the order cells are
// cleaned in.
func (r Result) CleaningOrder() []int {
	out := make([]int, len(r.Order))
	for i, idx := range r.Order {
		out[len(out)-1-i] = idx
	}
	return out
}

// Walk runs the greedy depth-first traversal from start over g, mutating
// each visited cell's Visited flag and Parent pointer in place: descend
// into the first unvisited neighbor in list order, backtrack along the
// parent chain when none remains.
//
// The traversal is naturally recursive, but every recursive step is the
// last action its caller takes, so the call stack collapses to a single
// "current cell" variable with no information lost. The loop form keeps
// stack depth constant regardless of cell count.
//
// Complexity: O(V) calls, each O(1), for V cells with connected neighbor
// chains; the walk visits (and may revisit, while backtracking) at most
// O(V) cells before terminating.
func Walk(g *cellgraph.Graph, start int) (Result, error) {
	if start < 0 || start >= len(g.Cells) {
		return Result{}, ErrStartOutOfRange
	}

	unvisited := len(g.Cells)
	var order []int

	current := start
	for {
		c := g.Cell(current)
		if !c.Visited {
			c.Visited = true
			unvisited--
		}
		// Every step records the cell it lands on, including
		// backtracking steps onto already-visited cells — those
		// repeats are what let the boustrophedon generator's Cleaned
		// check turn a revisit into a single pass-through waypoint
		// instead of a second full coverage pass.
		order = append([]int{current}, order...)

		// The candidate is the first unvisited entry of the ordered
		// neighbor list. Decomposition pushes newest children to the
		// front, so the scan always prefers the cell split off most
		// recently and only falls back to older neighbors after that
		// branch is exhausted.
		candidate := -1
		for _, n := range c.Neighbors {
			if !g.Cell(n).Visited {
				candidate = n
				break
			}
		}

		if candidate >= 0 {
			g.Cell(candidate).Parent = current
			current = candidate
			continue
		}

		if c.Parent == cellgraph.NoParent {
			break
		}
		if unvisited == 0 {
			break
		}
		current = c.Parent
	}

	return Result{Order: order, Unvisited: unvisited}, nil
}
