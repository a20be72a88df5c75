package cellgraph

import (
	"sort"

	"github.com/covplan/bcd/event"
	"github.com/covplan/bcd/geom"
)

// Decompose partitions the w×h workspace around the given polygons into
// the cell adjacency graph. It owns the full sweep: event generation,
// slice grouping, and the Open/Close/Ceil/Floor state machine over the
// active-cell slice.
//
// Complexity: O(n log n) for the event sort plus O(n) for the sweep,
// where n = Σ|polygon_i|.
func Decompose(w, h int, polygons []geom.Polygon) (*Graph, error) {
	events, err := event.Generate(polygons)
	if err != nil {
		return nil, err
	}

	g := newGraph()

	if len(events) == 0 {
		g.add(fullWidthChain(w, 0), fullWidthChain(w, h-1))
		return g, nil
	}

	xFirst, _ := firstInX(events)
	active := []int{initialize(g, xFirst, h)}

	slices := event.GroupSlices(events)
	var lastOutX int
	for _, s := range slices {
		var err error
		active, err = processSlice(g, active, s, h)
		if err != nil {
			return nil, err
		}
	}
	for _, e := range events {
		if e.Kind == event.Out {
			lastOutX = e.X()
		}
	}

	finalize(g, lastOutX, w, h)

	return g, nil
}

func fullWidthChain(w, y int) []geom.Point {
	chain := make([]geom.Point, w)
	for x := 0; x < w; x++ {
		chain[x] = geom.Point{X: x, Y: y}
	}
	return chain
}

func firstInX(events []event.Event) (int, bool) {
	for _, e := range events {
		if e.Kind == event.In {
			return e.X(), true
		}
	}
	return 0, false
}

// initialize creates cell 0, spanning the top and bottom boundary from
// x=0 up to (but excluding) the first IN event's x, and returns its index.
func initialize(g *Graph, xFirst, h int) int {
	ceiling := make([]geom.Point, 0, xFirst)
	floor := make([]geom.Point, 0, xFirst)
	for x := 0; x < xFirst; x++ {
		ceiling = append(ceiling, geom.Point{X: x, Y: 0})
		floor = append(floor, geom.Point{X: x, Y: h - 1})
	}
	return g.add(ceiling, floor)
}

// finalize closes out the last cell by extending its ceiling/floor from
// just past the last OUT event's x to the right edge of the workspace.
func finalize(g *Graph, xLast, w, h int) {
	last := g.Cells[len(g.Cells)-1]
	for x := xLast + 1; x < w; x++ {
		last.Ceiling = append(last.Ceiling, geom.Point{X: x, Y: 0})
		last.Floor = append(last.Floor, geom.Point{X: x, Y: h - 1})
	}
}

// processSlice augments, re-sorts, and executes one slice's events against
// the active-cell list, returning the updated active list.
func processSlice(g *Graph, active []int, s event.Slice, h int) ([]int, error) {
	augmented := augment(s, h)
	order := processingOrder(augmented)

	var err error
	for _, idx := range order {
		active, err = executeEvent(g, active, augmented, idx)
		if err != nil {
			return nil, err
		}
	}

	return active, nil
}

// augment prepends a synthetic CEILING at (x,0) and appends a synthetic
// FLOOR at (x,h-1), then assigns OriginalIndex 0..n-1 over the result.
func augment(s event.Slice, h int) []event.Event {
	augmented := make([]event.Event, 0, len(s.Events)+2)
	augmented = append(augmented, event.Event{
		ObstacleID: event.BoundarySentinel,
		Point:      geom.Point{X: s.X, Y: 0},
		Kind:       event.Ceiling,
	})
	augmented = append(augmented, s.Events...)
	augmented = append(augmented, event.Event{
		ObstacleID: event.BoundarySentinel,
		Point:      geom.Point{X: s.X, Y: h - 1},
		Kind:       event.Floor,
	})
	for i := range augmented {
		augmented[i].OriginalIndex = i
	}

	return augmented
}

// processingOrder returns augmented's indices reordered so IN/OUT events
// (sorted by Point order) come first, followed by the remaining
// CEILING/FLOOR events in their original top-to-bottom order. Topology
// changes are handled before edge extensions.
func processingOrder(augmented []event.Event) []int {
	var inout, rest []int
	for i, e := range augmented {
		if e.Kind == event.In || e.Kind == event.Out {
			inout = append(inout, i)
		} else {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(inout, func(a, b int) bool {
		return augmented[inout[a]].Point.Less(augmented[inout[b]].Point)
	})

	return append(inout, rest...)
}

// executeEvent dispatches a single already-ordered event by kind.
func executeEvent(g *Graph, active []int, augmented []event.Event, idx int) ([]int, error) {
	switch augmented[idx].Kind {
	case event.In:
		return executeIn(g, active, augmented, idx)
	case event.Out:
		return executeOut(g, active, augmented, idx)
	case event.Ceiling:
		return active, executeCeiling(g, active, augmented, idx)
	case event.Floor:
		return active, executeFloor(g, active, augmented, idx)
	default:
		return active, nil
	}
}

func executeIn(g *Graph, active []int, augmented []event.Event, idx int) ([]int, error) {
	e := &augmented[idx]
	above := &augmented[idx-1]
	below := &augmented[idx+1]

	var pos int
	if len(augmented) == 3 {
		pos = len(active) - 1
	} else {
		var ok bool
		pos, ok = findSpanningSlot(g, active, e.Y())
		if !ok {
			return nil, ErrNoSpanningCell
		}
	}

	tIdx, bIdx := openCell(g, g.Cell(active[pos]), e.Point, above.Point, below.Point)
	e.Used, above.Used, below.Used = true, true, true

	next := make([]int, 0, len(active)+1)
	next = append(next, active[:pos]...)
	next = append(next, tIdx, bIdx)
	next = append(next, active[pos+1:]...)

	return next, nil
}

func executeOut(g *Graph, active []int, augmented []event.Event, idx int) ([]int, error) {
	e := &augmented[idx]
	above := &augmented[idx-1]
	below := &augmented[idx+1]

	k, ok := findAdjacentPair(g, active, e.Y())
	if !ok {
		return nil, ErrNoAdjacentPair
	}

	tIdx, bIdx := active[k-1], active[k]
	nIdx := closeCells(g, g.Cell(tIdx), g.Cell(bIdx), e.Point, above.Point, below.Point)
	e.Used, above.Used, below.Used = true, true, true

	next := make([]int, 0, len(active)-1)
	next = append(next, active[:k-1]...)
	next = append(next, nIdx)
	next = append(next, active[k+1:]...)

	return next, nil
}

func executeCeiling(g *Graph, active []int, augmented []event.Event, idx int) error {
	if augmented[idx].Used {
		return nil
	}
	count := countInAndFloorBefore(augmented, idx)
	if count >= len(active) {
		return ErrNoSpanningCell
	}
	c := g.Cell(active[count])
	c.Ceiling = append(c.Ceiling, augmented[idx].Point)
	augmented[idx].Used = true

	return nil
}

func executeFloor(g *Graph, active []int, augmented []event.Event, idx int) error {
	if augmented[idx].Used {
		return nil
	}
	count := countInAndFloorBefore(augmented, idx)
	if count >= len(active) {
		return ErrNoSpanningCell
	}
	c := g.Cell(active[count])
	c.Floor = append(c.Floor, augmented[idx].Point)
	augmented[idx].Used = true

	return nil
}

// countInAndFloorBefore counts how many IN or FLOOR events precede
// augmented[idx] in the original (unsorted) slice order — each one marks
// a cell whose lower boundary has already been fixed at this x, so the
// count is the index of the *next* cell in the active list.
func countInAndFloorBefore(augmented []event.Event, idx int) int {
	count := 0
	for i := 0; i < idx; i++ {
		if augmented[i].Kind == event.In || augmented[i].Kind == event.Floor {
			count++
		}
	}
	return count
}

// findSpanningSlot finds the active-cell slot whose span strictly
// contains y: ceiling.back().y < y < floor.back().y.
func findSpanningSlot(g *Graph, active []int, y int) (int, bool) {
	for pos, idx := range active {
		c := g.Cell(idx)
		if y > lastY(c.Ceiling) && y < lastY(c.Floor) {
			return pos, true
		}
	}
	return 0, false
}

// findAdjacentPair finds k such that active[k-1] and active[k] are the
// top/bottom cells an OUT event at y closes. The condition checks
// active[k-1]'s ceiling and active[k]'s floor, not the touching edge
// between them.
func findAdjacentPair(g *Graph, active []int, y int) (int, bool) {
	for k := 1; k < len(active); k++ {
		t := g.Cell(active[k-1])
		b := g.Cell(active[k])
		if y > lastY(t.Ceiling) && y < lastY(b.Floor) {
			return k, true
		}
	}
	return 0, false
}

func lastY(chain []geom.Point) int {
	return chain[len(chain)-1].Y
}

// openCell executes the IN-event split: C is replaced in the active list
// by a new top cell T (ceiling seeded with c, floor seeded with in) and
// bottom cell B (ceiling seeded with in, floor seeded with f). Neighbor
// push order is load-bearing: it drives the depth-first visit order, so
// new children go to the front of C's list and C to the back of T's and
// the front of B's.
func openCell(g *Graph, c *Cell, in, ceil, floorPt geom.Point) (tIdx, bIdx int) {
	tIdx = g.add([]geom.Point{ceil}, []geom.Point{in})
	bIdx = g.add([]geom.Point{in}, []geom.Point{floorPt})

	t, b := g.Cell(tIdx), g.Cell(bIdx)
	t.pushBack(c.Index)
	b.pushFront(c.Index)
	c.pushFront(tIdx)
	c.pushFront(bIdx)

	return tIdx, bIdx
}

// closeCells executes the OUT-event merge: T and B are replaced by a
// single new cell N (ceiling seeded with c, floor seeded with f).
func closeCells(g *Graph, t, b *Cell, out, ceil, floorPt geom.Point) (nIdx int) {
	nIdx = g.add([]geom.Point{ceil}, []geom.Point{floorPt})

	n := g.Cell(nIdx)
	n.pushBack(t.Index)
	n.pushBack(b.Index)
	t.pushFront(nIdx)
	b.pushBack(nIdx)

	return nIdx
}
