package cellgraph

import "github.com/covplan/bcd/geom"

// NoParent is the sentinel Parent value for a cell with no parent in the
// DFS spanning structure (the start cell, before and unless revisited).
const NoParent = -1

// Cell is a vertically-monotone region of free space: a ceiling chain and
// a floor chain of equal length, sharing the same strictly-increasing x
// sequence, bounded above and below so that no point in between lies
// inside any obstacle.
type Cell struct {
	Index int

	Ceiling []geom.Point
	Floor   []geom.Point

	// Neighbors is an ordered (not set) adjacency list; push position
	// (front/back) is assigned by Open/Close and determines DFS order.
	Neighbors []int

	Parent  int
	Visited bool
	Cleaned bool
}

// pushFront prepends id to the neighbor list.
func (c *Cell) pushFront(id int) {
	c.Neighbors = append([]int{id}, c.Neighbors...)
}

// pushBack appends id to the neighbor list.
func (c *Cell) pushBack(id int) {
	c.Neighbors = append(c.Neighbors, id)
}

// Graph is the arena of Cells produced by a decomposition run. Cells are
// addressed by their Index, assigned at insertion and never reused or
// reassigned; adjacency is by index, so the graph can contain cycles
// without pointer cycles.
type Graph struct {
	Cells []*Cell
}

func newGraph() *Graph {
	return &Graph{}
}

// add appends a freshly built cell to the arena, assigning it the next
// index, and returns that index.
func (g *Graph) add(ceiling, floor []geom.Point) int {
	idx := len(g.Cells)
	g.Cells = append(g.Cells, &Cell{
		Index:   idx,
		Ceiling: ceiling,
		Floor:   floor,
		Parent:  NoParent,
	})

	return idx
}

// Cell returns the cell at idx. It panics on an out-of-range index, same
// as a bare slice index would; callers that accept untrusted indices
// should bounds-check first.
func (g *Graph) Cell(idx int) *Cell {
	return g.Cells[idx]
}

// Summary reports cell and adjacency counts for diagnostic logging.
type Summary struct {
	CellCount     int
	EdgeCount     int
	DegenerateIDs []int
}

// Summary walks the arena and reports aggregate counts. minSafeLength is
// the minimum |ceiling| a cell needs for robot radius r to clean it
// (2(r+1)+1); cells below that are flagged degenerate.
func (g *Graph) Summary(minSafeLength int) Summary {
	s := Summary{CellCount: len(g.Cells)}
	for _, c := range g.Cells {
		s.EdgeCount += len(c.Neighbors)
		if len(c.Ceiling) < minSafeLength {
			s.DegenerateIDs = append(s.DegenerateIDs, c.Index)
		}
	}
	s.EdgeCount /= 2 // each edge counted from both endpoints

	return s
}
