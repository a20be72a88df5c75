package coverage

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// Corner identifies one of a cell's four safe (radius-inset) corners,
// ordered counter-clockwise from TopLeft — the order the linker walks a
// cell's wall.
type Corner int

const (
	TopLeft Corner = iota
	BottomLeft
	BottomRight
	TopRight
)

// FallbackPoint returns a representative interior point for a cell too
// narrow to have safe, radius-inset corners: the midpoint between
// ceiling and floor at the cell's first recorded column. The linker uses
// this in place of a corner point so a degenerate cell still has a
// well-defined entrance and exit.
func FallbackPoint(cell *cellgraph.Cell) geom.Point {
	return geom.Point{
		X: cell.Ceiling[0].X,
		Y: (cell.Ceiling[0].Y + cell.Floor[0].Y) / 2,
	}
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TOPLEFT"
	case BottomLeft:
		return "BOTTOMLEFT"
	case BottomRight:
		return "BOTTOMRIGHT"
	case TopRight:
		return "TOPRIGHT"
	default:
		return "UNKNOWN"
	}
}
