package link_test

import (
	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/geom"
)

// rectCell builds a flat, axis-aligned cell spanning [x0,x1] horizontally
// and [top,bottom] vertically, with one recorded column per pixel — the
// shape every full-strip cell in a simple decomposition has.
func rectCell(index, x0, x1, top, bottom int) *cellgraph.Cell {
	var ceil, floor []geom.Point
	for x := x0; x <= x1; x++ {
		ceil = append(ceil, geom.Point{X: x, Y: top})
		floor = append(floor, geom.Point{X: x, Y: bottom})
	}
	return &cellgraph.Cell{
		Index:   index,
		Ceiling: ceil,
		Floor:   floor,
		Parent:  cellgraph.NoParent,
	}
}

// thinCell builds a cell with only two recorded columns, always
// degenerate for any non-negative robot radius under MinSafeLength.
func thinCell(index, x0, x1, top, bottom int) *cellgraph.Cell {
	return &cellgraph.Cell{
		Index:   index,
		Ceiling: []geom.Point{{X: x0, Y: top}, {X: x1, Y: top}},
		Floor:   []geom.Point{{X: x0, Y: bottom}, {X: x1, Y: bottom}},
		Parent:  cellgraph.NoParent,
	}
}
