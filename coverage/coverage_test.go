package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/coverage"
	"github.com/covplan/bcd/geom"
)

func fullWidthCell(w, h int) *cellgraph.Cell {
	g, _ := cellgraph.Decompose(w, h, nil)
	return g.Cell(0)
}

func TestGenerate_EmptyWorkspace_StripCount(t *testing.T) {
	cell := fullWidthCell(400, 400)
	r := 5

	path, degenerate := coverage.Generate(cell, r, coverage.TopLeft)
	require.False(t, degenerate)
	require.NotEmpty(t, path)

	n := len(cell.Ceiling)
	lo, hi := r+1, n-1-(r+1)
	strips := 0
	for i := lo; i <= hi; i += r {
		strips++
	}
	assert.Equal(t, strips, (hi-lo)/r+1)
}

func TestGenerate_BoustrophedonBounds(t *testing.T) {
	cell := fullWidthCell(400, 400)
	r := 5

	for _, corner := range []coverage.Corner{coverage.TopLeft, coverage.TopRight, coverage.BottomLeft, coverage.BottomRight} {
		path, degenerate := coverage.Generate(cell, r, corner)
		require.False(t, degenerate)

		byX := make(map[int]geom.Point)
		for _, c := range cell.Ceiling {
			byX[c.X] = c
		}
		for _, p := range path {
			ceilY := byX[p.X].Y
			var floorY int
			for _, f := range cell.Floor {
				if f.X == p.X {
					floorY = f.Y
					break
				}
			}
			assert.GreaterOrEqual(t, p.Y, ceilY+(r+1), "corner %v point %v below ceiling-safe bound", corner, p)
			assert.LessOrEqual(t, p.Y, floorY-(r+1), "corner %v point %v above floor-safe bound", corner, p)
		}
	}
}

func TestGenerate_AlreadyCleanedIsPassThrough(t *testing.T) {
	cell := fullWidthCell(400, 400)
	cell.Cleaned = true

	path, degenerate := coverage.Generate(cell, 5, coverage.BottomRight)
	require.False(t, degenerate)
	require.Len(t, path, 1)

	corners, degenerate := coverage.CornerPoints(cell, 5)
	require.False(t, degenerate)
	assert.Equal(t, corners[coverage.BottomRight], path[0])
}

func TestGenerate_DegenerateCellYieldsNoPoints(t *testing.T) {
	narrow, _ := cellgraph.Decompose(10, 400, nil)
	cell := narrow.Cell(0)

	path, degenerate := coverage.Generate(cell, 10, coverage.TopLeft)
	assert.True(t, degenerate)
	assert.Nil(t, path)
}

func TestGenerate_ZeroRadiusTerminates(t *testing.T) {
	cell := fullWidthCell(50, 50)

	path, degenerate := coverage.Generate(cell, 0, coverage.TopLeft)
	require.False(t, degenerate)
	assert.NotEmpty(t, path)
}

func TestSweep_OppositeCornersAreMirrored(t *testing.T) {
	cell := fullWidthCell(400, 400)
	r := 5

	tl, _ := coverage.Generate(cell, r, coverage.TopLeft)
	tr, _ := coverage.Generate(cell, r, coverage.TopRight)
	require.NotEmpty(t, tl)
	require.NotEmpty(t, tr)

	assert.Equal(t, tl[0].Y, tr[0].Y, "both start at the ceiling-safe row")
}
