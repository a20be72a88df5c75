package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covplan/bcd/geom"
	"github.com/covplan/bcd/link"
)

func TestFindLinkingPath_WallWalkThenTransfer(t *testing.T) {
	currCell := rectCell(0, 0, 99, 0, 199)
	nextCell := rectCell(1, 100, 199, 0, 199)

	nextEntrance := geom.Point{X: 106, Y: 6}
	currExit := geom.Point{X: 93, Y: 193}

	path, err := link.FindLinkingPath(currExit, nextEntrance, currCell, nextCell, 5)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, geom.Point{X: 93, Y: 192}, path[0])
	assert.Equal(t, nextEntrance, path[len(path)-1])

	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		assert.LessOrEqual(t, dx*dx, 1, "gap at %d: %v -> %v", i, path[i-1], path[i])
		assert.LessOrEqual(t, dy*dy, 1, "gap at %d: %v -> %v", i, path[i-1], path[i])
	}
}

func TestStraightTransfer_EndpointsAndOrder(t *testing.T) {
	path := link.StraightTransfer(geom.Point{X: 10, Y: 10}, geom.Point{X: 13, Y: 7})
	require.NotEmpty(t, path)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, path[0])
	assert.Equal(t, geom.Point{X: 13, Y: 7}, path[len(path)-1])
}

func TestStraightTransfer_SamePoint(t *testing.T) {
	p := geom.Point{X: 5, Y: 5}
	path := link.StraightTransfer(p, p)
	assert.Equal(t, []geom.Point{p}, path)
}
