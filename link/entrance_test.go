package link_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covplan/bcd/coverage"
	"github.com/covplan/bcd/geom"
	"github.com/covplan/bcd/link"
)

func TestFindNextEntrance_NearestCorner(t *testing.T) {
	cell := rectCell(0, 0, 99, 0, 199)

	entrance, corner, err := link.FindNextEntrance(geom.Point{X: 150, Y: 1}, cell, 5)
	require.NoError(t, err)
	assert.Equal(t, coverage.TopRight, corner)
	assert.Equal(t, 93, entrance.X)
	assert.Equal(t, 6, entrance.Y)
}

func TestFindNextEntrance_DegenerateCellFallsBack(t *testing.T) {
	cell := thinCell(1, 100, 102, 0, 199)

	entrance, corner, err := link.FindNextEntrance(geom.Point{X: 0, Y: 0}, cell, 5)
	require.NoError(t, err)
	assert.Equal(t, coverage.TopLeft, corner)
	assert.Equal(t, 100, entrance.X)
	assert.Equal(t, 99, entrance.Y)
}
