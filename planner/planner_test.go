package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covplan/bcd/geom"
	"github.com/covplan/bcd/planner"
)

func diamond(cx, cy, half int) geom.Polygon {
	return geom.Polygon{
		{X: cx, Y: cy + half},
		{X: cx + half, Y: cy},
		{X: cx, Y: cy - half},
		{X: cx - half, Y: cy},
	}
}

func TestPlan_EmptyWorkspace(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 200, Y: 200}, 0, 0)

	result, err := planner.Plan(cfg, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Trajectory)
	assert.Equal(t, []int{0}, result.CleaningOrder)
	assert.Empty(t, result.Warnings)
}

func dedupe(order []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, idx := range order {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}

func TestPlan_SingleDiamond_StartsAtStartPoint(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 150, Y: 100}, 1, 5)

	result, err := planner.Plan(cfg, []geom.Polygon{diamond(200, 200, 100)})
	require.NoError(t, err)
	require.NotEmpty(t, result.Trajectory)
	assert.Equal(t, geom.Point{X: 150, Y: 100}, result.Trajectory[0])
	require.NotEmpty(t, result.CleaningOrder)
	assert.Equal(t, 1, result.CleaningOrder[0])
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, dedupe(result.CleaningOrder))
}

func TestPlan_TwoDiamonds_VisitsAllSevenCells(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 150, Y: 100}, 1, 5)

	result, err := planner.Plan(cfg, []geom.Polygon{
		diamond(200, 200, 100),
		diamond(300, 300, 50),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, dedupe(result.CleaningOrder))
	assert.Equal(t, 7, len(result.Graph.Cells))
}

func TestPlan_TracedDiamond_FullCoverageRun(t *testing.T) {
	// One diamond traced per column, start in the top wedge, radius 5.
	// Every cell is wide enough to sweep, so the run produces full
	// boustrophedon passes joined by wall-following links, with no
	// degeneracy warnings.
	cfg := planner.NewConfig(400, 400, geom.Point{X: 150, Y: 100}, 1, 5)

	result, err := planner.Plan(cfg, []geom.Polygon{diamond(200, 200, 100).Trace()})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []int{1, 3, 2, 0}, result.CleaningOrder)
	require.NotEmpty(t, result.Trajectory)
	assert.Equal(t, geom.Point{X: 150, Y: 100}, result.Trajectory[0])

	// Path initialization descends to the ceiling inset and walks to the
	// wedge's top-left safe corner before the first sweep.
	assert.Contains(t, result.Trajectory, geom.Point{X: 150, Y: 6})
	assert.Contains(t, result.Trajectory, geom.Point{X: 106, Y: 6})

	for _, p := range result.Trajectory {
		assert.GreaterOrEqual(t, p.X, 0)
		assert.Less(t, p.X, 400)
		assert.GreaterOrEqual(t, p.Y, 0)
		assert.Less(t, p.Y, 400)
	}
}

func TestPlan_RejectsStartOutsideWorkspace(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 500, Y: 100}, 0, 0)

	_, err := planner.Plan(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrStartOutsideFree)
}

func TestPlan_RejectsStartInsideObstacle(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 200, Y: 200}, 0, 5)

	_, err := planner.Plan(cfg, []geom.Polygon{diamond(200, 200, 100)})
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrStartOutsideFree)
}

func TestPlan_RejectsStartCellMismatch(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 150, Y: 100}, 0, 5)

	_, err := planner.Plan(cfg, []geom.Polygon{diamond(200, 200, 100)})
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrStartCellMismatch)
}

func TestPlan_RejectsMalformedPolygon(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 10, Y: 10}, 0, 0)

	bad := geom.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}}
	_, err := planner.Plan(cfg, []geom.Polygon{bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrMalformedPolygon)
}

func TestPlan_RejectsClockwisePolygon(t *testing.T) {
	cfg := planner.NewConfig(400, 400, geom.Point{X: 10, Y: 10}, 0, 0)

	clockwise := geom.Polygon{
		{X: 100, Y: 200},
		{X: 200, Y: 100},
		{X: 300, Y: 200},
		{X: 200, Y: 300},
	}
	_, err := planner.Plan(cfg, []geom.Polygon{clockwise})
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrMalformedPolygon)
}

func TestPlan_DegenerateCellSurfacesWarningNotError(t *testing.T) {
	// A thin sliver obstacle near the right edge creates a narrow final
	// cell too small for a large robot radius.
	sliver := geom.Polygon{
		{X: 390, Y: 210},
		{X: 392, Y: 200},
		{X: 390, Y: 190},
		{X: 388, Y: 200},
	}
	cfg := planner.NewConfig(400, 400, geom.Point{X: 50, Y: 50}, 0, 20)

	result, err := planner.Plan(cfg, []geom.Polygon{sliver})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Trajectory)
	require.NotEmpty(t, result.Warnings)
	for _, w := range result.Warnings {
		assert.ErrorIs(t, w.Kind, planner.ErrDegenerateCell)
		assert.False(t, result.Graph.Cell(w.CellIdx).Cleaned,
			"degenerate cell %d must stay uncleaned", w.CellIdx)
	}
}
