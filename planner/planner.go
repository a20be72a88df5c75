package planner

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/covplan/bcd/cellgraph"
	"github.com/covplan/bcd/coverage"
	"github.com/covplan/bcd/geom"
	"github.com/covplan/bcd/link"
	"github.com/covplan/bcd/visit"
)

// Result is the output of a completed Plan call: the ordered trajectory,
// the cell graph for inspection, the DFS cleaning order, and any soft
// degenerate-cell diagnostics.
type Result struct {
	Trajectory    []geom.Point
	Graph         *cellgraph.Graph
	CleaningOrder []int
	Warnings      []Warning
}

// Plan computes a complete-coverage trajectory for the given workspace,
// obstacles, and robot configuration. It is the sole public entry point:
// event generation, slice grouping, cell decomposition, DFS scheduling,
// per-cell coverage, and inter-cell linking all happen inside this call,
// each scoped to this invocation. No globals, one planner context per
// call.
func Plan(cfg Config, polygons []geom.Polygon) (Result, error) {
	logger := cfg.logger

	if err := validateStart(cfg, polygons); err != nil {
		return Result{}, err
	}

	graph, err := cellgraph.Decompose(cfg.Width, cfg.Height, polygons)
	if err != nil {
		return Result{}, classifyDecomposeError(err)
	}
	logger.Debug("decomposed free space", "cells", len(graph.Cells))

	if cfg.StartCell < 0 || cfg.StartCell >= len(graph.Cells) {
		return Result{}, &FatalError{Kind: ErrStartCellMismatch}
	}
	if !cellContains(graph.Cell(cfg.StartCell), cfg.Start) {
		return Result{}, &FatalError{Kind: ErrStartCellMismatch}
	}

	result, err := visit.Walk(graph, cfg.StartCell)
	if err != nil {
		return Result{}, &FatalError{Kind: ErrInternal, cause: err}
	}
	cleaning := result.CleaningOrder()
	logger.Debug("dfs visit complete", "order", cleaning, "unvisited", result.Unvisited)

	trajectory := make([]geom.Point, 0)
	var warnings []Warning

	startCell := graph.Cell(cfg.StartCell)
	corner := coverage.TopLeft
	if _, degenerate := coverage.CornerPoints(startCell, cfg.Radius); !degenerate {
		trajectory = append(trajectory, link.PathInitialization(cfg.Start, startCell, cfg.Radius)...)
	} else {
		trajectory = append(trajectory, cfg.Start)
		warnings = append(warnings, Warning{
			Kind:    ErrDegenerateCell,
			CellIdx: startCell.Index,
			Message: "start cell too narrow for robot radius; no coverage path initialization",
		})
		logger.Warn("degenerate start cell", "cell", startCell.Index, "radius", cfg.Radius)
	}

	for i, idx := range cleaning {
		cell := graph.Cell(idx)

		subPath, degenerate := coverage.Generate(cell, cfg.Radius, corner)
		var exit geom.Point
		if degenerate {
			warnings = append(warnings, Warning{
				Kind:    ErrDegenerateCell,
				CellIdx: cell.Index,
				Message: "cell too narrow for robot radius; skipped",
			})
			logger.Warn("degenerate cell skipped", "cell", cell.Index, "radius", cfg.Radius)
			if len(trajectory) > 0 {
				exit = trajectory[len(trajectory)-1]
			} else {
				exit = cfg.Start
			}
		} else {
			trajectory = append(trajectory, subPath...)
			exit = subPath[len(subPath)-1]
			cell.Cleaned = true
		}

		if i+1 >= len(cleaning) {
			break
		}
		nextCell := graph.Cell(cleaning[i+1])

		nextEntrance, nextCorner, ferr := link.FindNextEntrance(exit, nextCell, cfg.Radius)
		if ferr != nil {
			return Result{}, &FatalError{Kind: ErrInternal, cause: ferr}
		}

		var linkPath []geom.Point
		if degenerate {
			linkPath = link.StraightTransfer(exit, nextEntrance)
		} else {
			linkPath, ferr = link.FindLinkingPath(exit, nextEntrance, cell, nextCell, cfg.Radius)
			if ferr != nil {
				return Result{}, &FatalError{Kind: ErrInternal, cause: ferr}
			}
		}
		trajectory = append(trajectory, linkPath...)
		corner = nextCorner
	}

	return Result{
		Trajectory:    trajectory,
		Graph:         graph,
		CleaningOrder: cleaning,
		Warnings:      warnings,
	}, nil
}

// validateStart rejects a start point outside the workspace or on/inside
// any obstacle.
func validateStart(cfg Config, polygons []geom.Polygon) error {
	s := cfg.Start
	if s.X < 0 || s.X >= cfg.Width || s.Y < 0 || s.Y >= cfg.Height {
		return &FatalError{Kind: ErrStartOutsideFree, cause: pkgerrors.Errorf("start point (%d,%d) outside %dx%d workspace", s.X, s.Y, cfg.Width, cfg.Height)}
	}
	for _, poly := range polygons {
		if poly.Contains(s) {
			return &FatalError{Kind: ErrStartOutsideFree, cause: pkgerrors.New("start point lies inside an obstacle")}
		}
	}

	return nil
}

// classifyDecomposeError maps the lower-layer sentinel errors surfaced by
// event.Generate/cellgraph.Decompose onto the error kinds this package's
// callers branch on.
func classifyDecomposeError(err error) error {
	switch {
	case isPolygonError(err):
		return &FatalError{Kind: ErrMalformedPolygon, cause: err}
	default:
		return &FatalError{Kind: ErrInternal, cause: err}
	}
}

func isPolygonError(err error) bool {
	return pkgerrors.Is(err, geom.ErrTooFewVertices) ||
		pkgerrors.Is(err, geom.ErrNotCounterClockwise) ||
		pkgerrors.Is(err, geom.ErrNonUniqueLeftmost) ||
		pkgerrors.Is(err, geom.ErrNonUniqueRightmost)
}

// cellContains reports whether p falls within cell's x-extent and
// between its ceiling and floor. A cell only records ceiling/floor
// points at the x's where a sweep event actually touched it (the chain
// invariant is a strictly increasing x sequence, not per-pixel
// coverage); between two recorded columns the true boundary is the
// straight obstacle edge that ran there, so containment at an
// intermediate x is decided by linearly interpolating between the
// bracketing columns.
func cellContains(cell *cellgraph.Cell, p geom.Point) bool {
	n := len(cell.Ceiling)
	if n == 0 || p.X < cell.Ceiling[0].X || p.X > cell.Ceiling[n-1].X {
		return false
	}
	if p.X == cell.Ceiling[n-1].X {
		return p.Y >= cell.Ceiling[n-1].Y && p.Y <= cell.Floor[n-1].Y
	}
	for i := 0; i < n-1; i++ {
		x0, x1 := cell.Ceiling[i].X, cell.Ceiling[i+1].X
		if p.X < x0 || p.X > x1 {
			continue
		}
		ceilY := lerp(cell.Ceiling[i].Y, cell.Ceiling[i+1].Y, p.X-x0, x1-x0)
		floorY := lerp(cell.Floor[i].Y, cell.Floor[i+1].Y, p.X-x0, x1-x0)

		return p.Y >= ceilY && p.Y <= floorY
	}

	return false
}

// lerp linearly interpolates between y0 (at offset 0) and y1 (at offset
// span) to the value at offset, using integer arithmetic throughout.
func lerp(y0, y1, offset, span int) int {
	if span == 0 {
		return y0
	}
	return y0 + (y1-y0)*offset/span
}
