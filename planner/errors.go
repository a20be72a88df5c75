package planner

import (
	"errors"
)

// Sentinel errors identifying the fatal failure kinds. They are never
// wrapped with formatted text at definition site; FatalError carries any
// call-site context in its cause instead.
var (
	// ErrMalformedPolygon indicates a polygon lacks a unique leftmost or
	// rightmost vertex, has fewer than 3 vertices, or is not wound
	// counter-clockwise.
	ErrMalformedPolygon = errors.New("planner: malformed polygon")
	// ErrStartOutsideFree indicates the start point lies on or inside an
	// obstacle, or outside the workspace.
	ErrStartOutsideFree = errors.New("planner: start point is not in free space")
	// ErrStartCellMismatch indicates the supplied start cell index does
	// not actually contain the start point after decomposition.
	ErrStartCellMismatch = errors.New("planner: start cell does not contain start point")
	// ErrInternal indicates an invariant failure in the decomposer or
	// linker; the planner aborts rather than guess a repair.
	ErrInternal = errors.New("planner: internal invariant violation")
)

// FatalError pairs one of the sentinels above (Kind) with an optional
// cause: a github.com/pkg/errors value describing a rejected start point,
// or the lower-layer error unchanged for decomposition, traversal and
// linking failures. Callers branch on kind with
// errors.Is(err, planner.ErrStartOutsideFree) etc. Unwrap yields Kind
// only, so the cause appears in Error()'s text but is not reachable
// through errors.Is, errors.As or a stack-trace interface.
type FatalError struct {
	Kind  error
	cause error
}

func (e *FatalError) Error() string {
	if e.cause == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.cause.Error()
}

func (e *FatalError) Unwrap() error { return e.Kind }

// Warning is a non-fatal diagnostic surfaced on Result rather than
// returned as an error. A degenerate cell is the only kind today: a cell
// too narrow for the robot radius is skipped, not aborted on.
type Warning struct {
	Kind    error
	CellIdx int
	Message string
}

// ErrDegenerateCell is the Warning.Kind for a cell skipped because it is
// too narrow for the configured robot radius.
var ErrDegenerateCell = errors.New("planner: cell too narrow for robot radius")
