package planner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/covplan/bcd/geom"
)

// Config holds the per-run parameters: workspace dimensions, start
// point, starting cell index, and robot radius. Obstacle polygons are
// passed to Plan directly rather than stored here, keeping the reusable
// configuration separate from per-call topology.
type Config struct {
	Width, Height int
	Start         geom.Point
	StartCell     int
	Radius        int

	logger *log.Logger
}

// Option customizes a Config via the functional-options pattern. Option
// constructors validate and panic on meaningless inputs (the option is
// given a literal constant by the caller, not derived from untrusted
// input), while Plan itself never panics on its polygons/start
// arguments — those are reported as errors.
type Option func(*Config)

// WithLogger attaches a structured logger used for decomposition
// progress, DFS visit order, and DegenerateCell warnings. Panics on nil;
// omit the option (or pass WithDiscardLogging) for a silent run.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic("planner: WithLogger(nil)")
	}
	return func(c *Config) {
		c.logger = logger
	}
}

// WithDiscardLogging silences all planner logging. This is the default
// when no WithLogger option is given.
func WithDiscardLogging() Option {
	return func(c *Config) {
		c.logger = log.New(io.Discard)
	}
}

// NewConfig builds a Config from the required fields plus options.
// Radius must be >= 0; a negative radius panics, since it is a caller
// programming error, not recoverable input.
func NewConfig(width, height int, start geom.Point, startCell, radius int, opts ...Option) Config {
	if radius < 0 {
		panic("planner: NewConfig(radius<0)")
	}

	cfg := Config{
		Width:     width,
		Height:    height,
		Start:     start,
		StartCell: startCell,
		Radius:    radius,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
