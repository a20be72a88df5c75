// Package planner composes event, cellgraph, visit, coverage, and link
// into a single external entry point: given a workspace size, a list of
// obstacle polygons, a start point, a starting cell index, and a robot
// radius, Plan decomposes the free space, walks the cell graph
// depth-first, and stitches together each cell's boustrophedon coverage
// pass with the linker's inter-cell transfer into one ordered
// trajectory.
//
// This package is the library's public error surface: every fatal
// failure is a *FatalError whose Kind is one of this package's
// sentinels, with the lower packages' error (or a github.com/pkg/errors
// message for a rejected start point) attached as text-only context, so
// fatal and soft error kinds stay distinguishable via errors.Is and the
// Result's Warnings slice.
package planner
