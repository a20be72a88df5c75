package link

import "errors"

var (
	// ErrCornerNotFound indicates a point passed to ExitAlongWall does
	// not coincide with any of the cell's four safe corners.
	ErrCornerNotFound = errors.New("link: start point is not a cell corner")
	// ErrAmbiguousTransferRegion indicates the exit point lies in
	// neither the left-band nor the right-band transfer region; rather
	// than silently clamp, the linker rejects the input.
	ErrAmbiguousTransferRegion = errors.New("link: exit point is not within either transfer band")
	// ErrDegenerateCell indicates a cell is too narrow for the robot
	// radius to have any safe corners at all.
	ErrDegenerateCell = errors.New("link: cell too narrow for robot radius")
)
