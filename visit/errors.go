package visit

import "errors"

// ErrStartOutOfRange indicates the caller-supplied start index does not
// name a cell in the graph.
var ErrStartOutOfRange = errors.New("visit: start index out of range")
