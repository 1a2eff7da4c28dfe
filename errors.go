package dotgrid

import "errors"

// ErrInvalidConfig indicates a configuration that violates the geometric
// contract (non-positive spacing, OuterRadius <= InnerRadius, snapshot
// length mismatch, bad view dimensions). Values are never silently fixed:
// clamping here would mask upstream configuration bugs.
var ErrInvalidConfig = errors.New("dotgrid: invalid configuration")

// ErrOutOfBounds indicates a link or cell reference outside the grid.
// The enumerator never constructs such links; this is only reachable through
// the public link constructor.
var ErrOutOfBounds = errors.New("dotgrid: cell reference out of bounds")

// ErrFallbackToCPU indicates a registered mask evaluator cannot handle the
// request. The renderer falls back to CPU evaluation transparently.
var ErrFallbackToCPU = errors.New("dotgrid: falling back to CPU evaluation")
