package dense

import (
	"errors"
	"fmt"
)

// Reshape resolution errors.
var (
	ErrShapeMismatch     = errors.New("requested dimensions do not match element count")
	ErrNonDivisibleShape = errors.New("element count is not divisible by the explicit dimension")
	ErrAmbiguousShape    = errors.New("at most one dimension may be AutoSize")
	ErrDegenerateShape   = errors.New("AutoSize cannot be inferred next to a zero dimension")
)

// Access errors. These are reported through panics, like out of range indexing.
var (
	ErrReadOnly        = errors.New("view is read-only")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidOrder    = errors.New("invalid storage order")
)

// ShapeError describes a failed dimension resolution.
type ShapeError struct {
	Kind  error  // One of the Err*Shape sentinels
	Rows  Extent // Requested rows
	Cols  Extent // Requested cols
	Total int    // Element count of the source
	// Static is set when both requested extents were fixed, so the
	// mismatch depends only on values known when the call was written.
	Static bool
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	prefix := "reshape"
	if e.Static {
		prefix = "reshape (fixed extents)"
	}
	return fmt.Sprintf("%s: %v x %v over %d elements: %v", prefix, e.Rows, e.Cols, e.Total, e.Kind)
}

// Unwrap returns the sentinel so errors.Is matches the failure kind.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}
