package keymap

import (
	"errors"
	"fmt"
)

var (
	// ErrOverRemoval indicates a removal asked for more rows or columns than exist.
	ErrOverRemoval = errors.New("over-removal")

	// ErrNotRectangular indicates rows or layers of a half disagree in size.
	ErrNotRectangular = errors.New("matrix is not rectangular")

	// ErrSideMismatch indicates a pair was built from halves with the wrong sides.
	ErrSideMismatch = errors.New("side mismatch")

	// ErrLayerCountMismatch indicates the two halves hold a different number of layers.
	ErrLayerCountMismatch = errors.New("layer count mismatch")
)

// OverRemovalError describes a rejected removal. The matrix it was raised for
// is left untouched.
type OverRemovalError struct {
	// Axis is "rows" or "columns"
	Axis string

	// Edge is where the removal was aimed ("top", "bottom", "center", "sides")
	Edge string

	// Requested is the number of rows or columns asked for
	Requested int

	// Available is the number of rows or columns present
	Available int
}

func (e *OverRemovalError) Error() string {
	return fmt.Sprintf("cannot remove %d %s from %s: only %d present",
		e.Requested, e.Axis, e.Edge, e.Available)
}

// Is reports ErrOverRemoval as a match so callers can use errors.Is.
func (e *OverRemovalError) Is(target error) bool {
	return target == ErrOverRemoval
}
