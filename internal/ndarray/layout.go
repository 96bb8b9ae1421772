package ndarray

import (
	"fmt"
	"strings"
)

// Layout is the element ordering of an array in its buffer.
type Layout int

// Supported layouts.
const (
	// RowMajor ("C" order): the last dimension varies fastest.
	RowMajor Layout = iota
	// ColumnMajor ("Fortran" order): the first dimension varies fastest.
	ColumnMajor
)

// String returns "C" or "F".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "C"
	case ColumnMajor:
		return "F"
	default:
		return "unknown"
	}
}

// ParseLayout accepts "C", "row", "row-major", "F", "fortran", "col", "column-major".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "row", "row-major", "rowmajor":
		return RowMajor, nil
	case "f", "fortran", "col", "column", "column-major", "columnmajor":
		return ColumnMajor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
}
