package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrAllocationFailure = errors.New("buffer allocation failed")
	ErrInvalidDimension  = errors.New("invalid dimension index")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrClosed            = errors.New("array is closed")
	ErrScalarDimension   = errors.New("view has a single free dimension, use Get or Set")
	ErrNotScalar         = errors.New("view has more than one free dimension, use Index")
)

// ShapeError describes a shape rejected at construction.
type ShapeError struct {
	Shape  []int
	Reason string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %v: %s", ErrInvalidShape, e.Shape, e.Reason)
}

// Unwrap returns ErrInvalidShape.
func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}

// DimensionError reports an accessor called with a dimension outside [0, Rank).
type DimensionError struct {
	Dim  int
	Rank int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v %d, valid [0, %d)", ErrInvalidDimension, e.Dim, e.Rank)
}

// Unwrap returns ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// IndexError reports an index outside [0, Extent) in dimension Dim.
type IndexError struct {
	Index  int
	Dim    int
	Extent int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d in dimension %d, valid [0, %d)", ErrIndexOutOfBounds, e.Index, e.Dim, e.Extent)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
