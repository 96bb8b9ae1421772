// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/memory"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Array is a multi-dimensional array that owns its buffer.
type Array = ndarray.Array

// View is a non-owning window onto an Array with its leading dimensions fixed.
type View = ndarray.View

// Indexable is implemented by *Array and *View.
type Indexable = ndarray.Indexable

// Shape represents the extents of an array.
type Shape = ndarray.Shape

// Extents is a read-only sequence of extents or strides.
type Extents = ndarray.Extents

// Layout is the element ordering of an array.
type Layout = ndarray.Layout

// Option configures New.
type Option = ndarray.Option

// Layouts.
const (
	RowMajor    = ndarray.RowMajor
	ColumnMajor = ndarray.ColumnMajor
)

// Errors, for use with errors.Is.
var (
	ErrInvalidShape      = ndarray.ErrInvalidShape
	ErrInvalidLayout     = ndarray.ErrInvalidLayout
	ErrAllocationFailure = ndarray.ErrAllocationFailure
	ErrInvalidDimension  = ndarray.ErrInvalidDimension
	ErrIndexOutOfBounds  = ndarray.ErrIndexOutOfBounds
	ErrClosed            = ndarray.ErrClosed
	ErrScalarDimension   = ndarray.ErrScalarDimension
	ErrNotScalar         = ndarray.ErrNotScalar
)

// Typed errors, for use with errors.As.
type (
	ShapeError     = ndarray.ShapeError
	DimensionError = ndarray.DimensionError
	IndexError     = ndarray.IndexError
)

// New allocates an array of the given element type and shape.
//
// Example:
//
//	a, err := ndarray.New(dtype.Int64, []int{4, 5, 6}, ndarray.WithColumnMajor())
func New(dt dtype.DataType, shape []int, opts ...Option) (*Array, error) {
	return ndarray.New(dt, shape, opts...)
}

// WithLayout sets the element layout (default RowMajor).
func WithLayout(l Layout) Option {
	return ndarray.WithLayout(l)
}

// WithColumnMajor selects column-major ("Fortran") layout.
func WithColumnMajor() Option {
	return ndarray.WithColumnMajor()
}

// WithProvider sets the buffer provider (default memory.Mmap).
func WithProvider(p memory.Provider) Option {
	return ndarray.WithProvider(p)
}

// ComputeStrides returns the element strides of shape in the given layout.
func ComputeStrides(shape Shape, layout Layout) []int {
	return ndarray.ComputeStrides(shape, layout)
}

// ParseLayout parses "C"/"row-major" or "F"/"column-major".
func ParseLayout(s string) (Layout, error) {
	return ndarray.ParseLayout(s)
}

// Load reads element k of a terminal view as T.
func Load[T dtype.DType](v *View, k int) (T, error) {
	return ndarray.Load[T](v, k)
}

// Store writes x to element k of a terminal view.
func Store[T dtype.DType](v *View, k int, x T) error {
	return ndarray.Store(v, k, x)
}
