package ndarray

import (
	"fmt"
	"iter"
	"math"
)

// Shape represents the extents of an array, one per dimension.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the product of all extents.
// ok is false if the product does not fit in an int or an extent is negative.
func (s Shape) NumElements() (n int, ok bool) {
	n = 1
	for _, dim := range s {
		if dim < 0 {
			return 0, false
		}
		if dim != 0 && n > math.MaxInt/dim {
			return 0, false
		}
		n *= dim
	}
	return n, true
}

// Validate checks that the shape can back an array: rank >= 2 and every extent >= 1.
// Rank-1 data is a plain vector, not a degenerate case of this type.
func (s Shape) Validate() error {
	if len(s) < 2 {
		return &ShapeError{Shape: s.Clone(), Reason: fmt.Sprintf("rank %d, need at least 2 dimensions", len(s))}
	}
	for i, dim := range s {
		if dim < 1 {
			return &ShapeError{Shape: s.Clone(), Reason: fmt.Sprintf("dimension %d has size %d (must be > 0)", i, dim)}
		}
	}
	if _, ok := s.NumElements(); !ok {
		return &ShapeError{Shape: s.Clone(), Reason: "element count overflows int"}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns the element strides of shape in the given layout.
//
// Row-major walks the dimensions last to first, column-major first to last; each
// dimension gets the running product of the extents visited before it, so the fastest
// varying dimension has stride 1. Strides count elements, not bytes.
func ComputeStrides(shape Shape, layout Layout) []int {
	strides := make([]int, len(shape))
	prod := 1
	if layout == ColumnMajor {
		for i := 0; i < len(shape); i++ {
			strides[i] = prod
			prod *= shape[i]
		}
		return strides
	}
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = prod
		prod *= shape[i]
	}
	return strides
}

// Extents is a read-only sequence of integers (an array's shape or strides).
// It shares memory with the array and exposes no way to modify it.
type Extents struct {
	s []int
}

// Len returns the number of entries.
func (e Extents) Len() int {
	return len(e.s)
}

// At returns entry i. It panics if i is out of range, like a slice index.
func (e Extents) At(i int) int {
	return e.s[i]
}

// All iterates over (dimension, value) pairs.
func (e Extents) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, v := range e.s {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a mutable copy.
func (e Extents) Clone() Shape {
	return Shape(e.s).Clone()
}

// String formats the entries like a slice.
func (e Extents) String() string {
	return fmt.Sprint(e.s)
}
