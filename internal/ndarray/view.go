package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
)

// View is a non-owning window onto an Array with its leading dimensions fixed.
//
// offset is the element offset accumulated from the fixed dimensions and nextStride
// the stride of the first free one. Since every fixed index was bounds-checked when it
// was applied, offset plus the largest offset reachable through the free dimensions
// stays below the element count of the owner.
type View struct {
	owner      *Array
	fixed      int
	offset     int
	nextStride int
}

// Owner returns the array whose buffer the view reads.
func (v *View) Owner() *Array {
	return v.owner
}

// FixedDims returns how many leading dimensions are fixed.
func (v *View) FixedDims() int {
	return v.fixed
}

// Rank returns the number of free dimensions.
func (v *View) Rank() int {
	return len(v.owner.shape) - v.fixed
}

// Len returns the extent of the next free dimension.
func (v *View) Len() int {
	return v.owner.shape[v.fixed]
}

// Terminal reports whether a single dimension is free, so that indexing yields scalars.
func (v *View) Terminal() bool {
	return v.fixed == len(v.owner.shape)-1
}

// Offset returns the element offset of the first element of the view.
func (v *View) Offset() int {
	return v.offset
}

// ByteOffset returns the byte offset of the first element of the view.
func (v *View) ByteOffset() int {
	return v.offset * v.owner.dtype.Size()
}

// Pointer returns the address of the first element of the view.
func (v *View) Pointer() uintptr {
	return v.owner.buf.Addr() + uintptr(v.ByteOffset()) //nolint:gosec // G115: offset is non-negative
}

// Index fixes the next free dimension to k.
func (v *View) Index(k int) (*View, error) {
	if v.owner.Closed() {
		return nil, ErrClosed
	}
	if v.Terminal() {
		return nil, ErrScalarDimension
	}
	if err := v.owner.checkIndex(v.fixed, k); err != nil {
		return nil, err
	}
	return &View{
		owner:      v.owner,
		fixed:      v.fixed + 1,
		offset:     v.offset + k*v.nextStride,
		nextStride: v.owner.strides[v.fixed+1],
	}, nil
}

func (v *View) indexable() {}

// ElementOffset returns the element offset of element k of a terminal view.
func (v *View) ElementOffset(k int) (int, error) {
	if v.owner.Closed() {
		return 0, ErrClosed
	}
	if !v.Terminal() {
		return 0, ErrNotScalar
	}
	if err := v.owner.checkIndex(v.fixed, k); err != nil {
		return 0, err
	}
	return v.offset + k*v.nextStride, nil
}

// element returns the bytes of element k of a terminal view.
func (v *View) element(k int) ([]byte, error) {
	off, err := v.ElementOffset(k)
	if err != nil {
		return nil, err
	}
	width := v.owner.dtype.Size()
	start := off * width
	return v.owner.buf.Bytes()[start : start+width], nil
}

// Get reads element k of a terminal view. The value has the Go type of the array's
// element type (float32 for dtype.Float32 and so on).
func (v *View) Get(k int) (any, error) {
	b, err := v.element(k)
	if err != nil {
		return nil, err
	}
	return dtype.Decode(v.owner.dtype, b)
}

// Set writes x to element k of a terminal view. x must have the Go type of the array's
// element type; nothing is written otherwise.
func (v *View) Set(k int, x any) error {
	b, err := v.element(k)
	if err != nil {
		return err
	}
	if err := dtype.Encode(v.owner.dtype, b, x); err != nil {
		return fmt.Errorf("set index %d: %w", k, err)
	}
	return nil
}

// Load reads element k of a terminal view as T.
// The underlying type of T must match the array's element type.
func Load[T dtype.DType](v *View, k int) (T, error) {
	var zero T
	if want := dtype.Of[T](); want != v.owner.dtype {
		return zero, fmt.Errorf("%w: %s for %s", dtype.ErrTypeMismatch, want, v.owner.dtype)
	}
	x, err := v.Get(k)
	if err != nil {
		return zero, err
	}
	return dtype.As[T](x), nil
}

// Store writes x to element k of a terminal view.
// The underlying type of T must match the array's element type.
func Store[T dtype.DType](v *View, k int, x T) error {
	if want := dtype.Of[T](); want != v.owner.dtype {
		return fmt.Errorf("%w: %s for %s", dtype.ErrTypeMismatch, want, v.owner.dtype)
	}
	return v.Set(k, dtype.Base(x))
}
