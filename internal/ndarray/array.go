package ndarray

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/memory"
)

// Indexable is an array-like value: either an *Array (owns the buffer, no dimension
// fixed) or a *View (shares the buffer, some leading dimensions fixed).
type Indexable interface {
	// Rank returns the number of free dimensions.
	Rank() int
	// Len returns the extent of the next free dimension.
	Len() int
	// Index fixes the next free dimension to k. It fails with ErrScalarDimension when
	// only one dimension is free.
	Index(k int) (*View, error)
	// Pointer returns the address of the first element reachable from this value.
	Pointer() uintptr

	indexable()
}

// Array is a multi-dimensional array backed by one exclusively owned buffer.
type Array struct {
	dtype   dtype.DataType
	shape   Shape
	strides []int
	total   int
	layout  Layout
	buf     *memory.Buffer
	cleanup runtime.Cleanup
}

// New allocates an array of the given element type and shape.
// The buffer holds exactly NumElements()*dt.Size() bytes and is zero-filled.
//
// New fails with ErrInvalidShape, without allocating, if shape has fewer than two
// dimensions or a non-positive extent, and with ErrAllocationFailure if the provider
// cannot satisfy the request.
func New(dt dtype.DataType, shape []int, opts ...Option) (*Array, error) {
	o := &options{
		layout:   RowMajor,
		provider: memory.Mmap{},
	}
	for _, opt := range opts {
		opt(o)
	}

	if !dt.Valid() {
		return nil, fmt.Errorf("%w: %d", dtype.ErrUnknownType, int(dt))
	}
	if o.layout != RowMajor && o.layout != ColumnMajor {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayout, int(o.layout))
	}
	if o.provider == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrAllocationFailure)
	}

	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	total, _ := s.NumElements()
	if total > math.MaxInt/dt.Size() {
		return nil, &ShapeError{Shape: s, Reason: fmt.Sprintf("byte size of %d %s elements overflows int", total, dt)}
	}
	size := total * dt.Size()

	buf, err := o.provider.Allocate(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailure, size, err)
	}
	if buf.Len() != size {
		_ = buf.Release()
		return nil, fmt.Errorf("%w: provider returned %d bytes, requested %d", ErrAllocationFailure, buf.Len(), size)
	}

	a := &Array{
		dtype:   dt,
		shape:   s,
		strides: ComputeStrides(s, o.layout),
		total:   total,
		layout:  o.layout,
		buf:     buf,
	}
	a.cleanup = runtime.AddCleanup(a, reportLeak, a.String())

	return a, nil
}

// reportLeak logs an Array that became unreachable without Close. The buffer is not
// released: slices from Bytes and addresses from Pointer may outlive the Array.
func reportLeak(desc string) {
	log.Printf("ndarray: %s was not closed, its buffer is leaked", desc)
}

// Close releases the buffer. Only the first call releases; later calls return nil.
// Views derived from the array fail with ErrClosed afterwards.
//
// An array dropped without Close is reported by the log package and its buffer is
// never freed.
func (a *Array) Close() error {
	a.cleanup.Stop()
	return a.buf.Release()
}

// Closed reports whether Close has been called.
func (a *Array) Closed() bool {
	return a.buf.Released()
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the extent of the first dimension.
func (a *Array) Len() int {
	return a.shape[0]
}

// Shape returns the extents of the array.
func (a *Array) Shape() Extents {
	return Extents{s: a.shape}
}

// Strides returns the element strides of the array.
func (a *Array) Strides() Extents {
	return Extents{s: a.strides}
}

// Dim returns the extent of dimension d.
func (a *Array) Dim(d int) (int, error) {
	if err := a.checkDim(d); err != nil {
		return 0, err
	}
	return a.shape[d], nil
}

// Stride returns the element stride of dimension d.
func (a *Array) Stride(d int) (int, error) {
	if err := a.checkDim(d); err != nil {
		return 0, err
	}
	return a.strides[d], nil
}

func (a *Array) checkDim(d int) error {
	if d < 0 || d >= len(a.shape) {
		return &DimensionError{Dim: d, Rank: len(a.shape)}
	}
	return nil
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.total
}

// ByteSize returns the buffer size in bytes.
func (a *Array) ByteSize() int {
	return a.total * a.dtype.Size()
}

// Layout returns the element layout.
func (a *Array) Layout() Layout {
	return a.layout
}

// IsColumnMajor reports whether the first dimension varies fastest.
func (a *Array) IsColumnMajor() bool {
	return a.layout == ColumnMajor
}

// DType returns the element type.
func (a *Array) DType() dtype.DataType {
	return a.dtype
}

// Pointer returns the base address of the buffer.
// The address stays valid until Close. Callers that hand it to foreign code should
// keep the array reachable (runtime.KeepAlive(a)) until that code is done.
func (a *Array) Pointer() uintptr {
	return a.buf.Addr()
}

// Bytes returns the raw buffer, or nil once the array is closed.
// WARNING: Direct access to underlying memory. The slice is invalid after Close;
// call runtime.KeepAlive(a) after its last use.
func (a *Array) Bytes() []byte {
	return a.buf.Bytes()
}

// Index fixes the first dimension to k and returns a view of the remaining ones.
func (a *Array) Index(k int) (*View, error) {
	if a.Closed() {
		return nil, ErrClosed
	}
	if err := a.checkIndex(0, k); err != nil {
		return nil, err
	}
	return &View{
		owner:      a,
		fixed:      1,
		offset:     k * a.strides[0],
		nextStride: a.strides[1],
	}, nil
}

func (a *Array) indexable() {}

// checkIndex validates 0 <= k < shape[d].
func (a *Array) checkIndex(d, k int) error {
	if k < 0 || k >= a.shape[d] {
		return &IndexError{Index: k, Dim: d, Extent: a.shape[d]}
	}
	return nil
}

// At reads the element at idx, walking the view chain one dimension at a time.
func (a *Array) At(idx ...int) (any, error) {
	v, err := a.terminal(idx)
	if err != nil {
		return nil, err
	}
	return v.Get(idx[len(idx)-1])
}

// SetAt writes x to the element at idx.
func (a *Array) SetAt(x any, idx ...int) error {
	v, err := a.terminal(idx)
	if err != nil {
		return err
	}
	return v.Set(idx[len(idx)-1], x)
}

// ByteOffset returns the offset in bytes of the element at idx from the buffer start.
func (a *Array) ByteOffset(idx ...int) (int, error) {
	v, err := a.terminal(idx)
	if err != nil {
		return 0, err
	}
	off, err := v.ElementOffset(idx[len(idx)-1])
	if err != nil {
		return 0, err
	}
	return off * a.dtype.Size(), nil
}

// terminal walks all but the last index of idx and returns the terminal view.
func (a *Array) terminal(idx []int) (*View, error) {
	if len(idx) != len(a.shape) {
		return nil, fmt.Errorf("%w: got %d indices for rank %d", ErrInvalidDimension, len(idx), len(a.shape))
	}
	v, err := a.Index(idx[0])
	if err != nil {
		return nil, err
	}
	for _, k := range idx[1 : len(idx)-1] {
		if v, err = v.Index(k); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// String returns a human-readable description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("NDArray(dtype=%s, shape=%v, strides=%v, layout=%s, elements=%d, size=%d bytes, pointer=%#x)",
		a.dtype, []int(a.shape), a.strides, a.layout, a.total, a.ByteSize(), a.buf.Addr())
}
