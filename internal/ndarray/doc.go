// Package ndarray implements multi-dimensional arrays of rank >= 2 over a single
// managed buffer.
//
// An Array owns its buffer: it is allocated once by New and released once by Close.
// Indexing an Array fixes its first dimension and yields a View that shares the
// buffer; indexing a View fixes the next dimension, until a single free dimension is
// left and Get/Set (or Load/Store) access one scalar element:
//
//	a, err := ndarray.New(dtype.Float32, []int{2, 3})
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	row, _ := a.Index(1)     // View, 1 dimension fixed
//	_ = row.Set(2, float32(7))
//	x, _ := ndarray.Load[float32](row, 2)
//
// Shape and strides are immutable after construction. Element contents are not
// synchronized: concurrent reads and writes of the same elements are the caller's
// responsibility. Views must not outlive the Array; operations on a View of a closed
// Array fail with ErrClosed.
package ndarray
