// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides multi-dimensional arrays over a single managed buffer.
//
// # Overview
//
// An Array has rank >= 2, a fixed element type, a fixed row-major ("C") or
// column-major ("Fortran") layout, and owns exactly one contiguous buffer obtained
// from a memory.Provider. The buffer address is stable until Close, so it can be
// handed to foreign code (accelerator kernels, C libraries) through Pointer.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/dtype"
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    a, err := ndarray.New(dtype.Float32, []int{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer a.Close()
//
//	    _ = a.SetAt(float32(1.5), 1, 2)
//	    x, _ := a.At(1, 2) // float32(1.5)
//	}
//
// # Strides and Layout
//
// Strides are counted in elements. Row-major arrays have stride 1 in their last
// dimension, column-major arrays in their first:
//
//	shape [2, 3], C order → strides [3, 1]
//	shape [2, 3], F order → strides [1, 2]
//
// # Views
//
// Index fixes the first dimension and returns a View sharing the buffer. Views are
// indexed further until one free dimension is left; that terminal view reads and
// writes scalars with Get/Set or the generic Load/Store:
//
//	row, _ := a.Index(1)               // 1 dimension fixed
//	_ = ndarray.Store(row, 2, float32(7))
//	x, _ := ndarray.Load[float32](row, 2)
//
// Every step is bounds-checked; indices are valid in [0, extent).
//
// # Memory Management
//
// Buffers are released deterministically by Close; calling Close more than once is
// safe. An array that becomes unreachable without Close has its buffer released by a
// runtime cleanup and the leak is logged. Views never own memory and fail with
// ErrClosed once their array is closed.
package ndarray
