// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package memory provides the buffer providers arrays allocate from.
//
// Available providers:
//   - Mmap: anonymous mappings outside the Go heap (default)
//   - Heap: pinned Go heap slices
//   - File: shared file mappings whose contents persist after release
//   - Counting: wraps another provider and records allocation statistics
package memory

import "github.com/born-ml/ndarray/internal/memory"

// Provider allocates native buffers.
type Provider = memory.Provider

// Buffer is an exclusively owned memory region.
type Buffer = memory.Buffer

// Providers.
type (
	Mmap     = memory.Mmap
	Heap     = memory.Heap
	File     = memory.File
	Counting = memory.Counting
	Stats    = memory.Stats
)

// ErrInvalidSize is returned for zero or negative allocation sizes.
var ErrInvalidSize = memory.ErrInvalidSize

// NewCounting wraps p with allocation statistics.
func NewCounting(p Provider) *Counting {
	return memory.NewCounting(p)
}
