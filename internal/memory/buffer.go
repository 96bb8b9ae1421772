// Package memory provides native buffer providers for managed arrays.
//
// A Provider hands out Buffers: contiguous memory regions with a stable base address
// that stays valid until the Buffer is released. Release happens at most once; using
// the bytes of a released Buffer is undefined behavior, so callers must make sure the
// lifetime of every slice taken from Bytes does not exceed the lifetime of the Buffer.
package memory

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// ErrInvalidSize is returned when a buffer of zero or negative size is requested.
var ErrInvalidSize = errors.New("invalid buffer size")

// Provider allocates native buffers.
type Provider interface {
	// Allocate returns a zero-filled buffer of exactly size bytes.
	Allocate(size int) (*Buffer, error)
}

// Buffer is an exclusively owned memory region handed out by a Provider.
// Buffers must not be copied; share the pointer.
//
// Release is how a Buffer gives its memory back. A Buffer dropped without Release is
// leaked (Mmap, File) or left to the garbage collector (Heap), never freed under a
// live slice.
type Buffer struct {
	data     []byte
	addr     uintptr
	free     func() error
	released atomic.Bool
}

// newBuffer wraps data with the function that gives it back to its provider.
// data must be non-empty.
func newBuffer(data []byte, free func() error) *Buffer {
	return &Buffer{
		data: data,
		addr: uintptr(unsafe.Pointer(unsafe.SliceData(data))),
		free: free,
	}
}

// Bytes returns the buffer memory.
// WARNING: the slice aliases native memory and must not be used after Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Addr returns the base address of the buffer.
func (b *Buffer) Addr() uintptr {
	return b.addr
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.released.Load()
}

// Release gives the memory back to its provider.
// Only the first call frees; later calls are no-ops and return nil.
func (b *Buffer) Release() error {
	if !b.released.CompareAndSwap(false, true) {
		return nil
	}
	b.data = nil
	if b.free == nil {
		return nil
	}
	if err := b.free(); err != nil {
		return fmt.Errorf("release buffer at %#x: %w", b.addr, err)
	}
	return nil
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	return nil
}
