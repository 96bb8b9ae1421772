package memory

import (
	"fmt"

	"github.com/edsrzf/mmap-go"
)

// Mmap allocates anonymous read/write mappings outside the Go heap.
// The kernel hands out zeroed, page-aligned memory that the garbage collector
// never sees or moves, so the base address can be passed to foreign code as is.
type Mmap struct{}

// Allocate maps size bytes of anonymous memory.
func (Mmap) Allocate(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}

	return newBuffer(m, m.Unmap), nil
}
