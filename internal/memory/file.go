package memory

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File allocates buffers backed by a shared mapping of a file.
//
// The file is created (or truncated) and sized to the request, so a fresh buffer is
// zero-filled. Writes reach the file; Release flushes the mapping, unmaps it and closes
// the file, leaving the array contents on disk.
type File struct {
	Path string
}

// Allocate creates Path with size bytes and maps it read/write.
func (p File) Allocate(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if p.Path == "" {
		return nil, errors.New("file provider: empty path")
	}

	f, err := os.OpenFile(p.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to size file: %w", err)
	}

	m, err := mmap.MapRegion(f, size, mmap.RDWR, 0, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap %s: %w", p.Path, err)
	}

	return newBuffer(m, func() error {
		err := m.Flush()
		if err2 := m.Unmap(); err == nil {
			err = err2
		}
		if err2 := f.Close(); err == nil {
			err = err2
		}
		return err
	}), nil
}
