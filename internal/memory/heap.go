package memory

import "runtime"

// Heap allocates buffers on the Go heap and pins them, so that their address may be
// handed to foreign code for as long as the buffer is alive.
//
// A Heap buffer dropped without Release is unpinned once it becomes unreachable; the
// memory itself stays alive for as long as a slice from Bytes refers to it.
type Heap struct{}

// Allocate returns a pinned, zeroed slice of size bytes.
func (Heap) Allocate(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	data := make([]byte, size)
	pinner := new(runtime.Pinner)
	pinner.Pin(&data[0])

	buf := newBuffer(data, nil)
	unpin := runtime.AddCleanup(buf, (*runtime.Pinner).Unpin, pinner)
	buf.free = func() error {
		unpin.Stop()
		pinner.Unpin()
		return nil
	}
	return buf, nil
}
