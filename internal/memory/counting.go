package memory

import "sync"

// Stats summarizes the buffers handed out by a Counting provider.
type Stats struct {
	Allocated int   // Successful allocations
	Released  int   // Buffers released
	Failed    int   // Allocation requests the wrapped provider rejected
	LiveBytes int64 // Bytes allocated and not yet released
}

// Counting wraps a Provider and records allocation statistics.
type Counting struct {
	Provider Provider

	mu    sync.Mutex
	stats Stats
}

// NewCounting wraps p. A nil p counts allocations made by Mmap.
func NewCounting(p Provider) *Counting {
	if p == nil {
		p = Mmap{}
	}
	return &Counting{Provider: p}
}

// Allocate forwards to the wrapped provider and tracks the result.
func (c *Counting) Allocate(size int) (*Buffer, error) {
	buf, err := c.Provider.Allocate(size)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.stats.Failed++
		return nil, err
	}
	c.stats.Allocated++
	c.stats.LiveBytes += int64(size)

	free := buf.free
	buf.free = func() error {
		c.mu.Lock()
		c.stats.Released++
		c.stats.LiveBytes -= int64(size)
		c.mu.Unlock()

		if free == nil {
			return nil
		}
		return free()
	}
	return buf, nil
}

// Stats returns a snapshot of the counters.
func (c *Counting) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
