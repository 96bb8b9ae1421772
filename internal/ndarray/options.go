package ndarray

import "github.com/born-ml/ndarray/internal/memory"

// Option configures a new Array.
type Option func(*options)

type options struct {
	layout   Layout
	provider memory.Provider
}

// WithLayout sets the element layout. The default is RowMajor.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithColumnMajor is shorthand for WithLayout(ColumnMajor).
func WithColumnMajor() Option {
	return WithLayout(ColumnMajor)
}

// WithProvider sets the buffer provider. The default is memory.Mmap.
func WithProvider(p memory.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}
