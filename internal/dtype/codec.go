package dtype

import (
	"fmt"
	"math"
)

// Decode reads one element of type dt from the first dt.Size() bytes of b.
// The returned value has the Go type matching dt (float32 for Float32 and so on).
func Decode(dt DataType, b []byte) (any, error) {
	if !dt.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(dt))
	}
	if len(b) < dt.Size() {
		return nil, fmt.Errorf("decode %s: need %d bytes, have %d", dt, dt.Size(), len(b))
	}

	order := dt.ByteOrder()
	switch dt {
	case Bool:
		return b[0] != 0, nil
	case Int8:
		return int8(b[0]), nil
	case Uint8:
		return b[0], nil
	case Int16:
		return int16(order.Uint16(b)), nil
	case Int32:
		return int32(order.Uint32(b)), nil
	case Int64:
		return int64(order.Uint64(b)), nil
	case Float32:
		return math.Float32frombits(order.Uint32(b)), nil
	default: // Float64
		return math.Float64frombits(order.Uint64(b)), nil
	}
}

// Encode writes v as one element of type dt into the first dt.Size() bytes of b.
// v must have the Go type matching dt; no conversions are performed.
func Encode(dt DataType, b []byte, v any) error {
	if !dt.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(dt))
	}
	if len(b) < dt.Size() {
		return fmt.Errorf("encode %s: need %d bytes, have %d", dt, dt.Size(), len(b))
	}

	order := dt.ByteOrder()
	ok := true
	switch dt {
	case Bool:
		var x bool
		if x, ok = v.(bool); ok {
			b[0] = 0
			if x {
				b[0] = 1
			}
		}
	case Int8:
		var x int8
		if x, ok = v.(int8); ok {
			b[0] = byte(x)
		}
	case Uint8:
		var x uint8
		if x, ok = v.(uint8); ok {
			b[0] = x
		}
	case Int16:
		var x int16
		if x, ok = v.(int16); ok {
			order.PutUint16(b, uint16(x)) //nolint:gosec // G115: bit reinterpretation
		}
	case Int32:
		var x int32
		if x, ok = v.(int32); ok {
			order.PutUint32(b, uint32(x)) //nolint:gosec // G115: bit reinterpretation
		}
	case Int64:
		var x int64
		if x, ok = v.(int64); ok {
			order.PutUint64(b, uint64(x)) //nolint:gosec // G115: bit reinterpretation
		}
	case Float32:
		var x float32
		if x, ok = v.(float32); ok {
			order.PutUint32(b, math.Float32bits(x))
		}
	case Float64:
		var x float64
		if x, ok = v.(float64); ok {
			order.PutUint64(b, math.Float64bits(x))
		}
	}
	if !ok {
		return fmt.Errorf("%w: %T for %s", ErrTypeMismatch, v, dt)
	}
	return nil
}
