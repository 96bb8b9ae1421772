// Package dtype is the element-type registry: byte widths, byte order and the scalar
// codec used to read and write single elements of a managed buffer.
package dtype

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Common errors.
var (
	ErrUnknownType  = errors.New("unknown data type")
	ErrTypeMismatch = errors.New("value type does not match data type")
)

// DType is a constraint for the Go types that can be stored as array elements.
// Named types map to the data type of their underlying type.
type DType interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for array elements.
type DataType int

// Supported data types.
const (
	Bool DataType = iota
	Int8
	Uint8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Float64
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// ByteOrder returns the byte ordering used to encode elements in a buffer.
// Buffers are always little-endian, independent of the host.
func (dt DataType) ByteOrder() binary.ByteOrder {
	return binary.LittleEndian
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

var names = map[string]DataType{
	"bool":    Bool,
	"int8":    Int8,
	"i8":      Int8,
	"char":    Int8,
	"uint8":   Uint8,
	"u8":      Uint8,
	"byte":    Uint8,
	"int16":   Int16,
	"i16":     Int16,
	"short":   Int16,
	"int32":   Int32,
	"i32":     Int32,
	"int":     Int32,
	"int64":   Int64,
	"i64":     Int64,
	"long":    Int64,
	"float32": Float32,
	"f32":     Float32,
	"float":   Float32,
	"float64": Float64,
	"f64":     Float64,
	"double":  Float64,
}

// Parse looks up a data type by name. Go names ("float32"), short names ("f32")
// and C names ("float", "double", "char", "short", "int", "long") are accepted.
func Parse(name string) (DataType, error) {
	dt, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return dt, nil
}

// Of returns the DataType of the Go type T.
func Of[T DType]() DataType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int8:
		return Int8
	case reflect.Uint8:
		return Uint8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic("unsupported type")
	}
}

// goTypes holds the predeclared Go type used by the codec for each data type.
var goTypes = [...]reflect.Type{
	Bool:    reflect.TypeFor[bool](),
	Int8:    reflect.TypeFor[int8](),
	Uint8:   reflect.TypeFor[uint8](),
	Int16:   reflect.TypeFor[int16](),
	Int32:   reflect.TypeFor[int32](),
	Int64:   reflect.TypeFor[int64](),
	Float32: reflect.TypeFor[float32](),
	Float64: reflect.TypeFor[float64](),
}

// Base converts x to the predeclared type of its data type, the form Encode accepts.
func Base[T DType](x T) any {
	t := goTypes[Of[T]()]
	if reflect.TypeFor[T]() == t {
		return x
	}
	return reflect.ValueOf(x).Convert(t).Interface()
}

// As converts x, as returned by Decode, to T. x must have the predeclared type of
// Of[T]().
func As[T DType](x any) T {
	if y, ok := x.(T); ok {
		return y
	}
	return reflect.ValueOf(x).Convert(reflect.TypeFor[T]()).Interface().(T)
}
