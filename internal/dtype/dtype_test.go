package dtype

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Bool, 1, "bool"},
		{Int8, 1, "int8"},
		{Uint8, 1, "uint8"},
		{Int16, 2, "int16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.dtype.Valid())
			assert.Equal(t, tt.size, tt.dtype.Size())
			assert.Equal(t, tt.name, tt.dtype.String())
			assert.Equal(t, binary.LittleEndian, tt.dtype.ByteOrder())
		})
	}
}

func TestDataTypeUnknown(t *testing.T) {
	dt := DataType(42)
	assert.False(t, dt.Valid())
	assert.Equal(t, "unknown", dt.String())
	assert.Panics(t, func() { _ = dt.Size() })
}

func TestParse(t *testing.T) {
	tests := map[string]DataType{
		"float32": Float32,
		"f32":     Float32,
		"float":   Float32,
		"double":  Float64,
		"char":    Int8,
		"short":   Int16,
		"int":     Int32,
		"long":    Int64,
		" INT64 ": Int64,
		"u8":      Uint8,
		"bool":    Bool,
	}
	for name, want := range tests {
		got, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := Parse("complex128")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestOf(t *testing.T) {
	assert.Equal(t, Bool, Of[bool]())
	assert.Equal(t, Int8, Of[int8]())
	assert.Equal(t, Uint8, Of[uint8]())
	assert.Equal(t, Int16, Of[int16]())
	assert.Equal(t, Int32, Of[int32]())
	assert.Equal(t, Int64, Of[int64]())
	assert.Equal(t, Float32, Of[float32]())
	assert.Equal(t, Float64, Of[float64]())
}

type (
	kelvin float64
	level  int16
	mask   bool
)

func TestNamedTypes(t *testing.T) {
	assert.Equal(t, Float64, Of[kelvin]())
	assert.Equal(t, Int16, Of[level]())
	assert.Equal(t, Bool, Of[mask]())

	assert.Equal(t, float64(273.15), Base(kelvin(273.15)))
	assert.Equal(t, int16(-3), Base(level(-3)))
	assert.Equal(t, int32(7), Base(int32(7)))

	assert.Equal(t, kelvin(1.5), As[kelvin](1.5))
	assert.Equal(t, mask(true), As[mask](true))
	assert.Equal(t, int8(-1), As[int8](int8(-1)))

	buf := make([]byte, 2)
	require.NoError(t, Encode(Int16, buf, Base(level(-3))))
	x, err := Decode(Int16, buf)
	require.NoError(t, err)
	assert.Equal(t, level(-3), As[level](x))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []any{
		true,
		int8(-7),
		uint8(200),
		int16(-12345),
		int32(-2_000_000_000),
		int64(math.MinInt64),
		float32(3.25),
		math.Pi,
	}
	types := []DataType{Bool, Int8, Uint8, Int16, Int32, Int64, Float32, Float64}

	for i, dt := range types {
		t.Run(dt.String(), func(t *testing.T) {
			buf := make([]byte, dt.Size())
			require.NoError(t, Encode(dt, buf, values[i]))

			got, err := Decode(dt, buf)
			require.NoError(t, err)
			assert.Equal(t, values[i], got)
		})
	}
}

func TestEncodeLittleEndian(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, Encode(Int32, buf, int32(0x01020304)))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	buf = make([]byte, 4)
	require.NoError(t, Encode(Float32, buf, float32(1)))
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf)
}

func TestEncodeTypeMismatch(t *testing.T) {
	buf := make([]byte, 8)
	err := Encode(Float32, buf, 1.0) // float64 literal
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, make([]byte, 8), buf, "buffer must be untouched on mismatch")

	err = Encode(Int64, buf, 1)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestCodecShortBuffer(t *testing.T) {
	_, err := Decode(Float64, make([]byte, 4))
	require.Error(t, err)

	err = Encode(Int16, make([]byte, 1), int16(1))
	require.Error(t, err)
}

func TestCodecUnknownType(t *testing.T) {
	_, err := Decode(DataType(-1), make([]byte, 8))
	require.ErrorIs(t, err, ErrUnknownType)

	err = Encode(DataType(99), make([]byte, 8), int64(1))
	require.ErrorIs(t, err, ErrUnknownType)
}
