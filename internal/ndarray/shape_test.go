package ndarray

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strideShapes = []Shape{
	{2, 3},
	{3, 2},
	{1, 1},
	{1, 7},
	{4, 5, 6},
	{2, 1, 3},
	{2, 3, 4, 5},
	{7, 1, 1, 2, 3},
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		layout Layout
		want   []int
	}{
		{"2x3 C", Shape{2, 3}, RowMajor, []int{3, 1}},
		{"2x3 F", Shape{2, 3}, ColumnMajor, []int{1, 2}},
		{"4x5x6 C", Shape{4, 5, 6}, RowMajor, []int{30, 6, 1}},
		{"4x5x6 F", Shape{4, 5, 6}, ColumnMajor, []int{1, 4, 20}},
		{"2x3x4x5 C", Shape{2, 3, 4, 5}, RowMajor, []int{60, 20, 5, 1}},
		{"2x3x4x5 F", Shape{2, 3, 4, 5}, ColumnMajor, []int{1, 2, 6, 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStrides(tt.shape, tt.layout)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeStrides() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The largest reachable offset is the last element of the buffer.
func TestStridesSpanBuffer(t *testing.T) {
	for _, layout := range []Layout{RowMajor, ColumnMajor} {
		for _, shape := range strideShapes {
			strides := ComputeStrides(shape, layout)
			total, ok := shape.NumElements()
			require.True(t, ok)

			span := 0
			for i := range shape {
				span += (shape[i] - 1) * strides[i]
			}
			assert.Equal(t, total-1, span, "shape %v layout %s", shape, layout)
		}
	}
}

func TestFastestStrideIsOne(t *testing.T) {
	for _, shape := range strideShapes {
		c := ComputeStrides(shape, RowMajor)
		f := ComputeStrides(shape, ColumnMajor)
		assert.Equal(t, 1, c[len(c)-1], "row-major last stride of %v", shape)
		assert.Equal(t, 1, f[0], "column-major first stride of %v", shape)
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"matrix", Shape{2, 3}, false},
		{"ones", Shape{1, 1, 1}, false},
		{"empty", Shape{}, true},
		{"nil", nil, true},
		{"rank 1", Shape{5}, true},
		{"zero extent", Shape{2, 0}, true},
		{"negative extent", Shape{-1, 3}, true},
		{"overflow", Shape{math.MaxInt / 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidShape)
			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.NotEmpty(t, shapeErr.Reason)
		})
	}
}

func TestShapeNumElements(t *testing.T) {
	n, ok := Shape{4, 5, 6}.NumElements()
	assert.True(t, ok)
	assert.Equal(t, 120, n)

	_, ok = Shape{math.MaxInt, 2}.NumElements()
	assert.False(t, ok)

	_, ok = Shape{3, -2}.NumElements()
	assert.False(t, ok)
}

func TestShapeCloneAndEqual(t *testing.T) {
	s := Shape{2, 3, 4}
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c[0] = 9
	assert.Equal(t, 2, s[0], "Clone must not share memory")
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2, 3}))
	assert.Equal(t, 3, s.Rank())
}

func TestExtents(t *testing.T) {
	e := Extents{s: []int{4, 5, 6}}
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, 5, e.At(1))
	assert.Equal(t, "[4 5 6]", e.String())

	var dims, vals []int
	for d, v := range e.All() {
		dims = append(dims, d)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, dims)
	assert.Equal(t, []int{4, 5, 6}, vals)

	// Early break stops the iteration.
	count := 0
	for range e.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)

	c := e.Clone()
	c[0] = 100
	assert.Equal(t, 4, e.At(0))

	assert.Panics(t, func() { e.At(3) })
}

func TestLayout(t *testing.T) {
	assert.Equal(t, "C", RowMajor.String())
	assert.Equal(t, "F", ColumnMajor.String())
	assert.Equal(t, "unknown", Layout(7).String())

	for in, want := range map[string]Layout{
		"C": RowMajor, "row-major": RowMajor, "row": RowMajor,
		"F": ColumnMajor, "fortran": ColumnMajor, "column-major": ColumnMajor,
	} {
		got, err := ParseLayout(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLayout("diagonal")
	require.ErrorIs(t, err, ErrInvalidLayout)
}
