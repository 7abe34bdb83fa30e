package dense

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDims(t *testing.T) {
	tests := []struct {
		name    string
		rows    Extent
		cols    Extent
		total   int
		want    Dims
		wantErr error
	}{
		{"both dynamic", Dyn(2), Dyn(8), 16, Dims{2, 8}, nil},
		{"both fixed", Fix(4), Fix(4), 16, Dims{4, 4}, nil},
		{"fixed and dynamic", Fix(8), Dyn(2), 16, Dims{8, 2}, nil},
		{"auto rows", AutoSize, Dyn(8), 16, Dims{2, 8}, nil},
		{"auto cols", Dyn(16), AutoSize, 16, Dims{16, 1}, nil},
		{"auto next to fixed", AutoSize, Fix(1), 16, Dims{16, 1}, nil},
		{"product mismatch", Dyn(3), Dyn(5), 16, Dims{}, ErrShapeMismatch},
		{"negative extent", Dyn(-2), Dyn(-8), 16, Dims{}, ErrShapeMismatch},
		{"negative next to auto", Dyn(-4), AutoSize, 16, Dims{}, ErrShapeMismatch},
		{"not divisible", AutoSize, Dyn(4), 15, Dims{}, ErrNonDivisibleShape},
		{"both auto", AutoSize, AutoSize, 15, Dims{}, ErrAmbiguousShape},
		{"both auto on empty", AutoSize, AutoSize, 0, Dims{}, ErrAmbiguousShape},
		{"auto next to zero", AutoSize, Dyn(0), 16, Dims{}, ErrDegenerateShape},
		{"zero next to auto", Fix(0), AutoSize, 3, Dims{}, ErrDegenerateShape},
		{"auto next to zero on empty", AutoSize, Dyn(0), 0, Dims{0, 0}, nil},
		{"auto next to nonzero on empty", Dyn(5), AutoSize, 0, Dims{5, 0}, nil},
		{"explicit empty", Dyn(0), Dyn(7), 0, Dims{0, 7}, nil},
		{"product wraps to zero", Dyn(math.MaxInt/4 + 1), Dyn(8), 0, Dims{}, ErrShapeMismatch},
		{"product wraps past total", Dyn(math.MaxInt/4 + 1), Dyn(16), 0, Dims{}, ErrShapeMismatch},
		{"product overflows", Dyn(math.MaxInt), Dyn(2), 16, Dims{}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDims(tt.rows, tt.cols, tt.total)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Dims{}, got, "failed resolution must not return partial dims")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, got.Len())
		})
	}
}

func TestResolveDims_ShapeError(t *testing.T) {
	_, err := ResolveDims(Fix(2), Fix(3), 16)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.True(t, shapeErr.Static, "two fixed extents make the failure static")
	assert.Equal(t, 16, shapeErr.Total)
	assert.Equal(t, Fix(2), shapeErr.Rows)
	assert.Contains(t, err.Error(), "fixed extents")
	assert.Contains(t, err.Error(), "2! x 3!")

	_, err = ResolveDims(Dyn(2), Fix(3), 16)
	require.True(t, errors.As(err, &shapeErr))
	assert.False(t, shapeErr.Static)
}

func TestReshape_HugeExtentsOnEmptySource(t *testing.T) {
	m := Zeros[float32](0, 3, ColMajor)

	v, err := m.Reshaped(Dyn(math.MaxInt/4 + 1), Dyn(8))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, v)
}

func TestDims_String(t *testing.T) {
	assert.Equal(t, "2x8", Dims{2, 8}.String())
}
