package dense

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/dense/internal/parallel"
)

// Zeros creates a rows x cols matrix filled with zeros.
// Panics on negative dimensions or an invalid order.
//
// Example:
//
//	m := dense.Zeros[float32](3, 4, dense.RowMajor)
func Zeros[T DType](rows, cols int, order Order) *Matrix[T] {
	m, err := NewMatrix[T](rows, cols, order)
	if err != nil {
		panic(err)
	}
	return m
}

// Full creates a matrix filled with value.
func Full[T DType](rows, cols int, value T, order Order) *Matrix[T] {
	m := Zeros[T](rows, cols, order)
	data := m.buf.data
	parallel.For(len(data), func(i int) {
		data[i] = value
	}, parallelConfig)
	return m
}

// Arange creates a matrix holding 0, 1, ..., N-1 in storage order.
// For bool matrices odd positions are true.
//
// Example:
//
//	m := dense.Arange[int32](2, 3, dense.ColMajor) // columns [0 1] [2 3] [4 5]
func Arange[T DType](rows, cols int, order Order) *Matrix[T] {
	m := Zeros[T](rows, cols, order)
	for i := range m.buf.data {
		m.buf.data[i] = fromInt[T](i)
	}
	return m
}

// FromSlice creates a matrix from data laid out in order.
// The slice is copied into the matrix's memory.
func FromSlice[T DType](data []T, rows, cols int, order Order) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		return nil, fmt.Errorf("shape %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	m, err := NewMatrix[T](rows, cols, order)
	if err != nil {
		return nil, err
	}
	copy(m.buf.data, data)
	return m, nil
}

// Rand creates a matrix of random values drawn from rng.
// Floats are uniform in [0, 1); integers cover their type's range.
// Note: Uses math/rand (not crypto/rand), seeded by the caller for reproducibility.
func Rand[T DType](rows, cols int, order Order, rng *rand.Rand) *Matrix[T] {
	m := Zeros[T](rows, cols, order)
	for i := range m.buf.data {
		var v T
		switch p := any(&v).(type) {
		case *float32:
			*p = rng.Float32()
		case *float64:
			*p = rng.Float64()
		case *int32:
			*p = int32(rng.Uint32()) //nolint:gosec // G115: wraparound intended, full range.
		case *int64:
			*p = int64(rng.Uint64()) //nolint:gosec // G115: wraparound intended, full range.
		case *uint8:
			*p = uint8(rng.Intn(256)) //nolint:gosec // G115: bounded by Intn.
		case *bool:
			*p = rng.Intn(2) == 1
		}
		m.buf.data[i] = v
	}
	return m
}

// fromInt converts a small non-negative integer to T.
func fromInt[T DType](k int) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(k)
	case *float64:
		*p = float64(k)
	case *int32:
		*p = int32(k) //nolint:gosec // G115: k is an element index.
	case *int64:
		*p = int64(k)
	case *uint8:
		*p = uint8(k) //nolint:gosec // G115: wraps for matrices above 255 elements.
	case *bool:
		*p = k%2 == 1
	}
	return v
}
