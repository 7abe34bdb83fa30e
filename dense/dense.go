// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"math/rand"

	"github.com/born-ml/dense/internal/dense"
)

// Type aliases for public API

// DType is a constraint for element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = dense.DType

// DataType represents the runtime element type of a matrix.
type DataType = dense.DataType

// Data type constants.
const (
	Float32 DataType = dense.Float32
	Float64 DataType = dense.Float64
	Int32   DataType = dense.Int32
	Int64   DataType = dense.Int64
	Uint8   DataType = dense.Uint8
	Bool    DataType = dense.Bool
)

// Order is a traversal order: ColMajor, RowMajor or AutoOrder.
type Order = dense.Order

// Order constants.
const (
	ColMajor  Order = dense.ColMajor
	RowMajor  Order = dense.RowMajor
	AutoOrder Order = dense.AutoOrder
)

// Extent is a requested dimension: Fix(n), Dyn(n) or AutoSize.
type Extent = dense.Extent

// AutoSize infers a dimension from the element count.
var AutoSize = dense.AutoSize

// Dims is a resolved (rows, cols) pair.
type Dims = dense.Dims

// Geometry describes a strided 2-D window (dimensions and element strides).
type Geometry = dense.Geometry

// Layout is the result of stride synthesis.
type Layout = dense.Layout

// ShapeError describes a failed reshape.
type ShapeError = dense.ShapeError

// Errors reported by reshapes and (through panics) by element access.
var (
	ErrShapeMismatch     = dense.ErrShapeMismatch
	ErrNonDivisibleShape = dense.ErrNonDivisibleShape
	ErrAmbiguousShape    = dense.ErrAmbiguousShape
	ErrDegenerateShape   = dense.ErrDegenerateShape
	ErrReadOnly          = dense.ErrReadOnly
	ErrIndexOutOfRange   = dense.ErrIndexOutOfRange
	ErrInvalidOrder      = dense.ErrInvalidOrder
)

// Matrix is an owning dense matrix.
type Matrix[T DType] = dense.Matrix[T]

// View is a (reshaped, transposed or block) window over matrix storage.
type View[T DType] = dense.View[T]

// Descriptor is a strided window over shared storage, the input of a reshape.
type Descriptor[T DType] = dense.Descriptor[T]

// Source is implemented by everything that can be reshaped.
type Source[T DType] = dense.Source[T]

// Dense is the read-only structural contract of matrices and views.
type Dense[T DType] = dense.Dense[T]

// Fix returns a fixed extent.
func Fix(n int) Extent { return dense.Fix(n) }

// Dyn returns a dynamic extent.
func Dyn(n int) Extent { return dense.Dyn(n) }

// ParseExtent parses "auto", "N" or "N!".
func ParseExtent(s string) (Extent, error) { return dense.ParseExtent(s) }

// ParseOrder parses "col", "row" or "auto".
func ParseOrder(s string) (Order, error) { return dense.ParseOrder(s) }

// ResolveDims resolves requested extents against an element count.
func ResolveDims(rows, cols Extent, total int) (Dims, error) {
	return dense.ResolveDims(rows, cols, total)
}

// ResolveOrder resolves AutoOrder against a storage order.
func ResolveOrder(requested, storage Order) Order {
	return dense.ResolveOrder(requested, storage)
}

// Synthesize computes reshape strides and whether the source is aliased
// directly, through an index map, or copied.
func Synthesize(dims Dims, order Order, src Geometry) Layout {
	return dense.Synthesize(dims, order, src)
}

// NewMatrix creates a zeroed matrix stored in order.
func NewMatrix[T DType](rows, cols int, order Order) (*Matrix[T], error) {
	return dense.NewMatrix[T](rows, cols, order)
}

// Zeros creates a matrix filled with zeros.
func Zeros[T DType](rows, cols int, order Order) *Matrix[T] {
	return dense.Zeros[T](rows, cols, order)
}

// Full creates a matrix filled with value.
func Full[T DType](rows, cols int, value T, order Order) *Matrix[T] {
	return dense.Full[T](rows, cols, value, order)
}

// Arange creates a matrix holding 0..N-1 in storage order.
func Arange[T DType](rows, cols int, order Order) *Matrix[T] {
	return dense.Arange[T](rows, cols, order)
}

// FromSlice creates a matrix from data laid out in order (copied).
func FromSlice[T DType](data []T, rows, cols int, order Order) (*Matrix[T], error) {
	return dense.FromSlice(data, rows, cols, order)
}

// Rand creates a matrix of random values drawn from rng.
func Rand[T DType](rows, cols int, order Order, rng *rand.Rand) *Matrix[T] {
	return dense.Rand[T](rows, cols, order, rng)
}

// Reshape re-describes src as rows x cols read in order.
func Reshape[T DType](src Source[T], rows, cols Extent, order Order) (*View[T], error) {
	return dense.Reshape(src, rows, cols, order)
}

// MustReshape is like Reshape but panics on error.
func MustReshape[T DType](src Source[T], rows, cols Extent, order Order) *View[T] {
	return dense.MustReshape(src, rows, cols, order)
}

// AsView wraps any source in a View.
func AsView[T DType](src Source[T]) *View[T] {
	return dense.AsView(src)
}

// Transpose returns the transpose of src without copying.
func Transpose[T DType](src Source[T]) *View[T] {
	return dense.Transpose(src)
}

// All selects every element by column-major linear index as a column.
func All[T DType](src Dense[T]) *Matrix[T] {
	return dense.All(src)
}

// Eval copies src into a new Matrix stored in order.
func Eval[T DType](src Dense[T], order Order) *Matrix[T] {
	return dense.Eval(src, order)
}

// Equal reports whether a and b have the same dimensions and elements.
func Equal[T DType](a, b Dense[T]) bool {
	return dense.Equal(a, b)
}

// SameStorage reports whether a and b alias the same storage at the same offset.
func SameStorage[T DType](a, b Source[T]) bool {
	return dense.SameStorage(a, b)
}

// Format renders src as right-aligned rows.
func Format[T DType](src Dense[T]) string {
	return dense.Format(src)
}
