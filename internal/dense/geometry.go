package dense

import "fmt"

// Geometry describes a strided 2-D window over a linear element store.
// Strides are in elements, not bytes.
type Geometry struct {
	Rows      int
	Cols      int
	RowStride int // Distance between (i, j) and (i+1, j)
	ColStride int // Distance between (i, j) and (i, j+1)
}

// Dims returns the window dimensions.
func (g Geometry) Dims() Dims {
	return Dims{Rows: g.Rows, Cols: g.Cols}
}

// Len returns the number of elements in the window.
func (g Geometry) Len() int {
	return g.Rows * g.Cols
}

// LinearStride reports whether reading the window in the given order walks
// memory with one uniform step, and returns that step.
//
// Windows with at most one element are linear with step 1. A single row or a
// single column is linear in both orders. AutoOrder is checked as the
// window's storage order.
func (g Geometry) LinearStride(order Order) (int, bool) {
	if g.Len() <= 1 {
		return 1, true
	}
	if order == AutoOrder {
		order = g.StorageOrder()
	}

	if order == RowMajor {
		switch {
		case g.Rows == 1:
			return g.ColStride, true
		case g.Cols == 1:
			return g.RowStride, true
		case g.RowStride == g.Cols*g.ColStride:
			return g.ColStride, true
		}
		return 0, false
	}

	switch {
	case g.Cols == 1:
		return g.RowStride, true
	case g.Rows == 1:
		return g.ColStride, true
	case g.ColStride == g.Rows*g.RowStride:
		return g.RowStride, true
	}
	return 0, false
}

// ContiguousIn reports whether the window, read in order, occupies
// consecutive storage slots.
func (g Geometry) ContiguousIn(order Order) bool {
	step, ok := g.LinearStride(order)
	return ok && step == 1
}

// StorageOrder returns the order in which the window is naturally laid out.
//
// An order in which the window is linear wins, ColMajor first; vectors and
// empty windows read the same in both orders and report ColMajor. Otherwise
// the order of the innermost (smallest stride) dimension is returned, so a
// transposed or sliced window reports the order of its underlying buffer.
func (g Geometry) StorageOrder() Order {
	if g.Len() <= 1 || g.Rows == 1 || g.Cols == 1 {
		return ColMajor
	}
	if _, ok := g.LinearStride(ColMajor); ok {
		return ColMajor
	}
	if _, ok := g.LinearStride(RowMajor); ok {
		return RowMajor
	}
	if absInt(g.RowStride) <= absInt(g.ColStride) {
		return ColMajor
	}
	return RowMajor
}

// Transpose swaps rows and columns.
func (g Geometry) Transpose() Geometry {
	return Geometry{
		Rows:      g.Cols,
		Cols:      g.Rows,
		RowStride: g.ColStride,
		ColStride: g.RowStride,
	}
}

// unravel maps a linear index to (row, col) under the given order.
func (g Geometry) unravel(k int, order Order) (i, j int) {
	if order == RowMajor {
		return k / g.Cols, k % g.Cols
	}
	return k % g.Rows, k / g.Rows
}

// checkIndex panics if (i, j) is outside the window.
func (g Geometry) checkIndex(i, j int) {
	if i < 0 || i >= g.Rows || j < 0 || j >= g.Cols {
		panic(fmt.Sprintf("%v: (%d, %d) for %dx%d", ErrIndexOutOfRange, i, j, g.Rows, g.Cols))
	}
}

// String returns a compact description of the window.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d strides(%d, %d)", g.Rows, g.Cols, g.RowStride, g.ColStride)
}

// stridesFor returns the strides of a window of dims laid out in order with
// the given inner step.
func stridesFor(d Dims, order Order, step int) (rowStride, colStride int) {
	if order == RowMajor {
		return d.Cols * step, step
	}
	return step, d.Rows * step
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
