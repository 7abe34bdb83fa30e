package dense

import "fmt"

// View is a window over matrix storage with its own dimensions, strides and
// traversal order. Reshapes, transposes and blocks all produce Views, and a
// View can be reshaped again.
//
// A View does not own the elements it aliases (unless it was materialized):
// it is invalid once the owning Matrix is released.
type View[T DType] struct {
	desc         Descriptor[T]
	order        Order // Order used for linear indexing and inner/outer strides
	materialized bool
}

// Verify that View satisfies the collaborator contracts.
var (
	_ Source[float32] = (*View[float32])(nil)
	_ Dense[float32]  = (*View[float32])(nil)
)

func newView[T DType](desc Descriptor[T], order Order, materialized bool) *View[T] {
	return &View[T]{
		desc:         desc,
		order:        order,
		materialized: materialized,
	}
}

// AsView wraps any source in a View, keeping its storage order.
func AsView[T DType](src Source[T]) *View[T] {
	switch s := src.(type) {
	case *View[T]:
		return s
	case *Matrix[T]:
		return s.View()
	}
	desc := src.Describe()
	return newView(desc, desc.Order(), false)
}

// Transpose returns the transpose of any source without copying.
func Transpose[T DType](src Source[T]) *View[T] {
	return AsView(src).Transpose()
}

// Rows returns the number of rows.
func (v *View[T]) Rows() int { return v.desc.Rows }

// Cols returns the number of columns.
func (v *View[T]) Cols() int { return v.desc.Cols }

// Len returns rows*cols.
func (v *View[T]) Len() int { return v.desc.Len() }

// Dims returns the view dimensions.
func (v *View[T]) Dims() Dims { return v.desc.Dims() }

// Order returns the effective traversal order of the view.
func (v *View[T]) Order() Order { return v.order }

// RowStride returns the element distance between consecutive rows.
// For mapped views, strides count positions in the source's linear order.
func (v *View[T]) RowStride() int { return v.desc.RowStride }

// ColStride returns the element distance between consecutive columns.
func (v *View[T]) ColStride() int { return v.desc.ColStride }

// InnerStride returns the stride along the dimension that varies fastest in
// the view's order.
func (v *View[T]) InnerStride() int {
	if v.order == RowMajor {
		return v.desc.ColStride
	}
	return v.desc.RowStride
}

// OuterStride returns the stride along the slower dimension.
func (v *View[T]) OuterStride() int {
	if v.order == RowMajor {
		return v.desc.RowStride
	}
	return v.desc.ColStride
}

// Offset returns the buffer slot of (0, 0).
func (v *View[T]) Offset() int { return v.desc.origin() }

// IsContiguous reports whether the view, read in its order, occupies
// consecutive storage slots.
func (v *View[T]) IsContiguous() bool {
	return v.desc.ContiguousIn(v.order)
}

// Mapped reports whether the view aliases its source through an index map:
// its strides step through the source's linear order rather than memory.
func (v *View[T]) Mapped() bool { return v.desc.Mapped() }

// Materialized reports whether the view owns a gathered copy instead of
// aliasing its source.
func (v *View[T]) Materialized() bool { return v.materialized }

// Writable reports whether Set writes through to the source storage.
func (v *View[T]) Writable() bool { return v.desc.Writable }

// Describe returns the view as a source for further reshapes.
func (v *View[T]) Describe() Descriptor[T] { return v.desc }

// Data returns the storage starting at the view's first element.
// For aliasing views this is the source buffer; the slice is not limited to
// the elements the view covers.
//
// WARNING: Modifications to the returned slice bypass the Writable flag.
func (v *View[T]) Data() []T { return v.desc.Data() }

// At returns the element at (i, j).
// Panics if indices are out of bounds.
func (v *View[T]) At(i, j int) T {
	return v.desc.At(i, j)
}

// Set sets the element at (i, j), writing through to the aliased storage.
// Panics if the view is read-only or indices are out of bounds.
func (v *View[T]) Set(i, j int, value T) {
	if !v.desc.Writable {
		panic(fmt.Sprintf("set (%d, %d): %v", i, j, ErrReadOnly))
	}
	v.desc.checkIndex(i, j)
	v.desc.buf.data[v.desc.index(i, j)] = value
}

// AtLinear returns the k-th element in the view's order.
func (v *View[T]) AtLinear(k int) T {
	return v.desc.AtLinear(k, v.order)
}

// SetLinear sets the k-th element in the view's order.
func (v *View[T]) SetLinear(k int, value T) {
	if k < 0 || k >= v.Len() {
		panic(fmt.Sprintf("set linear %d: %v (len %d)", k, ErrIndexOutOfRange, v.Len()))
	}
	i, j := v.desc.unravel(k, v.order)
	v.Set(i, j, value)
}

// Transpose returns the transpose of the view without copying.
func (v *View[T]) Transpose() *View[T] {
	desc := v.desc
	desc.Geometry = desc.Transpose()
	return &View[T]{
		desc:         desc,
		order:        v.order.Flip(),
		materialized: v.materialized,
	}
}

// Block returns the r x c sub-window starting at (i, j) without copying.
// Panics if the block does not fit.
func (v *View[T]) Block(i, j, r, c int) *View[T] {
	if i < 0 || j < 0 || r < 0 || c < 0 || i+r > v.Rows() || j+c > v.Cols() {
		panic(fmt.Sprintf("block (%d, %d, %d, %d): %v for %v", i, j, r, c, ErrIndexOutOfRange, v.Dims()))
	}
	desc := v.desc
	desc.Offset += i*desc.RowStride + j*desc.ColStride
	desc.Rows, desc.Cols = r, c
	return &View[T]{
		desc:         desc,
		order:        v.order,
		materialized: v.materialized,
	}
}

// Reshaped reshapes the view in column-major order.
func (v *View[T]) Reshaped(rows, cols Extent) (*View[T], error) {
	return Reshape[T](v, rows, cols, ColMajor)
}

// ReshapedAs reshapes the view, reading and laying out elements in order.
func (v *View[T]) ReshapedAs(order Order, rows, cols Extent) (*View[T], error) {
	return Reshape[T](v, rows, cols, order)
}

// MustReshaped is like ReshapedAs but panics on error.
func (v *View[T]) MustReshaped(order Order, rows, cols Extent) *View[T] {
	return MustReshape[T](v, rows, cols, order)
}

// Flatten returns the view as a single column read in order.
func (v *View[T]) Flatten(order Order) *View[T] {
	return MustReshape[T](v, AutoSize, Fix(1), order)
}

// Eval copies the view into a new Matrix stored in the view's order.
func (v *View[T]) Eval() *Matrix[T] {
	return Eval[T](v, v.order)
}

// String returns a human-readable description of the view.
func (v *View[T]) String() string {
	kind := "alias"
	switch {
	case v.materialized:
		kind = "materialized"
	case v.desc.Mapped():
		kind = "mapped"
	}
	return fmt.Sprintf("View[%s]%v %s strides(%d, %d) %s",
		dataTypeOf[T](), v.Dims(), v.order, v.desc.RowStride, v.desc.ColStride, kind)
}
