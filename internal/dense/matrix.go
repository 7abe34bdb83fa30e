package dense

import "fmt"

// Matrix is an owning dense matrix stored contiguously in column-major or
// row-major order.
//
// Example:
//
//	m := dense.Arange[int32](4, 4, dense.ColMajor)
//	v := m.MustReshaped(dense.RowMajor, dense.Dyn(1), dense.AutoSize)
type Matrix[T DType] struct {
	buf   *buffer[T]
	rows  int
	cols  int
	order Order
}

// Verify that Matrix satisfies the collaborator contracts.
var (
	_ Source[float32] = (*Matrix[float32])(nil)
	_ Dense[float32]  = (*Matrix[float32])(nil)
)

// NewMatrix creates a zeroed rows x cols matrix stored in order.
// order must be ColMajor or RowMajor.
func NewMatrix[T DType](rows, cols int, order Order) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: must be >= 0", rows, cols)
	}
	if order != ColMajor && order != RowMajor {
		return nil, fmt.Errorf("new matrix: %w: %v", ErrInvalidOrder, order)
	}
	return &Matrix[T]{
		buf:   newBuffer[T](rows * cols),
		rows:  rows,
		cols:  cols,
		order: order,
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Len returns the number of elements.
func (m *Matrix[T]) Len() int { return m.rows * m.cols }

// Dims returns the matrix dimensions.
func (m *Matrix[T]) Dims() Dims { return Dims{Rows: m.rows, Cols: m.cols} }

// Order returns the storage order.
func (m *Matrix[T]) Order() Order { return m.order }

// DType returns the element data type.
func (m *Matrix[T]) DType() DataType { return dataTypeOf[T]() }

// Bytes returns the size of the matrix storage in bytes.
func (m *Matrix[T]) Bytes() int { return m.Len() * m.DType().Size() }

// Strides returns the row and column strides in elements.
func (m *Matrix[T]) Strides() (rowStride, colStride int) {
	return stridesFor(m.Dims(), m.order, 1)
}

func (m *Matrix[T]) geometry() Geometry {
	rs, cs := m.Strides()
	return Geometry{Rows: m.rows, Cols: m.cols, RowStride: rs, ColStride: cs}
}

// Data returns the underlying storage in storage order (zero-copy).
//
// WARNING: Modifications to the returned slice modify the matrix.
func (m *Matrix[T]) Data() []T {
	return m.buf.data
}

// At returns the element at (i, j).
// Panics if indices are out of bounds.
func (m *Matrix[T]) At(i, j int) T {
	g := m.geometry()
	g.checkIndex(i, j)
	return m.buf.data[i*g.RowStride+j*g.ColStride]
}

// Set sets the element at (i, j).
// Panics if indices are out of bounds.
func (m *Matrix[T]) Set(i, j int, value T) {
	g := m.geometry()
	g.checkIndex(i, j)
	m.buf.data[i*g.RowStride+j*g.ColStride] = value
}

// Describe returns a writable descriptor of the whole matrix.
func (m *Matrix[T]) Describe() Descriptor[T] {
	return Descriptor[T]{
		Geometry: m.geometry(),
		Writable: true,
		buf:      m.buf,
	}
}

// View returns a writable view of the whole matrix.
func (m *Matrix[T]) View() *View[T] {
	return newView(m.Describe(), m.order, false)
}

// ReadOnly returns a view of the whole matrix that rejects writes.
// Every reshape, transpose or block of it is read-only as well.
func (m *Matrix[T]) ReadOnly() *View[T] {
	desc := m.Describe()
	desc.Writable = false
	return newView(desc, m.order, false)
}

// Transpose returns the transpose of the matrix as a view (zero-copy).
func (m *Matrix[T]) Transpose() *View[T] {
	return m.View().Transpose()
}

// Block returns the r x c sub-window starting at (i, j) as a view.
func (m *Matrix[T]) Block(i, j, r, c int) *View[T] {
	return m.View().Block(i, j, r, c)
}

// Reshaped reshapes the matrix in column-major order.
func (m *Matrix[T]) Reshaped(rows, cols Extent) (*View[T], error) {
	return Reshape[T](m, rows, cols, ColMajor)
}

// ReshapedAs reshapes the matrix, reading and laying out elements in order.
func (m *Matrix[T]) ReshapedAs(order Order, rows, cols Extent) (*View[T], error) {
	return Reshape[T](m, rows, cols, order)
}

// MustReshaped is like ReshapedAs but panics on error.
func (m *Matrix[T]) MustReshaped(order Order, rows, cols Extent) *View[T] {
	return MustReshape[T](m, rows, cols, order)
}

// Flatten returns the matrix as a single column read in order.
func (m *Matrix[T]) Flatten(order Order) *View[T] {
	return MustReshape[T](m, AutoSize, Fix(1), order)
}

// Clone returns a matrix sharing the same buffer (reference counted).
func (m *Matrix[T]) Clone() *Matrix[T] {
	m.buf.addRef()
	return &Matrix[T]{
		buf:   m.buf,
		rows:  m.rows,
		cols:  m.cols,
		order: m.order,
	}
}

// Release drops this matrix's reference to its buffer. Views over a matrix
// whose buffer has been freed are invalid.
func (m *Matrix[T]) Release() {
	m.buf.release()
}

// IsUnique returns true if no clone shares the buffer.
func (m *Matrix[T]) IsUnique() bool {
	return m.buf.isUnique()
}

// String returns a human-readable description of the matrix.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix[%s]%v %s", m.DType(), m.Dims(), m.order)
}
