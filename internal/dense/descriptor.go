package dense

// Source is anything that can be re-described as a strided window over
// shared storage. Matrix and View implement it, so any view can be reshaped
// again.
type Source[T DType] interface {
	Describe() Descriptor[T]
}

// Dense is the read-only structural contract shared by matrices and views.
type Dense[T DType] interface {
	Rows() int
	Cols() int
	At(i, j int) T
}

// Descriptor is a strided window over a reference-counted buffer.
//
// A mapped descriptor (see Mapped) applies its Geometry and Offset to the
// linear positions of a parent window read in a fixed order instead of to
// buffer slots. This is how a contiguous source is re-read in the other
// order without copying.
type Descriptor[T DType] struct {
	Geometry
	Offset   int  // Element offset of (0, 0) in the buffer, or in the parent's linear order when mapped
	Writable bool // Writes through this window reach the owner
	buf      *buffer[T]
	remap    *indexMap[T]
}

// indexMap sends a linear position to the parent element holding it.
type indexMap[T DType] struct {
	order  Order
	parent Descriptor[T]
}

// Mapped reports whether the window addresses its parent by linear position.
func (d Descriptor[T]) Mapped() bool {
	return d.remap != nil
}

// index returns the buffer slot of (i, j). Indices are not checked.
func (d Descriptor[T]) index(i, j int) int {
	p := d.Offset + i*d.RowStride + j*d.ColStride
	if d.remap == nil {
		return p
	}
	pi, pj := d.remap.parent.unravel(p, d.remap.order)
	return d.remap.parent.index(pi, pj)
}

// origin returns the buffer slot of the window's first element.
func (d Descriptor[T]) origin() int {
	switch {
	case d.remap == nil:
		return d.Offset
	case d.Len() == 0:
		return d.remap.parent.origin()
	default:
		return d.index(0, 0)
	}
}

// Order returns the storage order of the described window.
func (d Descriptor[T]) Order() Order {
	return d.StorageOrder()
}

// ContiguousIn reports whether the window, read in order, occupies
// consecutive buffer slots. Mapped windows with more than one element
// report false.
func (d Descriptor[T]) ContiguousIn(order Order) bool {
	if d.remap != nil {
		return d.Len() <= 1
	}
	return d.Geometry.ContiguousIn(order)
}

// Contiguous reports whether the window is contiguous in its storage order.
func (d Descriptor[T]) Contiguous() bool {
	return d.ContiguousIn(d.StorageOrder())
}

// Data returns the buffer starting at the window's first element.
// The slice aliases the owner's storage.
func (d Descriptor[T]) Data() []T {
	if d.buf == nil {
		return nil
	}
	start := d.origin()
	if start > len(d.buf.data) {
		return nil
	}
	return d.buf.data[start:]
}

// At returns the element at (i, j).
func (d Descriptor[T]) At(i, j int) T {
	d.checkIndex(i, j)
	return d.buf.data[d.index(i, j)]
}

// AtLinear returns the k-th element of the window read in the given order.
func (d Descriptor[T]) AtLinear(k int, order Order) T {
	if k < 0 || k >= d.Len() {
		panic(ErrIndexOutOfRange.Error())
	}
	i, j := d.unravel(k, ResolveOrder(order, d.StorageOrder()))
	return d.buf.data[d.index(i, j)]
}
