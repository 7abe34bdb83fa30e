package dense

import (
	"github.com/born-ml/dense/internal/parallel"
)

// parallelConfig tunes gathers on the materialize path and comparisons.
var parallelConfig = parallel.DefaultConfig()

// Reshape returns src re-described as a rows x cols matrix read in order.
//
// The k-th element of the result, counted in the effective order, is the
// k-th element of src counted in the same order. The effective order is
// order itself for ColMajor and RowMajor, and the source storage order for
// AutoOrder.
//
// Whenever src can be walked in that order with a uniform stride the result
// aliases src with plain strides. A source that is contiguous in its storage
// order but read in the other order is aliased through an index map. Both
// kinds are zero-copy and writable if src is. Otherwise the elements are
// gathered into a new contiguous buffer and the result is a read-only copy.
//
// Example:
//
//	m := dense.Arange[int32](4, 4, dense.ColMajor)
//	v, err := dense.Reshape[int32](m, dense.Dyn(2), dense.AutoSize, dense.ColMajor) // 2x8 alias
func Reshape[T DType](src Source[T], rows, cols Extent, order Order) (*View[T], error) {
	desc := src.Describe()

	dims, err := ResolveDims(rows, cols, desc.Len())
	if err != nil {
		return nil, err
	}

	effective := ResolveOrder(order, desc.StorageOrder())
	layout := Synthesize(dims, effective, desc.Geometry)
	geom := Geometry{
		Rows:      dims.Rows,
		Cols:      dims.Cols,
		RowStride: layout.RowStride,
		ColStride: layout.ColStride,
	}

	switch {
	case layout.Materialize:
		out := Descriptor[T]{
			Geometry: geom,
			buf:      gather(desc, effective),
		}
		return newView(out, effective, true), nil
	case layout.Mapped:
		out := Descriptor[T]{
			Geometry: geom,
			Writable: desc.Writable,
			buf:      desc.buf,
			remap:    &indexMap[T]{order: effective, parent: desc},
		}
		return newView(out, effective, false), nil
	}

	out := Descriptor[T]{
		Geometry: geom,
		Offset:   desc.Offset,
		Writable: desc.Writable,
		buf:      desc.buf,
		remap:    desc.remap,
	}
	return newView(out, effective, false), nil
}

// MustReshape is like Reshape but panics on error.
func MustReshape[T DType](src Source[T], rows, cols Extent, order Order) *View[T] {
	v, err := Reshape(src, rows, cols, order)
	if err != nil {
		panic(err)
	}
	return v
}

// gather copies the elements of desc, read in order, into a new buffer.
func gather[T DType](desc Descriptor[T], order Order) *buffer[T] {
	n := desc.Len()
	buf := newBuffer[T](n)
	src := desc.buf.data
	parallel.ForRange(n, func(start, end int) {
		for k := start; k < end; k++ {
			i, j := desc.unravel(k, order)
			buf.data[k] = src[desc.index(i, j)]
		}
	}, parallelConfig)
	return buf
}
