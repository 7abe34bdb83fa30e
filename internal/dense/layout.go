package dense

// Layout is the outcome of stride synthesis for a reshape.
type Layout struct {
	RowStride int
	ColStride int
	// Mapped is set when the source is contiguous in its storage order but
	// is read in the other one. The strides then step through the source's
	// linear positions in the requested order, not through memory.
	Mapped bool
	// Materialize is set when the source is not contiguous and cannot be
	// walked in the requested order with a uniform step. The strides then
	// describe a fresh contiguous buffer rather than the source storage.
	Materialize bool
}

// Synthesize computes the strides of a reshape of src to dims, read in order.
//
// If src is linear in order with step s (contiguous sources have s == 1),
// the reshape is a pure relabelling of the same memory: ColMajor gives
// (s, rows*s) and RowMajor gives (cols*s, s). A source that is contiguous
// in its storage order but read in the other order keeps aliasing through
// an index map (Mapped). Anything else is gathered into a new buffer.
//
// order must be ColMajor or RowMajor; callers resolve AutoOrder first
// (see ResolveOrder).
func Synthesize(dims Dims, order Order, src Geometry) Layout {
	if step, ok := src.LinearStride(order); ok {
		rs, cs := stridesFor(dims, order, step)
		return Layout{RowStride: rs, ColStride: cs}
	}
	rs, cs := stridesFor(dims, order, 1)
	if src.ContiguousIn(src.StorageOrder()) {
		return Layout{RowStride: rs, ColStride: cs, Mapped: true}
	}
	return Layout{RowStride: rs, ColStride: cs, Materialize: true}
}
