package dense

import "fmt"

// Dims is a fully resolved (rows, cols) pair.
type Dims struct {
	Rows int
	Cols int
}

// Len returns rows*cols.
func (d Dims) Len() int {
	return d.Rows * d.Cols
}

// String returns "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// ResolveDims resolves the requested extents against the total element count.
//
// Rules:
//   - Both explicit: rows*cols must equal total (ErrShapeMismatch).
//   - One AutoSize: the explicit side must divide total (ErrNonDivisibleShape)
//     and the AutoSize side becomes total/explicit.
//   - Both AutoSize: ErrAmbiguousShape.
//   - An explicit zero next to AutoSize resolves only when total is zero too
//     (to 0 on the inferred side); otherwise ErrDegenerateShape.
//
// Resolution either fully succeeds or fails; no partial Dims are returned.
func ResolveDims(rows, cols Extent, total int) (Dims, error) {
	fail := func(kind error) (Dims, error) {
		return Dims{}, &ShapeError{
			Kind:   kind,
			Rows:   rows,
			Cols:   cols,
			Total:  total,
			Static: rows.IsFixed() && cols.IsFixed(),
		}
	}

	if rows.IsAuto() && cols.IsAuto() {
		return fail(ErrAmbiguousShape)
	}
	if (!rows.IsAuto() && rows.n < 0) || (!cols.IsAuto() && cols.n < 0) || total < 0 {
		return fail(ErrShapeMismatch)
	}

	if !rows.IsAuto() && !cols.IsAuto() {
		if !productIs(rows.n, cols.n, total) {
			return fail(ErrShapeMismatch)
		}
		return Dims{Rows: rows.n, Cols: cols.n}, nil
	}

	explicit := rows.n
	if rows.IsAuto() {
		explicit = cols.n
	}

	var inferred int
	switch {
	case explicit == 0 && total != 0:
		return fail(ErrDegenerateShape)
	case explicit == 0:
		inferred = 0
	case total%explicit != 0:
		return fail(ErrNonDivisibleShape)
	default:
		inferred = total / explicit
	}

	if rows.IsAuto() {
		return Dims{Rows: inferred, Cols: explicit}, nil
	}
	return Dims{Rows: explicit, Cols: inferred}, nil
}

// productIs reports whether a*b == total for non-negative operands without
// overflowing.
func productIs(a, b, total int) bool {
	if a == 0 || b == 0 {
		return total == 0
	}
	return a <= total/b && a*b == total
}
