package dense

import "github.com/born-ml/dense/internal/parallel"

// Equal reports whether a and b have the same dimensions and elements.
func Equal[T DType](a, b Dense[T]) bool {
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false
	}
	return parallel.All(rows*cols, func(k int) bool {
		i, j := k%rows, k/rows
		return a.At(i, j) == b.At(i, j)
	}, parallelConfig)
}

// SameStorage reports whether a and b alias the same buffer at the same
// starting element.
func SameStorage[T DType](a, b Source[T]) bool {
	da, db := a.Describe(), b.Describe()
	return da.buf != nil && da.buf == db.buf && da.origin() == db.origin()
}
