package dense

import "github.com/born-ml/dense/internal/parallel"

// All selects every element of src by column-major linear index and returns
// them as a rows*cols x 1 column. It always copies and does not go through
// the reshape path.
func All[T DType](src Dense[T]) *Matrix[T] {
	rows, cols := src.Rows(), src.Cols()
	out := Zeros[T](rows*cols, 1, ColMajor)
	for k := range out.buf.data {
		out.buf.data[k] = src.At(k%rows, k/rows)
	}
	return out
}

// Eval copies any dense operand into a new Matrix stored in order.
// AutoOrder stores the result column-major.
func Eval[T DType](src Dense[T], order Order) *Matrix[T] {
	order = ResolveOrder(order, ColMajor)
	rows, cols := src.Rows(), src.Cols()
	out := Zeros[T](rows, cols, order)
	g, data := out.geometry(), out.buf.data
	parallel.For(len(data), func(k int) {
		i, j := g.unravel(k, order)
		data[k] = src.At(i, j)
	}, parallelConfig)
	return out
}
