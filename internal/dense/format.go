package dense

import (
	"fmt"
	"strings"
)

// Format renders src as right-aligned rows, one line per row:
//
//	[ 0  4  8 12]
//	[ 1  5  9 13]
func Format[T DType](src Dense[T]) string {
	rows, cols := src.Rows(), src.Cols()
	cells := make([]string, rows*cols)
	width := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := fmt.Sprint(src.At(i, j))
			cells[i*cols+j] = s
			width = max(width, len(s))
		}
	}

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", width, cells[i*cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
