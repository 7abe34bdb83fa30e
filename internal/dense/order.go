package dense

import (
	"fmt"
	"strings"
)

// Order is the traversal order used to map a linear index to (row, col).
type Order int

// Supported orders.
const (
	ColMajor Order = iota
	RowMajor
	AutoOrder // Use the source's own storage order
)

// String returns a human-readable order name.
func (o Order) String() string {
	switch o {
	case ColMajor:
		return "ColMajor"
	case RowMajor:
		return "RowMajor"
	case AutoOrder:
		return "AutoOrder"
	default:
		return "Unknown"
	}
}

// Flip swaps ColMajor and RowMajor. AutoOrder is returned unchanged.
func (o Order) Flip() Order {
	switch o {
	case ColMajor:
		return RowMajor
	case RowMajor:
		return ColMajor
	default:
		return o
	}
}

// ParseOrder parses an order name ("col", "colmajor", "row", "rowmajor", "auto").
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "col", "colmajor", "column", "c":
		return ColMajor, nil
	case "row", "rowmajor", "r":
		return RowMajor, nil
	case "auto", "autoorder", "":
		return AutoOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

// ResolveOrder returns the order a reshape actually traverses in.
// ColMajor and RowMajor requests are returned verbatim; AutoOrder resolves to
// the storage order of the source.
func ResolveOrder(requested, storage Order) Order {
	if requested == ColMajor || requested == RowMajor {
		return requested
	}
	if storage == RowMajor {
		return RowMajor
	}
	return ColMajor
}
