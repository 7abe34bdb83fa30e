package dense

import (
	"fmt"
	"strconv"
	"strings"
)

type extentKind uint8

const (
	extentDynamic extentKind = iota
	extentFixed
	extentAuto
)

// Extent is a requested dimension: a fixed size, a dynamic size, or AutoSize.
//
// Fixed and dynamic extents resolve identically. A fixed extent marks a size
// that is part of the call site rather than computed at run time, which lets
// resolution errors be reported as statically determinable.
type Extent struct {
	kind extentKind
	n    int
}

// AutoSize asks the resolver to infer the dimension from the element count.
var AutoSize = Extent{kind: extentAuto}

// Fix returns a fixed extent of size n.
func Fix(n int) Extent {
	return Extent{kind: extentFixed, n: n}
}

// Dyn returns a dynamic extent of size n.
func Dyn(n int) Extent {
	return Extent{kind: extentDynamic, n: n}
}

// IsAuto reports whether e is AutoSize.
func (e Extent) IsAuto() bool { return e.kind == extentAuto }

// IsFixed reports whether e is a fixed extent.
func (e Extent) IsFixed() bool { return e.kind == extentFixed }

// Value returns the size carried by e, or -1 for AutoSize.
func (e Extent) Value() int {
	if e.kind == extentAuto {
		return -1
	}
	return e.n
}

// String returns "auto", "N!" for fixed extents or "N" for dynamic ones.
func (e Extent) String() string {
	switch e.kind {
	case extentAuto:
		return "auto"
	case extentFixed:
		return strconv.Itoa(e.n) + "!"
	default:
		return strconv.Itoa(e.n)
	}
}

// ParseExtent parses the String form of an Extent.
// "auto", "_" and "-1" are accepted for AutoSize.
func ParseExtent(s string) (Extent, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "auto", "_", "-1":
		return AutoSize, nil
	}

	fixed := strings.HasSuffix(s, "!")
	n, err := strconv.Atoi(strings.TrimSuffix(s, "!"))
	if err != nil {
		return Extent{}, fmt.Errorf("invalid extent %q: %w", s, err)
	}
	if n < 0 {
		return Extent{}, fmt.Errorf("invalid extent %q: must be >= 0", s)
	}
	if fixed {
		return Fix(n), nil
	}
	return Dyn(n), nil
}
