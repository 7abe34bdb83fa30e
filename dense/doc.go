// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides dense matrices and zero-copy reshaped views.
//
// # Overview
//
// A reshape reinterprets the elements of a matrix (or of any view over one)
// as a matrix of different dimensions and/or traversal order:
//   - Extents are fixed (Fix), dynamic (Dyn) or inferred (AutoSize)
//   - Orders are ColMajor, RowMajor or AutoOrder (the source's own order)
//   - Reshapes chain: a reshaped view can be reshaped again
//   - Reshapes of contiguous sources always alias the source
//
// # Basic Usage
//
//	import "github.com/born-ml/dense/dense"
//
//	func main() {
//	    m := dense.Arange[int32](4, 4, dense.ColMajor)
//
//	    v, err := m.Reshaped(dense.Dyn(2), dense.AutoSize) // 2x8, aliases m
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    v.Set(0, 0, 42) // writes through to m
//
//	    r := m.MustReshaped(dense.RowMajor, dense.Dyn(1), dense.AutoSize)
//	    // r reads m row by row: [42 4 8 12 1 5 9 13 ...], still aliasing m
//	}
//
// # Aliasing and Materialization
//
// The k-th element of a reshape, counted in the effective order, is the k-th
// element of the source counted in the same order. When the source can be
// walked in that order with a single stride, the result is a view over the
// same storage: Data() shares memory with the source and writes propagate.
// A source that is contiguous in its storage order but read in the other
// order is still aliased: the view maps each position through the source's
// linear order (Mapped reports this). Only sources that are not contiguous,
// such as blocks, are gathered into a new buffer, and the result is a
// read-only copy; Materialized reports that case.
//
// AutoOrder always selects the source's storage order, so it never copies
// when any order could avoid it.
//
// # Errors
//
// Reshape failures are *ShapeError values matching one of ErrShapeMismatch,
// ErrNonDivisibleShape, ErrAmbiguousShape or ErrDegenerateShape via errors.Is.
// Out of range indexing and writes through read-only views panic.
//
// # Lifetime
//
// Views do not own the storage they alias. A view is invalid once the owning
// Matrix has been released. Concurrent writes through views over the same
// matrix need external synchronization.
package dense
