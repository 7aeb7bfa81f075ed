// SPDX-License-Identifier: MIT

// Package sparse: core storage types.

package sparse

// cell addresses a single element of a Matrix.
// Map keys must be comparable, so coordinates live in one small struct
// instead of nested maps; the element map stays flat.
type cell struct {
	row, col int
}

// Entry is one non-zero element in (row, col, value) form.
// Entries returns them sorted by row, then by column.
type Entry struct {
	Row, Col, Val int
}

// Matrix is a rows×cols integer matrix that stores only non-zero elements.
//
// Invariants, maintained by every method:
//   - dimensions are fixed at construction and never negative;
//   - elems never holds a zero value (Set deletes instead);
//   - every key lies strictly inside [0,rows)×[0,cols).
//
// A Matrix is not safe for concurrent mutation; distinct matrices share
// no state and may be used from distinct goroutines freely.
type Matrix struct {
	rows, cols int          // fixed logical shape
	elems      map[cell]int // non-zero elements only
}
