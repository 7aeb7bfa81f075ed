// SPDX-License-Identifier: MIT

// Package sparse: constructor and element-level accessors for Matrix.

package sparse

import "sort"

// New creates a rows×cols matrix with no stored elements.
// Stage 1 (Validate): both dimensions must be ≥ 0; zero is a legal
// degenerate shape on which every index is out of bounds.
// Stage 2 (Prepare): allocate the element map.
// Stage 3 (Finalize): return the empty matrix.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Matrix
	return &Matrix{rows: rows, cols: cols, elems: make(map[cell]int)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// NNZ returns the number of stored (non-zero) elements.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.elems)
}

// check validates that (row, col) addresses a cell inside the matrix.
// Complexity: O(1).
func (m *Matrix) check(row, col int) error {
	if row < 0 || row >= m.rows {
		return ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.cols {
		return ErrIndexOutOfBounds
	}

	return nil
}

// At retrieves the element at (row, col); absent elements read as 0.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): map lookup, zero when missing.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	if err := m.check(row, col); err != nil {
		return 0, indexErrorf("At", row, col, err)
	}

	return m.elems[cell{row, col}], nil
}

// Set assigns value at (row, col). Setting 0 removes any stored element,
// which keeps the no-zero-values invariant without a separate delete API.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): store or delete.
// Complexity: O(1).
func (m *Matrix) Set(row, col, value int) error {
	if err := m.check(row, col); err != nil {
		return indexErrorf("Set", row, col, err)
	}
	k := cell{row, col}
	if value == 0 {
		delete(m.elems, k)

		return nil
	}
	m.elems[k] = value

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, elems: make(map[cell]int, len(m.elems))}
	for k, v := range m.elems {
		out.elems[k] = v
	}

	return out
}

// Equal reports whether both matrices have the same dimensions and the
// same non-zero elements. A nil other is never equal.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.elems) != len(other.elems) {
		return false
	}
	for k, v := range m.elems {
		if ov, ok := other.elems[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Entries returns every stored element sorted by row, then column.
// The slice is a snapshot; mutating it does not affect the matrix.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.elems))
	for k, v := range m.elems {
		out = append(out, Entry{Row: k.row, Col: k.col, Val: v})
	}
	// Row-major order: by row, ties by column. Keys are unique, so the
	// comparison never needs a third component.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}
