// SPDX-License-Identifier: MIT

// Package sparse: arithmetic over Matrix.
//
// Add and Sub share one engine (combine): clone the receiver, then fold
// the other operand's non-zero elements in with a binary op. Because a
// zero result is deleted on the spot, the no-zero-values invariant holds
// for every intermediate state, not just the final one.
//
// Mul groups the right operand's elements by row once, so each element of
// the left operand touches only the partners it can actually pair with.
// The dense O(n·m·p) triple loop never runs.

package sparse

import "fmt"

// combine returns a fresh matrix holding op(m, other) element-wise.
// Stage 1 (Validate): non-nil operand, identical shapes.
// Stage 2 (Prepare): deep-copy the receiver.
// Stage 3 (Execute): fold other's elements through op, deleting zeros.
// Complexity: O(nnz(m) + nnz(other)) map operations.
func (m *Matrix) combine(method string, other *Matrix, op func(a, b int) int) (*Matrix, error) {
	if other == nil {
		return nil, fmt.Errorf("Matrix.%s: %w", method, ErrNilMatrix)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, shapeErrorf(method, m, other, ErrDimensionMismatch)
	}

	out := m.Clone()
	for k, v := range other.elems {
		merged := op(out.elems[k], v)
		if merged == 0 {
			delete(out.elems, k)

			continue
		}
		out.elems[k] = merged
	}

	return out, nil
}

// Add returns m + other as a new matrix; neither operand is modified.
// Returns ErrDimensionMismatch unless shapes are identical.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.combine("Add", other, func(a, b int) int { return a + b })
}

// Sub returns m - other as a new matrix; neither operand is modified.
// Returns ErrDimensionMismatch unless shapes are identical.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.combine("Sub", other, func(a, b int) int { return a - b })
}

// Mul returns the matrix product m × other as a new rows(m)×cols(other)
// matrix; neither operand is modified. Returns ErrIncompatibleDimensions
// unless cols(m) == rows(other).
//
// Every stored a[i][k] is paired with every stored b[k][j], accumulating
// a[i][k]*b[k][j] into (i, j). Partial sums that cancel to zero are
// removed immediately.
// Complexity: O(nnz(m)·k + nnz(other)), k = max non-zeros per row of other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, fmt.Errorf("Matrix.Mul: %w", ErrNilMatrix)
	}
	if m.cols != other.rows {
		return nil, shapeErrorf("Mul", m, other, ErrIncompatibleDimensions)
	}

	// Group other's elements by row so the pairing below never scans
	// elements it cannot multiply with.
	byRow := make(map[int][]Entry)
	for k, v := range other.elems {
		byRow[k.row] = append(byRow[k.row], Entry{Row: k.row, Col: k.col, Val: v})
	}

	out := &Matrix{rows: m.rows, cols: other.cols, elems: make(map[cell]int)}
	for k, v := range m.elems {
		for _, e := range byRow[k.col] {
			dst := cell{row: k.row, col: e.Col}
			sum := out.elems[dst] + v*e.Val
			if sum == 0 {
				delete(out.elems, dst)

				continue
			}
			out.elems[dst] = sum
		}
	}

	return out, nil
}
