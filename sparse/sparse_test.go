// SPDX-License-Identifier: MIT

// Package sparse_test contains unit tests for Matrix construction and
// element-level access in the sparse package.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures that New rejects negative dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := sparse.New(-1, 5)                          // attempt to create with negative rows
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = sparse.New(5, -1)                           // attempt to create with negative columns
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewZeroDimensions verifies that 0-sized shapes are legal degenerate matrices.
func TestNewZeroDimensions(t *testing.T) {
	m, err := sparse.New(0, 0) // the empty shape is allowed
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, 0, m.NNZ())

	_, err = m.At(0, 0)                                 // every index is outside a 0x0 matrix
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestRowsCols verifies that Rows() and Cols() return construction values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4               // define expected row and column counts
	m, err := sparse.New(rows, cols) // create a 3x4 matrix
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := sparse.New(2, 2) // create a 2x2 matrix
	require.NoError(t, err)

	_, err = m.At(-1, 0)                                // At() with negative row index
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // At() with column index out of range
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1)                                // Set() with row index out of range
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(0, -1, 4)                               // Set() with negative column index
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetGetRoundTrip validates that Set followed by At returns the stored value
// and that the storage count grows by at most one per distinct cell.
func TestSetGetRoundTrip(t *testing.T) {
	m, err := sparse.New(2, 3) // create a 2x3 matrix
	require.NoError(t, err)

	err = m.Set(1, 2, 7) // set element at row 1, column 2
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ()) // one stored element

	val, err := m.At(1, 2) // retrieve the stored element
	require.NoError(t, err)
	require.Equal(t, 7, val)

	err = m.Set(1, 2, -9) // overwrite the same cell
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ()) // overwrite does not grow storage

	val, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -9, val)

	val, err = m.At(0, 0) // untouched cell reads as zero
	require.NoError(t, err)
	require.Equal(t, 0, val)
}

// TestSetZeroRemoves ensures that writing 0 deletes the entry instead of storing it.
func TestSetZeroRemoves(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 5)) // store a value
	require.Equal(t, 1, m.NNZ())

	require.NoError(t, m.Set(0, 1, 0)) // zero write erases the cell
	require.Equal(t, 0, m.NNZ())       // no zero-valued entry is ever stored
	require.Empty(t, m.Entries())

	val, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, val) // erased cell reads as zero

	require.NoError(t, m.Set(1, 1, 0)) // zero write on an absent cell is a no-op
	require.Equal(t, 0, m.NNZ())
}

// TestCloneIndependence ensures Clone() returns a deep copy that shares no storage.
func TestCloneIndependence(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	clone := m.Clone() // clone the matrix
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3)) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, origVal) // original remains unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, cloneVal) // clone reflects the new value
}

// TestEqual covers shape mismatch, value mismatch, nil, and the reflexive case.
func TestEqual(t *testing.T) {
	a, err := sparse.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))

	b, err := sparse.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))

	require.True(t, a.Equal(b)) // same shape, same elements
	require.True(t, a.Equal(a)) // reflexive

	require.NoError(t, b.Set(1, 1, 9))
	require.False(t, a.Equal(b)) // extra element breaks equality

	wide, err := sparse.New(2, 3) // same elements, different shape
	require.NoError(t, err)
	require.NoError(t, wide.Set(0, 0, 1))
	require.False(t, a.Equal(wide))

	require.False(t, a.Equal(nil)) // nil is never equal
}

// TestEntriesRowMajor verifies that Entries sorts by row, then by column,
// regardless of insertion order.
func TestEntriesRowMajor(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)

	// Insert deliberately out of order.
	require.NoError(t, m.Set(2, 0, 5))
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 1, 4))

	want := []sparse.Entry{
		{Row: 0, Col: 1, Val: 2},
		{Row: 0, Col: 2, Val: 3},
		{Row: 1, Col: 1, Val: 4},
		{Row: 2, Col: 0, Val: 5},
	}
	require.Equal(t, want, m.Entries()) // ascending row, ties by ascending column
}
