// SPDX-License-Identifier: MIT

// Package sparse_test contains unit tests for the human-readable rendering.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/require"
)

// TestStringRowMajor checks that String lists elements row-major with the
// dimension header and two-space indentation.
func TestStringRowMajor(t *testing.T) {
	m, err := sparse.New(2, 3)
	require.NoError(t, err)

	// Insert out of order; rendering must still be row-major.
	require.NoError(t, m.Set(1, 0, -3))
	require.NoError(t, m.Set(0, 2, 9))
	require.NoError(t, m.Set(0, 1, 4))

	expected := "Rows: 2, Cols: 3\n" +
		"Non-zero elements:\n" +
		"  (0, 1, 4)\n" +
		"  (0, 2, 9)\n" +
		"  (1, 0, -3)\n"
	require.Equal(t, expected, m.String())
}

// TestStringEmpty checks the explicit placeholder for an all-zero matrix.
func TestStringEmpty(t *testing.T) {
	m, err := sparse.New(4, 4)
	require.NoError(t, err)

	expected := "Rows: 4, Cols: 4\n" +
		"Non-zero elements:\n" +
		"  (No non-zero elements)\n"
	require.Equal(t, expected, m.String())
}
