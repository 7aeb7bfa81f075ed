// SPDX-License-Identifier: MIT

// Package matfile: serialization side of the codec.

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spmat/sparse"
)

// Write emits m in the text format: both headers as declared max indexes
// (dimension - 1), then every non-zero element in row-major order, one per
// line. This is the exact inverse encoding of Parse; an all-zero matrix
// writes only the two headers.
// Complexity: O(nnz·log nnz) due to the row-major sort.
func Write(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return fmt.Errorf("matfile: %w", sparse.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%d\n", rowsPrefix, m.Rows()-1); err != nil {
		return fmt.Errorf("matfile: write: %w", err)
	}
	if _, err := fmt.Fprintf(bw, "%s%d\n", colsPrefix, m.Cols()-1); err != nil {
		return fmt.Errorf("matfile: write: %w", err)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Val); err != nil {
			return fmt.Errorf("matfile: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matfile: write: %w", err)
	}

	return nil
}

// Save creates or truncates path and writes m there.
func Save(path string, m *sparse.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matfile: %w", err)
	}
	if err = Write(f, m); err != nil {
		_ = f.Close()

		return err
	}
	// Report the close failure: buffered data may reach the disk only here.
	if err = f.Close(); err != nil {
		return fmt.Errorf("matfile: close %s: %w", path, err)
	}

	return nil
}
