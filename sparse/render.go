// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Formatting literals for the human-readable dump.
const (
	headerFmt  = "Rows: %d, Cols: %d\n"
	sectionHdr = "Non-zero elements:\n"
	entryFmt   = "  (%d, %d, %d)\n"
	emptyNote  = "  (No non-zero elements)\n"
)

// String implements fmt.Stringer: a dimension line, a section header, then
// one indented (row, col, value) line per stored element in row-major
// order, or a placeholder when nothing is stored.
// Complexity: O(nnz·log nnz) due to the row-major sort.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, headerFmt, m.rows, m.cols)
	b.WriteString(sectionHdr)

	entries := m.Entries()
	if len(entries) == 0 {
		b.WriteString(emptyNote)

		return b.String()
	}
	for _, e := range entries {
		fmt.Fprintf(&b, entryFmt, e.Row, e.Col, e.Val)
	}

	return b.String()
}
