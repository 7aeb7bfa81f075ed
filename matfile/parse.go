// SPDX-License-Identifier: MIT

// Package matfile: parsing side of the codec.

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmat/sparse"
)

// Header prefixes and entry framing of the text format.
const (
	rowsPrefix = "rows="
	colsPrefix = "cols="
	entryOpen  = "("
	entryClose = ")"

	// entryFields is the exact number of comma-separated fields per entry.
	entryFields = 3
)

// Parse reads the matrix format from r and returns the populated matrix.
//
// State machine over trimmed lines, tracking rowsSeen/colsSeen:
//  1. blank line            → skip.
//  2. "rows=…" / "cols=…"   → duplicate check, then integer syntax check,
//     then range check (≥ -1); dimension = declared max index + 1.
//  3. "(…)"                 → rejected unless both headers were seen;
//     split into exactly three integer fields, then bounds-checked and
//     stored through Set (so zero values vanish like any other write).
//  4. anything else         → ErrUnrecognizedLine.
//
// After the last line both headers must have been seen. The first failure
// aborts the whole parse and carries its 1-based line number; no partially
// populated matrix ever escapes.
//
// Complexity: O(lines + nnz) time, O(nnz) memory.
func Parse(r io.Reader) (*sparse.Matrix, error) {
	var (
		rows, cols         int  // dimensions, valid once the matching flag is set
		rowsSeen, colsSeen bool // header bookkeeping
		m                  *sparse.Matrix
		lineNo             int // 1-based, counts blank lines too
		line               string
		err                error
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			// Blank lines are legal anywhere, headers included.

		case strings.HasPrefix(line, rowsPrefix):
			if rowsSeen {
				return nil, parseErrorf(ErrDuplicateHeader, lineNo, "%s declared again", rowsPrefix)
			}
			if rows, err = headerValue(line, rowsPrefix, lineNo); err != nil {
				return nil, err
			}
			rowsSeen = true

		case strings.HasPrefix(line, colsPrefix):
			if colsSeen {
				return nil, parseErrorf(ErrDuplicateHeader, lineNo, "%s declared again", colsPrefix)
			}
			if cols, err = headerValue(line, colsPrefix, lineNo); err != nil {
				return nil, err
			}
			colsSeen = true

		case strings.HasPrefix(line, entryOpen) && strings.HasSuffix(line, entryClose):
			if !rowsSeen || !colsSeen {
				return nil, parseErrorf(ErrHeaderMissing, lineNo,
					"entry before %s and %s headers", rowsPrefix, colsPrefix)
			}
			if m == nil {
				if m, err = sparse.New(rows, cols); err != nil {
					return nil, err
				}
			}
			if err = storeEntry(m, line, lineNo); err != nil {
				return nil, err
			}

		default:
			return nil, parseErrorf(ErrUnrecognizedLine, lineNo, "cannot interpret %q", line)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("matfile: read: %w", err)
	}
	if !rowsSeen || !colsSeen {
		return nil, fmt.Errorf("missing %s: %w", missingHeaders(rowsSeen, colsSeen), ErrMissingHeaders)
	}
	// Header-only input is legal; build the empty matrix now.
	if m == nil {
		if m, err = sparse.New(rows, cols); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Load opens path and parses it. The underlying I/O failure is preserved,
// so callers can branch with errors.Is(err, fs.ErrNotExist).
func Load(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// headerValue extracts the substring after the first '=' of a header line,
// validates it, and returns the dimension (declared max index + 1).
func headerValue(line, prefix string, lineNo int) (int, error) {
	raw := strings.TrimSpace(line[len(prefix):])
	if !validInt(raw) {
		return 0, parseErrorf(ErrMalformedHeader, lineNo, "%s value %q is not an integer", prefix, raw)
	}
	declared, err := strconv.Atoi(raw)
	if err != nil || declared == math.MaxInt {
		// Syntax already passed, so a failure here is an int overflow;
		// MaxInt itself overflows once the +1 dimension is computed.
		return 0, parseErrorf(ErrMalformedHeader, lineNo, "%s value %q does not fit in int", prefix, raw)
	}
	if declared < -1 {
		return 0, parseErrorf(ErrHeaderOutOfRange, lineNo,
			"%s declares max index %d, minimum is -1", prefix, declared)
	}

	return declared + 1, nil
}

// storeEntry parses one "(row, col, value)" line into m.
func storeEntry(m *sparse.Matrix, line string, lineNo int) error {
	inner := line[len(entryOpen) : len(line)-len(entryClose)]
	fields := strings.Split(inner, ",")
	if len(fields) != entryFields {
		return parseErrorf(ErrMalformedEntry, lineNo,
			"expected %d comma-separated fields, found %d", entryFields, len(fields))
	}

	var nums [entryFields]int
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if !validInt(f) {
			return parseErrorf(ErrMalformedEntry, lineNo, "field %q is not an integer", f)
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return parseErrorf(ErrMalformedEntry, lineNo, "field %q does not fit in int", f)
		}
		nums[i] = n
	}

	// Set is the sole mutation path; its only failure mode here is bounds.
	if err := m.Set(nums[0], nums[1], nums[2]); err != nil {
		return parseErrorf(ErrEntryOutOfBounds, lineNo,
			"entry (%d, %d) outside %dx%d matrix", nums[0], nums[1], m.Rows(), m.Cols())
	}

	return nil
}

// validInt reports whether s is an optionally signed ASCII decimal integer:
// one optional leading '+' or '-', then one or more digits, nothing else.
func validInt(s string) bool {
	if s == "" {
		return false
	}
	digits := s
	if digits[0] == '+' || digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}

// missingHeaders names the absent header(s) for the end-of-input diagnostic.
func missingHeaders(rowsSeen, colsSeen bool) string {
	switch {
	case !rowsSeen && !colsSeen:
		return rowsPrefix + " and " + colsPrefix
	case !rowsSeen:
		return rowsPrefix
	default:
		return colsPrefix
	}
}
