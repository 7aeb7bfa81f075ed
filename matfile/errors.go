// SPDX-License-Identifier: MIT

// Package matfile: sentinel error set and the line-scoped ParseError.
// Callers branch with errors.Is against the sentinels; the line number of
// a violation is part of the public contract and travels in ParseError.

package matfile

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateHeader indicates a rows= or cols= header declared twice.
	ErrDuplicateHeader = errors.New("matfile: duplicate header")

	// ErrMalformedHeader indicates a header value that is not a signed integer.
	ErrMalformedHeader = errors.New("matfile: malformed header")

	// ErrHeaderOutOfRange indicates a header value below -1.
	ErrHeaderOutOfRange = errors.New("matfile: header out of range")

	// ErrHeaderMissing indicates a data line before both headers were declared.
	ErrHeaderMissing = errors.New("matfile: data line before headers")

	// ErrMissingHeaders indicates the input ended without both headers.
	ErrMissingHeaders = errors.New("matfile: incomplete header section")

	// ErrMalformedEntry indicates a data line without exactly three integer fields.
	ErrMalformedEntry = errors.New("matfile: malformed entry")

	// ErrEntryOutOfBounds indicates entry coordinates outside the declared shape.
	ErrEntryOutOfBounds = errors.New("matfile: entry out of bounds")

	// ErrUnrecognizedLine indicates a non-blank line that is neither header nor entry.
	ErrUnrecognizedLine = errors.New("matfile: unrecognized line")
)

// ParseError is a format violation tied to one line of input.
// Line is 1-based and counts physical lines, blanks included, so it maps
// directly onto an editor view of the file.
type ParseError struct {
	Line   int    // 1-based physical line number
	Reason string // what exactly was wrong with the line
	Kind   error  // one of the sentinels above
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%v: line %d: %s", e.Kind, e.Line, e.Reason)
}

// Unwrap exposes the sentinel kind, keeping errors.Is(err, ErrX) true.
func (e ParseError) Unwrap() error { return e.Kind }

// parseErrorf builds a ParseError of the given kind at the given line.
func parseErrorf(kind error, line int, format string, args ...interface{}) error {
	return ParseError{Line: line, Reason: fmt.Sprintf(format, args...), Kind: kind}
}
