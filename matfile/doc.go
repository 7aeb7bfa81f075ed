// Package matfile reads and writes sparse integer matrices in a strict
// line-oriented text format.
//
// What:
//
//   - Parse/Load build a sparse.Matrix from a reader or a file path.
//   - Write/Save emit the exact inverse encoding of Parse.
//   - Every format violation is reported with its 1-based line number.
//
// Format:
//
//	rows=<maxRowIndex>      required, exactly once, maxRowIndex ≥ -1
//	cols=<maxColIndex>      required, exactly once, maxColIndex ≥ -1
//	(<row>, <col>, <value>) zero or more, only after both headers
//
// Headers declare the maximum index, so the dimension is declared+1 and
// “-1” is the legal spelling of an empty dimension. Blank lines are
// ignored anywhere; whitespace around tokens is ignored; every other line
// shape is a violation. Integer fields allow one optional leading + or -
// followed by ASCII digits, nothing else. A value of 0 is legal input and
// is simply not stored.
//
// Why:
//
//   - A strict grammar keeps hand-edited files honest: every typo is
//     reported with a line number instead of producing a skewed matrix.
//   - Parsing is all-or-nothing, so a caller never observes a matrix
//     built from half a file.
//
// Errors:
//
//   - ErrDuplicateHeader: rows= or cols= declared twice.
//   - ErrMalformedHeader: header value fails integer syntax.
//   - ErrHeaderOutOfRange: header value below -1.
//   - ErrHeaderMissing: data line before both headers.
//   - ErrMissingHeaders: input ended without both headers.
//   - ErrMalformedEntry: data line without exactly three integer fields.
//   - ErrEntryOutOfBounds: entry coordinates outside the declared shape.
//   - ErrUnrecognizedLine: any other non-blank line.
//
// Line-scoped failures arrive as ParseError values wrapping the sentinel,
// so errors.Is works on the kind and errors.As recovers the line number.
package matfile
