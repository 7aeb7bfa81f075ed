// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// All operations return these sentinels (optionally wrapped with call
// context via %w) and callers match them with errors.Is. Nothing in this
// package panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a negative row or column count at construction.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be non-negative")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates Add/Sub operands of different shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrIncompatibleDimensions indicates Mul operands where cols(a) != rows(b).
	ErrIncompatibleDimensions = errors.New("sparse: incompatible dimensions for multiplication")

	// ErrNilMatrix indicates a nil *Matrix argument to a binary operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// indexErrorf wraps a sentinel with the method name and offending coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// shapeErrorf wraps a sentinel with the method name and both operand shapes.
func shapeErrorf(method string, a, b *Matrix, err error) error {
	return fmt.Errorf("Matrix.%s: %dx%d vs %dx%d: %w", method, a.rows, a.cols, b.rows, b.cols, err)
}
