// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Kernels return these sentinels wrapped with the operation name
// (fmt.Errorf("Op: %w", ErrX)); callers match them with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive dimensions or more than MaxCells cells.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0 and within MaxCells")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates two operands have different shapes.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates a nil *Dense was used as an operand.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrBadModulus indicates Mod was called with k <= 0.
	ErrBadModulus = errors.New("grid: modulus must be > 0")
)

// gridErrorf wraps err with the name of the failing operation.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// denseErrorf wraps err with Dense method context and the offending index.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
