// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single source of truth for nil/shape guards used by the kernels.
//   - Return wrapped sentinels so call sites can match with errors.Is.

package grid

import "fmt"

// ValidateShape ensures rows and cols are positive and rows×cols fits in
// MaxCells. The product is never computed, so huge inputs cannot overflow.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if cols > MaxCells/rows {
		return fmt.Errorf("ValidateShape(%d,%d): more than %d cells: %w", rows, cols, MaxCells, ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the grid reference is non-nil.
// Returns ErrNilGrid if g == nil.
func ValidateNotNil(g *Dense) error {
	if g == nil {
		return gridErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Nil is checked first, then rows, then columns.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return gridErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return gridErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
