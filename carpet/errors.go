package carpet

import "errors"

// Sentinel errors for carpet generation. Functions wrap them with call
// context; match with errors.Is.
var (
	// ErrInvalidCharacter indicates a glyph outside printable ASCII 33..126.
	ErrInvalidCharacter = errors.New("carpet: invalid special character")

	// ErrInvalidDimension indicates a negative or zero dimension, or a shape
	// too large to build (see grid.MaxCells).
	ErrInvalidDimension = errors.New("carpet: dimension out of range")

	// ErrOddDimensionRequired indicates an even number of rows or columns.
	ErrOddDimensionRequired = errors.New("carpet: rows and cols must be odd numbers")
)
