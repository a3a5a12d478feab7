package carpet

import (
	"fmt"
	"strings"

	"github.com/Ohad-Ma/carpet-maker-2/grid"
)

// Mat renders a cols×rows carpet of primary and secondary glyphs.
//
// The result holds rows lines of exactly cols glyphs; every line, the last
// one included, ends in '\n'. Border cells always use primary.
//
// Inputs are checked before any table is allocated, in this order:
//   - ErrInvalidCharacter     — primary or secondary outside ASCII 33..126.
//   - ErrInvalidDimension     — cols < 1 or rows < 1.
//   - ErrOddDimensionRequired — cols or rows is even.
//   - ErrInvalidDimension     — cols×rows exceeds grid.MaxCells.
//
// Example:
//
//	s, err := carpet.Mat(5, 7, 'a', 'b')
//
// Complexity: O(rows·cols) time and memory.
func Mat(cols, rows int, primary, secondary byte) (string, error) {
	if err := Validate(cols, rows, primary, secondary); err != nil {
		return "", err
	}
	mask, err := Mask(cols, rows)
	if err != nil {
		return "", err
	}

	return Render(mask, primary, secondary)
}

// Generate is Mat with width/height naming: width is the number of glyphs
// per line and height the number of lines.
func Generate(width, height int, primary, secondary byte) (string, error) {
	return Mat(width, height, primary, secondary)
}

// Validate runs the input checks of Mat without generating anything.
func Validate(cols, rows int, primary, secondary byte) error {
	if IsForbidden(primary) || IsForbidden(secondary) {
		return fmt.Errorf("Mat(%q,%q): %w", primary, secondary, ErrInvalidCharacter)
	}

	return validateDimensions(cols, rows)
}

// validateDimensions checks positivity first, then parity, then that the
// tables fit in grid.MaxCells.
func validateDimensions(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("Mat(%d,%d): %w", cols, rows, ErrInvalidDimension)
	}
	if cols%2 == 0 || rows%2 == 0 {
		return fmt.Errorf("Mat(%d,%d): %w", cols, rows, ErrOddDimensionRequired)
	}
	if err := grid.ValidateShape(rows, cols); err != nil {
		return fmt.Errorf("Mat(%d,%d): %w: %w", cols, rows, ErrInvalidDimension, err)
	}

	return nil
}

// Render writes mask as text: primary for 0 cells, secondary for any other
// value, and a newline after every row.
func Render(mask *grid.Dense, primary, secondary byte) (string, error) {
	if err := grid.ValidateNotNil(mask); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}
	if err := ValidateSymbol(primary); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}
	if err := ValidateSymbol(secondary); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}

	rows, cols := mask.Rows(), mask.Cols()
	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for i := 0; i < rows; i++ {
		for _, v := range mask.Row(i) {
			if v == 0 {
				sb.WriteByte(primary)
			} else {
				sb.WriteByte(secondary)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
