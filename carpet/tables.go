package carpet

import (
	"fmt"

	"github.com/Ohad-Ma/carpet-maker-2/grid"
)

// CornerTable builds the rows×cols distance table from the top-left border.
//
// Row 0 and column 0 are zero; every other cell is
//
//	A[i][j] = 1 + min(A[i-1][j-1], A[i][j-1], A[i-1][j])
//
// which fills the grid row by row, like a 0-1 knapsack table. For 5 columns
// and 7 rows:
//
//	0 0 0 0 0
//	0 1 1 1 1
//	0 1 2 2 2
//	0 1 2 3 3
//	0 1 2 3 4
//	0 1 2 3 4
//	0 1 2 3 4
//
// Only positivity is checked here; parity is enforced by Mask and Mat.
func CornerTable(cols, rows int) (*grid.Dense, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("CornerTable(%d,%d): %w", cols, rows, ErrInvalidDimension)
	}
	a, err := grid.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("CornerTable(%d,%d): %w", cols, rows, err)
	}

	// Two rolling rows; row 0 stays zero in a, so prev starts zeroed.
	prev := make([]int, cols)
	curr := make([]int, cols)
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			curr[j] = 1 + min3(prev[j-1], curr[j-1], prev[j])
		}
		if err := a.SetRow(i, curr); err != nil {
			return nil, fmt.Errorf("CornerTable(%d,%d): %w", cols, rows, err)
		}
		prev, curr = curr, prev
	}

	return a, nil
}

// OppositeTable turns the top-left table a into the bottom-right one:
// rows are reversed, then every row is mirrored, so B[i][j] = A[r-1-i][c-1-j].
//
// For the 5×7 table above:
//
//	4 3 2 1 0
//	4 3 2 1 0
//	4 3 2 1 0
//	3 3 2 1 0
//	2 2 2 1 0
//	1 1 1 1 0
//	0 0 0 0 0
func OppositeTable(a *grid.Dense) (*grid.Dense, error) {
	b, err := grid.Rotate180(a)
	if err != nil {
		return nil, fmt.Errorf("OppositeTable: %w", err)
	}

	return b, nil
}

// DistanceTable returns min(A, B) cell by cell: each cell's distance to the
// nearer of the two L-shaped borders. For 5 columns and 7 rows:
//
//	0 0 0 0 0
//	0 1 1 1 0
//	0 1 2 1 0
//	0 1 2 1 0
//	0 1 2 1 0
//	0 1 1 1 0
//	0 0 0 0 0
func DistanceTable(cols, rows int) (*grid.Dense, error) {
	a, err := CornerTable(cols, rows)
	if err != nil {
		return nil, err
	}
	b, err := OppositeTable(a)
	if err != nil {
		return nil, err
	}

	return grid.Min(a, b)
}

// Mask returns DistanceTable(cols, rows) mod 2. Zero cells take the primary
// glyph, one cells the secondary glyph.
//
// Errors: ErrInvalidDimension, ErrOddDimensionRequired.
func Mask(cols, rows int) (*grid.Dense, error) {
	if err := validateDimensions(cols, rows); err != nil {
		return nil, err
	}
	m, err := DistanceTable(cols, rows)
	if err != nil {
		return nil, err
	}

	return grid.Mod(m, 2)
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
