// SPDX-License-Identifier: MIT

package grid

import (
	"strconv"
	"strings"
)

// MaxCells bounds rows×cols for a single grid. Larger shapes are rejected
// with ErrInvalidDimensions before anything is allocated.
const MaxCells = 1 << 28

// Dense is a row-major grid of int values.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense grid initialized to zeros.
// Stage 1 (Validate): ValidateShape (positive, at most MaxCells cells).
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a Dense grid from a rectangular [][]int, copying the cells.
// Errors: ErrInvalidDimensions for an empty input, ErrDimensionMismatch
// when rows differ in length.
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, gridErrorf("FromRows", ErrInvalidDimensions)
	}
	c := len(rows[0])
	if err := ValidateShape(len(rows), c); err != nil {
		return nil, gridErrorf("FromRows", err)
	}
	g := &Dense{r: len(rows), c: c, data: make([]int, 0, len(rows)*c)}
	for _, row := range rows {
		if len(row) != c {
			return nil, gridErrorf("FromRows", ErrDimensionMismatch)
		}
		g.data = append(g.data, row...)
	}

	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Dense) Rows() int {
	return g.r
}

// Cols returns the number of columns in the grid.
func (g *Dense) Cols() int {
	return g.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (g *Dense) At(row, col int) (int, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (g *Dense) Set(row, col, v int) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (g *Dense) Row(i int) []int {
	if i < 0 || i >= g.r {
		return nil
	}
	out := make([]int, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out
}

// SetRow copies row into row i.
// Errors: ErrOutOfRange for a bad i, ErrDimensionMismatch when len(row) != Cols().
func (g *Dense) SetRow(i int, row []int) error {
	if i < 0 || i >= g.r {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(row) != g.c {
		return gridErrorf("Dense.SetRow", ErrDimensionMismatch)
	}
	copy(g.data[i*g.c:(i+1)*g.c], row)

	return nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c) time and memory.
func (g *Dense) Clone() *Dense {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Dense{r: g.r, c: g.c, data: data}
}

// String implements fmt.Stringer for easy debugging.
// Each row is rendered as "[a, b, c]" followed by a newline.
func (g *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			sb.WriteString(strconv.Itoa(g.data[i*g.c+j]))
			if j < g.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Equal reports whether a and b have the same shape and identical cells.
// Two nil grids are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}
