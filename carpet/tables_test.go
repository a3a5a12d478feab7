package carpet_test

import (
	"testing"

	"github.com/Ohad-Ma/carpet-maker-2/carpet"
	"github.com/Ohad-Ma/carpet-maker-2/grid"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsOf unpacks g into [][]int for cmp.Diff.
func rowsOf(g *grid.Dense) [][]int {
	out := make([][]int, g.Rows())
	for i := range out {
		out[i] = g.Row(i)
	}

	return out
}

// TestCornerTable_5x7 pins the top-left table for 5 columns, 7 rows.
func TestCornerTable_5x7(t *testing.T) {
	a, err := carpet.CornerTable(5, 7)
	require.NoError(t, err)

	want := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1},
		{0, 1, 2, 2, 2},
		{0, 1, 2, 3, 3},
		{0, 1, 2, 3, 4},
		{0, 1, 2, 3, 4},
		{0, 1, 2, 3, 4},
	}
	if d := cmp.Diff(want, rowsOf(a)); d != "" {
		t.Errorf("CornerTable mismatch (-want +got):\n%s", d)
	}
}

// TestOppositeTable_5x7 pins the bottom-right table derived from A.
func TestOppositeTable_5x7(t *testing.T) {
	a, err := carpet.CornerTable(5, 7)
	require.NoError(t, err)
	b, err := carpet.OppositeTable(a)
	require.NoError(t, err)

	want := [][]int{
		{4, 3, 2, 1, 0},
		{4, 3, 2, 1, 0},
		{4, 3, 2, 1, 0},
		{3, 3, 2, 1, 0},
		{2, 2, 2, 1, 0},
		{1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	if d := cmp.Diff(want, rowsOf(b)); d != "" {
		t.Errorf("OppositeTable mismatch (-want +got):\n%s", d)
	}
}

// TestDistanceTable_5x7 pins min(A, B).
func TestDistanceTable_5x7(t *testing.T) {
	m, err := carpet.DistanceTable(5, 7)
	require.NoError(t, err)

	want := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 2, 1, 0},
		{0, 1, 2, 1, 0},
		{0, 1, 2, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	if d := cmp.Diff(want, rowsOf(m)); d != "" {
		t.Errorf("DistanceTable mismatch (-want +got):\n%s", d)
	}
}

// TestCornerTable_Even accepts even sizes; only Mask enforces parity.
func TestCornerTable_Even(t *testing.T) {
	a, err := carpet.CornerTable(4, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0, 0}, {0, 1, 1, 1}}, rowsOf(a))

	_, err = carpet.Mask(4, 3)
	assert.ErrorIs(t, err, carpet.ErrOddDimensionRequired)
}

func TestCornerTable_InvalidDimension(t *testing.T) {
	_, err := carpet.CornerTable(0, 3)
	assert.ErrorIs(t, err, carpet.ErrInvalidDimension)
	_, err = carpet.DistanceTable(3, -1)
	assert.ErrorIs(t, err, carpet.ErrInvalidDimension)
	_, err = carpet.Mask(-3, 3)
	assert.ErrorIs(t, err, carpet.ErrInvalidDimension)
}

func TestOppositeTable_Nil(t *testing.T) {
	_, err := carpet.OppositeTable(nil)
	assert.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestMask_Properties checks symmetry, border and value range over a sweep
// of odd shapes.
func TestMask_Properties(t *testing.T) {
	for cols := 1; cols <= 15; cols += 2 {
		for rows := 1; rows <= 15; rows += 2 {
			m, err := carpet.Mask(cols, rows)
			require.NoError(t, err)
			require.Equal(t, rows, m.Rows())
			require.Equal(t, cols, m.Cols())

			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					v, _ := m.At(i, j)
					mirror, _ := m.At(rows-1-i, cols-1-j)
					assert.Contains(t, []int{0, 1}, v)
					assert.Equal(t, v, mirror, "%dx%d: (%d,%d) not rotation symmetric", cols, rows, i, j)
					if i == 0 || j == 0 || i == rows-1 || j == cols-1 {
						assert.Zero(t, v, "%dx%d: border (%d,%d)", cols, rows, i, j)
					}
				}
			}
		}
	}
}

// TestMask_Center checks the centre cell against ((min(cols,rows)-1)/2) mod 2.
func TestMask_Center(t *testing.T) {
	for cols := 1; cols <= 21; cols += 2 {
		for rows := 1; rows <= 21; rows += 2 {
			m, err := carpet.Mask(cols, rows)
			require.NoError(t, err)
			v, _ := m.At(rows/2, cols/2)
			assert.Equal(t, ((min(cols, rows)-1)/2)%2, v, "%dx%d centre", cols, rows)
		}
	}
}
