// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Geometric (reflection) and element-wise kernels over *Dense.
//   - Every kernel allocates a fresh output and leaves its inputs untouched.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over the row-major buffer.
//   - O(r*c) time and space per call.

package grid

// ReverseRows returns a new grid whose row i is row rows-1-i of g.
func ReverseRows(g *Dense) (*Dense, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, gridErrorf("ReverseRows", err)
	}
	out := &Dense{r: g.r, c: g.c, data: make([]int, len(g.data))}
	for i := 0; i < g.r; i++ {
		src := (g.r - 1 - i) * g.c // base offset of the mirrored source row
		copy(out.data[i*g.c:(i+1)*g.c], g.data[src:src+g.c])
	}

	return out, nil
}

// MirrorCols returns a new grid with every row reversed: column j is swapped
// with column cols-1-j for j < cols/2. The middle column of an odd-width
// grid stays in place.
func MirrorCols(g *Dense) (*Dense, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, gridErrorf("MirrorCols", err)
	}
	out := g.Clone()
	for i := 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}

	return out, nil
}

// Rotate180 returns g rotated by 180 degrees: out[i][j] = g[rows-1-i][cols-1-j].
// Implemented as ReverseRows followed by MirrorCols.
func Rotate180(g *Dense) (*Dense, error) {
	rev, err := ReverseRows(g)
	if err != nil {
		return nil, gridErrorf("Rotate180", err)
	}

	return MirrorCols(rev)
}

// Min computes out[i][j] = min(a[i][j], b[i][j]).
// Errors: ErrNilGrid, ErrDimensionMismatch.
func Min(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, gridErrorf("Min", err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]int, len(a.data))}
	for k, v := range a.data {
		if w := b.data[k]; w < v {
			v = w
		}
		out.data[k] = v
	}

	return out, nil
}

// Mod computes out[i][j] = g[i][j] mod k, always in [0, k).
// Errors: ErrNilGrid, ErrBadModulus.
func Mod(g *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, gridErrorf("Mod", err)
	}
	if k <= 0 {
		return nil, gridErrorf("Mod", ErrBadModulus)
	}
	out := &Dense{r: g.r, c: g.c, data: make([]int, len(g.data))}
	for n, v := range g.data {
		v %= k
		if v < 0 {
			v += k
		}
		out.data[n] = v
	}

	return out, nil
}
