// SPDX-License-Identifier: MIT

// Package grid provides a small row-major integer grid used as transient
// working storage for distance-field construction.
//
// What:
//
//   - Dense stores rows×cols int cells in one flat slice (index row*cols+col).
//   - Bounds-checked At/Set return ErrOutOfRange instead of panicking.
//   - Geometric kernels: ReverseRows, MirrorCols, Rotate180.
//   - Element-wise kernels: Min, Mod.
//
// Why:
//
//   - Distance tables built by dynamic programming (see package carpet)
//     need cheap row/column reflection and cell-wise reduction.
//
// Complexity:
//
//   - NewDense, Clone and every kernel: O(rows×cols) time and memory.
//   - At, Set, Rows, Cols: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive, or rows×cols
//     exceeds MaxCells.
//   - ErrOutOfRange: index outside the grid.
//   - ErrDimensionMismatch: operands of an element-wise kernel differ in shape.
//   - ErrNilGrid: a nil *Dense was passed to a kernel.
//   - ErrBadModulus: Mod called with a non-positive modulus.
package grid
