// Package carpet renders a two-glyph text "carpet": concentric rectangular
// bands produced by the parity of each cell's distance to the nearest of two
// opposite L-shaped borders.
//
// What:
//
//   - CornerTable builds the top-left distance table A by the recurrence
//     A[i][j] = 1 + min(A[i-1][j-1], A[i][j-1], A[i-1][j]), with row 0 and
//     column 0 fixed at zero.
//   - OppositeTable rotates A by 180° to get the bottom-right table B.
//   - DistanceTable takes the cell-wise min of A and B.
//   - Mask reduces that table mod 2; Render maps 0 → primary, 1 → secondary.
//   - Mat (alias Generate) runs the whole pipeline after validating inputs.
//
// Example for Mat(5, 7, 'a', 'b'):
//
//	aaaaa
//	abbba
//	ababa
//	ababa
//	ababa
//	abbba
//	aaaaa
//
// Validation order (first violation wins):
//
//  1. either glyph outside printable ASCII 33..126 → ErrInvalidCharacter
//  2. cols < 1 or rows < 1                          → ErrInvalidDimension
//  3. cols or rows even                             → ErrOddDimensionRequired
//  4. cols×rows above grid.MaxCells                 → ErrInvalidDimension
//
// Complexity:
//
//   - Time:   O(rows·cols)
//   - Memory: O(rows·cols), transient; nothing survives the call.
//
// Every function is pure and safe for concurrent use.
package carpet
