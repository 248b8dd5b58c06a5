// Package sudoku defines the board primitives of a 9x9 Sudoku: locations,
// numerals, units (rows, columns, blocks), the bitset containers used to
// reason about them, and the immutable Grid.
//
// All primitives are small value types backed by lookup tables built at
// package initialization; they are safe to share freely across goroutines.
package sudoku
