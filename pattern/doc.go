// Package pattern categorizes insights by the pattern that must be
// discerned in the Sudoku board to find them, and serializes the categories
// in a compact text form that round-trips exactly.
package pattern
