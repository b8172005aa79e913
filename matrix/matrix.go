// Package matrix provides a small dense float64 matrix used to assemble
// the linear systems solved by the lp package: one row per balance or
// capacity constraint, one column per decision variable.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over a two-dimensional
//	mutable array of float64 values. lp builds its equality and inequality
//	systems by writing coefficients into a Matrix in deterministic
//	(lexicographic) row/column order, then hands the backing rows to the
//	simplex oracle.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error
//	on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrIndexOutOfBounds if row or col is out of range.
	At(row, col int) (float64, error)

	// Set assigns the value v at position (row, col).
	// Returns ErrIndexOutOfBounds if row or col is out of range.
	Set(row, col int, v float64) error

	// Row returns a copy of row i as a plain float64 slice, the shape the
	// lp package feeds directly to its simplex tableau.
	Row(i int) ([]float64, error)

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
