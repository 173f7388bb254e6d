package tensor

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyShape is returned when the shape is empty or contains a
	// non-positive dimension.
	ErrEmptyShape = errors.New("tensor: empty or non-positive shape")

	// ErrModeOutOfRange is returned when the requested mode does not
	// index an axis of the shape.
	ErrModeOutOfRange = errors.New("tensor: mode out of range")

	// ErrShapeMismatch is returned when the flat data or matrix
	// dimensions do not agree with the declared shape.
	ErrShapeMismatch = errors.New("tensor: data does not match shape")
)

// Shape describes the extent of each tensor axis, axis 0 first.
type Shape []int

// Size returns the total number of elements implied by the shape,
// or 0 when the shape is invalid.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		if d <= 0 {
			return 0
		}
		n *= d
	}
	return n
}

// Unfold matricizes a column-major flat tensor along the given mode.
// The result has shape[mode] rows; columns enumerate the remaining axes
// in column-major order (first remaining axis fastest).
//
// Complexity: O(Π shape), single pass over data.
func Unfold(data []float64, shape Shape, mode int) (*mat.Dense, error) {
	n := shape.Size()
	if n == 0 {
		return nil, ErrEmptyShape
	}
	if mode < 0 || mode >= len(shape) {
		return nil, ErrModeOutOfRange
	}
	if len(data) != n {
		return nil, ErrShapeMismatch
	}

	rows := shape[mode]
	out := mat.NewDense(rows, n/rows, nil)
	for flat := 0; flat < n; flat++ {
		r, c := coords(flat, shape, mode)
		out.Set(r, c, data[flat])
	}
	return out, nil
}

// Fold inverts Unfold: it reassembles the column-major flat tensor from
// its mode-n matricization. The matrix dimensions must match the shape.
func Fold(m mat.Matrix, shape Shape, mode int) ([]float64, error) {
	n := shape.Size()
	if n == 0 {
		return nil, ErrEmptyShape
	}
	if mode < 0 || mode >= len(shape) {
		return nil, ErrModeOutOfRange
	}
	if m == nil {
		return nil, ErrShapeMismatch
	}
	r, c := m.Dims()
	if r != shape[mode] || r*c != n {
		return nil, ErrShapeMismatch
	}

	data := make([]float64, n)
	for flat := 0; flat < n; flat++ {
		row, col := coords(flat, shape, mode)
		data[flat] = m.At(row, col)
	}
	return data, nil
}

// coords maps a column-major flat offset to its (row, column) position
// in the mode-n unfolding. The column index accumulates the non-mode
// axes in order, first remaining axis varying fastest.
func coords(flat int, shape Shape, mode int) (row, col int) {
	stride := 1
	cmul := 1
	for a := 0; a < len(shape); a++ {
		idx := (flat / stride) % shape[a]
		if a == mode {
			row = idx
		} else {
			col += idx * cmul
			cmul *= shape[a]
		}
		stride *= shape[a]
	}
	return row, col
}
