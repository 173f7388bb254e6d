package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix is returned when either matrix is nil.
	ErrNilMatrix = errors.New("metrics: nil matrix")

	// ErrDimensionMismatch is returned when the two matrices disagree
	// in shape.
	ErrDimensionMismatch = errors.New("metrics: dimension mismatch")

	// ErrNoPositions is returned for an empty position set; an average
	// over nothing is undefined.
	ErrNoPositions = errors.New("metrics: empty position set")

	// ErrOutOfRange is returned when a position falls outside the
	// matrix bounds.
	ErrOutOfRange = errors.New("metrics: position out of range")
)

// Position identifies one matrix entry (zero-based row and column).
type Position struct {
	Row, Col int
}

// MAE returns the mean absolute error between ref and est over pos.
func MAE(ref, est mat.Matrix, pos []Position) (float64, error) {
	sum, _, err := accumulate(ref, est, pos)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(pos)), nil
}

// RMSE returns the root mean squared error between ref and est over pos.
func RMSE(ref, est mat.Matrix, pos []Position) (float64, error) {
	_, sq, err := accumulate(ref, est, pos)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq / float64(len(pos))), nil
}

// accumulate walks the position set once, validating as it goes, and
// returns the absolute and squared residual sums.
func accumulate(ref, est mat.Matrix, pos []Position) (abs, sq float64, err error) {
	if ref == nil || est == nil {
		return 0, 0, ErrNilMatrix
	}
	rr, rc := ref.Dims()
	er, ec := est.Dims()
	if rr != er || rc != ec {
		return 0, 0, ErrDimensionMismatch
	}
	if len(pos) == 0 {
		return 0, 0, ErrNoPositions
	}
	for _, p := range pos {
		if p.Row < 0 || p.Row >= rr || p.Col < 0 || p.Col >= rc {
			return 0, 0, ErrOutOfRange
		}
		d := ref.At(p.Row, p.Col) - est.At(p.Row, p.Col)
		abs += math.Abs(d)
		sq += d * d
	}
	return abs, sq, nil
}
