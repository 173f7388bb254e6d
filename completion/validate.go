package completion

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateAll verifies matrices + positions + Options before any
// iteration starts (fail fast; no partial state is built on error).
// It returns the matrix dimensions on success.
//
// Contract:
//   - ref and observed non-nil, same shape, at least one observed entry.
//   - every position within bounds and unique.
//   - every lag in (0, cols); hyperparameters in their documented domains.
//
// Complexity: O(len(missing) + len(lags)); no pass over the matrices.
func validateAll(ref, observed *mat.Dense, missing []Position, opts Options) (rows, cols int, err error) {
	// Stage 1: matrices.
	if ref == nil || observed == nil {
		return 0, 0, ErrNilMatrix
	}
	rows, cols = observed.Dims()
	if rr, rc := ref.Dims(); rr != rows || rc != cols {
		return 0, 0, ErrDimensionMismatch
	}
	if rows < 1 || cols < 2 {
		return 0, 0, ErrDimensionMismatch
	}

	// Stage 2: positions. Uniqueness matters: the mean-fill and the
	// MAE/RMSE averages divide by the missing count.
	if len(missing) >= rows*cols {
		return 0, 0, ErrNoObservations
	}
	seen := make(map[Position]struct{}, len(missing))
	for _, p := range missing {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return 0, 0, ErrPositionOutOfRange
		}
		if _, dup := seen[p]; dup {
			return 0, 0, ErrDuplicatePosition
		}
		seen[p] = struct{}{}
	}

	// Stage 3: lag bounds (full construction is re-checked by lagop.Build).
	if len(opts.TimeLags) == 0 {
		return 0, 0, ErrBadOption
	}
	for _, l := range opts.TimeLags {
		if l <= 0 || l >= cols {
			return 0, 0, ErrBadOption
		}
	}

	// Stage 4: hyperparameter domains.
	if err = validateHyper(opts); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// validateHyper checks Options fields that do not depend on the data.
//
// Complexity: O(1).
func validateHyper(opts Options) error {
	if !positiveFinite(opts.RhoInitial) || !positiveFinite(opts.Lambda) || !positiveFinite(opts.Epsilon) {
		return ErrBadOption
	}
	if !positiveFinite(opts.RhoMax) || opts.RhoMax < opts.RhoInitial {
		return ErrBadOption
	}
	if math.IsNaN(opts.RhoGrowth) || opts.RhoGrowth < 1 {
		return ErrBadOption
	}
	if opts.Theta < 0 {
		return ErrBadOption
	}
	if opts.MaxIter < 1 || opts.InnerIter < 1 {
		return ErrBadOption
	}
	if !positiveFinite(opts.InitCoefMax) {
		return ErrBadOption
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
