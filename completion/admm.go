package completion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/latc/lagop"
	"github.com/katalvlaran/latc/metrics"
	"github.com/katalvlaran/latc/svt"
)

// Complete imputes the missing entries of observed and returns the
// final low-rank estimate with run diagnostics.
//
// Inputs:
//   - ref      — ground truth, or a copy of observed when none exists;
//     read only at missing positions, for the MAE/RMSE diagnostics.
//   - observed — rows×cols matrix with missing entries pre-zeroed;
//     never mutated.
//   - missing  — explicit positions to impute and evaluate; duplicates
//     are rejected, and missingness is never inferred from zero values.
//   - opts     — hyperparameters; see Options and DefaultOptions.
//
// Contracts:
//   - All validation happens before any iteration (fail fast).
//   - Observed entries of the working estimate are never overwritten.
//   - MaxIter without convergence returns Converged=false, not an error.
//   - Numeric failures abort with the iteration (and row) in the error.
//
// Per outer iteration: rebuild the per-row systems from the current AR
// coefficients; run InnerIter ADMM sub-steps (grow ρ, X ← SVT(Z − T/ρ),
// refresh Z at missing positions, T += ρ(X − Z)); refit the AR
// coefficients from Z; stop when ‖X − X_prev‖_F / ‖S‖_F < Epsilon.
//
// Complexity per outer iteration: O(K·(SVD(rows×cols) +
// rows·cols·maxLag²)) plus the AR refits.
func Complete(ref, observed *mat.Dense, missing []Position, opts Options) (Result, error) {
	res, _, err := complete(ref, observed, missing, opts)
	return res, err
}

// complete runs the loop and additionally returns the final working
// estimate Z so the observed-preservation invariant stays testable.
func complete(ref, observed *mat.Dense, missing []Position, opts Options) (Result, *mat.Dense, error) {
	rows, cols, err := validateAll(ref, observed, missing, opts)
	if err != nil {
		return Result{}, nil, err
	}
	set, err := lagop.Build(cols, opts.TimeLags)
	if err != nil {
		return Result{}, nil, fmt.Errorf("completion: %w", err)
	}

	// Missing positions grouped by row drive the per-row commits.
	missingByRow := make([][]int, rows)
	for _, p := range missing {
		missingByRow[p.Row] = append(missingByRow[p.Row], p.Col)
	}

	// Z starts as a mean-filled copy of the observations; it is an
	// owned buffer, never an alias of the input.
	mean := mat.Sum(observed) / float64(rows*cols-len(missing))
	z := mat.DenseCopyOf(observed)
	for _, p := range missing {
		z.Set(p.Row, p.Col, mean)
	}

	t := mat.NewDense(rows, cols, nil)    // dual
	x := mat.NewDense(rows, cols, nil)    // low-rank primal
	xPrev := mat.NewDense(rows, cols, nil)
	work := mat.NewDense(rows, cols, nil) // scratch

	// AR coefficients: small positive uniforms from a seeded stream.
	d := set.NumLags()
	coef := mat.NewDense(rows, d, nil)
	uni := distuv.Uniform{Min: 0, Max: opts.InitCoefMax, Src: sourceFromSeed(opts.Seed)}
	for m := 0; m < rows; m++ {
		for i := 0; i < d; i++ {
			coef.Set(m, i, uni.Rand())
		}
	}

	gram := make([][]float64, rows)
	for m := range gram {
		gram[m] = make([]float64, cols*(set.MaxLag()+1))
	}

	normS := mat.Norm(observed, 2)
	rho := opts.RhoInitial
	var (
		tol       float64
		iters     int
		converged bool
	)

	for it := 1; it <= opts.MaxIter; it++ {
		iters = it

		// Stage 1: rebuild every B_mᵀB_m from the current coefficients.
		if err = buildGramBands(set, coef, gram, opts.Workers); err != nil {
			return Result{}, nil, iterErrorf(it, err)
		}

		// Stage 2: inner ADMM sub-iterations.
		for k := 0; k < opts.InnerIter; k++ {
			rho = math.Min(rho*opts.RhoGrowth, opts.RhoMax)

			// X ← SVT(Z − T/ρ, 1/ρ, θ).
			work.Copy(t)
			work.Scale(-1/rho, work)
			work.Add(work, z)
			x, err = svt.Threshold(work, 1/rho, opts.Theta)
			if err != nil {
				return Result{}, nil, iterErrorf(it, err)
			}

			// Z ← per-row solves, committed at missing positions only.
			if err = solveRows(set, gram, opts.Lambda, rho, x, t, z, missingByRow, opts.Workers); err != nil {
				return Result{}, nil, iterErrorf(it, err)
			}

			// T ← T + ρ(X − Z).
			work.Sub(x, z)
			work.Scale(rho, work)
			t.Add(t, work)
		}

		// Stage 3: refit AR coefficients from the refreshed Z.
		if err = estimateAR(set, z, coef, opts.Workers); err != nil {
			return Result{}, nil, iterErrorf(it, err)
		}

		// Stage 4: relative Frobenius change of X between outer steps.
		work.Sub(x, xPrev)
		tol = mat.Norm(work, 2) / normS
		xPrev.Copy(x)

		// Stage 5: terminate. The tol != 0 guard skips the degenerate
		// first comparison where X has not yet moved at all (early
		// iterations can leave X identically zero); callers relying on
		// exact-zero first deltas must be aware convergence is skipped
		// for that iteration.
		if tol < opts.Epsilon && tol != 0 {
			converged = true
			break
		}
	}

	res := Result{
		Completed:  x,
		Iterations: iters,
		Tolerance:  tol,
		Converged:  converged,
	}
	if len(missing) > 0 {
		if res.MAE, err = metrics.MAE(ref, x, missing); err != nil {
			return Result{}, nil, fmt.Errorf("completion: %w", err)
		}
		if res.RMSE, err = metrics.RMSE(ref, x, missing); err != nil {
			return Result{}, nil, fmt.Errorf("completion: %w", err)
		}
	}
	return res, z, nil
}

// iterErrorf wraps err with the failing outer iteration, preserving the
// underlying sentinel for errors.Is at the caller.
func iterErrorf(it int, err error) error {
	return fmt.Errorf("completion: iteration %d: %w", it, err)
}
