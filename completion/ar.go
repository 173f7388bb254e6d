package completion

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/latc/lagop"
)

// arCondTol is the relative singular-value cutoff for the rank used by
// the least-squares solve. Values below arCondTol·σ₀ are treated as
// numeric zero, keeping the fit stable under rank deficiency.
const arCondTol = 1e-12

// estimateAR refits the coefficient matrix from the current estimate z:
// for every row m it solves min‖V_m·a − z[m, maxLag:]‖₂ where column i
// of V_m holds the lag-lᵢ₊₁ values of z[m, :], aligned by the same
// offsets as the Ψ operators. The solution is the minimum-norm one
// (SVD pseudo-inverse), so a rank-deficient design never fails; rank 0
// yields zero coefficients.
//
// Complexity: O(rows · trimmed · d²).
func estimateAR(set *lagop.Set, z, coef *mat.Dense, workers int) error {
	d := set.NumLags()
	trimmed := set.TrimmedLen()

	rows, _ := coef.Dims()
	return forEachRow(workers, rows, func(m int) error {
		design := mat.NewDense(trimmed, d, nil)
		target := mat.NewVecDense(trimmed, nil)
		for r := 0; r < trimmed; r++ {
			for i := 0; i < d; i++ {
				design.Set(r, i, z.At(m, set.Offset(i+1)+r))
			}
			target.SetVec(r, z.At(m, set.Offset(0)+r))
		}

		var svd mat.SVD
		if ok := svd.Factorize(design, mat.SVDThin); !ok {
			return ErrNumeric
		}
		vals := svd.Values(nil)
		rank := 0
		for _, v := range vals {
			if v > arCondTol*vals[0] {
				rank++
			}
		}
		if rank == 0 {
			for i := 0; i < d; i++ {
				coef.Set(m, i, 0)
			}
			return nil
		}

		var sol mat.VecDense
		svd.SolveVecTo(&sol, target, rank)
		for i := 0; i < d; i++ {
			coef.Set(m, i, sol.AtVec(i))
		}
		return nil
	})
}
