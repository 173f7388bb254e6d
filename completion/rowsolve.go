package completion

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/latc/lagop"
)

// Per-row temporal system. For spatial row m with coefficients a the
// operator is B_m = Ψ₀ − Σᵢ a[i]·Ψᵢ and the update solves
//
//	(B_mᵀB_m + (ρ/λ)·I) · z_m = (ρ/λ)·(x_m + t_m/ρ).
//
// Every Ψ is a column shift, so B_mᵀB_m has bandwidth maxLag and the
// system is solved with a banded Cholesky factorization. The Gram band
// depends only on the coefficients, not on ρ, so it is assembled once
// per outer iteration and shared by the inner sub-iterations.

// buildGramBands fills dst[m] with the packed upper band of B_mᵀB_m
// for every spatial row. dst[m] must have length timeLen·(maxLag+1)
// and uses the SymBandDense row-major layout: entry (i, i+off) lives at
// dst[m][i·(maxLag+1)+off].
//
// Complexity: O(rows · d² · timeLen).
func buildGramBands(set *lagop.Set, coef *mat.Dense, dst [][]float64, workers int) error {
	d := set.NumLags()
	width := set.MaxLag() + 1
	trimmed := set.TrimmedLen()

	return forEachRow(workers, len(dst), func(m int) error {
		// Operator weights: w₀ = 1 for Ψ₀, wⱼ = −a[m,j−1] for Ψⱼ.
		w := make([]float64, d+1)
		w[0] = 1
		for j := 1; j <= d; j++ {
			w[j] = -coef.At(m, j-1)
		}

		band := dst[m]
		for i := range band {
			band[i] = 0
		}
		// (BᵀB)[p, p+off] accumulates wⱼ·wₗ over every trimmed row r
		// where Ψⱼ and Ψₗ select columns p = Offset(j)+r and p+off.
		// Only the upper triangle is stored; off < 0 pairs are the
		// mirror and arrive via the swapped (l, j) pair.
		for j := 0; j <= d; j++ {
			for l := 0; l <= d; l++ {
				off := set.Offset(l) - set.Offset(j)
				if off < 0 {
					continue
				}
				val := w[j] * w[l]
				base := set.Offset(j)
				for r := 0; r < trimmed; r++ {
					band[(base+r)*width+off] += val
				}
			}
		}
		return nil
	})
}

// solveRows refreshes z at the missing positions of every row, reading
// the current primal x, dual t and penalty rho. Rows with no missing
// entries are skipped: observed values are never rewritten.
//
// Errors: ErrSingularSystem (wrapped with the row index) when a banded
// factorization fails; with rho, lambda > 0 this is numeric breakdown
// and is surfaced, never masked.
//
// Complexity: O(rows · timeLen · maxLag²) for the factorizations.
func solveRows(set *lagop.Set, gram [][]float64, lambda, rho float64, x, t, z *mat.Dense, missingByRow [][]int, workers int) error {
	n := set.TimeLen()
	k := set.MaxLag()
	width := k + 1
	shift := rho / lambda

	return forEachRow(workers, len(gram), func(m int) error {
		if len(missingByRow[m]) == 0 {
			return nil
		}

		// Gram band plus the scaled identity makes the system SPD.
		data := append([]float64(nil), gram[m]...)
		for i := 0; i < n; i++ {
			data[i*width] += shift
		}
		sym := mat.NewSymBandDense(n, k, data)

		var ch mat.BandCholesky
		if ok := ch.Factorize(sym); !ok {
			return ErrSingularSystem
		}

		rhs := mat.NewVecDense(n, nil)
		for c := 0; c < n; c++ {
			rhs.SetVec(c, shift*(x.At(m, c)+t.At(m, c)/rho))
		}
		var sol mat.VecDense
		if err := ch.SolveVecTo(&sol, rhs); err != nil {
			return ErrSingularSystem
		}

		for _, c := range missingByRow[m] {
			z.Set(m, c, sol.AtVec(c))
		}
		return nil
	})
}
