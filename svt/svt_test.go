package svt_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/latc/svt"
)

// lowRank builds an r×c matrix of the given rank with entries derived
// from a seeded generator, as a product of two thin random factors.
func lowRank(r, c, rank int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	u := mat.NewDense(r, rank, nil)
	v := mat.NewDense(rank, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < rank; j++ {
			u.Set(i, j, rng.NormFloat64())
		}
	}
	for i := 0; i < rank; i++ {
		for j := 0; j < c; j++ {
			v.Set(i, j, rng.NormFloat64())
		}
	}
	out := mat.NewDense(r, c, nil)
	out.Mul(u, v)
	return out
}

// nuclearNorm sums the singular values of m.
func nuclearNorm(t *testing.T, m mat.Matrix) float64 {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(m, mat.SVDNone))
	total := 0.0
	for _, v := range svd.Values(nil) {
		total += v
	}
	return total
}

// TestThreshold_IdempotentAtTinyTau verifies that with theta ≥ rank(M)
// and tau → 0⁺ the operator is (numerically) the identity.
func TestThreshold_IdempotentAtTinyTau(t *testing.T) {
	m := lowRank(8, 9, 3, 21)

	got, err := svt.Threshold(m, 1e-12, 3)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(m, got, 1e-8),
		"theta ≥ rank and tiny tau must reproduce the input")
}

// TestThreshold_ShrinkageMonotonicity verifies that increasing tau
// (theta fixed) never increases the nuclear norm of the result.
func TestThreshold_ShrinkageMonotonicity(t *testing.T) {
	m := lowRank(10, 12, 5, 4)

	prev := nuclearNorm(t, m) + 1
	for _, tau := range []float64{0.01, 0.1, 0.5, 1, 2, 5} {
		got, err := svt.Threshold(m, tau, 1)
		require.NoError(t, err)
		nn := nuclearNorm(t, got)
		assert.LessOrEqual(t, nn, prev+1e-10, "nuclear norm must not grow with tau=%v", tau)
		prev = nn
	}
}

// TestThreshold_RankTruncation checks that components at or below tau
// are dropped entirely: thresholding a rank-3 matrix with tau above its
// smallest singular value yields rank ≤ 2.
func TestThreshold_RankTruncation(t *testing.T) {
	m := lowRank(6, 7, 3, 9)

	var svd mat.SVD
	require.True(t, svd.Factorize(m, mat.SVDNone))
	s := svd.Values(nil)

	got, err := svt.Threshold(m, s[2]+1e-9, 0)
	require.NoError(t, err)

	require.True(t, svd.Factorize(got, mat.SVDNone))
	assert.Less(t, svd.Values(nil)[2], 1e-8, "third singular value must be gone")
}

// TestThreshold_GramPathMatchesDirect verifies the wide and tall fast
// paths agree with the direct SVD path up to floating-point tolerance.
func TestThreshold_GramPathMatchesDirect(t *testing.T) {
	// Wide: 5x31 triggers the Gram path (2*5 < 31). Its transpose, the
	// direct path on the same spectrum, must agree transposed.
	wide := lowRank(5, 31, 4, 13)
	var tall mat.Dense
	tall.CloneFrom(wide.T())

	for _, tau := range []float64{0.05, 0.5, 2} {
		fromWide, err := svt.Threshold(wide, tau, 1)
		require.NoError(t, err)
		fromTall, err := svt.Threshold(&tall, tau, 1)
		require.NoError(t, err)

		var back mat.Dense
		back.CloneFrom(fromTall.T())
		assert.True(t, mat.EqualApprox(fromWide, &back, 1e-8),
			"wide and tall paths must agree for tau=%v", tau)

		// Square-ish reference: pad is unnecessary — compare against an
		// explicitly non-fast-path evaluation of the same operator by
		// checking the defining spectrum rule on singular values.
		var svd mat.SVD
		require.True(t, svd.Factorize(wide, mat.SVDNone))
		want := svd.Values(nil)
		require.True(t, svd.Factorize(fromWide, mat.SVDNone))
		got := svd.Values(nil)
		for i, w := range want {
			switch {
			case w <= tau:
				assert.InDelta(t, 0, got[i], 1e-8, "σ ≤ tau must vanish (i=%d, tau=%v)", i, tau)
			case i < 1: // theta = 1
				assert.InDelta(t, w, got[i], 1e-8, "exempt σ must be unshrunk (i=%d, tau=%v)", i, tau)
			default:
				assert.InDelta(t, w-tau, got[i], 1e-8, "σ must shrink by tau (i=%d, tau=%v)", i, tau)
			}
		}
	}
}

// TestThreshold_Errors covers the sentinel error paths.
func TestThreshold_Errors(t *testing.T) {
	m := lowRank(3, 3, 2, 2)

	_, err := svt.Threshold(nil, 1, 0)
	assert.ErrorIs(t, err, svt.ErrNilMatrix)

	_, err = svt.Threshold(m, 0, 0)
	assert.ErrorIs(t, err, svt.ErrBadThreshold)

	_, err = svt.Threshold(m, -1, 0)
	assert.ErrorIs(t, err, svt.ErrBadThreshold)

	_, err = svt.Threshold(m, 1, -1)
	assert.ErrorIs(t, err, svt.ErrNegativeTruncation)
}
