package svt

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix is returned when the input matrix is nil.
	ErrNilMatrix = errors.New("svt: nil matrix")

	// ErrBadThreshold is returned when tau is not strictly positive.
	ErrBadThreshold = errors.New("svt: threshold must be positive")

	// ErrNegativeTruncation is returned when theta is negative.
	ErrNegativeTruncation = errors.New("svt: truncation count must be non-negative")

	// ErrDecomposition signals that the underlying SVD or eigen
	// factorization did not converge. Not retried here; callers decide.
	ErrDecomposition = errors.New("svt: decomposition failed")
)

// gramRatio is the aspect-ratio bound beyond which the Gram fast path
// is taken: 2·min(r,c) < max(r,c).
const gramRatio = 2

// Threshold applies truncated-nuclear-norm singular value thresholding
// to m: singular values ≤ tau are dropped, the largest theta survivors
// are kept as-is, and the remaining survivors are shrunk by tau.
//
// Contracts:
//   - m non-nil, tau > 0, theta ≥ 0.
//   - The returned matrix has the dimensions of m and rank ≤ #{σ > tau}.
//
// Complexity: O(min(r,c)²·max(r,c)) for the factorization either way;
// the Gram path trades the SVD of m for an eigendecomposition of the
// smaller r×r or c×c Gram matrix.
func Threshold(m mat.Matrix, tau float64, theta int) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if tau <= 0 || math.IsNaN(tau) || math.IsInf(tau, 0) {
		return nil, ErrBadThreshold
	}
	if theta < 0 {
		return nil, ErrNegativeTruncation
	}

	r, c := m.Dims()
	switch {
	case gramRatio*r < c:
		// Wide: eigendecompose the r×r Gram matrix M·Mᵀ.
		return gramThreshold(m, tau, theta)
	case gramRatio*c < r:
		// Tall: SVT(M) = SVT(Mᵀ)ᵀ on the wide transpose.
		var tm mat.Dense
		tm.CloneFrom(m.T())
		res, err := gramThreshold(&tm, tau, theta)
		if err != nil {
			return nil, err
		}
		out := mat.NewDense(r, c, nil)
		out.Copy(res.T())
		return out, nil
	default:
		return directThreshold(m, tau, theta)
	}
}

// directThreshold is the reference path: thin SVD of m itself.
func directThreshold(m mat.Matrix, tau float64, theta int) (*mat.Dense, error) {
	r, c := m.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, ErrDecomposition
	}
	s := svd.Values(nil) // descending

	idx := 0
	for _, v := range s {
		if v > tau {
			idx++
		}
	}
	out := mat.NewDense(r, c, nil)
	if idx == 0 {
		return out, nil // everything thresholded away
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	uk := u.Slice(0, r, 0, idx)
	vk := v.Slice(0, c, 0, idx)

	// Scale the kept left singular vectors by the thresholded spectrum.
	scaled := mat.NewDense(r, idx, nil)
	for j := 0; j < idx; j++ {
		w := s[j]
		if j >= theta {
			w -= tau
		}
		for i := 0; i < r; i++ {
			scaled.Set(i, j, uk.At(i, j)*w)
		}
	}
	out.Mul(scaled, vk.T())
	return out, nil
}

// gramThreshold handles the wide case (2·rows < cols) by
// eigendecomposing G = M·Mᵀ. Eigenvalues of G are squared singular
// values of M and the eigenvectors are the left singular vectors, so
// SVT(M) = Q_k·diag(w_p/σ_p)·Q_kᵀ·M for the kept components, which
// avoids forming the large right factor.
func gramThreshold(m mat.Matrix, tau float64, theta int) (*mat.Dense, error) {
	r, c := m.Dims()

	var g mat.SymDense
	g.SymOuterK(1, m)

	var es mat.EigenSym
	if ok := es.Factorize(&g, true); !ok {
		return nil, ErrDecomposition
	}
	ev := es.Values(nil) // ascending
	var q mat.Dense
	es.VectorsTo(&q)

	// Count survivors: σ_j = sqrt(max(ev_j, 0)) > tau, largest last.
	k := 0
	for j := r - 1; j >= 0; j-- {
		if ev[j] > 0 && math.Sqrt(ev[j]) > tau {
			k++
		} else {
			break // ascending order: everything earlier is smaller
		}
	}
	out := mat.NewDense(r, c, nil)
	if k == 0 {
		return out, nil
	}

	// Kept eigenvectors are the last k columns of q. Column t of the
	// slice has descending-rank position p = k-1-t.
	qk := q.Slice(0, r, r-k, r)
	scaled := mat.NewDense(r, k, nil)
	for t := 0; t < k; t++ {
		p := k - 1 - t
		sigma := math.Sqrt(ev[r-k+t])
		w := sigma
		if p >= theta {
			w -= tau
		}
		for i := 0; i < r; i++ {
			scaled.Set(i, t, qk.At(i, t)*(w/sigma))
		}
	}

	proj := mat.NewDense(k, c, nil)
	proj.Mul(qk.T(), m)
	out.Mul(scaled, proj)
	return out, nil
}
