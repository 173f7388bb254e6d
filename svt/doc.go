// Package svt implements the proximal operator of the truncated
// nuclear norm: singular value thresholding in which the largest theta
// singular values are kept unshrunk.
//
// Given a matrix M, a threshold tau > 0 and a truncation count
// theta ≥ 0, Threshold computes the thin SVD of M, keeps only the
// singular values strictly greater than tau, leaves the first theta of
// them untouched, subtracts tau from the rest, and reconstructs the
// matrix from the surviving spectrum. Components at or below tau are
// dropped entirely, so the result is rank-truncated.
//
// When one dimension is more than twice the other, Threshold factorizes
// the smaller Gram matrix (M·Mᵀ or Mᵀ·M) instead of M itself and
// recovers the same result through the identity SVT(Mᵀ) = SVT(M)ᵀ.
// This is purely a cost optimization: both paths agree up to
// floating-point tolerance.
//
// Errors are strict sentinels; decomposition failures on
// ill-conditioned input surface as ErrDecomposition.
package svt
