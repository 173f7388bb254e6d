// Package lagop builds the sparse time-shift ("lag") operators that
// express a multi-lag autoregressive relationship as linear maps on a
// time axis.
//
// For a time axis of length T and a lag set L = {l₁, …, l_d} with
// maxLag = max(L), Build produces d+1 operators of shape
// (T − maxLag) × T:
//
//	Ψ₀ selects columns [maxLag, T)            — the "current" values;
//	Ψᵢ selects columns [maxLag − lᵢ, T − lᵢ)  — the values lᵢ steps back.
//
// Every operator is a 0/1 selection matrix with exactly one nonzero per
// row; row r of operator i selects column Offset(i) + r. Because each
// Ψ is a pure column shift, the Set stores just the d+1 start offsets —
// the degenerate (and exact) compressed form of such a matrix. Dense
// materializes the explicit 0/1 matrix when one is needed.
//
// Build is a deterministic, pure function of (T, L).
package lagop
