// Package completion imputes missing entries of a partially observed
// rows×cols matrix (spatial rows × time columns) by alternating two
// couplings inside an ADMM loop:
//
//   - a low-rank coupling, enforced by truncated-nuclear-norm singular
//     value thresholding (package svt);
//
//   - a temporal coupling, enforced per spatial row by a multi-lag
//     autoregressive model expressed through sparse shift operators
//     (package lagop) and solved as a banded SPD linear system.
//
// One synchronous call, Complete, owns the whole lifecycle: validate,
// initialize (mean-fill, zero dual, seeded AR coefficients), iterate
// until the relative Frobenius change of the low-rank estimate drops
// below Epsilon or MaxIter is reached, then report diagnostics
// (iterations, final tolerance, MAE/RMSE over the missing set).
//
// Invariants:
//
//   - Entries of the working estimate at observed positions always
//     equal the observed values; only missing positions are rewritten.
//   - Hitting MaxIter without convergence is NOT an error: the best
//     available estimate is returned with Converged=false.
//   - Numeric failures (decomposition or solve) abort the run with the
//     failing iteration — and row, when applicable — in the error.
//
// The loop is single-threaded by default. Options.Workers > 1 scatters
// the per-row solves and per-row AR fits over a worker pool; each row
// touches only its own slices, so no locking is involved.
package completion
