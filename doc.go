// Package latc is a toolkit for imputing missing entries of partially
// observed spatiotemporal matrices (locations × time-steps) by combining
// low-rank structure with multi-lag autoregressive dynamics.
//
// 🚀 What is latc?
//
//	A focused, deterministic library built on gonum that brings together:
//		• Truncated nuclear norm minimization via singular value thresholding
//		• Multi-lag autoregression expressed as sparse shift operators
//		• An alternating (ADMM) completion loop with explicit diagnostics
//		• Mode-n tensor unfolding/folding for higher-order inputs
//		• Held-out MAE/RMSE evaluation against an explicit missing set
//
// ✨ Why choose latc?
//
//   - Deterministic – seeded initialization, no time-based randomness
//   - Fail-fast – strict sentinel errors, validated before any iteration
//   - Honest diagnostics – iteration count, final tolerance, MAE, RMSE
//   - Optional row-parallel solves with no shared mutable state
//
// Everything is organized under five subpackages:
//
//	tensor/     — mode-n unfold/fold between flat tensors and matrices
//	svt/        — truncated-nuclear-norm singular value thresholding
//	lagop/      — sparse time-shift (lag) operator construction
//	completion/ — the ADMM completion loop, row solvers and AR estimation
//	metrics/    — MAE/RMSE over held-out positions
//
// Quick sketch:
//
//	    S (observed, zeros at missing)          X (completed)
//	    ┌───────────────┐     completion      ┌───────────────┐
//	    │ 0.3 0.0 0.8 … │ ──────────────────▶ │ 0.3 0.5 0.8 … │
//	    └───────────────┘  SVT ⇄ AR solves    └───────────────┘
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/latc
package latc
