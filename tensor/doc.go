// Package tensor provides mode-n matricization (unfolding) of dense
// tensors and its exact inverse (folding).
//
// Layout convention (fixed, load-bearing):
//
//   - A tensor of shape (n₀, n₁, …, n_{k-1}) is stored as a flat
//     []float64 in column-major order: axis 0 varies fastest, so the
//     flat offset of index (i₀, …, i_{k-1}) is Σ iₐ·strideₐ with
//     stride₀ = 1 and strideₐ = n₀·…·n_{a-1}.
//
//   - Unfold(data, shape, mode) produces a matrix with shape[mode] rows;
//     its columns enumerate the remaining axes in column-major order
//     (the first remaining axis varies fastest).
//
// Fold is the exact inverse of Unfold given the original shape and mode:
//
//	Fold(Unfold(T, m), shape, m) == T   for every T and valid m.
//
// The 2-D case degenerates to the identity layout for mode 0 and the
// transpose for mode 1, which is what the completion loop relies on.
//
// Errors:
//   - ErrEmptyShape    — shape is empty or has a non-positive dimension.
//   - ErrModeOutOfRange — mode is not in [0, len(shape)).
//   - ErrShapeMismatch — data length (or matrix dims) disagree with shape.
package tensor
