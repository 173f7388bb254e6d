// Package metrics evaluates imputation quality over an explicit set of
// held-out positions: mean absolute error (MAE) and root mean squared
// error (RMSE) between a reference matrix and an estimate, read only at
// the given positions. Both are non-negative by construction.
package metrics
