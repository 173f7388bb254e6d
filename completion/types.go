package completion

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/latc/metrics"
)

// Position identifies one matrix entry to treat as unobserved.
// Alias of metrics.Position so callers evaluate with the same type.
type Position = metrics.Position

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "completion: ...". Sentinels are
// returned plain from validation; the iteration loop wraps underlying
// failures with iteration/row context via fmt.Errorf("...: %w", err),
// so errors.Is keeps matching at the caller.
var (
	// ErrNilMatrix is returned when the observed or reference matrix is nil.
	ErrNilMatrix = errors.New("completion: nil matrix")

	// ErrDimensionMismatch is returned when the reference and observed
	// matrices disagree in shape.
	ErrDimensionMismatch = errors.New("completion: dimension mismatch")

	// ErrPositionOutOfRange is returned when a missing position falls
	// outside the observed matrix bounds.
	ErrPositionOutOfRange = errors.New("completion: missing position out of range")

	// ErrDuplicatePosition is returned when the missing set repeats a
	// position; the mean-fill and MAE/RMSE denominators assume unique
	// entries.
	ErrDuplicatePosition = errors.New("completion: duplicate missing position")

	// ErrNoObservations is returned when every entry is marked missing;
	// there is nothing to anchor the completion.
	ErrNoObservations = errors.New("completion: no observed entries")

	// ErrBadOption is returned when a hyperparameter is outside its
	// documented domain (see Options).
	ErrBadOption = errors.New("completion: invalid option")

	// ErrSingularSystem signals that a per-row normal-equations system
	// failed to factorize. With Rho, Lambda > 0 this indicates numeric
	// breakdown, not a modeling state; it is never masked.
	ErrSingularSystem = errors.New("completion: singular row system")

	// ErrNumeric signals a decomposition failure inside the iteration
	// (SVT or the autoregressive least squares).
	ErrNumeric = errors.New("completion: numeric failure")
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultRhoInitial is the starting ADMM penalty.
	DefaultRhoInitial = 1e-4

	// DefaultRhoMax caps the penalty schedule.
	DefaultRhoMax = 1e5

	// DefaultRhoGrowth is the multiplicative penalty increase applied
	// at the top of every inner sub-iteration.
	DefaultRhoGrowth = 1.05

	// DefaultLambda weights the autoregressive regularizer.
	DefaultLambda = 5e-4

	// DefaultTheta is the truncation rank exempted from shrinkage.
	DefaultTheta = 1

	// DefaultEpsilon is the relative-tolerance convergence threshold.
	DefaultEpsilon = 1e-4

	// DefaultMaxIter bounds the outer iteration count.
	DefaultMaxIter = 100

	// DefaultInnerIter is K, the SVT/solve/dual repetitions per outer step.
	DefaultInnerIter = 3

	// DefaultWorkers runs the per-row stages serially.
	DefaultWorkers = 1

	// DefaultInitCoefMax bounds the Uniform(0, c) initialization of the
	// autoregressive coefficients.
	DefaultInitCoefMax = 0.1
)

// Options configures one Complete invocation.
//
// Fields:
//   - TimeLags     — positive lags, each strictly less than the column
//     count; order is preserved and indexes the coefficient columns.
//   - RhoInitial   — starting ADMM penalty ρ (> 0).
//   - RhoMax       — cap on ρ (≥ RhoInitial).
//   - RhoGrowth    — multiplicative ρ schedule per inner step (≥ 1).
//   - Lambda       — autoregressive regularization weight λ (> 0).
//   - Theta        — SVT truncation rank (≥ 0).
//   - Epsilon      — relative-tolerance threshold (> 0).
//   - MaxIter      — hard outer-iteration cap (≥ 1).
//   - InnerIter    — K, inner sub-iterations per outer step (≥ 1).
//   - Workers      — rows solved concurrently; 1 = serial, ≤0 = NumCPU.
//   - Seed         — RNG seed for coefficient init; 0 = fixed default.
//   - InitCoefMax  — upper bound of the Uniform(0, c) coefficient init (> 0).
type Options struct {
	TimeLags    []int
	RhoInitial  float64
	RhoMax      float64
	RhoGrowth   float64
	Lambda      float64
	Theta       int
	Epsilon     float64
	MaxIter     int
	InnerIter   int
	Workers     int
	Seed        uint64
	InitCoefMax float64
}

// DefaultOptions returns Options populated with the package defaults.
// TimeLags has no default; callers must set it.
func DefaultOptions() Options {
	return Options{
		RhoInitial:  DefaultRhoInitial,
		RhoMax:      DefaultRhoMax,
		RhoGrowth:   DefaultRhoGrowth,
		Lambda:      DefaultLambda,
		Theta:       DefaultTheta,
		Epsilon:     DefaultEpsilon,
		MaxIter:     DefaultMaxIter,
		InnerIter:   DefaultInnerIter,
		Workers:     DefaultWorkers,
		InitCoefMax: DefaultInitCoefMax,
	}
}

// Result holds the completed matrix and run diagnostics.
type Result struct {
	// Completed is the final low-rank estimate X, same shape as the
	// observed matrix. It is a fresh buffer owned by the caller.
	Completed *mat.Dense

	// Iterations is the number of outer iterations performed.
	Iterations int

	// Tolerance is the final relative Frobenius change of X.
	Tolerance float64

	// Converged reports whether Tolerance dropped below Epsilon before
	// MaxIter. False here is a defined terminal state, not an error.
	Converged bool

	// MAE and RMSE are measured over the missing positions against the
	// reference matrix. Zero when the missing set is empty.
	MAE, RMSE float64
}
