package completion_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/latc/completion"
)

// endToEndFixture builds the 10×50 rank-2 scenario: [0,1]-scaled truth,
// 5% of the entries (25 positions) hidden behind an explicit missing
// set, observed matrix pre-zeroed there.
func endToEndFixture(seed uint64) (truth, obs *mat.Dense, missing []completion.Position) {
	const (
		rows = 10
		cols = 50
		hide = 25 // 5% of 500
	)
	truth = rank2Matrix(rows, cols, seed)

	rng := rand.New(rand.NewPCG(seed+100, seed+101))
	seen := make(map[completion.Position]bool, hide)
	for len(missing) < hide {
		p := completion.Position{Row: rng.IntN(rows), Col: rng.IntN(cols)}
		if seen[p] {
			continue
		}
		seen[p] = true
		missing = append(missing, p)
	}

	obs = mat.DenseCopyOf(truth)
	for _, p := range missing {
		obs.Set(p.Row, p.Col, 0)
	}
	return truth, obs, missing
}

func endToEndOptions() completion.Options {
	opts := completion.DefaultOptions()
	opts.TimeLags = []int{1, 7}
	opts.RhoInitial = 1e-4
	opts.Lambda = 5e-4
	opts.Theta = 1
	opts.Epsilon = 1e-4
	opts.MaxIter = 100
	return opts
}

// TestComplete_EndToEndRank2 runs the full pipeline on the synthetic
// rank-2 scenario: it must converge before the iteration cap and
// reconstruct the hidden entries to well under 0.05 RMSE.
func TestComplete_EndToEndRank2(t *testing.T) {
	truth, obs, missing := endToEndFixture(42)

	res, err := completion.Complete(truth, obs, missing, endToEndOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged, "must converge before MaxIter (got %d iterations, tol %g)",
		res.Iterations, res.Tolerance)
	assert.Less(t, res.Iterations, 100)
	assert.Less(t, res.Tolerance, 1e-4)

	r, c := res.Completed.Dims()
	assert.Equal(t, 10, r)
	assert.Equal(t, 50, c)

	assert.GreaterOrEqual(t, res.MAE, 0.0)
	assert.GreaterOrEqual(t, res.RMSE, res.MAE, "RMSE dominates MAE")
	assert.Less(t, res.RMSE, 0.05, "hidden entries must be recovered on [0,1]-scaled data")
}

// TestComplete_SerialMatchesParallel reruns the scenario with a worker
// pool: per-row stages touch disjoint rows, so the result must be
// bit-identical to the serial run.
func TestComplete_SerialMatchesParallel(t *testing.T) {
	truth, obs, missing := endToEndFixture(42)
	opts := endToEndOptions()

	serial, err := completion.Complete(truth, obs, missing, opts)
	require.NoError(t, err)

	opts.Workers = 4
	parallel, err := completion.Complete(truth, obs, missing, opts)
	require.NoError(t, err)

	assert.Equal(t, serial.Iterations, parallel.Iterations)
	assert.Equal(t, serial.Tolerance, parallel.Tolerance)
	assert.True(t, mat.Equal(serial.Completed, parallel.Completed),
		"worker pool must not change the numbers")
}

// TestComplete_DeterministicBySeed checks that the same seed reproduces
// the run exactly and a different seed still solves the problem.
func TestComplete_DeterministicBySeed(t *testing.T) {
	truth, obs, missing := endToEndFixture(7)
	opts := endToEndOptions()
	opts.Seed = 12345

	first, err := completion.Complete(truth, obs, missing, opts)
	require.NoError(t, err)
	second, err := completion.Complete(truth, obs, missing, opts)
	require.NoError(t, err)
	assert.True(t, mat.Equal(first.Completed, second.Completed), "same seed, same run")
	assert.Equal(t, first.Tolerance, second.Tolerance)

	opts.Seed = 99
	third, err := completion.Complete(truth, obs, missing, opts)
	require.NoError(t, err)
	assert.True(t, third.Converged, "a different init seed must still converge")
}
