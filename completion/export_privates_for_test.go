package completion

import "gonum.org/v1/gonum/mat"

// Private hooks re-exported for the external test package only.
var (
	BuildGramBands = buildGramBands
	SolveRows      = solveRows
	EstimateAR     = estimateAR
	ForEachRow     = forEachRow
	SourceFromSeed = sourceFromSeed
)

// CompleteWithState mirrors Complete but also returns the final working
// estimate Z, so tests can assert the observed-preservation invariant.
func CompleteWithState(ref, observed *mat.Dense, missing []Position, opts Options) (Result, *mat.Dense, error) {
	return complete(ref, observed, missing, opts)
}
