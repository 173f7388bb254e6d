package lagop

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadTimeLen is returned when the time axis is too short to
	// carry any lagged relationship (needs at least two steps).
	ErrBadTimeLen = errors.New("lagop: time length must be at least 2")

	// ErrNoLags is returned when the lag set is empty.
	ErrNoLags = errors.New("lagop: empty lag set")

	// ErrBadLag is returned when a lag is non-positive or not strictly
	// less than the time length.
	ErrBadLag = errors.New("lagop: lag out of range")
)

// Set holds the d+1 shift operators for one time axis. The zero value
// is not usable; construct with Build.
type Set struct {
	timeLen int
	maxLag  int
	lags    []int
	offsets []int // offsets[0] = maxLag; offsets[i] = maxLag - lags[i-1]
}

// Build constructs the operator set for a time axis of length timeLen
// and the given positive lags (each strictly less than timeLen).
//
// Complexity: O(d); operators are stored as column offsets, not
// materialized.
func Build(timeLen int, lags []int) (*Set, error) {
	if timeLen < 2 {
		return nil, ErrBadTimeLen
	}
	if len(lags) == 0 {
		return nil, ErrNoLags
	}
	maxLag := 0
	for _, l := range lags {
		if l <= 0 || l >= timeLen {
			return nil, ErrBadLag
		}
		if l > maxLag {
			maxLag = l
		}
	}

	offsets := make([]int, len(lags)+1)
	offsets[0] = maxLag
	for i, l := range lags {
		offsets[i+1] = maxLag - l
	}
	return &Set{
		timeLen: timeLen,
		maxLag:  maxLag,
		lags:    append([]int(nil), lags...),
		offsets: offsets,
	}, nil
}

// NumLags returns d, the number of lags (operators minus the Ψ₀ map).
func (s *Set) NumLags() int { return len(s.lags) }

// MaxLag returns max(L).
func (s *Set) MaxLag() int { return s.maxLag }

// TimeLen returns the length of the underlying time axis.
func (s *Set) TimeLen() int { return s.timeLen }

// TrimmedLen returns the row count of every operator, timeLen − maxLag.
func (s *Set) TrimmedLen() int { return s.timeLen - s.maxLag }

// Lags returns a copy of the lag set in construction order.
func (s *Set) Lags() []int { return append([]int(nil), s.lags...) }

// Offset returns the start column of operator i (0 ≤ i ≤ NumLags):
// row r of Ψᵢ selects column Offset(i) + r.
func (s *Set) Offset(i int) int { return s.offsets[i] }

// Dense materializes operator i as an explicit 0/1 selection matrix of
// shape TrimmedLen × TimeLen. Intended for inspection and tests; the
// solvers work from offsets directly.
func (s *Set) Dense(i int) *mat.Dense {
	out := mat.NewDense(s.TrimmedLen(), s.timeLen, nil)
	for r := 0; r < s.TrimmedLen(); r++ {
		out.Set(r, s.offsets[i]+r, 1)
	}
	return out
}

// Apply writes Ψᵢ·x into dst (length TrimmedLen) for a time series x of
// length TimeLen. dst and x must not alias.
func (s *Set) Apply(dst []float64, i int, x []float64) {
	off := s.offsets[i]
	for r := range dst {
		dst[r] = x[off+r]
	}
}
