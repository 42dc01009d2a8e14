package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"NewsPulse/internal/domain/models"
	domsvc "NewsPulse/internal/domain/service"
)

// PearsonEngine computes Pearson correlation with a two-sided p-value from
// the t-statistic with n-2 degrees of freedom.
type PearsonEngine struct {
	minObservations int
}

func NewPearsonEngine(minObservations int) *PearsonEngine {
	if minObservations < 2 {
		minObservations = 2
	}
	return &PearsonEngine{minObservations: minObservations}
}

// Correlate pairs daily sentiment with next-day returns for one symbol.
// Degenerate inputs (too few pairs, zero variance in either series) yield an
// Undefined result with NaN coefficient and p-value, never an error.
func (e *PearsonEngine) Correlate(symbol string, sentiment, returns []float64) models.CorrelationResult {
	n := len(sentiment)
	result := models.CorrelationResult{
		Symbol:       symbol,
		Observations: n,
		Correlation:  math.NaN(),
		PValue:       math.NaN(),
	}
	if n != len(returns) || n < e.minObservations {
		result.Undefined = true
		return result
	}
	if stat.Variance(sentiment, nil) == 0 || stat.Variance(returns, nil) == 0 {
		result.Undefined = true
		return result
	}

	r := stat.Correlation(sentiment, returns, nil)
	if math.IsNaN(r) {
		result.Undefined = true
		return result
	}
	// Numerical noise can push |r| marginally past 1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	result.Correlation = r
	result.PValue = pValue(r, n)
	return result
}

// pValue computes the two-sided significance of r over n observations.
func pValue(r float64, n int) float64 {
	// Two observations always produce |r| = 1 with zero degrees of
	// freedom; the correlation carries no significance, so p = 1.
	if n <= 2 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return p
}

var _ domsvc.Correlator = (*PearsonEngine)(nil)
