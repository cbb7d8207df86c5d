package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"longstat/domain/core"
	"longstat/domain/stats"
)

// FitOLS fits an ordinary least squares line y = intercept + slope*x and
// reports the Pearson correlation alongside a two-sided p-value for the
// slope against the zero-slope null (t distribution with n-2 degrees of
// freedom). An exact fit with more than two points yields p = 0; fewer
// than three points yield p = 1.
func FitOLS(x, y []float64) (stats.RegressionFit, error) {
	if len(x) != len(y) {
		return stats.RegressionFit{}, core.NewValidationError("pairs", "x and y must have equal length")
	}
	n := len(x)
	if n < 2 {
		return stats.RegressionFit{}, core.NewInsufficientPairsError(n, 2)
	}
	if stat.Variance(x, nil) == 0 {
		return stats.RegressionFit{}, fmt.Errorf("%w: predictor has zero variance", core.ErrNumericDomain)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		// Constant response: the fitted line is flat and correlation is undefined
		r = 0
	}

	fit := stats.RegressionFit{
		Slope:      slope,
		Intercept:  intercept,
		R:          r,
		RSquared:   r * r,
		PValue:     dists.CorrelationPValue(r, n),
		SampleSize: n,
	}
	if err := fit.Validate(); err != nil {
		return stats.RegressionFit{}, err
	}
	return fit, nil
}
