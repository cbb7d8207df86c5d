package analysis

import (
	"longstat/domain/anage"
	"longstat/domain/stats"
)

// FitAllometry regresses log-longevity on log-weight over every record
// where both derived fields are defined, regardless of class. This is the
// classical allometric scaling fit; the slope is the scaling exponent.
func FitAllometry(ds *anage.Dataset) (stats.RegressionFit, error) {
	x, y := ds.AllometricPairs()
	return FitOLS(x, y)
}
