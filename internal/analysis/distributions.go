package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StatisticalDistributions provides unified access to the reference
// distributions used by the inferential and regression stages.
type StatisticalDistributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *StatisticalDistributions {
	return &StatisticalDistributions{}
}

// dists is the shared instance used by the stage functions in this package
var dists = NewDistributions()

// TTestPValue computes the two-tailed p-value for a t-statistic using
// Student's t-distribution
func (sd *StatisticalDistributions) TTestPValue(tStatistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}

	df := float64(degreesOfFreedom)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	// Two-tailed test
	return clampP(2 * (1 - tDist.CDF(math.Abs(tStatistic))))
}

// CorrelationPValue computes the exact p-value for a Pearson correlation
// coefficient against the zero-correlation null
func (sd *StatisticalDistributions) CorrelationPValue(correlation float64, sampleSize int) float64 {
	if sampleSize < 3 {
		return 1.0
	}
	if correlation*correlation >= 1 {
		return 0.0
	}

	// Transform correlation to a t-statistic with n-2 degrees of freedom
	df := float64(sampleSize - 2)
	tStatistic := correlation * math.Sqrt(df/(1-correlation*correlation))

	return sd.TTestPValue(tStatistic, int(df))
}

// FTestPValue computes the upper-tail p-value for an F-statistic
// (ANOVA, Levene, regression)
func (sd *StatisticalDistributions) FTestPValue(fStatistic float64, df1, df2 int) float64 {
	if df1 <= 0 || df2 <= 0 {
		return 1.0
	}

	fDist := distuv.F{D1: float64(df1), D2: float64(df2)}
	return clampP(1 - fDist.CDF(fStatistic))
}

// ChiSquarePValue computes the upper-tail p-value for a chi-square statistic
func (sd *StatisticalDistributions) ChiSquarePValue(chiSquare float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}

	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return clampP(1 - chiDist.CDF(chiSquare))
}

// NormalCDF computes the cumulative distribution function for the
// standard normal
func (sd *StatisticalDistributions) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the quantile function for the standard normal
// (inverse CDF)
func (sd *StatisticalDistributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// clampP keeps floating-point noise from pushing a probability outside [0,1]
func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
