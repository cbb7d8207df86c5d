package stats

import (
	"fmt"
	"math"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical result shapes, never mutated after creation)
// ============================================================================

// TestType defines the statistical test performed
type TestType string

const (
	TestKruskalWallis TestType = "kruskal_wallis" // Rank-based global test
	TestANOVA         TestType = "anova"          // One-way ANOVA baseline
	TestLevene        TestType = "levene"         // Variance homogeneity check
	TestMannWhitney   TestType = "mann_whitney"   // Pairwise post-hoc test
	TestPearson       TestType = "pearson"        // Pearson correlation / OLS slope
)

// Effect size names carried alongside TestResult.EffectSize
const (
	EffectEpsilonSquared = "epsilon_squared"
	EffectEtaSquared     = "eta_squared"
)

// TestResult contains the canonical outputs of one hypothesis test.
// INVARIANTS:
// - PValue always present (0.0 to 1.0)
// - SampleSize (N) always present and > 0
// - DF2 is zero for single-df-family tests (chi-square approximation)
type TestResult struct {
	Test       TestType `json:"test"`
	Statistic  float64  `json:"statistic"`
	DF1        float64  `json:"df1"`
	DF2        float64  `json:"df2,omitempty"`
	PValue     float64  `json:"p_value"`
	EffectSize float64  `json:"effect_size,omitempty"`
	EffectName string   `json:"effect_name,omitempty"`
	SampleSize int      `json:"sample_size"`
	Groups     int      `json:"groups,omitempty"`
}

// Validate checks the TestResult invariants
func (r TestResult) Validate() error {
	if r.SampleSize <= 0 {
		return fmt.Errorf("SampleSize must be > 0, got %d", r.SampleSize)
	}
	if r.PValue < 0.0 || r.PValue > 1.0 || math.IsNaN(r.PValue) {
		return fmt.Errorf("PValue must be in [0.0, 1.0], got %f", r.PValue)
	}
	if math.IsNaN(r.Statistic) || math.IsInf(r.Statistic, 0) {
		return fmt.Errorf("Statistic must be finite, got %f", r.Statistic)
	}
	return nil
}

// GroupSummary is the per-class descriptive aggregate: recomputed each
// run, never stored. Degenerate marks single-observation groups whose
// spread statistics are reported as zero rather than undefined.
type GroupSummary struct {
	Group      string  `json:"group"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Q1         float64 `json:"q1"`
	Q3         float64 `json:"q3"`
	IQR        float64 `json:"iqr"`
	Degenerate bool    `json:"degenerate,omitempty"`
}

// PairwiseComparison is one post-hoc Mann-Whitney U comparison between
// two classes, with its family-wise correction applied.
type PairwiseComparison struct {
	GroupA      string  `json:"group_a"`
	GroupB      string  `json:"group_b"`
	NA          int     `json:"n_a"`
	NB          int     `json:"n_b"`
	UStatistic  float64 `json:"u_statistic"`
	PValue      float64 `json:"p_value"`
	AdjustedP   float64 `json:"adjusted_p"`
	Significant bool    `json:"significant"`
}

// RegressionFit is the allometric OLS result: log-longevity explained by
// log-weight.
type RegressionFit struct {
	Slope      float64 `json:"slope"`
	Intercept  float64 `json:"intercept"`
	R          float64 `json:"r"`
	RSquared   float64 `json:"r_squared"`
	PValue     float64 `json:"p_value"`
	SampleSize int     `json:"sample_size"`
}

// Validate checks the RegressionFit invariants
func (f RegressionFit) Validate() error {
	if f.SampleSize < 2 {
		return fmt.Errorf("SampleSize must be >= 2, got %d", f.SampleSize)
	}
	if f.R < -1.0 || f.R > 1.0 || math.IsNaN(f.R) {
		return fmt.Errorf("R must be in [-1.0, 1.0], got %f", f.R)
	}
	if f.PValue < 0.0 || f.PValue > 1.0 || math.IsNaN(f.PValue) {
		return fmt.Errorf("PValue must be in [0.0, 1.0], got %f", f.PValue)
	}
	return nil
}

// FrequencyCount is one row of a categorical frequency table.
type FrequencyCount struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// OrderCount ranks a taxonomic order by species count.
type OrderCount struct {
	Order         string `json:"order"`
	Count         int    `json:"count"`
	DominantClass string `json:"dominant_class"`
}

// ============================================================================
// WARNINGS (advisory, never gate computation)
// ============================================================================

// WarningCode represents structured warning types
type WarningCode string

const (
	WarningVarianceHeterogeneity WarningCode = "VARIANCE_HETEROGENEITY" // Levene rejected homogeneity before ANOVA
	WarningLowN                  WarningCode = "LOW_N"                  // Group sample size < 30
	WarningDegenerateGroup       WarningCode = "DEGENERATE_GROUP"       // Group with a single observation
)

// ============================================================================
// COMPOSITES
// ============================================================================

// ClassComparison bundles the inferential stage outputs: the advisory
// variance check, both global tests and the corrected post-hoc table.
type ClassComparison struct {
	Levene        TestResult           `json:"levene"`
	ANOVA         TestResult           `json:"anova"`
	KruskalWallis TestResult           `json:"kruskal_wallis"`
	PostHoc       []PairwiseComparison `json:"post_hoc"`
	Warnings      []WarningCode        `json:"warnings,omitempty"`
}

// ============================================================================
// CONSTRUCTORS
// ============================================================================

// NewTestResult creates a validated test result
func NewTestResult(test TestType, statistic, df1, df2, pValue float64, sampleSize, groups int) (TestResult, error) {
	r := TestResult{
		Test:       test,
		Statistic:  statistic,
		DF1:        df1,
		DF2:        df2,
		PValue:     pValue,
		SampleSize: sampleSize,
		Groups:     groups,
	}
	if err := r.Validate(); err != nil {
		return TestResult{}, err
	}
	return r, nil
}

// WithEffect attaches a named effect size to a result
func (r TestResult) WithEffect(name string, size float64) TestResult {
	r.EffectName = name
	r.EffectSize = size
	return r
}
