package analysis

import (
	"fmt"

	"longstat/domain/core"
	"longstat/domain/stats"
)

// anovaTable holds the variance decomposition shared by the F-based tests
type anovaTable struct {
	f   float64
	df1 int
	df2 int
	ssb float64
	ssw float64
}

// buildANOVATable decomposes the total variance into between-group and
// within-group sums of squares. On a zero within-group variance the table
// is returned alongside the error so callers can inspect the decomposition.
func buildANOVATable(groups []Group) (anovaTable, error) {
	values, _ := pooled(groups)
	n := len(values)
	k := len(groups)
	grand := computeMean(values)

	table := anovaTable{df1: k - 1, df2: n - k}
	for _, g := range groups {
		groupMean := computeMean(g.Values)
		ni := float64(len(g.Values))
		d := groupMean - grand
		table.ssb += ni * d * d
		for _, v := range g.Values {
			e := v - groupMean
			table.ssw += e * e
		}
	}

	if table.df2 <= 0 {
		return table, core.NewInsufficientDataError("pooled", n, k+1)
	}

	msw := table.ssw / float64(table.df2)
	if msw == 0 {
		return table, fmt.Errorf("%w: zero within-group variance, F statistic undefined", core.ErrNumericDomain)
	}

	table.f = (table.ssb / float64(table.df1)) / msw
	return table, nil
}

// OneWayANOVA runs the classical F test for equality of group means.
// The effect size is eta-squared, the share of total variance explained
// by group membership.
func OneWayANOVA(groups []Group) (stats.TestResult, error) {
	if err := validateGroups(groups, 2); err != nil {
		return stats.TestResult{}, err
	}

	table, err := buildANOVATable(groups)
	if err != nil {
		return stats.TestResult{}, err
	}

	n := 0
	for _, g := range groups {
		n += len(g.Values)
	}

	p := dists.FTestPValue(table.f, table.df1, table.df2)

	result, err := stats.NewTestResult(stats.TestANOVA, table.f, float64(table.df1), float64(table.df2), p, n, len(groups))
	if err != nil {
		return stats.TestResult{}, err
	}

	eta := table.ssb / (table.ssb + table.ssw)
	return result.WithEffect(stats.EffectEtaSquared, eta), nil
}
