package analysis

import (
	"errors"
	"math"

	"longstat/domain/core"
	"longstat/domain/stats"
)

// Levene tests homogeneity of variances across groups on the absolute
// deviations from each group's median (the Brown-Forsythe variant). The
// result is advisory: callers record it next to the ANOVA rather than
// gating on it.
func Levene(groups []Group) (stats.TestResult, error) {
	if err := validateGroups(groups, 2); err != nil {
		return stats.TestResult{}, err
	}

	centered := make([]Group, len(groups))
	n := 0
	for i, g := range groups {
		median := computeMedian(g.Values)
		z := make([]float64, len(g.Values))
		for j, v := range g.Values {
			z[j] = math.Abs(v - median)
		}
		centered[i] = Group{Name: g.Name, Values: z}
		n += len(g.Values)
	}

	table, err := buildANOVATable(centered)
	if err != nil {
		if errors.Is(err, core.ErrNumericDomain) && table.ssb == 0 {
			// Constant deviations in every group: no evidence against
			// homogeneity, report W = 0 with p = 1
			return stats.NewTestResult(stats.TestLevene, 0, float64(table.df1), float64(table.df2), 1.0, n, len(groups))
		}
		return stats.TestResult{}, err
	}

	p := dists.FTestPValue(table.f, table.df1, table.df2)
	return stats.NewTestResult(stats.TestLevene, table.f, float64(table.df1), float64(table.df2), p, n, len(groups))
}
