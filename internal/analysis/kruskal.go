package analysis

import (
	"fmt"

	"longstat/domain/core"
	"longstat/domain/stats"
)

// KruskalWallis runs the rank-based H test for a difference in location
// across two or more independent groups. Ties receive midranks and the
// statistic carries the standard tie correction; the p-value comes from
// the chi-square approximation with k-1 degrees of freedom.
//
// Because ranks are invariant under monotone transforms, the result is
// identical whether the groups hold raw or log-scaled observations.
func KruskalWallis(groups []Group) (stats.TestResult, error) {
	if err := validateGroups(groups, 2); err != nil {
		return stats.TestResult{}, err
	}

	values, groupIdx := pooled(groups)
	n := len(values)
	k := len(groups)
	nf := float64(n)

	ranks, tieSizes := midranks(values)

	// Rank sums per group
	rankSums := make([]float64, k)
	for i, r := range ranks {
		rankSums[groupIdx[i]] += r
	}

	h := 0.0
	for gi, g := range groups {
		ni := float64(len(g.Values))
		h += rankSums[gi] * rankSums[gi] / ni
	}
	h = 12.0/(nf*(nf+1))*h - 3*(nf+1)

	// Tie correction: C = 1 - sum(t^3 - t) / (n^3 - n)
	correction := 1.0 - tieCorrectionSum(tieSizes)/(nf*nf*nf-nf)
	if correction <= 0 {
		return stats.TestResult{}, fmt.Errorf("%w: all pooled observations are identical, rank test undefined", core.ErrNumericDomain)
	}
	h /= correction
	if h < 0 {
		// Floating-point noise can push a null-like H fractionally below zero
		h = 0
	}

	df := k - 1
	p := dists.ChiSquarePValue(h, df)

	result, err := stats.NewTestResult(stats.TestKruskalWallis, h, float64(df), 0, p, n, k)
	if err != nil {
		return stats.TestResult{}, err
	}

	// Epsilon-squared effect size, clamped to [0, 1]
	epsilon := (h - float64(k) + 1) / (nf - float64(k))
	if epsilon < 0 {
		epsilon = 0
	} else if epsilon > 1 {
		epsilon = 1
	}

	return result.WithEffect(stats.EffectEpsilonSquared, epsilon), nil
}
