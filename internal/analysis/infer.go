package analysis

import (
	"longstat/domain/anage"
	"longstat/domain/stats"
)

// lowNThreshold is the group size below which the normal-approximation
// tests get an advisory flag
const lowNThreshold = 30

// CompareClasses runs the inferential stage over the five target classes:
// the advisory Levene check, the one-way ANOVA baseline, the Kruskal-Wallis
// global test and the Bonferroni-corrected Mann-Whitney post-hoc table.
// Any target class with fewer than two usable observations fails the whole
// stage with an error naming that class.
func CompareClasses(ds *anage.Dataset, alpha float64) (*stats.ClassComparison, error) {
	groups := classGroups(ds)

	levene, err := Levene(groups)
	if err != nil {
		return nil, err
	}

	anova, err := OneWayANOVA(groups)
	if err != nil {
		return nil, err
	}

	kruskal, err := KruskalWallis(groups)
	if err != nil {
		return nil, err
	}

	postHoc, err := postHocPairs(groups, alpha)
	if err != nil {
		return nil, err
	}

	return &stats.ClassComparison{
		Levene:        levene,
		ANOVA:         anova,
		KruskalWallis: kruskal,
		PostHoc:       postHoc,
		Warnings:      inferenceWarnings(groups, levene, alpha),
	}, nil
}

// postHocPairs tests every unordered pair of groups and applies the
// Bonferroni correction across the whole family
func postHocPairs(groups []Group, alpha float64) ([]stats.PairwiseComparison, error) {
	pairCount := len(groups) * (len(groups) - 1) / 2
	pairs := make([]stats.PairwiseComparison, 0, pairCount)
	rawPs := make([]float64, 0, pairCount)

	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			u, p, err := MannWhitneyU(groups[i], groups[j])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, stats.PairwiseComparison{
				GroupA:     groups[i].Name,
				GroupB:     groups[j].Name,
				NA:         len(groups[i].Values),
				NB:         len(groups[j].Values),
				UStatistic: u,
				PValue:     p,
			})
			rawPs = append(rawPs, p)
		}
	}

	adjusted := BonferroniAdjust(rawPs)
	for i := range pairs {
		pairs[i].AdjustedP = adjusted[i]
		pairs[i].Significant = adjusted[i] < alpha
	}
	return pairs, nil
}

// inferenceWarnings derives the advisory flags recorded next to the tests,
// one occurrence per code
func inferenceWarnings(groups []Group, levene stats.TestResult, alpha float64) []stats.WarningCode {
	var warnings []stats.WarningCode
	if levene.PValue < alpha {
		warnings = append(warnings, stats.WarningVarianceHeterogeneity)
	}
	for _, g := range groups {
		if len(g.Values) < lowNThreshold {
			warnings = append(warnings, stats.WarningLowN)
			break
		}
	}
	return warnings
}
