package analysis

import (
	"math"

	"longstat/domain/core"
)

// MannWhitneyU runs the two-sided rank-sum test for a pair of independent
// groups using the normal approximation with midrank ties, tie-corrected
// variance and a continuity correction. The returned statistic is the U of
// the first group.
func MannWhitneyU(a, b Group) (uStatistic, pValue float64, err error) {
	if len(a.Values) < 2 {
		return 0, 0, core.NewInsufficientDataError(a.Name, len(a.Values), 2)
	}
	if len(b.Values) < 2 {
		return 0, 0, core.NewInsufficientDataError(b.Name, len(b.Values), 2)
	}

	na := float64(len(a.Values))
	nb := float64(len(b.Values))

	values, groupIdx := pooled([]Group{a, b})
	ranks, tieSizes := midranks(values)

	// Rank sum of the first group
	r1 := 0.0
	for i, r := range ranks {
		if groupIdx[i] == 0 {
			r1 += r
		}
	}

	u1 := r1 - na*(na+1)/2.0

	nf := na + nb
	mu := na * nb / 2.0
	tieTerm := tieCorrectionSum(tieSizes) / (nf * (nf - 1))
	sigma := math.Sqrt(na * nb / 12.0 * ((nf + 1) - tieTerm))
	if sigma == 0 {
		// Every pooled observation is tied: the ranking carries no information
		return u1, 1.0, nil
	}

	// Continuity-corrected z, floored at zero so U == mu yields p = 1
	z := (math.Abs(u1-mu) - 0.5) / sigma
	if z < 0 {
		z = 0
	}

	p := clampP(2 * (1 - dists.NormalCDF(z)))
	return u1, p, nil
}
