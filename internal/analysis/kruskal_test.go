package analysis

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"longstat/domain/core"
)

// normalGroups draws k synthetic groups around the given means with a
// shared spread, deterministically for a seed.
func normalGroups(seed int64, means []float64, sd float64, n int) []Group {
	rng := rand.New(rand.NewSource(seed))
	groups := make([]Group, len(means))
	for i, mean := range means {
		values := make([]float64, n)
		for j := range values {
			values[j] = mean + rng.NormFloat64()*sd
		}
		groups[i] = Group{Name: string(rune('A' + i)), Values: values}
	}
	return groups
}

func TestKruskalWallis_SeparatedGroupsRejectNull(t *testing.T) {
	groups := normalGroups(42, []float64{1, 2, 3, 4, 5}, 0.5, 20)

	res, err := KruskalWallis(groups)
	if err != nil {
		t.Fatalf("kruskal-wallis: %v", err)
	}
	if res.Statistic <= 0 {
		t.Fatalf("expected H > 0 for separated groups, got %.4f", res.Statistic)
	}
	if res.PValue >= 0.05 {
		t.Fatalf("expected p < 0.05 for separated groups, got %.4g (H=%.4f)", res.PValue, res.Statistic)
	}
	if res.DF1 != 4 {
		t.Fatalf("expected df = 4 for five groups, got %.0f", res.DF1)
	}
}

func TestKruskalWallis_RankInvariantUnderLogTransform(t *testing.T) {
	raw := normalGroups(7, []float64{10, 20, 35}, 4, 15)

	logged := make([]Group, len(raw))
	for i, g := range raw {
		values := make([]float64, len(g.Values))
		for j, v := range g.Values {
			values[j] = math.Log(v)
		}
		logged[i] = Group{Name: g.Name, Values: values}
	}

	rawRes, err := KruskalWallis(raw)
	if err != nil {
		t.Fatalf("raw kruskal-wallis: %v", err)
	}
	logRes, err := KruskalWallis(logged)
	if err != nil {
		t.Fatalf("log kruskal-wallis: %v", err)
	}

	if math.Abs(rawRes.Statistic-logRes.Statistic) > 1e-9 {
		t.Fatalf("H must be invariant under monotone transforms: raw=%.12f log=%.12f", rawRes.Statistic, logRes.Statistic)
	}
	if math.Abs(rawRes.PValue-logRes.PValue) > 1e-9 {
		t.Fatalf("p must be invariant under monotone transforms: raw=%.12g log=%.12g", rawRes.PValue, logRes.PValue)
	}
}

func TestKruskalWallis_EpsilonSquaredWithinUnitRange(t *testing.T) {
	cases := []struct {
		name  string
		means []float64
		sd    float64
	}{
		{"overlapping", []float64{10, 10.2, 10.4}, 3},
		{"separated", []float64{1, 5, 9, 13}, 0.5},
		{"identical_means", []float64{5, 5, 5, 5, 5}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			groups := normalGroups(99, tc.means, tc.sd, 12)
			res, err := KruskalWallis(groups)
			if err != nil {
				t.Fatalf("kruskal-wallis: %v", err)
			}
			if res.EffectSize < 0 || res.EffectSize > 1 {
				t.Fatalf("epsilon-squared out of [0,1]: %.6f (H=%.4f)", res.EffectSize, res.Statistic)
			}
		})
	}
}

func TestKruskalWallis_TiedObservationsStayFinite(t *testing.T) {
	// Heavy ties within and across groups
	groups := []Group{
		{Name: "A", Values: []float64{1, 1, 1, 2, 2, 3}},
		{Name: "B", Values: []float64{2, 2, 3, 3, 3, 4}},
		{Name: "C", Values: []float64{1, 2, 3, 4, 4, 4}},
	}

	res, err := KruskalWallis(groups)
	if err != nil {
		t.Fatalf("kruskal-wallis with ties: %v", err)
	}
	if math.IsNaN(res.Statistic) || math.IsInf(res.Statistic, 0) {
		t.Fatalf("tie-corrected H must stay finite, got %v", res.Statistic)
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Fatalf("p out of range with ties: %v", res.PValue)
	}
}

func TestKruskalWallis_RejectsUndersizedGroup(t *testing.T) {
	groups := []Group{
		{Name: "Aves", Values: []float64{1, 2, 3}},
		{Name: "Reptilia", Values: []float64{4}},
	}

	_, err := KruskalWallis(groups)
	if !core.IsInsufficientDataError(err) {
		t.Fatalf("expected insufficient-data error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Reptilia") {
		t.Fatalf("error must name the undersized group, got %q", err.Error())
	}
}

func TestKruskalWallis_IdenticalValuesRejected(t *testing.T) {
	groups := []Group{
		{Name: "A", Values: []float64{7, 7, 7}},
		{Name: "B", Values: []float64{7, 7, 7}},
	}

	_, err := KruskalWallis(groups)
	if !core.IsNumericError(err) {
		t.Fatalf("expected numeric-domain error for all-identical values, got %v", err)
	}
}
