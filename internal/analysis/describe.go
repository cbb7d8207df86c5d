package analysis

import (
	"fmt"
	"sort"

	"longstat/domain/anage"
	"longstat/domain/core"
	"longstat/domain/stats"
)

// Summarize computes the per-class descriptive summary over records with a
// target class and a positive maximum longevity. Only grouping by the Class
// column is supported. Map iteration order is unspecified; consumers sort
// by anage.TargetClasses for display.
func Summarize(ds *anage.Dataset, groupBy string) (map[anage.Class]stats.GroupSummary, error) {
	if groupBy != anage.ColClass {
		return nil, core.NewValidationError("group_by", fmt.Sprintf("unsupported grouping column %q", groupBy))
	}

	byClass := ds.LongevityByClass()
	summaries := make(map[anage.Class]stats.GroupSummary, len(byClass))
	for class, values := range byClass {
		moments, err := computeSummary(values)
		if err != nil {
			return nil, err
		}
		summaries[class] = stats.GroupSummary{
			Group:      class.String(),
			Count:      len(values),
			Mean:       moments.mean,
			Median:     moments.median,
			StdDev:     moments.stdDev,
			Min:        moments.min,
			Max:        moments.max,
			Q1:         moments.q1,
			Q3:         moments.q3,
			IQR:        moments.iqr,
			Degenerate: len(values) == 1,
		}
	}
	return summaries, nil
}

// OverallSummary computes the ungrouped longevity summary across every
// class, target or not.
func OverallSummary(ds *anage.Dataset) (stats.GroupSummary, error) {
	values := ds.OverallLongevity()
	if len(values) == 0 {
		return stats.GroupSummary{}, core.ErrEmptyDataset
	}

	moments, err := computeSummary(values)
	if err != nil {
		return stats.GroupSummary{}, err
	}

	return stats.GroupSummary{
		Group:      "all",
		Count:      len(values),
		Mean:       moments.mean,
		Median:     moments.median,
		StdDev:     moments.stdDev,
		Min:        moments.min,
		Max:        moments.max,
		Q1:         moments.q1,
		Q3:         moments.q3,
		IQR:        moments.iqr,
		Degenerate: len(values) == 1,
	}, nil
}

// QualityFrequencies tallies the data-quality ratings across all records
func QualityFrequencies(ds *anage.Dataset) []stats.FrequencyCount {
	return frequencies(ds, func(r anage.Record) string { return r.DataQuality })
}

// OriginFrequencies tallies the specimen-origin values across all records
func OriginFrequencies(ds *anage.Dataset) []stats.FrequencyCount {
	return frequencies(ds, func(r anage.Record) string { return r.SpecimenOrigin })
}

// frequencies builds a frequency table for one categorical field. Empty
// cells are skipped; shares are relative to the full record count so the
// table also reveals how much of the column is missing.
func frequencies(ds *anage.Dataset, field func(anage.Record) string) []stats.FrequencyCount {
	total := ds.Len()
	if total == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, r := range ds.Records {
		v := field(r)
		if v == "" {
			continue
		}
		counts[v]++
	}

	table := make([]stats.FrequencyCount, 0, len(counts))
	for v, c := range counts {
		table = append(table, stats.FrequencyCount{
			Value: v,
			Count: c,
			Share: float64(c) / float64(total),
		})
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Value < table[j].Value
	})
	return table
}

// TopOrders ranks taxonomic orders by record count, reporting each order's
// dominant class and keeping the limit most frequent
func TopOrders(ds *anage.Dataset, limit int) []stats.OrderCount {
	type orderTally struct {
		total   int
		byClass map[anage.Class]int
	}

	tallies := make(map[string]*orderTally)
	for _, r := range ds.Records {
		if r.Order == "" {
			continue
		}
		t := tallies[r.Order]
		if t == nil {
			t = &orderTally{byClass: make(map[anage.Class]int)}
			tallies[r.Order] = t
		}
		t.total++
		if r.Class != "" {
			t.byClass[r.Class]++
		}
	}

	ranked := make([]stats.OrderCount, 0, len(tallies))
	for order, t := range tallies {
		ranked = append(ranked, stats.OrderCount{
			Order:         order,
			Count:         t.total,
			DominantClass: dominantClass(t.byClass),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Order < ranked[j].Order
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// dominantClass picks the most frequent class, breaking count ties by name
// so the result is stable across runs
func dominantClass(byClass map[anage.Class]int) string {
	best := ""
	bestCount := 0
	for class, count := range byClass {
		name := string(class)
		if count > bestCount || (count == bestCount && best != "" && name < best) {
			best = name
			bestCount = count
		}
	}
	return best
}
