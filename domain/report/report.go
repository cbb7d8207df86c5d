package report

import (
	"sort"

	"longstat/domain/anage"
	"longstat/domain/core"
	"longstat/domain/run"
	"longstat/domain/stats"
)

// Report is the single artifact one pipeline run produces: every number
// the external renderer needs, and nothing it has to recompute. All float
// fields are finite; missing values never reach this struct.
type Report struct {
	Manifest    run.Manifest          `json:"manifest"`
	Profile     DatasetProfile        `json:"profile"`
	Descriptive DescriptiveSection    `json:"descriptive"`
	Inferential stats.ClassComparison `json:"inferential"`
	Allometry   stats.RegressionFit   `json:"allometry"`
	Figures     stats.FigureSet       `json:"figures"`
}

// DatasetProfile describes the loaded table and its analysis subsets.
type DatasetProfile struct {
	TotalRecords      int            `json:"total_records"`
	ColumnCount       int            `json:"column_count"`
	ClassCounts       map[string]int `json:"class_counts"`
	LongevitySubsetN  int            `json:"longevity_subset_n"`
	OverallLongevityN int            `json:"overall_longevity_n"`
	AllometrySubsetN  int            `json:"allometry_subset_n"`
}

// DescriptiveSection carries the per-class summaries in canonical class
// order plus the whole-table aggregates.
type DescriptiveSection struct {
	ByClass   []stats.GroupSummary   `json:"by_class"`
	Overall   stats.GroupSummary     `json:"overall"`
	Quality   []stats.FrequencyCount `json:"quality"`
	Origin    []stats.FrequencyCount `json:"origin"`
	TopOrders []stats.OrderCount     `json:"top_orders"`
	Warnings  []stats.WarningCode    `json:"warnings,omitempty"`
}

// BuildProfile derives the dataset profile from the cleaned table.
func BuildProfile(ds *anage.Dataset) DatasetProfile {
	classCounts := make(map[string]int, len(anage.TargetClasses()))
	for class, n := range ds.ClassCounts() {
		classCounts[class.String()] = n
	}
	return DatasetProfile{
		TotalRecords:      ds.Len(),
		ColumnCount:       len(ds.Columns),
		ClassCounts:       classCounts,
		LongevitySubsetN:  ds.LongevityN(),
		OverallLongevityN: len(ds.OverallLongevity()),
		AllometrySubsetN:  ds.AllometryN(),
	}
}

// OrderSummaries flattens the per-class map into canonical class order.
// Classes absent from the map are skipped, never zero-filled.
func OrderSummaries(byClass map[anage.Class]stats.GroupSummary) []stats.GroupSummary {
	ordered := make([]stats.GroupSummary, 0, len(byClass))
	for _, class := range anage.TargetClasses() {
		if s, ok := byClass[class]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// DescriptiveWarnings derives the advisory flags for the descriptive
// section, one occurrence per code.
func DescriptiveWarnings(byClass []stats.GroupSummary) []stats.WarningCode {
	var warnings []stats.WarningCode
	for _, s := range byClass {
		if s.Degenerate {
			warnings = append(warnings, stats.WarningDegenerateGroup)
			break
		}
	}
	return warnings
}

// Validate checks the report is complete enough to write.
func (r *Report) Validate() error {
	if err := r.Manifest.Validate(); err != nil {
		return err
	}
	if r.Profile.TotalRecords <= 0 {
		return core.NewValidationError("profile", "total records must be positive")
	}
	if len(r.Descriptive.ByClass) == 0 {
		return core.NewValidationError("descriptive", "per-class summaries are empty")
	}
	if len(r.Inferential.PostHoc) == 0 {
		return core.NewValidationError("inferential", "post-hoc table is empty")
	}
	return nil
}

// SignificantPairs lists the post-hoc comparisons that survive the
// family-wise correction, preserving table order.
func (r *Report) SignificantPairs() []stats.PairwiseComparison {
	var out []stats.PairwiseComparison
	for _, p := range r.Inferential.PostHoc {
		if p.Significant {
			out = append(out, p)
		}
	}
	return out
}

// SortedClassCounts returns the profile's class counts largest first for
// display, ties broken by name.
func (p DatasetProfile) SortedClassCounts() []stats.FrequencyCount {
	out := make([]stats.FrequencyCount, 0, len(p.ClassCounts))
	for name, n := range p.ClassCounts {
		share := 0.0
		if p.TotalRecords > 0 {
			share = float64(n) / float64(p.TotalRecords)
		}
		out = append(out, stats.FrequencyCount{Value: name, Count: n, Share: share})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
