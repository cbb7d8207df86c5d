package anage

import (
	"longstat/domain/core"
)

// Dataset is the in-memory table for one run: every species record plus
// the source metadata the run manifest needs. Built once by the loader,
// derived once by the cleaner, then treated as immutable.
type Dataset struct {
	SourcePath  string                  `json:"source_path"`
	Fingerprint core.DatasetFingerprint `json:"fingerprint"`
	Columns     []string                `json:"columns"`
	Records     []Record                `json:"records"`
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Records)
}

// ClassCounts counts every record per target class, regardless of
// longevity availability.
func (d *Dataset) ClassCounts() map[Class]int {
	counts := make(map[Class]int, len(TargetClasses()))
	for _, r := range d.Records {
		if r.Class.IsTarget() {
			counts[r.Class]++
		}
	}
	return counts
}

// LongevityByClass groups raw longevity values by target class. Records
// outside the five target classes or without a positive longevity are
// excluded; this is the class-comparison subset.
func (d *Dataset) LongevityByClass() map[Class][]float64 {
	groups := make(map[Class][]float64, len(TargetClasses()))
	for _, r := range d.Records {
		if r.Class.IsTarget() && r.HasLongevity() {
			groups[r.Class] = append(groups[r.Class], r.LongevityYears)
		}
	}
	return groups
}

// LogLongevityByClass groups derived log-longevity values by target
// class. Only defined after the cleaning stage has run.
func (d *Dataset) LogLongevityByClass() map[Class][]float64 {
	groups := make(map[Class][]float64, len(TargetClasses()))
	for _, r := range d.Records {
		if r.Class.IsTarget() && r.HasLogLongevity() {
			groups[r.Class] = append(groups[r.Class], r.LogLongevity)
		}
	}
	return groups
}

// LongevityN is the size of the class-comparison subset.
func (d *Dataset) LongevityN() int {
	n := 0
	for _, r := range d.Records {
		if r.Class.IsTarget() && r.HasLongevity() {
			n++
		}
	}
	return n
}

// OverallLongevity returns every positive longevity value in the
// dataset, across all classes including non-target ones.
func (d *Dataset) OverallLongevity() []float64 {
	values := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if r.HasLongevity() {
			values = append(values, r.LongevityYears)
		}
	}
	return values
}

// AllometricPairs returns the paired (log-weight, log-longevity) values
// for the regression subset: records where both derived fields are
// defined. Class membership does not gate this subset.
func (d *Dataset) AllometricPairs() (logWeight, logLongevity []float64) {
	for _, r := range d.Records {
		if r.HasLogWeight() && r.HasLogLongevity() {
			logWeight = append(logWeight, r.LogWeight)
			logLongevity = append(logLongevity, r.LogLongevity)
		}
	}
	return logWeight, logLongevity
}

// AllometryN is the size of the regression subset.
func (d *Dataset) AllometryN() int {
	n := 0
	for _, r := range d.Records {
		if r.HasLogWeight() && r.HasLogLongevity() {
			n++
		}
	}
	return n
}
