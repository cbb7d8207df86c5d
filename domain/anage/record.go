package anage

import (
	"math"
	"strings"
)

// Record is one species row from the AnAge table. Numeric fields use NaN
// for missing values; derived log fields stay NaN until the cleaning
// stage defines them (and remain NaN when the source value is not
// positive).
type Record struct {
	HAGRID         string `json:"hagrid"`
	Kingdom        string `json:"kingdom"`
	Class          Class  `json:"class"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
	Species        string `json:"species"`
	CommonName     string `json:"common_name"`
	DataQuality    string `json:"data_quality"`
	SpecimenOrigin string `json:"specimen_origin"`

	LongevityYears float64 `json:"longevity_years"`
	AdultWeightG   float64 `json:"adult_weight_g"`

	// Derived by the cleaning stage
	LogLongevity float64 `json:"log_longevity"`
	LogWeight    float64 `json:"log_weight"`
}

// NewRecord creates a record with all numeric fields marked missing.
func NewRecord() Record {
	nan := math.NaN()
	return Record{
		LongevityYears: nan,
		AdultWeightG:   nan,
		LogLongevity:   nan,
		LogWeight:      nan,
	}
}

// BinomialName returns "Genus species" for display and diagnostics.
func (r Record) BinomialName() string {
	return strings.TrimSpace(r.Genus + " " + r.Species)
}

// HasLongevity reports whether longevity is present and positive.
func (r Record) HasLongevity() bool {
	return !math.IsNaN(r.LongevityYears) && r.LongevityYears > 0
}

// HasWeight reports whether adult weight is present and positive.
func (r Record) HasWeight() bool {
	return !math.IsNaN(r.AdultWeightG) && r.AdultWeightG > 0
}

// HasLogLongevity reports whether the derived log-longevity is defined.
func (r Record) HasLogLongevity() bool {
	return !math.IsNaN(r.LogLongevity)
}

// HasLogWeight reports whether the derived log-weight is defined.
func (r Record) HasLogWeight() bool {
	return !math.IsNaN(r.LogWeight)
}
