package analysis

import (
	"math"

	"longstat/domain/anage"
)

// Clean derives the natural-log analysis fields on every record. A log
// field is defined only when its source value is present and positive;
// otherwise it stays marked as missing. Records are never dropped here:
// each downstream stage filters for the fields it needs, so the longevity
// and allometry subsets are selected independently.
func Clean(ds *anage.Dataset) *anage.Dataset {
	for i := range ds.Records {
		rec := &ds.Records[i]
		if rec.HasLongevity() {
			rec.LogLongevity = math.Log(rec.LongevityYears)
		} else {
			rec.LogLongevity = math.NaN()
		}
		if rec.HasWeight() {
			rec.LogWeight = math.Log(rec.AdultWeightG)
		} else {
			rec.LogWeight = math.NaN()
		}
	}
	return ds
}
