package analysis

import (
	"math"
	"testing"

	"longstat/domain/anage"
)

func TestClean_DerivesNaturalLogFields(t *testing.T) {
	withLongevity := anage.NewRecord()
	withLongevity.Class = anage.ClassMammalia
	withLongevity.LongevityYears = 10
	withLongevity.AdultWeightG = 2500

	zeroLongevity := anage.NewRecord()
	zeroLongevity.Class = anage.ClassAves
	zeroLongevity.LongevityYears = 0

	missing := anage.NewRecord()
	missing.Class = anage.ClassReptilia

	ds := &anage.Dataset{Records: []anage.Record{withLongevity, zeroLongevity, missing}}

	Clean(ds)

	if got := ds.Records[0].LogLongevity; math.Abs(got-math.Log(10)) > 1e-12 {
		t.Fatalf("expected ln(10), got %v", got)
	}
	if got := ds.Records[0].LogWeight; math.Abs(got-math.Log(2500)) > 1e-12 {
		t.Fatalf("expected ln(2500), got %v", got)
	}
	if ds.Records[1].HasLogLongevity() {
		t.Fatal("zero longevity must leave the log field undefined")
	}
	if ds.Records[2].HasLogLongevity() || ds.Records[2].HasLogWeight() {
		t.Fatal("missing values must leave the log fields undefined")
	}
	if len(ds.Records) != 3 {
		t.Fatalf("cleaning must never drop records, got %d", len(ds.Records))
	}
}
