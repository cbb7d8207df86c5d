package report

import (
	"math"
	"testing"

	"longstat/domain/anage"
	"longstat/domain/stats"
)

func TestOrderSummaries_CanonicalClassOrder(t *testing.T) {
	byClass := map[anage.Class]stats.GroupSummary{
		anage.ClassAmphibia: {Group: "Amphibia", Count: 3},
		anage.ClassMammalia: {Group: "Mammalia", Count: 9},
		anage.ClassAves:     {Group: "Aves", Count: 7},
	}

	ordered := OrderSummaries(byClass)
	want := []string{"Mammalia", "Aves", "Amphibia"}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(ordered))
	}
	for i, name := range want {
		if ordered[i].Group != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, ordered[i].Group)
		}
	}
}

func TestBuildProfile_SubsetCounts(t *testing.T) {
	mammal := anage.NewRecord()
	mammal.Class = anage.ClassMammalia
	mammal.LongevityYears = 20
	mammal.AdultWeightG = 5000
	mammal.LogLongevity = math.Log(20)
	mammal.LogWeight = math.Log(5000)

	bird := anage.NewRecord()
	bird.Class = anage.ClassAves

	insect := anage.NewRecord()
	insect.Class = anage.Class("Insecta")
	insect.LongevityYears = 2
	insect.LogLongevity = math.Log(2)

	ds := &anage.Dataset{
		Columns: anage.CanonicalColumns(),
		Records: []anage.Record{mammal, bird, insect},
	}

	profile := BuildProfile(ds)
	if profile.TotalRecords != 3 {
		t.Fatalf("expected 3 records, got %d", profile.TotalRecords)
	}
	if profile.ColumnCount != 31 {
		t.Fatalf("expected the 31-column AnAge layout, got %d", profile.ColumnCount)
	}
	if profile.LongevitySubsetN != 1 {
		t.Fatalf("class subset must require a target class and positive longevity, got %d", profile.LongevitySubsetN)
	}
	if profile.OverallLongevityN != 2 {
		t.Fatalf("overall subset must include non-target classes, got %d", profile.OverallLongevityN)
	}
	if profile.AllometrySubsetN != 1 {
		t.Fatalf("allometry subset needs both log fields, got %d", profile.AllometrySubsetN)
	}
	if profile.ClassCounts["Mammalia"] != 1 || profile.ClassCounts["Aves"] != 1 {
		t.Fatalf("unexpected class counts: %v", profile.ClassCounts)
	}
	if _, ok := profile.ClassCounts["Insecta"]; ok {
		t.Fatal("non-target classes must not appear in the class counts")
	}
}

func TestDescriptiveWarnings_FlagsDegenerateGroups(t *testing.T) {
	none := DescriptiveWarnings([]stats.GroupSummary{{Group: "Aves", Count: 5}})
	if len(none) != 0 {
		t.Fatalf("expected no warnings, got %v", none)
	}

	flagged := DescriptiveWarnings([]stats.GroupSummary{
		{Group: "Aves", Count: 5},
		{Group: "Amphibia", Count: 1, Degenerate: true},
	})
	if len(flagged) != 1 || flagged[0] != stats.WarningDegenerateGroup {
		t.Fatalf("expected a degenerate-group warning, got %v", flagged)
	}
}

func TestReport_SignificantPairs(t *testing.T) {
	r := &Report{}
	r.Inferential.PostHoc = []stats.PairwiseComparison{
		{GroupA: "Mammalia", GroupB: "Aves", AdjustedP: 0.001, Significant: true},
		{GroupA: "Aves", GroupB: "Teleostei", AdjustedP: 0.9},
		{GroupA: "Mammalia", GroupB: "Amphibia", AdjustedP: 0.01, Significant: true},
	}

	sig := r.SignificantPairs()
	if len(sig) != 2 {
		t.Fatalf("expected 2 significant pairs, got %d", len(sig))
	}
	if sig[0].GroupB != "Aves" || sig[1].GroupB != "Amphibia" {
		t.Fatalf("pairs must preserve table order: %+v", sig)
	}
}
