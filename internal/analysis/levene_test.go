package analysis

import (
	"testing"
)

func TestLevene_EqualSpreadsKeepNull(t *testing.T) {
	// Same shape shifted by a constant: absolute deviations match exactly,
	// so the between-group spread term vanishes
	groups := []Group{
		{Name: "A", Values: []float64{1, 2, 3, 4, 5}},
		{Name: "B", Values: []float64{11, 12, 13, 14, 15}},
	}

	res, err := Levene(groups)
	if err != nil {
		t.Fatalf("levene: %v", err)
	}
	if res.Statistic != 0 {
		t.Fatalf("expected W = 0 for equal spreads, got %v", res.Statistic)
	}
	if res.PValue != 1 {
		t.Fatalf("expected p = 1 for W = 0, got %v", res.PValue)
	}
}

func TestLevene_UnequalSpreadsFlagHeterogeneity(t *testing.T) {
	// Hand-computed deviations: SSB = 36.45, SSW = 20.2, W ~ 32.5 on (1, 18)
	groups := []Group{
		{Name: "tight", Values: []float64{9.5, 9.6, 9.7, 9.8, 9.9, 10.1, 10.2, 10.3, 10.4, 10.5}},
		{Name: "wide", Values: []float64{5, 6, 7, 8, 9, 11, 12, 13, 14, 15}},
	}

	res, err := Levene(groups)
	if err != nil {
		t.Fatalf("levene: %v", err)
	}
	if res.Statistic < 10 {
		t.Fatalf("expected a large W for a 10x spread contrast, got %.4f", res.Statistic)
	}
	if res.PValue >= 0.01 {
		t.Fatalf("expected p < 0.01, got %.6g (W=%.4f)", res.PValue, res.Statistic)
	}
}

func TestLevene_ConstantDeviationsStayAdvisory(t *testing.T) {
	// Every group's absolute deviations are the same constant; the check
	// cannot find evidence either way and must not abort the stage
	groups := []Group{
		{Name: "A", Values: []float64{1, 3}},
		{Name: "B", Values: []float64{5, 7}},
	}

	res, err := Levene(groups)
	if err != nil {
		t.Fatalf("levene must stay advisory on degenerate deviations: %v", err)
	}
	if res.Statistic != 0 || res.PValue != 1 {
		t.Fatalf("expected W = 0 with p = 1, got W=%v p=%v", res.Statistic, res.PValue)
	}
}
