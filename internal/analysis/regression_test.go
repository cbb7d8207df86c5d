package analysis

import (
	"math"
	"testing"

	"longstat/domain/core"
)

func TestFitOLS_RecoversPerfectLine(t *testing.T) {
	n := 20
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i + 1)
		y[i] = 2*x[i] + 1
	}

	fit, err := FitOLS(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(fit.Slope-2) > 1e-9 {
		t.Fatalf("expected slope 2, got %.12f", fit.Slope)
	}
	if math.Abs(fit.Intercept-1) > 1e-9 {
		t.Fatalf("expected intercept 1, got %.12f", fit.Intercept)
	}
	if math.Abs(fit.R-1) > 1e-9 {
		t.Fatalf("expected r = 1 for an exact fit, got %.12f", fit.R)
	}
	if fit.PValue > 1e-9 {
		t.Fatalf("expected p ~ 0 for an exact fit with n > 2, got %v", fit.PValue)
	}
}

func TestFitOLS_NoisyLineKeepsSign(t *testing.T) {
	// Alternating small perturbations around y = -0.5x + 3
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		noise := 0.05
		if i%2 == 0 {
			noise = -0.05
		}
		y[i] = -0.5*v + 3 + noise
	}

	fit, err := FitOLS(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if fit.Slope >= 0 {
		t.Fatalf("expected negative slope, got %.4f", fit.Slope)
	}
	if fit.R >= 0 {
		t.Fatalf("expected negative correlation, got %.4f", fit.R)
	}
	if fit.RSquared < 0.9 {
		t.Fatalf("expected a strong fit, got r2 = %.4f", fit.RSquared)
	}
	if fit.PValue >= 0.01 {
		t.Fatalf("expected p < 0.01 for a near-exact line, got %.6g", fit.PValue)
	}
}

func TestFitOLS_TwoPointsYieldUnitPValue(t *testing.T) {
	fit, err := FitOLS([]float64{1, 2}, []float64{3, 7})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(fit.Slope-4) > 1e-9 {
		t.Fatalf("expected slope 4 through two points, got %v", fit.Slope)
	}
	if fit.PValue != 1 {
		t.Fatalf("expected p = 1 with zero residual degrees of freedom, got %v", fit.PValue)
	}
}

func TestFitOLS_InsufficientPairsRejected(t *testing.T) {
	_, err := FitOLS([]float64{1}, []float64{2})
	if !core.IsInsufficientDataError(err) {
		t.Fatalf("expected insufficient-data error, got %v", err)
	}
}

func TestFitOLS_MismatchedLengthsRejected(t *testing.T) {
	_, err := FitOLS([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected an error for mismatched pair lengths")
	}
}

func TestFitOLS_ConstantPredictorRejected(t *testing.T) {
	_, err := FitOLS([]float64{5, 5, 5}, []float64{1, 2, 3})
	if !core.IsNumericError(err) {
		t.Fatalf("expected numeric-domain error for a constant predictor, got %v", err)
	}
}
