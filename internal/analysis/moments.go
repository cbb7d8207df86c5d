package analysis

import (
	"github.com/montanaflynn/stats"
)

// summaryStats holds the raw descriptive moments for one slice of values
type summaryStats struct {
	mean   float64
	median float64
	stdDev float64
	min    float64
	max    float64
	q1     float64
	q3     float64
	iqr    float64
}

// computeSummary derives the descriptive moments for a group of values.
// A single observation yields a degenerate summary: every location measure
// equals the observation and the spread measures collapse to zero.
func computeSummary(values []float64) (summaryStats, error) {
	n := len(values)
	if n == 0 {
		return summaryStats{}, stats.EmptyInputErr
	}
	if n == 1 {
		v := values[0]
		return summaryStats{mean: v, median: v, min: v, max: v, q1: v, q3: v}, nil
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviationSample(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	quartiles, _ := stats.Quartile(values)
	iqr, _ := stats.InterQuartileRange(values)

	return summaryStats{
		mean:   mean,
		median: median,
		stdDev: stdDev,
		min:    min,
		max:    max,
		q1:     quartiles.Q1,
		q3:     quartiles.Q3,
		iqr:    iqr,
	}, nil
}

// computeMedian returns the median of a non-empty slice
func computeMedian(values []float64) float64 {
	median, _ := stats.Median(values)
	return median
}

// computeMean returns the mean of a non-empty slice
func computeMean(values []float64) float64 {
	mean, _ := stats.Mean(values)
	return mean
}
