package analysis

import (
	"math"
	"sort"

	"longstat/domain/anage"
	"longstat/domain/core"
	"longstat/domain/stats"
)

const (
	// histogramBins is the bin count for the longevity distribution figures
	histogramBins = 30
	// qqClassLimit caps the Q-Q figure at the largest classes
	qqClassLimit = 3
	// topOrderLimit is the bar count for the order-frequency figure
	topOrderLimit = 10
)

// BuildFigures assembles the figure data carried in the report for the
// external renderer. Figure axes use log10 to match the published charts;
// the inferential analysis itself stays in natural log.
func BuildFigures(ds *anage.Dataset, fit stats.RegressionFit) (*stats.FigureSet, error) {
	longevity := ds.OverallLongevity()
	if len(longevity) == 0 {
		return nil, core.ErrEmptyDataset
	}

	logLongevity := make([]float64, len(longevity))
	for i, v := range longevity {
		logLongevity[i] = math.Log10(v)
	}

	boxes, err := buildClassBoxes(ds)
	if err != nil {
		return nil, err
	}

	scatter, line := buildAllometryScatter(ds, fit)

	qq, err := buildQQPlots(ds, qqClassLimit)
	if err != nil {
		return nil, err
	}

	return &stats.FigureSet{
		LongevityHistogram:    buildHistogram("longevity_years", longevity, histogramBins),
		LogLongevityHistogram: buildHistogram("log10_longevity", logLongevity, histogramBins),
		ClassBoxes:            boxes,
		AllometryScatter:      scatter,
		AllometryFit:          line,
		TopOrders:             TopOrders(ds, topOrderLimit),
		QQPlots:               qq,
	}, nil
}

// buildHistogram bins values into equal-width intervals; the final bin is
// closed on both sides so the maximum lands inside it
func buildHistogram(field string, values []float64, bins int) stats.Histogram {
	h := stats.Histogram{Field: field, SampleSize: len(values)}
	if len(values) == 0 || bins <= 0 {
		return h
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		h.Bins = []stats.HistogramBin{{Lower: lo, Upper: hi, Count: len(values)}}
		return h
	}

	width := (hi - lo) / float64(bins)
	h.Bins = make([]stats.HistogramBin, bins)
	for i := range h.Bins {
		h.Bins[i] = stats.HistogramBin{
			Lower: lo + float64(i)*width,
			Upper: lo + float64(i+1)*width,
		}
	}
	h.Bins[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}
	return h
}

// buildClassBoxes computes per-class box statistics of log10 longevity,
// ordered by descending median
func buildClassBoxes(ds *anage.Dataset) ([]stats.BoxStats, error) {
	byClass := ds.LongevityByClass()
	boxes := make([]stats.BoxStats, 0, len(byClass))
	for class, values := range byClass {
		logValues := make([]float64, len(values))
		for i, v := range values {
			logValues[i] = math.Log10(v)
		}

		moments, err := computeSummary(logValues)
		if err != nil {
			return nil, err
		}

		low, high, outliers := whiskers(logValues, moments.q1, moments.q3)
		boxes = append(boxes, stats.BoxStats{
			Group:       class.String(),
			Count:       len(values),
			Median:      moments.median,
			Q1:          moments.q1,
			Q3:          moments.q3,
			WhiskerLow:  low,
			WhiskerHigh: high,
			Outliers:    outliers,
		})
	}

	sort.Slice(boxes, func(i, j int) bool {
		if boxes[i].Median != boxes[j].Median {
			return boxes[i].Median > boxes[j].Median
		}
		return boxes[i].Group < boxes[j].Group
	})
	return boxes, nil
}

// whiskers finds the most extreme observations inside the 1.5 IQR fences
// and counts everything outside them
func whiskers(values []float64, q1, q3 float64) (low, high float64, outliers int) {
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	low = math.Inf(1)
	high = math.Inf(-1)
	for _, v := range values {
		if v < lowerBound || v > upperBound {
			outliers++
			continue
		}
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high, outliers
}

// buildAllometryScatter emits one point series per target class plus a
// catch-all series, with the fitted line converted to log10 space. The
// slope of a log-log fit is base-invariant; only the intercept rescales.
func buildAllometryScatter(ds *anage.Dataset, fit stats.RegressionFit) ([]stats.ScatterSeries, stats.FitLine) {
	targets := anage.TargetClasses()
	series := make(map[string]*stats.ScatterSeries, len(targets))
	names := make([]string, 0, len(targets))
	for _, class := range targets {
		name := class.String()
		series[name] = &stats.ScatterSeries{Group: name}
		names = append(names, name)
	}
	other := &stats.ScatterSeries{Group: "Other"}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, r := range ds.Records {
		if !r.HasLogWeight() || !r.HasLogLongevity() {
			continue
		}
		x := r.LogWeight / math.Ln10
		y := r.LogLongevity / math.Ln10

		s := other
		if r.Class.IsTarget() {
			s = series[r.Class.String()]
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)

		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
	}
	if math.IsInf(xMin, 1) {
		xMin, xMax = 0, 0
	}

	out := make([]stats.ScatterSeries, 0, len(names)+1)
	for _, name := range names {
		out = append(out, *series[name])
	}
	if len(other.X) > 0 {
		out = append(out, *other)
	}

	line := stats.FitLine{
		Slope:     fit.Slope,
		Intercept: fit.Intercept / math.Ln10,
		XMin:      xMin,
		XMax:      xMax,
	}
	return out, line
}

// buildQQPlots derives normal Q-Q data for the largest classes using Blom
// plotting positions, (i - 0.375) / (n + 0.25)
func buildQQPlots(ds *anage.Dataset, limit int) ([]stats.QQPlot, error) {
	byClass := ds.LongevityByClass()

	type classSize struct {
		class anage.Class
		n     int
	}
	sizes := make([]classSize, 0, len(byClass))
	for class, values := range byClass {
		if len(values) < 2 {
			continue
		}
		sizes = append(sizes, classSize{class: class, n: len(values)})
	}
	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].n != sizes[j].n {
			return sizes[i].n > sizes[j].n
		}
		return sizes[i].class < sizes[j].class
	})
	if limit > 0 && len(sizes) > limit {
		sizes = sizes[:limit]
	}

	plots := make([]stats.QQPlot, 0, len(sizes))
	for _, cs := range sizes {
		values := append([]float64(nil), byClass[cs.class]...)
		sort.Float64s(values)

		moments, err := computeSummary(values)
		if err != nil {
			return nil, err
		}

		n := len(values)
		points := make([]stats.QQPoint, n)
		for i, v := range values {
			p := (float64(i+1) - 0.375) / (float64(n) + 0.25)
			points[i] = stats.QQPoint{Theoretical: dists.NormalQuantile(p), Sample: v}
		}

		plots = append(plots, stats.QQPlot{
			Group:      cs.class.String(),
			SampleSize: n,
			Mean:       moments.mean,
			StdDev:     moments.stdDev,
			Points:     points,
		})
	}
	return plots, nil
}
