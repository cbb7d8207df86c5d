package stats

// Figure data computed by the pipeline for the external report renderer.
// These carry plain numbers only; all drawing happens downstream.

// HistogramBin is one equal-width bin of a histogram.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram is the binned distribution of a single numeric field.
type Histogram struct {
	Field      string         `json:"field"`
	SampleSize int            `json:"sample_size"`
	Bins       []HistogramBin `json:"bins"`
}

// BoxStats is the five-number summary a box plot is drawn from, with
// whiskers at 1.5 IQR clamped to the observed range.
type BoxStats struct {
	Group       string  `json:"group"`
	Count       int     `json:"count"`
	Median      float64 `json:"median"`
	Q1          float64 `json:"q1"`
	Q3          float64 `json:"q3"`
	WhiskerLow  float64 `json:"whisker_low"`
	WhiskerHigh float64 `json:"whisker_high"`
	Outliers    int     `json:"outliers"`
}

// ScatterSeries holds one class worth of (x, y) points.
type ScatterSeries struct {
	Group string    `json:"group"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// FitLine is the regression line in the scatter plot's coordinate space.
type FitLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	XMin      float64 `json:"x_min"`
	XMax      float64 `json:"x_max"`
}

// QQPoint pairs a theoretical normal quantile with a sample quantile.
type QQPoint struct {
	Theoretical float64 `json:"theoretical"`
	Sample      float64 `json:"sample"`
}

// QQPlot holds the normal quantile-quantile data for one class.
type QQPlot struct {
	Group      string    `json:"group"`
	SampleSize int       `json:"sample_size"`
	Mean       float64   `json:"mean"`
	StdDev     float64   `json:"std_dev"`
	Points     []QQPoint `json:"points"`
}

// FigureSet is the full bundle of figure data one run produces.
type FigureSet struct {
	LongevityHistogram    Histogram       `json:"longevity_histogram"`
	LogLongevityHistogram Histogram       `json:"log_longevity_histogram"`
	ClassBoxes            []BoxStats      `json:"class_boxes"`
	AllometryScatter      []ScatterSeries `json:"allometry_scatter"`
	AllometryFit          FitLine         `json:"allometry_fit"`
	TopOrders             []OrderCount    `json:"top_orders"`
	QQPlots               []QQPlot        `json:"qq_plots"`
}
