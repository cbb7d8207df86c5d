package report

import (
	"longstat/domain/anage"
	domainReport "longstat/domain/report"
	"longstat/domain/run"
	"longstat/internal/analysis"
)

// topOrderLimit caps the taxonomic-order ranking carried in the report
const topOrderLimit = 10

// Assemble runs the descriptive, inferential, regression and figure stages
// over a cleaned dataset and bundles their outputs with a fresh run
// manifest. The first stage error aborts assembly; a partially filled
// report is never returned.
func Assemble(ds *anage.Dataset, alpha float64, codeVersion string) (*domainReport.Report, error) {
	byClass, err := analysis.Summarize(ds, anage.ColClass)
	if err != nil {
		return nil, err
	}
	overall, err := analysis.OverallSummary(ds)
	if err != nil {
		return nil, err
	}

	comparison, err := analysis.CompareClasses(ds, alpha)
	if err != nil {
		return nil, err
	}

	fit, err := analysis.FitAllometry(ds)
	if err != nil {
		return nil, err
	}

	figures, err := analysis.BuildFigures(ds, fit)
	if err != nil {
		return nil, err
	}

	ordered := domainReport.OrderSummaries(byClass)
	manifest := run.NewManifest(
		ds.SourcePath,
		ds.Fingerprint,
		ds.Len(),
		len(ds.Columns),
		ds.LongevityN(),
		ds.AllometryN(),
		alpha,
		len(comparison.PostHoc),
		codeVersion,
	)

	rep := &domainReport.Report{
		Manifest: *manifest,
		Profile:  domainReport.BuildProfile(ds),
		Descriptive: domainReport.DescriptiveSection{
			ByClass:   ordered,
			Overall:   overall,
			Quality:   analysis.QualityFrequencies(ds),
			Origin:    analysis.OriginFrequencies(ds),
			TopOrders: analysis.TopOrders(ds, topOrderLimit),
			Warnings:  domainReport.DescriptiveWarnings(ordered),
		},
		Inferential: *comparison,
		Allometry:   fit,
		Figures:     *figures,
	}

	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return rep, nil
}
