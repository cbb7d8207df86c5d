package report

import (
	"fmt"
	"strings"

	domainReport "longstat/domain/report"
	"longstat/domain/stats"
)

// renderMarkdown lays the report out as a fixed-order markdown document.
// Every table draws from slices that are already deterministically sorted,
// so identical reports render to identical bytes.
func renderMarkdown(rep *domainReport.Report) []byte {
	var b strings.Builder

	writeHeader(&b, rep)
	writeProfile(&b, rep)
	writeDescriptive(&b, rep)
	writeInferential(&b, rep)
	writeAllometry(&b, rep)
	writeFigures(&b, rep)

	return []byte(b.String())
}

func writeHeader(b *strings.Builder, rep *domainReport.Report) {
	m := rep.Manifest
	b.WriteString("# AnAge Longevity Analysis Report\n\n")
	b.WriteString(fmt.Sprintf("- Run: `%s`\n", m.RunID))
	b.WriteString(fmt.Sprintf("- Generated: %s\n", m.CreatedAt))
	b.WriteString(fmt.Sprintf("- Source: `%s`\n", m.SourcePath))
	b.WriteString(fmt.Sprintf("- Dataset SHA-256: `%s`\n", shortHash(m.DatasetFingerprint.String())))
	b.WriteString(fmt.Sprintf("- Run fingerprint: `%s`\n", shortHash(m.Fingerprint.String())))
	b.WriteString(fmt.Sprintf("- Table: %d rows x %d columns\n", m.RowCount, m.ColumnCount))
	b.WriteString(fmt.Sprintf("- Significance level: %g (Bonferroni family of %d)\n\n", m.Alpha, m.Comparisons))
}

func writeProfile(b *strings.Builder, rep *domainReport.Report) {
	p := rep.Profile
	b.WriteString("## Dataset profile\n\n")
	b.WriteString("| Subset | n |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| All records | %d |\n", p.TotalRecords))
	b.WriteString(fmt.Sprintf("| Longevity, five target classes | %d |\n", p.LongevitySubsetN))
	b.WriteString(fmt.Sprintf("| Longevity, all classes | %d |\n", p.OverallLongevityN))
	b.WriteString(fmt.Sprintf("| Allometry, weight and longevity | %d |\n\n", p.AllometrySubsetN))

	b.WriteString("### Records per class\n\n")
	b.WriteString("| Class | Records | Share |\n|---|---|---|\n")
	for _, c := range p.SortedClassCounts() {
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", c.Value, c.Count, fmtShare(c.Share)))
	}
	b.WriteString("\n")
}

func writeDescriptive(b *strings.Builder, rep *domainReport.Report) {
	d := rep.Descriptive
	b.WriteString("## Descriptive statistics\n\n")

	b.WriteString("### Maximum longevity by class (years)\n\n")
	b.WriteString("| Class | n | Mean | Median | SD | Min | Q1 | Q3 | Max |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for _, s := range d.ByClass {
		writeSummaryRow(b, s)
	}
	b.WriteString("\n### Overall longevity, all classes (years)\n\n")
	b.WriteString("| Group | n | Mean | Median | SD | Min | Q1 | Q3 | Max |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	writeSummaryRow(b, d.Overall)
	b.WriteString("\n")

	writeFrequencyTable(b, "Data quality ratings", "Rating", d.Quality)
	writeFrequencyTable(b, "Specimen origin", "Origin", d.Origin)

	b.WriteString("### Most sampled taxonomic orders\n\n")
	b.WriteString("| Order | Species | Dominant class |\n|---|---|---|\n")
	for _, o := range d.TopOrders {
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", o.Order, o.Count, o.DominantClass))
	}
	b.WriteString("\n")

	writeWarnings(b, d.Warnings)
}

func writeSummaryRow(b *strings.Builder, s stats.GroupSummary) {
	b.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %s | %s | %s | %s |\n",
		s.Group, s.Count, fmtF(s.Mean), fmtF(s.Median), fmtF(s.StdDev),
		fmtF(s.Min), fmtF(s.Q1), fmtF(s.Q3), fmtF(s.Max)))
}

func writeFrequencyTable(b *strings.Builder, title, label string, rows []stats.FrequencyCount) {
	b.WriteString(fmt.Sprintf("### %s\n\n", title))
	b.WriteString(fmt.Sprintf("| %s | Count | Share |\n|---|---|---|\n", label))
	for _, f := range rows {
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", f.Value, f.Count, fmtShare(f.Share)))
	}
	b.WriteString("\n")
}

func writeInferential(b *strings.Builder, rep *domainReport.Report) {
	inf := rep.Inferential
	b.WriteString("## Inferential statistics\n\n")
	b.WriteString("Global tests run on raw maximum longevity across the five target classes.\n\n")

	b.WriteString("| Test | Statistic | df | p-value | Effect size |\n")
	b.WriteString("|---|---|---|---|---|\n")
	b.WriteString(fmt.Sprintf("| Levene, median-centered | W = %s | (%.0f, %.0f) | %s | %s |\n",
		fmtF(inf.Levene.Statistic), inf.Levene.DF1, inf.Levene.DF2, fmtP(inf.Levene.PValue), "n/a"))
	b.WriteString(fmt.Sprintf("| One-way ANOVA | F = %s | (%.0f, %.0f) | %s | %s |\n",
		fmtF(inf.ANOVA.Statistic), inf.ANOVA.DF1, inf.ANOVA.DF2, fmtP(inf.ANOVA.PValue), fmtEffect(inf.ANOVA)))
	b.WriteString(fmt.Sprintf("| Kruskal-Wallis | H = %s | %.0f | %s | %s |\n\n",
		fmtF(inf.KruskalWallis.Statistic), inf.KruskalWallis.DF1, fmtP(inf.KruskalWallis.PValue), fmtEffect(inf.KruskalWallis)))

	b.WriteString("### Post-hoc: pairwise Mann-Whitney U, Bonferroni-corrected\n\n")
	b.WriteString("| Pair | n | U | Raw p | Adjusted p | Significant |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, pair := range inf.PostHoc {
		b.WriteString(fmt.Sprintf("| %s vs %s | %d / %d | %s | %s | %s | %s |\n",
			pair.GroupA, pair.GroupB, pair.NA, pair.NB,
			fmtF(pair.UStatistic), fmtP(pair.PValue), fmtP(pair.AdjustedP), yesNo(pair.Significant)))
	}
	b.WriteString("\n")

	writeWarnings(b, inf.Warnings)
}

func writeAllometry(b *strings.Builder, rep *domainReport.Report) {
	fit := rep.Allometry
	b.WriteString("## Allometric scaling\n\n")
	b.WriteString("Ordinary least squares of ln(longevity) on ln(adult weight).\n\n")
	b.WriteString("| Quantity | Value |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| Slope | %s |\n", fmtF4(fit.Slope)))
	b.WriteString(fmt.Sprintf("| Intercept | %s |\n", fmtF4(fit.Intercept)))
	b.WriteString(fmt.Sprintf("| Pearson r | %s |\n", fmtF4(fit.R)))
	b.WriteString(fmt.Sprintf("| r-squared | %s |\n", fmtF4(fit.RSquared)))
	b.WriteString(fmt.Sprintf("| Slope p-value | %s |\n", fmtP(fit.PValue)))
	b.WriteString(fmt.Sprintf("| n | %d |\n\n", fit.SampleSize))
}

func writeFigures(b *strings.Builder, rep *domainReport.Report) {
	f := rep.Figures
	b.WriteString("## Figure data\n\n")
	b.WriteString("Carried for the external renderer; plot coordinates use log10.\n\n")
	b.WriteString(fmt.Sprintf("- Longevity histogram: %d bins over n=%d\n",
		len(f.LongevityHistogram.Bins), f.LongevityHistogram.SampleSize))
	b.WriteString(fmt.Sprintf("- Log10 longevity histogram: %d bins over n=%d\n",
		len(f.LogLongevityHistogram.Bins), f.LogLongevityHistogram.SampleSize))
	b.WriteString(fmt.Sprintf("- Allometric scatter: %d series, fit line slope %s over [%s, %s]\n",
		len(f.AllometryScatter), fmtF4(f.AllometryFit.Slope), fmtF(f.AllometryFit.XMin), fmtF(f.AllometryFit.XMax)))
	qqGroups := make([]string, 0, len(f.QQPlots))
	for _, q := range f.QQPlots {
		qqGroups = append(qqGroups, fmt.Sprintf("%s (n=%d)", q.Group, q.SampleSize))
	}
	b.WriteString(fmt.Sprintf("- Normal Q-Q plots: %s\n\n", strings.Join(qqGroups, ", ")))

	b.WriteString("### Per-class box statistics, log10 longevity\n\n")
	b.WriteString("| Class | n | Median | Q1 | Q3 | Whisker low | Whisker high | Outliers |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, box := range f.ClassBoxes {
		b.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %s | %s | %d |\n",
			box.Group, box.Count, fmtF(box.Median), fmtF(box.Q1), fmtF(box.Q3),
			fmtF(box.WhiskerLow), fmtF(box.WhiskerHigh), box.Outliers))
	}
	b.WriteString("\n")
}

func writeWarnings(b *strings.Builder, warnings []stats.WarningCode) {
	if len(warnings) == 0 {
		return
	}
	codes := make([]string, len(warnings))
	for i, w := range warnings {
		codes[i] = string(w)
	}
	b.WriteString(fmt.Sprintf("Advisories: %s\n\n", strings.Join(codes, ", ")))
}

// fmtP renders a p-value: scientific below 0.001 so tiny values stay legible
func fmtP(p float64) string {
	if p > 0 && p < 0.001 {
		return fmt.Sprintf("%.2e", p)
	}
	return fmt.Sprintf("%.3f", p)
}

func fmtF(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func fmtF4(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func fmtShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

func fmtEffect(r stats.TestResult) string {
	if r.EffectName == "" {
		return "n/a"
	}
	return fmt.Sprintf("%s = %.3f", r.EffectName, r.EffectSize)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// shortHash trims a hex digest for display; the JSON artifact keeps it whole
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
