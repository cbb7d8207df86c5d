package main

import (
	"fmt"
	"log"
	"os"

	"longstat/adapters/anagefile"
	"longstat/app"
	"longstat/internal/config"
	"longstat/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "longstat [output-path]",
		Short: "Regenerate the AnAge longevity analysis report",
		Long: `Run the full longevity analysis over the AnAge table and write the report.

The pipeline loads the dataset (ANAGE_DATA_FILE, default data/anage_data.txt),
derives the log columns, computes per-class descriptive statistics, runs the
Kruskal-Wallis and ANOVA global tests with Bonferroni-corrected Mann-Whitney
post-hocs, fits the allometric regression and writes everything to a single
report file.

The only argument is the optional output path (default longevity_report.json);
its extension selects the format: .json, .md or .html.

Example: longstat reports/longevity_report.md`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using system environment variables")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			outputPath := cfg.Report.OutputPath
			if len(args) == 1 {
				outputPath = args[0]
			}

			svc := app.NewPipelineService(
				anagefile.NewDataReader(cfg.Data.File),
				report.NewFileWriter(),
			)

			result, err := svc.Run(cmd.Context(), app.Request{
				Alpha:      cfg.Analysis.Alpha,
				OutputPath: outputPath,
			})
			if err != nil {
				return err
			}

			printSummary(result)
			return nil
		},
	}
}

// printSummary echoes the headline numbers so a terminal run is useful
// without opening the report file.
func printSummary(result *app.Result) {
	rep := result.Report
	m := rep.Manifest

	fmt.Printf("\n=== LONGEVITY ANALYSIS RESULTS ===\n")
	fmt.Printf("Run ID: %s\n", m.RunID)
	fmt.Printf("Source: %s (%d rows, %d columns)\n", m.SourcePath, m.RowCount, m.ColumnCount)
	fmt.Printf("Subsets: longevity n=%d, allometry n=%d\n", m.LongevityN, m.AllometryN)
	fmt.Printf("Runtime: %d ms\n", result.Runtime.Milliseconds())

	inf := rep.Inferential
	fmt.Printf("\n=== CLASS COMPARISON ===\n")
	fmt.Printf("Levene: W=%.2f p=%.3g\n", inf.Levene.Statistic, inf.Levene.PValue)
	fmt.Printf("ANOVA: F(%.0f, %.0f)=%.2f p=%.3g (%s=%.3f)\n",
		inf.ANOVA.DF1, inf.ANOVA.DF2, inf.ANOVA.Statistic, inf.ANOVA.PValue,
		inf.ANOVA.EffectName, inf.ANOVA.EffectSize)
	fmt.Printf("Kruskal-Wallis: H(%.0f)=%.2f p=%.3g (%s=%.3f)\n",
		inf.KruskalWallis.DF1, inf.KruskalWallis.Statistic, inf.KruskalWallis.PValue,
		inf.KruskalWallis.EffectName, inf.KruskalWallis.EffectSize)
	fmt.Printf("Post-hoc: %d of %d pairs significant after Bonferroni\n",
		len(rep.SignificantPairs()), len(inf.PostHoc))
	if len(inf.Warnings) > 0 {
		fmt.Printf("Warnings: %v\n", inf.Warnings)
	}

	fit := rep.Allometry
	fmt.Printf("\n=== ALLOMETRIC SCALING ===\n")
	fmt.Printf("ln(longevity) = %.4f + %.4f*ln(weight), r=%.3f, r²=%.3f, p=%.3g, n=%d\n",
		fit.Intercept, fit.Slope, fit.R, fit.RSquared, fit.PValue, fit.SampleSize)

	fmt.Printf("\n✅ Report written to %s (fingerprint %s)\n", result.OutputPath, m.Fingerprint)
}
