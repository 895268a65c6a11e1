package cmd

import (
	"fmt"
	"time"

	"github.com/KaramelBytes/hmpi-cli/internal/report"
	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	genCount  int
	genSeed   uint64
	genFormat string
	genOutput string
	genAsOf   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic, reproducible sample dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genCount < 1 {
			return fmt.Errorf("--count must be >= 1")
		}
		var f report.Format
		var err error
		if genOutput != "" && !cmd.Flags().Changed("format") {
			f, err = report.FormatForPath(genOutput)
		} else {
			f, err = report.ParseFormat(genFormat)
		}
		if err != nil {
			return err
		}
		asOf := time.Now().UTC().Truncate(24 * time.Hour)
		if genAsOf != "" {
			if asOf, err = time.Parse("2006-01-02", genAsOf); err != nil {
				return fmt.Errorf("invalid --as-of (want YYYY-MM-DD): %w", err)
			}
		}
		samples := report.Generate(genCount, genSeed, asOf)
		data, err := scoring.ProcessBatch(samples)
		if err != nil {
			return err
		}
		b, err := report.NewExporter().Export(data, f)
		if err != nil {
			return err
		}
		return emit(cmd, genOutput, b, f)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 50, "number of samples")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 1, "random seed; the same seed and --as-of give the same data")
	generateCmd.Flags().StringVar(&genAsOf, "as-of", "", "reference date YYYY-MM-DD for sample dates (default today)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "csv", "output format: csv|json|yaml|xlsx")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output path or s3://, gs:// URI (stdout if omitted)")
}
