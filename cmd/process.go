package cmd

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/hmpi-cli/internal/report"
	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	prIngest       ingestFlags
	prFormat       string
	prExport       string
	prExportFormat string
	prSummary      bool
)

// processOutput is the structured form of a processed batch.
type processOutput struct {
	report.Document `yaml:",inline"`
	Errors          []string `json:"errors" yaml:"errors"`
}

var processCmd = &cobra.Command{
	Use:   "process <files...>",
	Short: "Ingest, validate and score sample files; print results and optionally export",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd, prFormat)
		if err != nil {
			return err
		}
		var exportFormat report.Format
		if prExport != "" {
			if prExportFormat != "" {
				exportFormat, err = report.ParseFormat(prExportFormat)
			} else {
				exportFormat, err = report.FormatForPath(prExport)
			}
			if err != nil {
				return err
			}
		}
		opt, err := prIngest.options(cmd)
		if err != nil {
			return err
		}
		results, err := loadInputs(cmd.Context(), args, opt)
		if err != nil {
			return err
		}
		nErr := reportRowErrors(cmd, results)

		var samples []scoring.WaterSample
		var errs []string
		for _, r := range results {
			samples = append(samples, r.Samples...)
			for _, m := range r.ErrorMessages() {
				errs = append(errs, r.Name+": "+m)
			}
		}
		data, err := scoring.ProcessBatch(samples)
		if errors.Is(err, scoring.ErrEmptyBatch) {
			return fmt.Errorf("no valid samples to process (%d row errors)", nErr)
		}
		if err != nil {
			return err
		}

		doc := report.NewExporter().Document(data)
		out := cmd.OutOrStdout()
		switch format {
		case "table":
			printResultsTable(out, data)
			if prSummary {
				fmt.Fprintln(out)
				fmt.Fprint(out, report.SummaryText(data.Summary))
			}
		default:
			if errs == nil {
				errs = []string{}
			}
			if err := writeStructured(out, processOutput{Document: doc, Errors: errs}, format); err != nil {
				return err
			}
		}

		if prExport != "" {
			b, err := report.Render(doc, exportFormat)
			if err != nil {
				return err
			}
			res := newResolver()
			defer res.Close()
			if err := res.Write(cmd.Context(), prExport, b); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Exported %d samples to %s\n", len(data.Samples), prExport)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	prIngest.register(processCmd)
	processCmd.Flags().StringVarP(&prFormat, "format", "f", "table", "output format: table|json|yaml")
	processCmd.Flags().StringVarP(&prExport, "export", "e", "", "write results to a file or s3://, gs:// URI (csv|json|yaml|xlsx by extension)")
	processCmd.Flags().StringVar(&prExportFormat, "export-format", "", "export format overriding the extension: csv|json|yaml|xlsx")
	processCmd.Flags().BoolVar(&prSummary, "summary", true, "print summary text and recommendations after the table")
}

