package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/KaramelBytes/hmpi-cli/internal/standards"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// outputFormat resolves --format against the configured default.
func outputFormat(c *cobra.Command, flagVal string) (string, error) {
	f := flagVal
	if !c.Flags().Changed("format") {
		f = "table"
		if conf, err := currentConfig(); err == nil && conf.OutputFormat != "" {
			f = conf.OutputFormat
		}
	}
	switch f {
	case "table", "json", "yaml":
		return f, nil
	}
	return "", fmt.Errorf("unsupported --format: %s (use table|json|yaml)", f)
}

func writeStructured(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unsupported structured format: %s", format)
}

func printResultsTable(w io.Writer, data *scoring.ProcessedData) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SAMPLE\tLOCATION\tHMPI\tHPI\tCLASS\tRISK\tDRINKING\tAGRICULTURE\tINDUSTRIAL")
	for i, r := range data.Results {
		loc := ""
		if i < len(data.Samples) {
			loc = utils.Truncate(data.Samples[i].Location, 24)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\t%s\t%s\n",
			utils.Truncate(r.SampleID, 24), loc, r.HMPI, r.HPI, r.Classification, r.RiskLevel,
			r.Usability.Drinking.Status, r.Usability.Agriculture.Status, r.Usability.Industrial.Status)
	}
	tw.Flush()
}

func printSampleResult(w io.Writer, r scoring.HMPIResult) {
	fmt.Fprintf(w, "Sample: %s\n", r.SampleID)
	fmt.Fprintf(w, "HMPI: %.2f\n", r.HMPI)
	fmt.Fprintf(w, "HPI: %.2f\n", r.HPI)
	fmt.Fprintf(w, "Classification: %s\n", r.Classification)
	fmt.Fprintf(w, "Risk level: %s\n\n", r.RiskLevel)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METAL\tCONC (mg/L)\tLIMIT\tINDEX\tSTATUS\tCONTRIBUTION (%)")
	for _, e := range standards.All() {
		m := r.MetalIndexScores.Get(e.Symbol)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t%.2f\n", e.Name, utils.FormatFloat(m.Concentration),
			utils.FormatFloat(e.Limit), m.Value, m.Status, r.MetalContributions.Get(e.Symbol))
	}
	tw.Flush()

	fmt.Fprintln(w)
	u := r.Usability
	fmt.Fprintf(w, "Drinking: %s - %s\n", u.Drinking.Status, u.Drinking.Reason)
	fmt.Fprintf(w, "Agriculture: %s - %s\n", u.Agriculture.Status, u.Agriculture.Reason)
	fmt.Fprintf(w, "Industrial: %s - %s\n", u.Industrial.Status, u.Industrial.Reason)
}
