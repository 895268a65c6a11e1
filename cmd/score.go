package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/hmpi-cli/internal/ingest"
	"github.com/KaramelBytes/hmpi-cli/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	scSample scoring.WaterSample
	scFormat string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single sample given on the command line",
	Example: `  hmpi score --pb 0.015 --as 0.008 --cd 0.002 --cr 0.045 --ni 0.065 --ph 7.2 --conductivity 450 \
    --lat 28.6139 --lng 77.2090`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd, scFormat)
		if err != nil {
			return err
		}
		s := scSample
		if s.ID == "" {
			s.ID = "sample_1"
		}
		if msgs := ingest.Validate(s); len(msgs) > 0 {
			return fmt.Errorf("invalid sample: %s", strings.Join(msgs, ", "))
		}
		r := scoring.ProcessSample(s)
		if format != "table" {
			return writeStructured(cmd.OutOrStdout(), r, format)
		}
		printSampleResult(cmd.OutOrStdout(), r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	f := scoreCmd.Flags()
	f.StringVar(&scSample.ID, "id", "", "sample identifier")
	f.Float64Var(&scSample.Latitude, "lat", 0, "latitude")
	f.Float64Var(&scSample.Longitude, "lng", 0, "longitude")
	f.Float64Var(&scSample.Pb, "pb", 0, "lead concentration (mg/L)")
	f.Float64Var(&scSample.As, "as", 0, "arsenic concentration (mg/L)")
	f.Float64Var(&scSample.Cd, "cd", 0, "cadmium concentration (mg/L)")
	f.Float64Var(&scSample.Cr, "cr", 0, "chromium concentration (mg/L)")
	f.Float64Var(&scSample.Ni, "ni", 0, "nickel concentration (mg/L)")
	f.Float64Var(&scSample.PH, "ph", 7, "pH (0-14)")
	f.Float64Var(&scSample.Conductivity, "conductivity", 0, "conductivity (µS/cm)")
	f.StringVar(&scSample.Location, "location", "", "location label")
	f.StringVarP(&scFormat, "format", "f", "table", "output format: table|json|yaml")
}
