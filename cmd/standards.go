package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/KaramelBytes/hmpi-cli/internal/standards"
	"github.com/KaramelBytes/hmpi-cli/internal/utils"
	"github.com/spf13/cobra"
)

var stdFormat string

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Print the drinking water limits and weights used for scoring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd, stdFormat)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if format != "table" {
			return writeStructured(out, standards.All(), format)
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SYMBOL\tMETAL\tLIMIT (mg/L)\tWEIGHT")
		for _, e := range standards.All() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.Symbol, e.Name, utils.FormatFloat(e.Limit), e.Weight)
		}
		fmt.Fprintf(tw, "\t\tTotal weight\t%d\n", standards.TotalWeight())
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(standardsCmd)
	standardsCmd.Flags().StringVarP(&stdFormat, "format", "f", "table", "output format: table|json|yaml")
}
