package cmd

import (
	"fmt"

	"github.com/KaramelBytes/hmpi-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	tplFormat string
	tplOutput string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a fill-in sample template (csv|json|yaml|xlsx)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f report.Format
		var err error
		if tplOutput != "" && !cmd.Flags().Changed("format") {
			f, err = report.FormatForPath(tplOutput)
		} else {
			f, err = report.ParseFormat(tplFormat)
		}
		if err != nil {
			return err
		}
		b, err := report.Template(f)
		if err != nil {
			return err
		}
		return emit(cmd, tplOutput, b, f)
	},
}

// emit writes b to path (file or object URI), or to stdout for text formats.
func emit(cmd *cobra.Command, path string, b []byte, f report.Format) error {
	if path == "" {
		if f == report.FormatXLSX {
			return fmt.Errorf("xlsx output requires --output")
		}
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	res := newResolver()
	defer res.Close()
	if err := res.Write(cmd.Context(), path, b); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringVarP(&tplFormat, "format", "f", "csv", "template format: csv|json|yaml|xlsx")
	templateCmd.Flags().StringVarP(&tplOutput, "output", "o", "", "output path or s3://, gs:// URI (stdout if omitted)")
}
