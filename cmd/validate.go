package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	vaIngest       ingestFlags
	vaFailOnErrors bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Check sample files without scoring them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := vaIngest.options(cmd)
		if err != nil {
			return err
		}
		results, err := loadInputs(cmd.Context(), args, opt)
		if err != nil {
			return err
		}
		nErr := reportRowErrors(cmd, results)
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%s: %d rows, %d valid, %d rejected\n", r.Name, r.Rows, len(r.Samples), len(r.Errors))
		}
		if nErr > 0 && vaFailOnErrors {
			return fmt.Errorf("%d rows failed validation", nErr)
		}
		if nErr == 0 {
			fmt.Fprintln(out, "✓ All rows valid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	vaIngest.register(validateCmd)
	validateCmd.Flags().BoolVar(&vaFailOnErrors, "fail-on-errors", false, "exit non-zero when any row is rejected")
}
