package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dolang/pkg/driver"
	"dolang/pkg/errors"
	"dolang/pkg/parser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Print a file in canonical layout",
	Long:  "Print a file in canonical layout. Files with syntax errors are not printed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := driver.ParseFile(args[0], cfg.Parser)
		if err != nil {
			return err
		}
		if result.Failed() {
			errors.DisplayErrors(cmd.ErrOrStderr(), result.Source, result.Errors, useColor())
			return errDiagnostics
		}
		fmt.Fprint(cmd.OutOrStdout(), parser.Print(result.Program))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
