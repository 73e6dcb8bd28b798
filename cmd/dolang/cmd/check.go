package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dolang/pkg/driver"
	"dolang/pkg/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check PATH...",
	Short: "Report diagnostics for files and directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := driver.CollectFiles(args, cfg)
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		failed := 0
		for _, result := range driver.ParseAll(cmd.Context(), paths, cfg) {
			if result.Err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", result.Path, result.Err)
				failed++
				continue
			}
			if len(result.Errors) > 0 {
				errors.DisplayErrors(stderr, result.Source, result.Errors, useColor())
				failed++
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d files checked, %d with errors\n", len(paths), failed)
		if failed > 0 {
			return errDiagnostics
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
