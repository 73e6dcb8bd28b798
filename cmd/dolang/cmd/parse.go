package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dolang/pkg/driver"
	"dolang/pkg/errors"
	"dolang/pkg/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := driver.ParseFile(args[0], cfg.Parser)
		if err != nil {
			return err
		}
		if err := writeTree(cmd.OutOrStdout(), result.Program, cfg.Output.Format); err != nil {
			return err
		}
		if result.Failed() {
			errors.DisplayErrors(cmd.ErrOrStderr(), result.Source, result.Errors, useColor())
			return errDiagnostics
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func writeTree(w io.Writer, program *parser.Program, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(parser.Dump(program)); err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(parser.Dump(program)); err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		return nil
	default:
		for _, stmt := range program.Statements {
			fmt.Fprintln(w, stmt.String())
		}
		return nil
	}
}

// useColor reports whether diagnostics on stderr should be styled.
func useColor() bool {
	if !cfg.Output.Color || os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
