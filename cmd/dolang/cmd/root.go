package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"dolang/pkg/driver"
)

var (
	cfgFile string
	verbose bool
	format  string

	// cfg is loaded before any subcommand runs.
	cfg *driver.Config
)

// errDiagnostics makes the process exit non-zero after diagnostics were
// already printed.
var errDiagnostics = fmt.Errorf("source has errors")

var rootCmd = &cobra.Command{
	Use:   "dolang",
	Short: "dolang - tokenizer, parser and formatter for .do sources",
	Long: `dolang reads .do source files and reports what the parser makes of them.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree (text, yaml or json)
  check    - report diagnostics for files and directories
  fmt      - print a file in canonical layout
  repl     - parse lines interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := driver.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			loaded.Output.Format = format
		}
		if verbose {
			loaded.LogLevel = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(cfg.NewLogger(os.Stderr))
		return nil
	},
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && err != errDiagnostics {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, yaml or json")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
