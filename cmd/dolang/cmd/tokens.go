package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dolang/pkg/driver"
	"dolang/pkg/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sf, err := driver.ReadSource(args[0], cfg.Parser.NormalizeUnicode)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		illegal := false
		for _, tok := range lexer.NewLexerFromSource(sf).Tokenize() {
			if tok.Type == lexer.ILLEGAL {
				illegal = true
			}
			fmt.Fprintf(out, "%-8s %-10s %q\n", tok.Pos, tok.Type, tok.Literal)
		}
		if illegal {
			return errDiagnostics
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
