package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"dolang/pkg/errors"
	"dolang/pkg/lexer"
	"dolang/pkg/parser"
	"dolang/pkg/source"
)

const (
	historyFile = ".dolang_history"
	promptMain  = "do> "
	promptCont  = "... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse input interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(out, errOut io.Writer) error {
	fmt.Fprintln(out, "dolang repl (Ctrl+D to exit, :quit to leave)")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readUntilComplete(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		sf := source.NewReplSource(code)
		p := parser.NewParserWithOptions(lexer.NewLexerFromSource(sf), cfg.Parser.Options())
		program, errs := p.ParseProgram()
		if len(errs) > 0 {
			errors.DisplayErrors(errOut, sf, errs, useColor())
			continue
		}
		for _, stmt := range program.Statements {
			fmt.Fprintln(out, stmt.String())
		}
	}
}

// readUntilComplete keeps prompting while the input so far ends inside an
// open construct. It returns false at end of input.
func readUntilComplete(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if stderrors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src only failed because input ran out.
func incomplete(src string) bool {
	_, errs := parser.NewParser(lexer.NewLexer(src)).ParseProgram()
	for _, err := range errs {
		if errors.IsInternal(err) {
			return true
		}
	}
	return false
}
