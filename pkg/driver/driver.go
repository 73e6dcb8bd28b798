package driver

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dolang/pkg/errors"
	"dolang/pkg/lexer"
	"dolang/pkg/parser"
	"dolang/pkg/source"
)

// Result is the outcome of parsing one source file.
type Result struct {
	Path     string
	Source   *source.SourceFile
	Program  *parser.Program
	Comments []*parser.Comment
	Errors   []errors.DoError
	// Err is set when the file could not be read or parsing was cancelled;
	// Program is nil then.
	Err      error
	Duration time.Duration // Time taken to parse
	WorkerID int           // Pool worker that parsed the file, 0 outside a pool
}

// Failed reports whether the file could not be parsed cleanly.
func (r *Result) Failed() bool {
	return r.Err != nil || len(r.Errors) > 0
}

// ParseString parses in-memory source text.
func ParseString(src string, opts parser.Options) (*parser.Program, []errors.DoError) {
	p := parser.NewParserWithOptions(lexer.NewLexer(src), opts)
	return p.ParseProgram()
}

// ParseSource parses sf and keeps everything the parser reported.
func ParseSource(sf *source.SourceFile, opts parser.Options) *Result {
	startTime := time.Now()

	p := parser.NewParserWithOptions(lexer.NewLexerFromSource(sf), opts)
	program, errs := p.ParseProgram()

	result := &Result{
		Path:     sf.DisplayPath(),
		Source:   sf,
		Program:  program,
		Comments: p.Comments(),
		Errors:   errs,
		Duration: time.Since(startTime),
	}
	slog.Debug("parsed source",
		"file", result.Path,
		"statements", len(program.Statements),
		"comments", len(result.Comments),
		"errors", len(errs),
		"duration", result.Duration)
	return result
}

// ReadSource loads the file at path. With normalize set the content is
// rewritten to Unicode NFC before anything else sees it.
func ReadSource(path string, normalize bool) (*source.SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}
	sf := source.FromFile(path, string(content))
	if normalize {
		sf.Normalize()
	}
	return sf, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, pc ParserConfig) (*Result, error) {
	sf, err := ReadSource(path, pc.NormalizeUnicode)
	if err != nil {
		return nil, err
	}
	return ParseSource(sf, pc.Options()), nil
}
