package errors

import (
	stderrors "errors"
	"fmt"

	"dolang/pkg/lexer"
)

// DoError is the interface implemented by all front-end diagnostics.
type DoError interface {
	error // Embed the standard error interface
	Pos() lexer.Position
	Kind() string // "Lexical", "Syntax" or "Internal"
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// LexicalError reports an ILLEGAL token: an unknown character or an
// unterminated string.
type LexicalError struct {
	lexer.Position
	Msg   string
	Cause error
}

func (e *LexicalError) Error() string       { return format(e.Msg, e.Position) }
func (e *LexicalError) Pos() lexer.Position { return e.Position }
func (e *LexicalError) Kind() string        { return "Lexical" }
func (e *LexicalError) Message() string     { return e.Msg }
func (e *LexicalError) Unwrap() error       { return e.Cause }

// SyntaxError represents an error during parsing.
type SyntaxError struct {
	lexer.Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *SyntaxError) Error() string       { return format(e.Msg, e.Position) }
func (e *SyntaxError) Pos() lexer.Position { return e.Position }
func (e *SyntaxError) Kind() string        { return "Syntax" }
func (e *SyntaxError) Message() string     { return e.Msg }
func (e *SyntaxError) Unwrap() error       { return e.Cause }
func (e *SyntaxError) CausedBy(cause error) *SyntaxError {
	e.Cause = cause
	return e
}

// InternalError marks a parser invariant violation rather than bad input,
// e.g. running into end of input inside a construct that was never closed.
type InternalError struct {
	lexer.Position
	Msg   string
	Cause error
}

func (e *InternalError) Error() string       { return format(e.Msg, e.Position) }
func (e *InternalError) Pos() lexer.Position { return e.Position }
func (e *InternalError) Kind() string        { return "Internal" }
func (e *InternalError) Message() string     { return e.Msg }
func (e *InternalError) Unwrap() error       { return e.Cause }

// format renders "<message> at line:column".
func format(msg string, pos lexer.Position) string {
	return fmt.Sprintf("%s at %s", msg, pos)
}

// IsInternal reports whether err is, or wraps, an InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return stderrors.As(err, &ie)
}

// Strings renders every diagnostic with Error(), preserving order.
func Strings(errs []DoError) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
