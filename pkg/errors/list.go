package errors

import (
	"fmt"

	"dolang/pkg/lexer"
)

// DefaultMaxErrors bounds a List created with a non-positive limit.
const DefaultMaxErrors = 1000

// List accumulates diagnostics in the order they are reported. Once the
// limit is reached one final "too many errors" entry is appended and every
// later Add is dropped.
type List struct {
	errs []DoError
	max  int
}

// NewList creates an empty list holding at most max diagnostics.
func NewList(max int) *List {
	if max <= 0 {
		max = DefaultMaxErrors
	}
	return &List{max: max}
}

// Add appends err unless the list is full.
func (l *List) Add(err DoError) {
	if len(l.errs) > l.max {
		return
	}
	if len(l.errs) == l.max {
		l.errs = append(l.errs, &SyntaxError{
			Position: err.Pos(),
			Msg:      fmt.Sprintf("too many errors (limit: %d), stopping", l.max),
		})
		return
	}
	l.errs = append(l.errs, err)
}

// Syntax appends a SyntaxError at pos.
func (l *List) Syntax(pos lexer.Position, msg string) {
	l.Add(&SyntaxError{Position: pos, Msg: msg})
}

// Full reports whether the limit has been hit.
func (l *List) Full() bool {
	return len(l.errs) > l.max
}

// Len returns the number of collected diagnostics.
func (l *List) Len() int {
	return len(l.errs)
}

// Errors returns the collected diagnostics.
func (l *List) Errors() []DoError {
	return l.errs
}
