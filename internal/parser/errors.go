package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/lexer"
)

// ErrorKind separates "bad token" failures from "token not allowed here"
// failures so callers can tell the two apart.
type ErrorKind int

const (
	// KindStructural is a grammar mismatch: a well-formed token appeared
	// where the grammar does not allow it.
	KindStructural ErrorKind = iota
	// KindLexical is a scanner failure: malformed escape, unterminated
	// string or block comment, illegal rune.
	KindLexical
)

// SyntaxError is the single error type produced by a parse. Parsing aborts
// at the first failure; there is no recovery and no partial AST.
type SyntaxError struct {
	Kind      ErrorKind
	Message   string
	Span      lexer.Span
	Attempted []string        // grammar alternatives tried at the failure point
	Found     lexer.TokenType // token under examination when parsing failed
	Code      diag.Code
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.Span.Filename != "" {
		fmt.Fprintf(&b, "%s:", e.Span.Filename)
	}
	fmt.Fprintf(&b, "%d:%d: syntax error: %s", e.Span.Line, e.Span.Column, e.Message)
	if len(e.Attempted) > 0 {
		fmt.Fprintf(&b, " (attempted: %s)", strings.Join(e.Attempted, ", "))
	}
	return b.String()
}

// ToDiagnostic converts the error into the shared diagnostic structure.
func (e *SyntaxError) ToDiagnostic() diag.Diagnostic {
	stage := diag.StageParser
	if e.Kind == KindLexical {
		stage = diag.StageLexer
	}

	d := diag.Diagnostic{
		Stage:    stage,
		Severity: diag.SeverityError,
		Code:     e.Code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
	if len(e.Attempted) > 0 {
		d = d.WithNote("attempted alternatives: " + strings.Join(e.Attempted, ", "))
	}
	return d
}

// IsIncomplete reports whether err is a structural failure at end of input,
// meaning the source so far is a valid prefix. The REPL uses this to keep
// prompting for continuation lines.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == KindStructural && se.Found == lexer.EOF
}
