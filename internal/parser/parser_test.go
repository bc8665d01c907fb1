package parser_test

import (
	"testing"

	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/lexer"
	"github.com/redditlang/redditlang/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}
	if prog == nil {
		t.Fatalf("program is nil")
	}
	return prog
}

func parseError(t *testing.T, src string) *parser.SyntaxError {
	t.Helper()

	prog, err := parser.Parse(src)
	if err == nil {
		t.Fatalf("expected a parse error, got program with %d statement(s)", len(prog.Stmts))
	}
	synErr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("expected *parser.SyntaxError, got %T", err)
	}
	return synErr
}

func singleStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()

	prog := parseProgram(t, src)
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	return prog.Stmts[0]
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "\n\n\n", "# only a comment\n", "#* only\na block comment *#"} {
		prog := parseProgram(t, src)
		if len(prog.Stmts) != 0 {
			t.Fatalf("source %q: expected 0 statements, got %d", src, len(prog.Stmts))
		}
	}
}

func TestStatementsSeparatedByNewlines(t *testing.T) {
	const src = `
meth a ∑ 1

meth b ∑ 2
meth c ∑ 3
`

	prog := parseProgram(t, src)
	if len(prog.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Stmts))
	}
}

func TestLastStatementNeedsNoNewline(t *testing.T) {
	prog := parseProgram(t, "meth a ∑ 1")
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
}

func TestTwoStatementsOnOneLineFail(t *testing.T) {
	synErr := parseError(t, "sthu sthu\n")

	if synErr.Kind != parser.KindStructural {
		t.Fatalf("expected structural error, got kind %d", synErr.Kind)
	}
	if synErr.Message != "expected newline after statement" {
		t.Fatalf("unexpected message: %q", synErr.Message)
	}
}

func TestNoAlternativeReportsAllStatements(t *testing.T) {
	synErr := parseError(t, "⨋\n")

	if len(synErr.Attempted) != 13 {
		t.Fatalf("expected 13 attempted alternatives, got %d: %v",
			len(synErr.Attempted), synErr.Attempted)
	}
	if synErr.Attempted[0] != "Loop" || synErr.Attempted[12] != "Return" {
		t.Fatalf("attempted alternatives out of order: %v", synErr.Attempted)
	}
}

func TestLexicalErrorKind(t *testing.T) {
	tests := []string{
		"meth x ∑ \"never closed",
		"meth x ∑ \"bad \\q escape\"\n",
		"meth x ∑ 1 @\n",
		"#* never closed",
	}

	for _, src := range tests {
		synErr := parseError(t, src)
		if synErr.Kind != parser.KindLexical {
			t.Fatalf("source %q: expected lexical error, got kind %d (%s)",
				src, synErr.Kind, synErr.Message)
		}
	}
}

func TestStructuralErrorKind(t *testing.T) {
	synErr := parseError(t, "meth x 5\n")
	if synErr.Kind != parser.KindStructural {
		t.Fatalf("expected structural error, got kind %d", synErr.Kind)
	}
}

func TestWithFilenameOnSpans(t *testing.T) {
	_, err := parser.Parse("meth x 5\n", parser.WithFilename("main.rl"))
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	synErr := err.(*parser.SyntaxError)
	if synErr.Span.Filename != "main.rl" {
		t.Fatalf("expected filename on error span, got %q", synErr.Span.Filename)
	}
}

func TestIsIncomplete(t *testing.T) {
	tests := []struct {
		src        string
		incomplete bool
	}{
		{"is a {", true},
		{"is a {\nmeth x ∑ 1\n", true},
		{"repeatdatshid {", true},
		{"test {\nsthu\n}", true}, // catch clause still missing
		{"meth x ∑", true},
		{"meth x 5\n", false},
		{"meth x ∑ \"never closed", false}, // lexical, not incomplete
	}

	for _, tt := range tests {
		_, err := parser.Parse(tt.src)
		if err == nil {
			t.Fatalf("source %q: expected a parse error", tt.src)
		}
		if got := parser.IsIncomplete(err); got != tt.incomplete {
			t.Fatalf("source %q: IsIncomplete = %v, want %v (%s)",
				tt.src, got, tt.incomplete, err)
		}
	}
}

func TestFoundTokenRecorded(t *testing.T) {
	synErr := parseError(t, "meth x ∑ 5 5\n")
	if synErr.Found != lexer.INT {
		t.Fatalf("expected Found=INT, got %q", synErr.Found)
	}
}

func TestErrorStringIncludesAttempted(t *testing.T) {
	synErr := parseError(t, "meth x ∑ [\n")

	msg := synErr.Error()
	if msg == "" {
		t.Fatalf("empty error string")
	}
	if len(synErr.Attempted) == 0 {
		t.Fatalf("expected attempted alternatives on term failure")
	}
}
