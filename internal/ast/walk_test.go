package ast

import (
	"testing"

	"github.com/redditlang/redditlang/internal/lexer"
)

func TestWalkVisitsEveryNode(t *testing.T) {
	span := lexer.Span{}

	// callmeonmycellphone f(a,) { spez a ⨋ 1 }
	body := NewBlock([]Stmt{
		NewReturnStmt(
			NewBinaryExpr(
				[]Expr{NewIdent("a", span), NewNumberLit("1", false, span)},
				[]MathOp{OpAdd},
				span,
			),
			span,
		),
	}, span)
	fn := NewFunctionStmt(
		nil,
		NewDeclaration(NewIdent("f", span), nil, span),
		[]*Declaration{NewDeclaration(NewIdent("a", span), nil, span)},
		body,
		span,
	)
	prog := NewProgram([]Stmt{fn}, span)

	var idents []string
	count := 0
	Walk(prog, func(n Node) bool {
		count++
		if id, ok := n.(*Ident); ok {
			idents = append(idents, id.Name)
		}
		return true
	})

	// Program, FunctionStmt, Decl f, Ident f, Decl a, Ident a, Block,
	// ReturnStmt, BinaryExpr, Ident a, NumberLit.
	if count != 11 {
		t.Fatalf("expected 11 visited nodes, got %d", count)
	}
	want := []string{"f", "a", "a"}
	if len(idents) != len(want) {
		t.Fatalf("expected idents %v, got %v", want, idents)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Fatalf("idents[%d]: expected %q, got %q", i, want[i], idents[i])
		}
	}
}

func TestWalkPrunesBranch(t *testing.T) {
	span := lexer.Span{}

	loop := NewLoopStmt(NewBlock([]Stmt{NewBreakStmt(span)}, span), span)
	prog := NewProgram([]Stmt{loop, NewBreakStmt(span)}, span)

	count := 0
	Walk(prog, func(n Node) bool {
		count++
		_, isLoop := n.(*LoopStmt)
		return !isLoop // do not descend into the loop
	})

	// Program, LoopStmt (pruned), BreakStmt.
	if count != 3 {
		t.Fatalf("expected 3 visited nodes, got %d", count)
	}
}

func TestFooleanString(t *testing.T) {
	tests := []struct {
		value Foolean
		want  string
	}{
		{FooleanYup, "Yup"},
		{FooleanNope, "Nope"},
		{FooleanDunno, "Dunno"},
		{FooleanHuh, "Huh"},
		{FooleanYeet, "Yeet"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Fatalf("Foolean(%d).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFooleanFromLiteral(t *testing.T) {
	for _, lit := range []string{"Yup", "Nope", "Dunno", "Huh", "Yeet"} {
		v, ok := FooleanFromLiteral(lit)
		if !ok {
			t.Fatalf("%q: expected acceptance", lit)
		}
		if v.String() != lit {
			t.Fatalf("%q: round-trip gave %q", lit, v.String())
		}
	}

	for _, lit := range []string{"yup", "Maybe", "", "YUP"} {
		if _, ok := FooleanFromLiteral(lit); ok {
			t.Fatalf("%q: expected rejection", lit)
		}
	}
}
