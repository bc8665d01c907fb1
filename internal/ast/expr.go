package ast

import "github.com/redditlang/redditlang/internal/lexer"

// ConditionalOp is an operator of the conditional (equality) class.
type ConditionalOp string

const (
	OpEquality     ConditionalOp = "⅀"
	OpAntiEquality ConditionalOp = "≠"
)

// MathOp is an operator of the arithmetic class. OpNegation is a member:
// the grammar lists ¡ in the same alternation as the binary operators, so a
// chain like "a ¡ b" is syntactically valid here and left for a semantic
// stage to reject.
type MathOp string

const (
	OpAdd      MathOp = "⨋"
	OpSubtract MathOp = "-"
	OpMultiply MathOp = "*"
	OpDivide   MathOp = "⎲"
	OpXor      MathOp = "⊕"
	OpNegation MathOp = "¡"
)

// ConditionalExpr is a flat chain "Term (CondOp Term)+": len(Terms) >= 2 and
// len(Ops) == len(Terms)-1. The chain is ordered left to right; the grammar
// defines no precedence so there is no tree regrouping.
type ConditionalExpr struct {
	Terms []Expr
	Ops   []ConditionalOp
	span  lexer.Span
}

// Span returns the chain span.
func (e *ConditionalExpr) Span() lexer.Span { return e.span }
func (*ConditionalExpr) exprNode()          {}

// NewConditionalExpr constructs a conditional chain node.
func NewConditionalExpr(terms []Expr, ops []ConditionalOp, span lexer.Span) *ConditionalExpr {
	return &ConditionalExpr{Terms: terms, Ops: ops, span: span}
}

// BinaryExpr is a flat chain "Term (MathOp Term)+" with the same shape
// invariants as ConditionalExpr.
type BinaryExpr struct {
	Terms []Expr
	Ops   []MathOp
	span  lexer.Span
}

// Span returns the chain span.
func (e *BinaryExpr) Span() lexer.Span { return e.span }
func (*BinaryExpr) exprNode()          {}

// NewBinaryExpr constructs an arithmetic chain node.
func NewBinaryExpr(terms []Expr, ops []MathOp, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{Terms: terms, Ops: ops, span: span}
}

// IndexExpr is "Term [ Literal ]". Index is always a *NumberLit or
// *StringLit; the grammar deliberately forbids arbitrary expressions inside
// the brackets.
type IndexExpr struct {
	Target Expr
	Index  Expr
	span   lexer.Span
}

// Span returns the index expression span.
func (e *IndexExpr) Span() lexer.Span { return e.span }
func (*IndexExpr) exprNode()          {}

// NewIndexExpr constructs an index expression node.
func NewIndexExpr(target, index Expr, span lexer.Span) *IndexExpr {
	return &IndexExpr{Target: target, Index: index, span: span}
}

// CallExpr is "call Name" with an optional parenthesized, comma-terminated
// argument list. Args is nil when no arguments are given; an empty
// parenthesized list normalizes to nil as well.
type CallExpr struct {
	Name *Ident
	Args []Expr
	span lexer.Span
}

// Span returns the call span.
func (e *CallExpr) Span() lexer.Span { return e.span }
func (*CallExpr) exprNode()          {}

// NewCallExpr constructs a call expression node.
func NewCallExpr(name *Ident, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{Name: name, Args: args, span: span}
}

// NumberLit is a numeric literal. Text keeps the exact source spelling
// including any sign glyph; Decimal distinguishes "1.5" from "1".
type NumberLit struct {
	Text    string
	Decimal bool
	span    lexer.Span
}

// Span returns the literal span.
func (l *NumberLit) Span() lexer.Span { return l.span }
func (*NumberLit) exprNode()          {}

// NewNumberLit constructs a number literal node.
func NewNumberLit(text string, decimal bool, span lexer.Span) *NumberLit {
	return &NumberLit{Text: text, Decimal: decimal, span: span}
}

// StringLit is a string literal holding the decoded (unescaped) value.
type StringLit struct {
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }
func (*StringLit) exprNode()          {}

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

// Foolean is the five-valued truthiness type.
type Foolean int

const (
	FooleanYup   Foolean = iota // true
	FooleanNope                 // false
	FooleanDunno                // null-like
	FooleanHuh                  // io-failure-like
	FooleanYeet                 // random-like
)

// String returns the literal spelling of the foolean value.
func (f Foolean) String() string {
	switch f {
	case FooleanYup:
		return "Yup"
	case FooleanNope:
		return "Nope"
	case FooleanDunno:
		return "Dunno"
	case FooleanHuh:
		return "Huh"
	case FooleanYeet:
		return "Yeet"
	default:
		return "Huh"
	}
}

// FooleanFromLiteral maps a literal spelling to its Foolean value. All five
// spellings are accepted.
func FooleanFromLiteral(lit string) (Foolean, bool) {
	switch lit {
	case "Yup":
		return FooleanYup, true
	case "Nope":
		return FooleanNope, true
	case "Dunno":
		return FooleanDunno, true
	case "Huh":
		return FooleanHuh, true
	case "Yeet":
		return FooleanYeet, true
	default:
		return 0, false
	}
}

// BooleanFromLiteral maps a literal spelling to a strict boolean. Exactly
// two spellings are accepted; the three extra foolean states are not
// booleans.
func BooleanFromLiteral(lit string) (bool, bool) {
	switch lit {
	case "Yup":
		return true, true
	case "Nope":
		return false, true
	default:
		return false, false
	}
}

// FooleanLit is a foolean literal. In expression position every one of the
// five spellings parses as a FooleanLit because the literal alternation
// lists Foolean before Boolean (ordered choice).
type FooleanLit struct {
	Value Foolean
	span  lexer.Span
}

// Span returns the literal span.
func (l *FooleanLit) Span() lexer.Span { return l.span }
func (*FooleanLit) exprNode()          {}

// NewFooleanLit constructs a foolean literal node.
func NewFooleanLit(value Foolean, span lexer.Span) *FooleanLit {
	return &FooleanLit{Value: value, span: span}
}

// BooleanLit is a strict two-valued boolean literal, for grammar contexts
// that demand Boolean rather than Foolean.
type BooleanLit struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (l *BooleanLit) Span() lexer.Span { return l.span }
func (*BooleanLit) exprNode()          {}

// NewBooleanLit constructs a boolean literal node.
func NewBooleanLit(value bool, span lexer.Span) *BooleanLit {
	return &BooleanLit{Value: value, span: span}
}

// NullLit is the "wat" literal.
type NullLit struct {
	span lexer.Span
}

// Span returns the literal span.
func (l *NullLit) Span() lexer.Span { return l.span }
func (*NullLit) exprNode()          {}

// NewNullLit constructs a null literal node.
func NewNullLit(span lexer.Span) *NullLit {
	return &NullLit{span: span}
}
