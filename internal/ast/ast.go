package ast

import "github.com/redditlang/redditlang/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Stmt represents a statement node. Exactly one of the thirteen statement
// forms is active per node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program represents a parsed source file: the top-level statement sequence.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node.
func NewProgram(stmts []Stmt, span lexer.Span) *Program {
	return &Program{Stmts: stmts, span: span}
}

// Block represents a brace-delimited statement sequence. It is owned by
// whichever construct contains it and is not itself a statement.
type Block struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the block span including its braces.
func (b *Block) Span() lexer.Span { return b.span }

// NewBlock constructs a block node.
func NewBlock(stmts []Stmt, span lexer.Span) *Block {
	return &Block{Stmts: stmts, span: span}
}

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// Type represents a type annotation: a type name plus an array marker
// derived from a trailing "[]".
type Type struct {
	Name    *Ident
	IsArray bool
	span    lexer.Span
}

// Span returns the type annotation span.
func (t *Type) Span() lexer.Span { return t.span }

// NewType constructs a type annotation node.
func NewType(name *Ident, isArray bool, span lexer.Span) *Type {
	return &Type{Name: name, IsArray: isArray, span: span}
}

// Declaration is an identifier with an optional type annotation. Type is nil
// for an untyped declaration; the distinction is preserved, never defaulted.
type Declaration struct {
	Name *Ident
	Type *Type
	span lexer.Span
}

// Span returns the declaration span.
func (d *Declaration) Span() lexer.Span { return d.span }

// NewDeclaration constructs a declaration node.
func NewDeclaration(name *Ident, typ *Type, span lexer.Span) *Declaration {
	return &Declaration{Name: name, Type: typ, span: span}
}

// Modifier is a statement modifier keyword.
type Modifier string

const (
	ModifierDebug         Modifier = "debug"
	ModifierAccessibility Modifier = "bar"
)

// LoopStmt represents "repeatdatshid { ... }".
type LoopStmt struct {
	Body *Block
	span lexer.Span
}

func (s *LoopStmt) Span() lexer.Span { return s.span }
func (*LoopStmt) stmtNode()          {}

// NewLoopStmt constructs a loop statement node.
func NewLoopStmt(body *Block, span lexer.Span) *LoopStmt {
	return &LoopStmt{Body: body, span: span}
}

// BreakStmt represents the bare "sthu" keyword.
type BreakStmt struct {
	span lexer.Span
}

func (s *BreakStmt) Span() lexer.Span { return s.span }
func (*BreakStmt) stmtNode()          {}

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(span lexer.Span) *BreakStmt {
	return &BreakStmt{span: span}
}

// FunctionStmt represents a function declaration. The name declaration may
// carry a type annotation; that is syntactically legal even though a later
// semantic stage may find it unusual. Modifiers keep source order and may
// repeat.
type FunctionStmt struct {
	Modifiers []Modifier
	Decl      *Declaration
	Args      []*Declaration
	Body      *Block
	span      lexer.Span
}

func (s *FunctionStmt) Span() lexer.Span { return s.span }
func (*FunctionStmt) stmtNode()          {}

// NewFunctionStmt constructs a function statement node.
func NewFunctionStmt(mods []Modifier, decl *Declaration, args []*Declaration, body *Block, span lexer.Span) *FunctionStmt {
	return &FunctionStmt{Modifiers: mods, Decl: decl, Args: args, Body: body, span: span}
}

// CallStmt represents a call in statement position.
type CallStmt struct {
	Call *CallExpr
	span lexer.Span
}

func (s *CallStmt) Span() lexer.Span { return s.span }
func (*CallStmt) stmtNode()          {}

// NewCallStmt constructs a call statement node.
func NewCallStmt(call *CallExpr, span lexer.Span) *CallStmt {
	return &CallStmt{Call: call, span: span}
}

// TryCatchStmt represents "test { ... } wall [ident] { ... }". A try block
// without a following catch clause is not a valid statement, so Catch is
// always present; CatchName may be nil.
type TryCatchStmt struct {
	Try       *Block
	CatchName *Ident
	Catch     *Block
	span      lexer.Span
}

func (s *TryCatchStmt) Span() lexer.Span { return s.span }
func (*TryCatchStmt) stmtNode()          {}

// NewTryCatchStmt constructs a try/catch statement node.
func NewTryCatchStmt(try *Block, catchName *Ident, catch *Block, span lexer.Span) *TryCatchStmt {
	return &TryCatchStmt{Try: try, CatchName: catchName, Catch: catch, span: span}
}

// ThrowStmt represents "shoot Expr".
type ThrowStmt struct {
	Value Expr
	span  lexer.Span
}

func (s *ThrowStmt) Span() lexer.Span { return s.span }
func (*ThrowStmt) stmtNode()          {}

// NewThrowStmt constructs a throw statement node.
func NewThrowStmt(value Expr, span lexer.Span) *ThrowStmt {
	return &ThrowStmt{Value: value, span: span}
}

// ImportStmt represents "weneed" or "bringme" plus a string path. Resolving
// the path is a module-loading collaborator's job, not the parser's.
type ImportStmt struct {
	Path *StringLit
	span lexer.Span
}

func (s *ImportStmt) Span() lexer.Span { return s.span }
func (*ImportStmt) stmtNode()          {}

// NewImportStmt constructs an import statement node.
func NewImportStmt(path *StringLit, span lexer.Span) *ImportStmt {
	return &ImportStmt{Path: path, span: span}
}

// ModuleStmt represents "subreddit r/Name".
type ModuleStmt struct {
	Name *Ident
	span lexer.Span
}

func (s *ModuleStmt) Span() lexer.Span { return s.span }
func (*ModuleStmt) stmtNode()          {}

// NewModuleStmt constructs a module statement node.
func NewModuleStmt(name *Ident, span lexer.Span) *ModuleStmt {
	return &ModuleStmt{Name: name, span: span}
}

// VariableStmt represents "meth Decl ∑ Expr" with optional accessibility
// modifiers. The initializer is mandatory.
type VariableStmt struct {
	Modifiers []Modifier
	Decl      *Declaration
	Value     Expr
	span      lexer.Span
}

func (s *VariableStmt) Span() lexer.Span { return s.span }
func (*VariableStmt) stmtNode()          {}

// NewVariableStmt constructs a variable declaration statement node.
func NewVariableStmt(mods []Modifier, decl *Declaration, value Expr, span lexer.Span) *VariableStmt {
	return &VariableStmt{Modifiers: mods, Decl: decl, Value: value, span: span}
}

// AssignStmt represents a re-assignment "Ident ∑ Expr": no declaration
// keyword and no type. It must never be conflated with VariableStmt.
type AssignStmt struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

func (s *AssignStmt) Span() lexer.Span { return s.span }
func (*AssignStmt) stmtNode()          {}

// NewAssignStmt constructs an assignment statement node.
func NewAssignStmt(name *Ident, value Expr, span lexer.Span) *AssignStmt {
	return &AssignStmt{Name: name, Value: value, span: span}
}

// ElseIf is one "but Expr { ... }" clause of an IfStmt.
type ElseIf struct {
	Cond Expr
	Body *Block
	span lexer.Span
}

// Span returns the clause span.
func (e *ElseIf) Span() lexer.Span { return e.span }

// NewElseIf constructs an else-if clause.
func NewElseIf(cond Expr, body *Block, span lexer.Span) *ElseIf {
	return &ElseIf{Cond: cond, Body: body, span: span}
}

// IfStmt represents "is Expr { ... }" followed by zero or more "but" clauses
// and an optional terminal "isnt { ... }".
type IfStmt struct {
	Cond    Expr
	Body    *Block
	ElseIfs []*ElseIf
	Else    *Block // nil when absent
	span    lexer.Span
}

func (s *IfStmt) Span() lexer.Span { return s.span }
func (*IfStmt) stmtNode()          {}

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, body *Block, elseIfs []*ElseIf, els *Block, span lexer.Span) *IfStmt {
	return &IfStmt{Cond: cond, Body: body, ElseIfs: elseIfs, Else: els, span: span}
}

// ClassStmt represents "school Name { ... }". Any statement form is
// syntactically legal inside the body; there is no inheritance list.
type ClassStmt struct {
	Name *Ident
	Body *Block
	span lexer.Span
}

func (s *ClassStmt) Span() lexer.Span { return s.span }
func (*ClassStmt) stmtNode()          {}

// NewClassStmt constructs a class statement node.
func NewClassStmt(name *Ident, body *Block, span lexer.Span) *ClassStmt {
	return &ClassStmt{Name: name, Body: body, span: span}
}

// ReturnStmt represents "spez Expr". The expression is required.
type ReturnStmt struct {
	Value Expr
	span  lexer.Span
}

func (s *ReturnStmt) Span() lexer.Span { return s.span }
func (*ReturnStmt) stmtNode()          {}

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}
