// Package printer renders an AST back to canonical RedditLang source.
//
// The output is deterministic and reparses to a structurally identical tree:
// one statement per line, two-space indentation, spaced operator chains,
// double-quoted strings, and a trailing comma after every argument (the
// argument-list grammar requires one). Printing is idempotent:
// Print(parse(Print(parse(src)))) == Print(parse(src)).
package printer

import (
	"fmt"
	"strings"

	"github.com/redditlang/redditlang/internal/ast"
)

const indentUnit = "  "

// Print renders a program as canonical source text ending in a newline,
// or an empty string for an empty program.
func Print(prog *ast.Program) string {
	var p printer
	for i, stmt := range prog.Stmts {
		if i > 0 {
			p.b.WriteByte('\n')
		}
		p.stmt(stmt)
	}
	if len(prog.Stmts) > 0 {
		p.b.WriteByte('\n')
	}
	return p.b.String()
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) pad() {
	for i := 0; i < p.indent; i++ {
		p.b.WriteString(indentUnit)
	}
}

func (p *printer) stmt(stmt ast.Stmt) {
	p.pad()

	switch s := stmt.(type) {
	case *ast.LoopStmt:
		p.b.WriteString("repeatdatshid ")
		p.block(s.Body)

	case *ast.BreakStmt:
		p.b.WriteString("sthu")

	case *ast.FunctionStmt:
		p.modifiers(s.Modifiers)
		p.b.WriteString("callmeonmycellphone ")
		p.declaration(s.Decl)
		p.b.WriteByte('(')
		for i, arg := range s.Args {
			if i > 0 {
				p.b.WriteByte(' ')
			}
			p.declaration(arg)
			p.b.WriteByte(',')
		}
		p.b.WriteString(") ")
		p.block(s.Body)

	case *ast.CallStmt:
		p.expr(s.Call)

	case *ast.TryCatchStmt:
		p.b.WriteString("test ")
		p.block(s.Try)
		p.b.WriteString(" wall ")
		if s.CatchName != nil {
			p.b.WriteString(s.CatchName.Name)
			p.b.WriteByte(' ')
		}
		p.block(s.Catch)

	case *ast.ThrowStmt:
		p.b.WriteString("shoot ")
		p.expr(s.Value)

	case *ast.ImportStmt:
		p.b.WriteString("weneed ")
		p.b.WriteString(quote(s.Path.Value))

	case *ast.ModuleStmt:
		p.b.WriteString("subreddit r/")
		p.b.WriteString(s.Name.Name)

	case *ast.VariableStmt:
		p.modifiers(s.Modifiers)
		p.b.WriteString("meth ")
		p.declaration(s.Decl)
		p.b.WriteString(" ∑ ")
		p.expr(s.Value)

	case *ast.AssignStmt:
		p.b.WriteString(s.Name.Name)
		p.b.WriteString(" ∑ ")
		p.expr(s.Value)

	case *ast.IfStmt:
		p.b.WriteString("is ")
		p.expr(s.Cond)
		p.b.WriteByte(' ')
		p.block(s.Body)
		for _, clause := range s.ElseIfs {
			p.b.WriteString(" but ")
			p.expr(clause.Cond)
			p.b.WriteByte(' ')
			p.block(clause.Body)
		}
		if s.Else != nil {
			p.b.WriteString(" isnt ")
			p.block(s.Else)
		}

	case *ast.ClassStmt:
		p.b.WriteString("school ")
		p.b.WriteString(s.Name.Name)
		p.b.WriteByte(' ')
		p.block(s.Body)

	case *ast.ReturnStmt:
		p.b.WriteString("spez ")
		p.expr(s.Value)

	default:
		fmt.Fprintf(&p.b, "# unknown statement %T", stmt)
	}
}

func (p *printer) block(b *ast.Block) {
	if b == nil || len(b.Stmts) == 0 {
		p.b.WriteString("{}")
		return
	}

	p.b.WriteString("{\n")
	p.indent++
	for _, stmt := range b.Stmts {
		p.stmt(stmt)
		p.b.WriteByte('\n')
	}
	p.indent--
	p.pad()
	p.b.WriteByte('}')
}

func (p *printer) modifiers(mods []ast.Modifier) {
	for _, mod := range mods {
		p.b.WriteString(string(mod))
		p.b.WriteByte(' ')
	}
}

func (p *printer) declaration(d *ast.Declaration) {
	p.b.WriteString(d.Name.Name)
	if d.Type != nil {
		p.b.WriteString(" damn ")
		p.b.WriteString(d.Type.Name.Name)
		if d.Type.IsArray {
			p.b.WriteString("[]")
		}
	}
}

func (p *printer) expr(e ast.Expr) {
	switch x := e.(type) {
	case *ast.ConditionalExpr:
		p.term(x.Terms[0])
		for i, op := range x.Ops {
			p.b.WriteByte(' ')
			p.b.WriteString(string(op))
			p.b.WriteByte(' ')
			p.term(x.Terms[i+1])
		}

	case *ast.BinaryExpr:
		p.term(x.Terms[0])
		for i, op := range x.Ops {
			p.b.WriteByte(' ')
			p.b.WriteString(string(op))
			p.b.WriteByte(' ')
			p.term(x.Terms[i+1])
		}

	case *ast.IndexExpr:
		p.term(x.Target)
		p.b.WriteByte('[')
		p.expr(x.Index)
		p.b.WriteByte(']')

	default:
		p.term(e)
	}
}

// term prints an expression in Term position, parenthesizing anything that
// is not atomic there (chains and index expressions only occur as terms via
// parentheses in the source).
func (p *printer) term(e ast.Expr) {
	switch x := e.(type) {
	case *ast.ConditionalExpr, *ast.BinaryExpr, *ast.IndexExpr:
		p.b.WriteByte('(')
		p.expr(x)
		p.b.WriteByte(')')

	case *ast.CallExpr:
		p.b.WriteString("call ")
		p.b.WriteString(x.Name.Name)
		if len(x.Args) > 0 {
			p.b.WriteByte('(')
			for i, arg := range x.Args {
				if i > 0 {
					p.b.WriteByte(' ')
				}
				p.expr(arg)
				p.b.WriteByte(',')
			}
			p.b.WriteByte(')')
		}

	case *ast.Ident:
		p.b.WriteString(x.Name)

	case *ast.NumberLit:
		p.b.WriteString(x.Text)

	case *ast.StringLit:
		p.b.WriteString(quote(x.Value))

	case *ast.FooleanLit:
		p.b.WriteString(x.Value.String())

	case *ast.BooleanLit:
		if x.Value {
			p.b.WriteString("Yup")
		} else {
			p.b.WriteString("Nope")
		}

	case *ast.NullLit:
		p.b.WriteString("wat")

	default:
		fmt.Fprintf(&p.b, "# unknown expression %T", e)
	}
}

// quote renders a string literal with double quotes. A single quote would
// also close the literal (either quote character terminates a string), and
// \' is not in the escape set, so apostrophes round-trip through the \u form.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\u0027`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
