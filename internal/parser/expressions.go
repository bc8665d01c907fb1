package parser

import (
	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/lexer"
)

// parseExpr parses an expression with the grammar's ordered choice:
// ConditionalExpr, else BinaryExpr, else IndexExpr, else a bare Term. All
// four alternatives share a leading Term, and the conditional and math
// operator token sets are disjoint, so one token of lookahead after the
// Term selects the alternative without violating the ordered-choice
// contract. A chain cannot mix operator classes: the chain stops at the
// first token outside its class and the caller decides whether what follows
// is legal.
func (p *Parser) parseExpr() ast.Expr {
	if p.err != nil {
		return nil
	}

	start := p.curTok.Span
	first := p.parseTerm()
	if p.err != nil {
		return nil
	}

	switch {
	case lexer.IsConditionalOp(p.curTok.Type):
		terms := []ast.Expr{first}
		var ops []ast.ConditionalOp
		for lexer.IsConditionalOp(p.curTok.Type) {
			ops = append(ops, ast.ConditionalOp(p.curTok.Raw))
			p.nextToken()

			term := p.parseTerm()
			if p.err != nil {
				return nil
			}
			terms = append(terms, term)
		}
		return ast.NewConditionalExpr(terms, ops,
			mergeSpan(start, terms[len(terms)-1].Span()))

	case lexer.IsMathOp(p.curTok.Type):
		// The chain is flat: no precedence among ⨋ - * ⎲ ⊕ ¡, strictly
		// left-to-right (value, operator) pairs.
		terms := []ast.Expr{first}
		var ops []ast.MathOp
		for lexer.IsMathOp(p.curTok.Type) {
			ops = append(ops, ast.MathOp(p.curTok.Raw))
			p.nextToken()

			term := p.parseTerm()
			if p.err != nil {
				return nil
			}
			terms = append(terms, term)
		}
		return ast.NewBinaryExpr(terms, ops,
			mergeSpan(start, terms[len(terms)-1].Span()))

	case p.curTok.Type == lexer.LBRACKET:
		p.nextToken() // consume '['

		index := p.parseIndexLiteral()
		if p.err != nil {
			return nil
		}

		end := p.curTok.Span
		if !p.expect(lexer.RBRACKET) {
			return nil
		}
		return ast.NewIndexExpr(first, index, mergeSpan(start, end))

	default:
		return first
	}
}

// parseIndexLiteral parses the bracketed part of an IndexExpr. Only a
// Number or String literal is allowed there; any other expression form is a
// deliberate grammar restriction, not an omission.
func (p *Parser) parseIndexLiteral() ast.Expr {
	switch p.curTok.Type {
	case lexer.INT, lexer.DECIMAL:
		lit := ast.NewNumberLit(p.curTok.Raw, p.curTok.Type == lexer.DECIMAL, p.curTok.Span)
		p.nextToken()
		return lit
	case lexer.STRING:
		lit := ast.NewStringLit(p.curTok.Literal, p.curTok.Span)
		p.nextToken()
		return lit
	default:
		p.failCode(diag.CodeParserBadIndexLiteral,
			"index expression requires a number or string literal",
			p.curTok.Span, "Number", "String")
		return nil
	}
}

// parseTerm parses the atomic unit of an expression chain, trying the Term
// alternatives in grammar order: Literal, Call, Ident, parenthesized Expr.
// The literal alternation lists Foolean before Boolean, so Yup and Nope
// become FooleanLit here. Keywords that do not start a literal or call fall
// through to Ident, since the grammar does not reserve keyword spellings.
func (p *Parser) parseTerm() ast.Expr {
	if p.err != nil {
		return nil
	}

	tok := p.curTok
	switch tok.Type {
	case lexer.INT:
		p.nextToken()
		return ast.NewNumberLit(tok.Raw, false, tok.Span)

	case lexer.DECIMAL:
		p.nextToken()
		return ast.NewNumberLit(tok.Raw, true, tok.Span)

	case lexer.STRING:
		p.nextToken()
		return ast.NewStringLit(tok.Literal, tok.Span)

	case lexer.YUP, lexer.NOPE, lexer.DUNNO, lexer.HUH, lexer.YEET:
		value, _ := ast.FooleanFromLiteral(tok.Literal)
		p.nextToken()
		return ast.NewFooleanLit(value, tok.Span)

	case lexer.NULL:
		p.nextToken()
		return ast.NewNullLit(tok.Span)

	case lexer.CALL:
		return p.parseCallExpr()

	case lexer.LPAREN:
		p.nextToken() // consume '('
		inner := p.parseExpr()
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		return inner

	case lexer.IDENT:
		p.nextToken()
		return ast.NewIdent(tok.Literal, tok.Span)
	}

	if identLike(tok) {
		p.nextToken()
		return ast.NewIdent(tok.Literal, tok.Span)
	}

	p.failCode(diag.CodeParserNoAlternative, "expected expression term",
		tok.Span, "Literal", "Call", "Ident", "ParenExpr")
	return nil
}

// parseCallExpr parses "call Name" with an optional parenthesized,
// comma-terminated argument list (same trailing-comma shape as function
// argument declarations).
func (p *Parser) parseCallExpr() *ast.CallExpr {
	start := p.curTok.Span
	p.nextToken() // consume 'call '

	name := p.parseIdent()
	if p.err != nil {
		return nil
	}
	end := name.Span()

	var args []ast.Expr
	if p.curTok.Type == lexer.LPAREN {
		p.nextToken()

		for p.curTok.Type != lexer.RPAREN {
			arg := p.parseExpr()
			if p.err != nil {
				return nil
			}
			args = append(args, arg)

			if p.curTok.Type != lexer.COMMA {
				p.fail("expected ',' after argument", p.curTok.Span)
				return nil
			}
			p.nextToken()
		}
		end = p.curTok.Span
		p.nextToken() // consume ')'
	}

	return ast.NewCallExpr(name, args, mergeSpan(start, end))
}
