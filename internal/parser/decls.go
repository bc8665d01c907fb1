package parser

import (
	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/lexer"
)

// parseDeclaration parses "Ident (damn Type)?". An untyped declaration keeps
// a nil Type; the presence of the annotation is preserved, never defaulted.
func (p *Parser) parseDeclaration() *ast.Declaration {
	name := p.parseIdent()
	if p.err != nil {
		return nil
	}

	var typ *ast.Type
	if p.curTok.Type == lexer.DAMN {
		p.nextToken() // consume 'damn '
		typ = p.parseType()
		if p.err != nil {
			return nil
		}
	}

	end := name.Span()
	if typ != nil {
		end = typ.Span()
	}
	return ast.NewDeclaration(name, typ, mergeSpan(name.Span(), end))
}

// parseType parses a type name with an optional "[]" array suffix.
func (p *Parser) parseType() *ast.Type {
	name := p.parseIdent()
	if p.err != nil {
		return nil
	}

	isArray := false
	end := name.Span()
	if p.curTok.Type == lexer.LBRACKET && p.peekTok.Type == lexer.RBRACKET {
		p.nextToken()
		end = p.curTok.Span
		p.nextToken()
		isArray = true
	}

	return ast.NewType(name, isArray, mergeSpan(name.Span(), end))
}

// parseArgDeclList parses a function's argument list. The grammar's list
// shape is "(Arg ,)*": every argument, including the last, is followed by a
// comma, so "(a, b,)" is well formed and "(a, b)" is a parse error.
func (p *Parser) parseArgDeclList() []*ast.Declaration {
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	var args []*ast.Declaration
	for p.curTok.Type != lexer.RPAREN {
		decl := p.parseDeclaration()
		if p.err != nil {
			return nil
		}
		args = append(args, decl)

		if p.curTok.Type != lexer.COMMA {
			p.fail("expected ',' after argument", p.curTok.Span)
			return nil
		}
		p.nextToken()
	}
	p.nextToken() // consume ')'

	return args
}
