package parser

import (
	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/lexer"
)

// statementAlternatives is the grammar's fixed statement ordering. The
// dispatch below commits to the first alternative whose keyword/shape
// matches; this list is reported when none do.
var statementAlternatives = []string{
	"Loop", "Break", "Function", "Call", "TryCatch", "Throw", "Import",
	"Module", "Variable", "Assignment", "IfBlock", "Class", "Return",
}

// parseStatement dispatches on the statement alternatives in grammar order.
// Keyword-led forms are mutually exclusive on their first token, so the
// switch preserves the ordered-choice contract; the only subtlety is that
// Assignment (a bare name followed by '∑') outranks IfBlock, Class and
// Return, so a keyword like "is" or "school" followed by '∑' is an
// assignment to that name, while "sthu ∑ 5" is still a Break because Break
// is tried earlier.
func (p *Parser) parseStatement() ast.Stmt {
	if p.err != nil {
		return nil
	}

	switch p.curTok.Type {
	case lexer.LOOP:
		return p.parseLoopStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.DEBUG, lexer.BAR, lexer.FUNCTION, lexer.METH:
		return p.parseFunctionOrVariable()
	case lexer.CALL:
		return p.parseCallStmt()
	case lexer.TRY:
		return p.parseTryCatchStmt()
	case lexer.THROW:
		return p.parseThrowStmt()
	case lexer.IMPORT:
		return p.parseImportStmt()
	case lexer.SUBREDDIT:
		return p.parseModuleStmt()
	}

	if identLike(p.curTok) && p.peekTok.Type == lexer.ASSIGN {
		return p.parseAssignStmt()
	}

	switch p.curTok.Type {
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.SCHOOL:
		return p.parseClassStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	}

	p.failCode(diag.CodeParserNoAlternative, "expected statement",
		p.curTok.Span, statementAlternatives...)
	return nil
}

func (p *Parser) parseLoopStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'repeatdatshid'

	body := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return ast.NewLoopStmt(body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	stmt := ast.NewBreakStmt(p.curTok.Span)
	p.nextToken() // consume 'sthu'
	return stmt
}

// parseFunctionOrVariable handles the shared modifier prefix of the Function
// and Variable alternatives. Modifiers are order-insensitive and duplicates
// are syntactically allowed; Function accepts debug and bar, Variable only
// bar.
func (p *Parser) parseFunctionOrVariable() ast.Stmt {
	start := p.curTok.Span

	var mods []ast.Modifier
	sawDebug := false
	for p.curTok.Type == lexer.DEBUG || p.curTok.Type == lexer.BAR {
		if p.curTok.Type == lexer.DEBUG {
			mods = append(mods, ast.ModifierDebug)
			sawDebug = true
		} else {
			mods = append(mods, ast.ModifierAccessibility)
		}
		p.nextToken()
	}

	switch p.curTok.Type {
	case lexer.FUNCTION:
		return p.parseFunctionStmt(mods, start)
	case lexer.METH:
		if sawDebug {
			p.fail("'debug' modifier is not valid on a variable declaration",
				start, "Function", "Variable")
			return nil
		}
		return p.parseVariableStmt(mods, start)
	default:
		p.fail("expected 'callmeonmycellphone ' or 'meth' after modifiers",
			p.curTok.Span, "Function", "Variable")
		return nil
	}
}

func (p *Parser) parseFunctionStmt(mods []ast.Modifier, start lexer.Span) ast.Stmt {
	p.nextToken() // consume 'callmeonmycellphone '

	decl := p.parseDeclaration()
	args := p.parseArgDeclList()
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return ast.NewFunctionStmt(mods, decl, args, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseCallStmt() ast.Stmt {
	call := p.parseCallExpr()
	if p.err != nil {
		return nil
	}
	return ast.NewCallStmt(call, call.Span())
}

func (p *Parser) parseTryCatchStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'test'

	try := p.parseBlock()
	if p.err != nil {
		return nil
	}

	// A try block without a catch clause is not a statement.
	if p.curTok.Type != lexer.CATCH {
		p.fail("expected 'wall' catch clause after try block",
			p.curTok.Span, "TryCatch")
		return nil
	}
	p.nextToken() // consume 'wall'

	var catchName *ast.Ident
	if p.curTok.Type != lexer.LBRACE {
		catchName = p.parseIdent()
	}

	catch := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return ast.NewTryCatchStmt(try, catchName, catch, mergeSpan(start, catch.Span()))
}

func (p *Parser) parseThrowStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'shoot '

	value := p.parseExpr()
	if p.err != nil {
		return nil
	}

	return ast.NewThrowStmt(value, mergeSpan(start, value.Span()))
}

func (p *Parser) parseImportStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'weneed' or 'bringme'

	if p.curTok.Type != lexer.STRING {
		p.fail("expected string literal import path", p.curTok.Span)
		return nil
	}
	path := ast.NewStringLit(p.curTok.Literal, p.curTok.Span)
	end := p.curTok.Span
	p.nextToken()

	return ast.NewImportStmt(path, mergeSpan(start, end))
}

func (p *Parser) parseModuleStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'subreddit'

	if p.curTok.Type != lexer.RPREFIX {
		p.fail("expected 'r/' module prefix", p.curTok.Span)
		return nil
	}
	p.nextToken()

	name := p.parseIdent()
	if p.err != nil {
		return nil
	}

	return ast.NewModuleStmt(name, mergeSpan(start, name.Span()))
}

func (p *Parser) parseVariableStmt(mods []ast.Modifier, start lexer.Span) ast.Stmt {
	p.nextToken() // consume 'meth'

	decl := p.parseDeclaration()
	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	value := p.parseExpr()
	if p.err != nil {
		return nil
	}

	return ast.NewVariableStmt(mods, decl, value, mergeSpan(start, value.Span()))
}

func (p *Parser) parseAssignStmt() ast.Stmt {
	name := p.parseIdent()
	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	value := p.parseExpr()
	if p.err != nil {
		return nil
	}

	return ast.NewAssignStmt(name, value, mergeSpan(name.Span(), value.Span()))
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'is'

	cond := p.parseExpr()
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}
	end := body.Span()

	var elseIfs []*ast.ElseIf
	for p.curTok.Type == lexer.ELSEIF {
		clauseStart := p.curTok.Span
		p.nextToken() // consume 'but'

		clauseCond := p.parseExpr()
		clauseBody := p.parseBlock()
		if p.err != nil {
			return nil
		}

		elseIfs = append(elseIfs, ast.NewElseIf(clauseCond, clauseBody,
			mergeSpan(clauseStart, clauseBody.Span())))
		end = clauseBody.Span()
	}

	var els *ast.Block
	if p.curTok.Type == lexer.ELSE {
		p.nextToken() // consume 'isnt'
		els = p.parseBlock()
		if p.err != nil {
			return nil
		}
		end = els.Span()
	}

	return ast.NewIfStmt(cond, body, elseIfs, els, mergeSpan(start, end))
}

func (p *Parser) parseClassStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'school '

	name := p.parseIdent()
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}

	return ast.NewClassStmt(name, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'spez '

	value := p.parseExpr()
	if p.err != nil {
		return nil
	}

	return ast.NewReturnStmt(value, mergeSpan(start, value.Span()))
}
