package parser

import (
	"github.com/redditlang/redditlang/internal/ast"
	"github.com/redditlang/redditlang/internal/diag"
	"github.com/redditlang/redditlang/internal/lexer"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements an ordered-choice recursive descent parser for
// RedditLang. Invariants:
//   - Lookahead: curTok is the token currently under examination; peekTok
//     mirrors the next token pulled from the lexer. The pair forms the
//     parser's sole lookahead window and is only mutated via nextToken.
//   - Ordered choice: statement and expression dispatch try alternatives in
//     the grammar's fixed order and commit to the first keyword/shape match.
//     Once committed there is no rewinding to a later alternative.
//   - Failure: err holds the first SyntaxError and is never overwritten;
//     every parse function returns nil promptly once it is set.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	err        *SyntaxError
	lexErrSeen int

	filename string
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:       lexer.New(input),
		filename: cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Parse is the front-end entry point: it parses sourceText into a Program
// or fails with a *SyntaxError. Each call owns its own cursor, so Parse may
// be invoked concurrently on independent inputs.
func Parse(sourceText string, opts ...Option) (*ast.Program, error) {
	prog, err := New(sourceText, opts...).ParseProgram()
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseProgram parses the top-level statement sequence bounded by end of
// input. An empty or all-comment input yields a Program with no statements.
func (p *Parser) ParseProgram() (*ast.Program, *SyntaxError) {
	start := p.curTok.Span
	stmts := p.parseStmtSequence(lexer.EOF)
	if p.err != nil {
		return nil, p.err
	}
	return ast.NewProgram(stmts, mergeSpan(start, p.curTok.Span)), nil
}

// nextToken advances the parser's token window. Lexical failures surface
// here: the lexer accumulates its errors and the parser promotes the first
// unseen one into the parse-aborting SyntaxError.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()

	if len(p.lx.Errors) > p.lexErrSeen {
		lexErr := p.lx.Errors[p.lexErrSeen]
		p.lexErrSeen = len(p.lx.Errors)
		p.setLexicalError(lexErr)
	}
}

func (p *Parser) setLexicalError(lexErr lexer.LexerError) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Kind:    KindLexical,
		Message: lexErr.Message,
		Span:    p.spanWithFilename(lexErr.Span),
		Found:   lexer.ILLEGAL,
		Code:    lexErr.ToDiagnostic().Code,
	}
}

// fail records a structural error. Only the first failure is kept; parsing
// has already committed to an alternative at that point, so later failures
// are downstream noise.
func (p *Parser) fail(msg string, span lexer.Span, attempted ...string) {
	p.failCode(diag.CodeParserExpectedToken, msg, span, attempted...)
}

func (p *Parser) failCode(code diag.Code, msg string, span lexer.Span, attempted ...string) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Kind:      KindStructural,
		Message:   msg,
		Span:      p.spanWithFilename(span),
		Attempted: attempted,
		Found:     p.curTok.Type,
		Code:      code,
	}
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}

// expect asserts that curTok matches the provided type and consumes it.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.err != nil {
		return false
	}
	if p.curTok.Type == tt {
		p.nextToken()
		return true
	}
	p.fail("expected '"+string(tt)+"'", p.curTok.Span)
	return false
}

func (p *Parser) skipNewlines() {
	for p.curTok.Type == lexer.NEWLINE {
		p.nextToken()
	}
}

// parseStmtSequence parses "NEWLINE* (Stmt NEWLINE+)* Stmt?" up to the end
// token (EOF for a Program, '}' for a Block). The end token is not consumed.
func (p *Parser) parseStmtSequence(end lexer.TokenType) []ast.Stmt {
	var stmts []ast.Stmt

	p.skipNewlines()

	for p.err == nil && p.curTok.Type != end && p.curTok.Type != lexer.EOF {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		stmts = append(stmts, stmt)

		// A statement is followed by one or more newlines, or directly by
		// the closing delimiter.
		if p.curTok.Type == lexer.NEWLINE {
			p.skipNewlines()
			continue
		}
		if p.curTok.Type == end {
			break
		}
		p.fail("expected newline after statement", p.curTok.Span)
		return nil
	}

	if p.err == nil && p.curTok.Type != end {
		p.fail("expected '"+string(end)+"'", p.curTok.Span)
		return nil
	}

	return stmts
}

// parseBlock parses "{ ... }" and leaves curTok on the token after '}'.
func (p *Parser) parseBlock() *ast.Block {
	if p.err != nil {
		return nil
	}

	start := p.curTok.Span
	if p.curTok.Type != lexer.LBRACE {
		p.fail("expected '{' to start block", p.curTok.Span)
		return nil
	}
	p.nextToken()

	stmts := p.parseStmtSequence(lexer.RBRACE)
	if p.err != nil {
		return nil
	}

	end := p.curTok.Span
	p.nextToken() // consume '}'

	return ast.NewBlock(stmts, mergeSpan(start, end))
}

// identLike reports whether tok can serve as an identifier. Keywords are not
// reserved: wherever the grammar expects an Ident, a keyword spelling is
// accepted as a plain name (ordered choice decides keyword-vs-ident by
// trying keyword alternatives first, not by reserving words).
func identLike(tok lexer.Token) bool {
	return tok.Type == lexer.IDENT || lexer.IsKeyword(tok.Type)
}

// parseIdent parses an identifier, accepting keyword tokens as names. For
// trailing-space keywords the name is the keyword text without the space.
func (p *Parser) parseIdent() *ast.Ident {
	if p.err != nil {
		return nil
	}
	if !identLike(p.curTok) {
		p.fail("expected identifier", p.curTok.Span)
		return nil
	}
	ident := ast.NewIdent(p.curTok.Literal, p.curTok.Span)
	p.nextToken()
	return ident
}

// mergeSpan returns a span covering both arguments, assuming start begins
// no later than end. Lexer spans are half-open.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
