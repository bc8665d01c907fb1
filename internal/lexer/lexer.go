package lexer

import (
	"strconv"
	"unicode/utf16"

	"github.com/redditlang/redditlang/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnterminatedString LexerErrorKind = iota
	ErrUnterminatedBlockComment
	ErrInvalidEscape
	ErrIllegalRune
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedBlockComment:
		return diag.CodeLexerUnterminatedBlockComment
	case ErrInvalidEscape:
		return diag.CodeLexerInvalidEscape
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer represents the scanner state. Whitespace handling is asymmetric by
// design: runs of space/tab are skipped, but '\n' produces a NEWLINE token
// because newlines separate statements.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read()
	return l
}

// SetFilename attributes all subsequent token spans to the given filename.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next rune, keeping line/column in sync with
// the rune at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1

	if prevPos >= 0 && prevPos < len(l.input) && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0 // EOF
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Raw:     raw,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// skipSpaces skips runs of space and tab. Newlines are not whitespace here.
func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' {
		l.read()
	}
}

// skipLineComment consumes "#" up to (not including) the next newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
}

// skipBlockComment consumes "#* ... *#". Block comments do not nest: an inner
// "#*" has no meaning and the first "*#" terminates the comment.
func (l *Lexer) skipBlockComment(startLine, startColumn, startPos int) {
	l.read() // consume '#'
	l.read() // consume '*'
	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedBlockComment,
				"unterminated block comment",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return
		}
		if l.ch == '*' && l.peek() == '#' {
			l.read() // consume '*'
			l.read() // consume '#'
			return
		}
		l.read()
	}
}

// readIdentifier reads an identifier: ASCII letter or underscore, then
// letters, digits and underscores.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a numeric literal. The optional sign glyph has already
// been consumed by the caller; digits and at most one fraction follow. There
// is no exponent form and no digit separators.
func (l *Lexer) readNumber(startLine, startColumn, startPos int) Token {
	for isDigit(l.ch) {
		l.read()
	}

	tokType := INT
	if l.ch == '.' && isDigit(l.peek()) {
		tokType = DECIMAL
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}

	raw := string(l.input[startPos:l.pos])
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, raw, raw)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipSpaces()

		startLine, startColumn, startPos := l.currentSpanStart()

		switch l.ch {
		case 0:
			if startColumn == 0 {
				startColumn = 1
			}
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '\n':
			l.read()
			return l.makeToken(NEWLINE, startLine, startColumn, startPos, l.pos, "\n", "\n")

		case '\r':
			l.read()
			raw := "\r"
			if l.ch == '\n' {
				raw = "\r\n"
				l.read()
			}
			return l.makeToken(NEWLINE, startLine, startColumn, startPos, l.pos, raw, "\n")

		case '#':
			if l.peek() == '*' {
				l.skipBlockComment(startLine, startColumn, startPos)
			} else {
				l.skipLineComment()
			}
			continue

		case '"', '\'':
			raw, value, terminated := l.readString(startLine, startColumn, startPos)
			if !terminated {
				return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, value)
			}
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, raw, value)

		case '∑':
			return l.singleRuneToken(ASSIGN, startLine, startColumn, startPos)
		case '⅀':
			return l.singleRuneToken(EQUALITY, startLine, startColumn, startPos)
		case '≠':
			return l.singleRuneToken(ANTIEQUALITY, startLine, startColumn, startPos)
		case '*':
			return l.singleRuneToken(MULTIPLY, startLine, startColumn, startPos)
		case '⎲':
			return l.singleRuneToken(DIVIDE, startLine, startColumn, startPos)
		case '⊕':
			return l.singleRuneToken(XOR, startLine, startColumn, startPos)

		case '⨋', '-', '¡':
			// A sign glyph glued to a digit starts a numeric literal; with
			// anything else following it is an operator token.
			if isDigit(l.peek()) {
				l.read()
				return l.readNumber(startLine, startColumn, startPos)
			}
			switch l.input[startPos] {
			case '⨋':
				return l.singleRuneToken(ADD, startLine, startColumn, startPos)
			case '-':
				return l.singleRuneToken(SUBTRACT, startLine, startColumn, startPos)
			default:
				return l.singleRuneToken(NEGATION, startLine, startColumn, startPos)
			}

		case ',':
			return l.singleRuneToken(COMMA, startLine, startColumn, startPos)
		case '(':
			return l.singleRuneToken(LPAREN, startLine, startColumn, startPos)
		case ')':
			return l.singleRuneToken(RPAREN, startLine, startColumn, startPos)
		case '{':
			return l.singleRuneToken(LBRACE, startLine, startColumn, startPos)
		case '}':
			return l.singleRuneToken(RBRACE, startLine, startColumn, startPos)
		case '[':
			return l.singleRuneToken(LBRACKET, startLine, startColumn, startPos)
		case ']':
			return l.singleRuneToken(RBRACKET, startLine, startColumn, startPos)

		default:
			if isLetter(l.ch) {
				literal := l.readIdentifier()

				// "r" immediately followed by '/' is the subreddit
				// module-name prefix, a two-rune keyword literal.
				if literal == "r" && l.ch == '/' {
					l.read()
					return l.makeToken(RPREFIX, startLine, startColumn, startPos, l.pos, "r/", "r/")
				}

				// Keywords like "call " carry a mandatory trailing space in
				// their literal. The space is consumed as part of the match,
				// so "callmeonmycellphoneX" stays an identifier and
				// "callmeonmycellphone{" does too.
				if tokType, ok := LookupSpacedKeyword(literal); ok && l.ch == ' ' {
					l.read()
					return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal+" ", literal)
				}

				tokType := LookupIdent(literal)
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
			}
			if isDigit(l.ch) {
				return l.readNumber(startLine, startColumn, startPos)
			}

			raw := string(l.ch)
			l.read()
			tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
			l.addError(
				ErrIllegalRune,
				"illegal character "+strconv.Quote(raw),
				tok.Span,
			)
			return tok
		}
	}
}

func (l *Lexer) singleRuneToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	raw := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, raw, raw)
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

// readString reads a string literal. Either quote character opens a string
// and either one closes it; the grammar does not require them to match, so
// "it's fine' is a single literal. A raw newline inside the string is legal.
// Escapes: \" \\ \/ \b \f \n \r \t \uXXXX \xXX. Anything else after a
// backslash is a lexical error.
func (l *Lexer) readString(startLine, startColumn, startPos int) (raw string, value string, terminated bool) {
	var decoded []rune

	l.read() // skip opening quote

	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedString,
				"unterminated string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return string(l.input[startPos:l.pos]), string(decoded), false
		}
		if l.ch == '"' || l.ch == '\'' {
			l.read() // consume closing quote
			return string(l.input[startPos:l.pos]), string(decoded), true
		}
		if l.ch == '\\' {
			r, ok := l.readEscape(startLine, startColumn, startPos)
			if !ok {
				return string(l.input[startPos:l.pos]), string(decoded), false
			}
			decoded = append(decoded, r)
			continue
		}
		decoded = append(decoded, l.ch)
		l.read()
	}
}

// readEscape decodes one escape sequence. The cursor is on the backslash.
func (l *Lexer) readEscape(startLine, startColumn, startPos int) (rune, bool) {
	escStart := l.pos
	l.read() // skip '\'

	switch l.ch {
	case '"':
		l.read()
		return '"', true
	case '\'':
		// Not in the escape set; the quote would have closed the string, so
		// \' is as malformed as any other unknown escape.
	case '\\':
		l.read()
		return '\\', true
	case '/':
		l.read()
		return '/', true
	case 'b':
		l.read()
		return '\b', true
	case 'f':
		l.read()
		return '\f', true
	case 'n':
		l.read()
		return '\n', true
	case 'r':
		l.read()
		return '\r', true
	case 't':
		l.read()
		return '\t', true
	case 'x':
		l.read()
		if v, ok := l.readHex(2); ok {
			return rune(v), true
		}
	case 'u':
		l.read()
		if v, ok := l.readHex(4); ok {
			r := rune(v)
			// A high surrogate may be followed by a \uXXXX low surrogate
			// encoding a single supplementary-plane rune.
			if utf16.IsSurrogate(r) && l.ch == '\\' && l.peek() == 'u' {
				savedPos, savedLine, savedCol := l.pos, l.line, l.column
				l.read()
				l.read()
				if v2, ok := l.readHex(4); ok {
					if combined := utf16.DecodeRune(r, rune(v2)); combined != 0xFFFD {
						return combined, true
					}
				}
				l.pos, l.line, l.column = savedPos, savedLine, savedCol
				l.ch = l.input[l.pos]
			}
			return r, true
		}
	}

	l.addError(
		ErrInvalidEscape,
		"invalid escape sequence in string literal",
		Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: escStart, End: l.pos},
	)
	return 0, false
}

// readHex reads exactly n hex digits and returns their value.
func (l *Lexer) readHex(n int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		if !isHexDigit(l.ch) {
			return 0, false
		}
		d, _ := strconv.ParseInt(string(l.ch), 16, 32)
		v = v*16 + int(d)
		l.read()
	}
	return v, true
}
