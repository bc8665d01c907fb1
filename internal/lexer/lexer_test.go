package lexer

import (
	"testing"
)

func TestNextToken_Basic(t *testing.T) {
	input := "meth x ∑ 10\n"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{METH, "meth"},
		{IDENT, "x"},
		{ASSIGN, "∑"},
		{INT, "10"},
		{NEWLINE, "\n"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := "∑ ⅀ ≠ ⨋ - * ⎲ ⊕ ¡"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{ASSIGN, "∑"},
		{EQUALITY, "⅀"},
		{ANTIEQUALITY, "≠"},
		{ADD, "⨋"},
		{SUBTRACT, "-"},
		{MULTIPLY, "*"},
		{DIVIDE, "⎲"},
		{XOR, "⊕"},
		{NEGATION, "¡"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := "repeatdatshid sthu is but isnt test wall weneed bringme subreddit meth wat Yup Nope Dunno Huh Yeet"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LOOP, "repeatdatshid"},
		{BREAK, "sthu"},
		{IF, "is"},
		{ELSEIF, "but"},
		{ELSE, "isnt"},
		{TRY, "test"},
		{CATCH, "wall"},
		{IMPORT, "weneed"},
		{IMPORT, "bringme"},
		{SUBREDDIT, "subreddit"},
		{METH, "meth"},
		{NULL, "wat"},
		{YUP, "Yup"},
		{NOPE, "Nope"},
		{DUNNO, "Dunno"},
		{HUH, "Huh"},
		{YEET, "Yeet"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

// Keywords like "call " include a mandatory trailing space in their match.
func TestNextToken_SpacedKeywords(t *testing.T) {
	input := "callmeonmycellphone f call g spez x damn T shoot e bar debug school C "

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{FUNCTION, "callmeonmycellphone"},
		{IDENT, "f"},
		{CALL, "call"},
		{IDENT, "g"},
		{RETURN, "spez"},
		{IDENT, "x"},
		{DAMN, "damn"},
		{IDENT, "T"},
		{THROW, "shoot"},
		{IDENT, "e"},
		{BAR, "bar"},
		{DEBUG, "debug"},
		{SCHOOL, "school"},
		{IDENT, "C"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

// Without the trailing space a spaced-keyword spelling is an ordinary
// identifier, and so is a longer word that merely starts with one.
func TestNextToken_SpacedKeywordNeedsSpace(t *testing.T) {
	tests := []struct {
		input        string
		expectedType TokenType
		literal      string
	}{
		{"callmeonmycellphoneX", IDENT, "callmeonmycellphoneX"},
		{"callmeonmycellphone{", IDENT, "callmeonmycellphone"},
		{"call{", IDENT, "call"},
		{"spez\n", IDENT, "spez"},
		{"damn", IDENT, "damn"},
	}

	for i, tt := range tests {
		tok := New(tt.input).NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.literal, tok.Literal)
		}
	}
}

func TestNextToken_SubredditPrefix(t *testing.T) {
	input := "subreddit r/mymodule"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{SUBREDDIT, "subreddit"},
		{RPREFIX, "r/"},
		{IDENT, "mymodule"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

// A sign glyph glued to a digit is part of the number; separated by a space
// it is an operator token.
func TestNextToken_SignedNumbers(t *testing.T) {
	input := "⨋1 -2 ¡3 1.5 -1.5 a - 1"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{INT, "⨋1"},
		{INT, "-2"},
		{INT, "¡3"},
		{DECIMAL, "1.5"},
		{DECIMAL, "-1.5"},
		{IDENT, "a"},
		{SUBTRACT, "-"},
		{INT, "1"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

// "1." does not extend into a decimal: the dot needs a following digit.
func TestNextToken_NumberDotWithoutDigit(t *testing.T) {
	l := New("1.")

	tok := l.NextToken()
	if tok.Type != INT || tok.Literal != "1" {
		t.Fatalf("expected INT \"1\", got %q %q", tok.Type, tok.Literal)
	}
}

func TestNextToken_Newlines(t *testing.T) {
	input := "a\nb\r\nc\rd"

	expected := []TokenType{
		IDENT, NEWLINE, IDENT, NEWLINE, IDENT, NEWLINE, IDENT, EOF,
	}

	l := New(input)
	for i, typ := range expected {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tok.Type)
		}
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := "a # line comment\nb #* block\ncomment *# c\n"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENT, "a"},
		{NEWLINE, "\n"},
		{IDENT, "b"},
		{IDENT, "c"},
		{NEWLINE, "\n"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
	}

	if len(l.Errors) != 0 {
		t.Fatalf("expected no lexer errors, got %v", l.Errors)
	}
}

// Block comments do not nest, and a '#' inside one has no meaning. A "*#"
// outside any comment is MULTIPLY then a line comment.
func TestNextToken_BlockCommentEdges(t *testing.T) {
	l := New("#* a # b *# x")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT \"x\" after block comment, got %q %q", tok.Type, tok.Literal)
	}

	l = New("# a *# b\nc")
	expectedLine := []TokenType{NEWLINE, IDENT, EOF}
	for i, typ := range expectedLine {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("line-comment step %d - expected token %q, got %q", i, typ, tok.Type)
		}
	}

	l = New("x *# rest of line\ny")
	expected := []TokenType{IDENT, MULTIPLY, NEWLINE, IDENT, EOF}
	for i, typ := range expected {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tok.Type)
		}
	}
}

func TestNextToken_UnterminatedBlockComment(t *testing.T) {
	l := New("#* never closed")

	tok := l.NextToken()
	if tok.Type != EOF {
		t.Fatalf("expected EOF, got %q", tok.Type)
	}
	if len(l.Errors) != 1 || l.Errors[0].Kind != ErrUnterminatedBlockComment {
		t.Fatalf("expected one unterminated-block-comment error, got %v", l.Errors)
	}
}

func TestNextToken_Strings(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"it's"`, "it"},   // the apostrophe closes the string
		{`"mixed'`, "mixed"},
		{`'mixed"`, "mixed"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\/b"`, "a/b"},
		{`"tab\there"`, "tab\there"},
		{`"nl\nhere"`, "nl\nhere"},
		{`"cr\rhere"`, "cr\rhere"},
		{`"bs\bhere"`, "bs\bhere"},
		{`"ff\fhere"`, "ff\fhere"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\uD83D\uDE00"`, "😀"}, // utf16 surrogate pair
		{`"😀"`, "😀"},
		{"\"raw\nnewline\"", "raw\nnewline"},
	}

	for i, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()

		if tok.Type != STRING {
			t.Fatalf("tests[%d] - expected STRING, got %q (errors: %v)", i, tok.Type, l.Errors)
		}
		if tok.Literal != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, tok.Literal)
		}
	}
}

// The trailing-garbage cases after "it" in TestNextToken_Strings are not an
// accident: 's' lexes as a fresh identifier once the apostrophe closes the
// literal. This test pins that down.
func TestNextToken_ApostropheClosesString(t *testing.T) {
	l := New(`"it's"`)

	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "it" {
		t.Fatalf("expected STRING \"it\", got %q %q", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != IDENT || tok.Literal != "s" {
		t.Fatalf("expected IDENT \"s\", got %q %q", tok.Type, tok.Literal)
	}
}

func TestNextToken_StringErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  LexerErrorKind
	}{
		{`"never closed`, ErrUnterminatedString},
		{`"bad \' escape"`, ErrInvalidEscape},
		{`"bad \q escape"`, ErrInvalidEscape},
		{`"bad \u12G4"`, ErrInvalidEscape},
		{`"bad \xZ9"`, ErrInvalidEscape},
	}

	for i, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()

		if tok.Type != ILLEGAL {
			t.Fatalf("tests[%d] - expected ILLEGAL, got %q", i, tok.Type)
		}
		if len(l.Errors) == 0 {
			t.Fatalf("tests[%d] - expected a lexer error", i)
		}
		if l.Errors[0].Kind != tt.kind {
			t.Fatalf("tests[%d] - expected error kind %d, got %d", i, tt.kind, l.Errors[0].Kind)
		}
	}
}

func TestNextToken_IllegalRune(t *testing.T) {
	l := New("meth x ∑ @")

	var tok Token
	for {
		tok = l.NextToken()
		if tok.Type == ILLEGAL || tok.Type == EOF {
			break
		}
	}

	if tok.Type != ILLEGAL || tok.Raw != "@" {
		t.Fatalf("expected ILLEGAL \"@\", got %q %q", tok.Type, tok.Raw)
	}
	if len(l.Errors) != 1 || l.Errors[0].Kind != ErrIllegalRune {
		t.Fatalf("expected one illegal-rune error, got %v", l.Errors)
	}
}

func TestSpans_LineAndColumn(t *testing.T) {
	input := "a\nmeth x ∑ 1\n"

	l := New(input)

	type want struct {
		typ    TokenType
		line   int
		column int
	}
	tests := []want{
		{IDENT, 1, 1},
		{NEWLINE, 1, 2},
		{METH, 2, 1},
		{IDENT, 2, 6},
		{ASSIGN, 2, 8},
		{INT, 2, 10},
		{NEWLINE, 2, 11},
	}

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.typ, tok.Type)
		}
		if tok.Span.Line != tt.line || tok.Span.Column != tt.column {
			t.Fatalf("tests[%d] - span wrong. expected=%d:%d, got=%d:%d",
				i, tt.line, tt.column, tok.Span.Line, tok.Span.Column)
		}
	}
}
