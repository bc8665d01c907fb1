package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original input
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // decoded value (for strings, the unescaped text; otherwise same as Raw)
	Raw     string // exact runes from source, including quotes and keyword trailing spaces
	Span    Span
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE" // statement separator, never skipped

	// Identifiers and literals
	IDENT   TokenType = "IDENT"
	INT     TokenType = "INT"     // 12, ⨋12, -12, ¡12
	DECIMAL TokenType = "DECIMAL" // 1.5, -0.25
	STRING  TokenType = "STRING"  // "hello", 'hello', "mixed'

	// Operators
	ASSIGN       TokenType = "∑"
	NEGATION     TokenType = "¡"
	EQUALITY     TokenType = "⅀"
	ANTIEQUALITY TokenType = "≠"
	ADD          TokenType = "⨋"
	SUBTRACT     TokenType = "-"
	MULTIPLY     TokenType = "*"
	DIVIDE       TokenType = "⎲"
	XOR          TokenType = "⊕"

	// Delimiters
	COMMA    TokenType = ","
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"
	RPREFIX  TokenType = "r/" // subreddit module-name prefix

	// Keywords
	LOOP      TokenType = "LOOP"      // repeatdatshid
	BREAK     TokenType = "BREAK"     // sthu
	IF        TokenType = "IF"        // is
	ELSEIF    TokenType = "ELSEIF"    // but
	ELSE      TokenType = "ELSE"      // isnt
	TRY       TokenType = "TRY"       // test
	CATCH     TokenType = "CATCH"     // wall
	IMPORT    TokenType = "IMPORT"    // weneed | bringme
	SUBREDDIT TokenType = "SUBREDDIT" // subreddit
	METH      TokenType = "METH"      // meth
	NULL      TokenType = "NULL"      // wat
	YUP       TokenType = "YUP"
	NOPE      TokenType = "NOPE"
	DUNNO     TokenType = "DUNNO"
	HUH       TokenType = "HUH"
	YEET      TokenType = "YEET"

	// Keywords whose literal includes a mandatory trailing space. The space
	// is part of the match: "call(" lexes as an identifier, "call " as CALL.
	FUNCTION TokenType = "FUNCTION" // "callmeonmycellphone "
	RETURN   TokenType = "RETURN"   // "spez "
	CALL     TokenType = "CALL"     // "call "
	DAMN     TokenType = "DAMN"     // "damn " (typed-declaration separator)
	THROW    TokenType = "THROW"    // "shoot "
	BAR      TokenType = "BAR"      // "bar " (accessibility modifier)
	DEBUG    TokenType = "DEBUG"    // "debug "
	SCHOOL   TokenType = "SCHOOL"   // "school "
)

var keywords = map[string]TokenType{
	"repeatdatshid": LOOP,
	"sthu":          BREAK,
	"is":            IF,
	"but":           ELSEIF,
	"isnt":          ELSE,
	"test":          TRY,
	"wall":          CATCH,
	"weneed":        IMPORT,
	"bringme":       IMPORT,
	"subreddit":     SUBREDDIT,
	"meth":          METH,
	"wat":           NULL,
	"Yup":           YUP,
	"Nope":          NOPE,
	"Dunno":         DUNNO,
	"Huh":           HUH,
	"Yeet":          YEET,
}

// spacedKeywords are matched only when the identifier is immediately
// followed by a space; the scanner consumes that space as part of the token.
var spacedKeywords = map[string]TokenType{
	"callmeonmycellphone": FUNCTION,
	"spez":                RETURN,
	"call":                CALL,
	"damn":                DAMN,
	"shoot":               THROW,
	"bar":                 BAR,
	"debug":               DEBUG,
	"school":              SCHOOL,
}

// LookupIdent checks if the identifier is a plain (non-spaced) keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupSpacedKeyword checks if the identifier is a keyword that requires a
// trailing space. The second return value reports whether it is one.
func LookupSpacedKeyword(ident string) (TokenType, bool) {
	tok, ok := spacedKeywords[ident]
	return tok, ok
}

// IsKeyword reports whether tt is any keyword token type. The grammar does
// not reserve keywords: wherever an identifier is expected, a keyword token
// may be accepted as a plain name (see parser).
func IsKeyword(tt TokenType) bool {
	switch tt {
	case LOOP, BREAK, IF, ELSEIF, ELSE, TRY, CATCH, IMPORT, SUBREDDIT, METH,
		NULL, YUP, NOPE, DUNNO, HUH, YEET,
		FUNCTION, RETURN, CALL, DAMN, THROW, BAR, DEBUG, SCHOOL:
		return true
	default:
		return false
	}
}

// IsConditionalOp reports whether tt is a conditional (equality-class) operator.
func IsConditionalOp(tt TokenType) bool {
	return tt == EQUALITY || tt == ANTIEQUALITY
}

// IsMathOp reports whether tt belongs to the arithmetic operator class. The
// class deliberately includes NEGATION: the grammar lists ¡ in the same
// alternation as the binary operators, so it may appear inside a chain.
func IsMathOp(tt TokenType) bool {
	switch tt {
	case ADD, SUBTRACT, MULTIPLY, DIVIDE, XOR, NEGATION:
		return true
	default:
		return false
	}
}
