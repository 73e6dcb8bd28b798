package lexer

// TokenType identifies the kind of a token. The set is closed; NumTokenTypes
// bounds it so that tables can be indexed by kind.
type TokenType uint8

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string   // The actual text of the token (lexeme)
	Pos     Position // Where the lexeme starts
	End     int      // 0-based byte offset after the token ends
}

// --- Token Types ---
const (
	// Special
	ILLEGAL TokenType = iota // Unknown character or unterminated literal
	EOF                      // End of input
	COMMENT                  // // to end of line

	// Identifiers + Literals
	IDENT  // foo, bar
	INT    // 1343456
	FLOAT  // 123.456
	STRING // "foo", 'bar'

	// Operators
	ASSIGN      // =
	DECLARE     // :=
	PLUS        // +
	MINUS       // -
	BANG        // !
	ASTERISK    // *
	EXPONENT    // **
	SLASH       // /
	REM         // %
	LT          // <
	GT          // >
	LTE         // <=
	GTE         // >=
	EQ          // ==
	NOT_EQ      // !=
	INCREMENT   // ++
	DECREMENT   // --
	RANGE       // ..
	RANGE_INCL  // ...
	LAND        // && and
	LOR         // || or
	BIT_AND     // &
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_NOT     // ~
	BIT_LSHIFT  // <<
	BIT_RSHIFT  // >>
	BIT_ZRSHIFT // >>>

	// Delimiters
	COMMA     // ,
	PERIOD    // .
	COLON     // :
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	AT        // @

	// Keywords
	FUNCTION
	VAR
	CONST
	TRUE
	FALSE
	NULL
	IF
	ELSE
	RETURN
	WHILE
	FOR
	SWITCH
	CASE
	DEFAULT
	ENUM
	CLASS
	IMPORT
	AS
	TYPE
	MODEL

	NumTokenTypes
)

var tokenNames = [NumTokenTypes]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",

	ASSIGN:      "=",
	DECLARE:     ":=",
	PLUS:        "+",
	MINUS:       "-",
	BANG:        "!",
	ASTERISK:    "*",
	EXPONENT:    "**",
	SLASH:       "/",
	REM:         "%",
	LT:          "<",
	GT:          ">",
	LTE:         "<=",
	GTE:         ">=",
	EQ:          "==",
	NOT_EQ:      "!=",
	INCREMENT:   "++",
	DECREMENT:   "--",
	RANGE:       "..",
	RANGE_INCL:  "...",
	LAND:        "AND",
	LOR:         "OR",
	BIT_AND:     "&",
	BIT_OR:      "|",
	BIT_XOR:     "^",
	BIT_NOT:     "~",
	BIT_LSHIFT:  "<<",
	BIT_RSHIFT:  ">>",
	BIT_ZRSHIFT: ">>>",

	COMMA:     ",",
	PERIOD:    ".",
	COLON:     ":",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	AT:        "@",

	FUNCTION: "FUNCTION",
	VAR:      "VAR",
	CONST:    "CONST",
	TRUE:     "TRUE",
	FALSE:    "FALSE",
	NULL:     "NULL",
	IF:       "IF",
	ELSE:     "ELSE",
	RETURN:   "RETURN",
	WHILE:    "WHILE",
	FOR:      "FOR",
	SWITCH:   "SWITCH",
	CASE:     "CASE",
	DEFAULT:  "DEFAULT",
	ENUM:     "ENUM",
	CLASS:    "CLASS",
	IMPORT:   "IMPORT",
	AS:       "AS",
	TYPE:     "TYPE",
	MODEL:    "MODEL",
}

// String returns the display name used in diagnostics: the operator text for
// operators and delimiters, an upper-case name for everything else.
func (t TokenType) String() string {
	if t < NumTokenTypes {
		return tokenNames[t]
	}
	return "UNKNOWN"
}

// IsKeyword reports whether t is produced by a reserved word.
func (t TokenType) IsKeyword() bool {
	return t >= FUNCTION && t < NumTokenTypes
}

var keywords = map[string]TokenType{
	"function": FUNCTION,
	"var":      VAR,
	"const":    CONST,
	"true":     TRUE,
	"false":    FALSE,
	"null":     NULL,
	"if":       IF,
	"else":     ELSE,
	"return":   RETURN,
	"while":    WHILE,
	"for":      FOR,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"enum":     ENUM,
	"class":    CLASS,
	"import":   IMPORT,
	"as":       AS,
	"type":     TYPE,
	"model":    MODEL,
	"and":      LAND,
	"or":       LOR,
}

// LookupIdent checks the keywords table for an identifier.
// The lookup is case-sensitive.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}
