package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"dolang/pkg/source"
)

// Lexer holds the state of the scanner.
type Lexer struct {
	input        string
	source       *source.SourceFile
	position     int  // current position in input (points to current char's byte offset)
	readPosition int  // current reading position in input (byte offset after current char)
	ch           byte // current char under examination
	line         int  // current 1-based line number
	column       int  // current 1-based column number (rune index on l.line)
}

// NewLexer creates a new Lexer over an in-memory string.
func NewLexer(input string) *Lexer {
	return NewLexerFromSource(source.NewEvalSource(input))
}

// NewLexerFromSource creates a new Lexer reading the content of sf.
func NewLexerFromSource(sf *source.SourceFile) *Lexer {
	l := &Lexer{input: sf.Content, source: sf, line: 1}
	l.readChar()
	return l
}

// GetSource returns the source file the lexer reads from.
func (l *Lexer) GetSource() *source.SourceFile {
	return l.source
}

// readChar gives us the next character and advances our position in the input string.
// It also updates the line and column count. UTF-8 continuation bytes do not
// advance the column, so columns count runes.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	if l.ch&0xC0 != 0x80 {
		l.column++
	}
}

// peekChar looks ahead in the input without consuming the character.
func (l *Lexer) peekChar() byte {
	return l.peekCharAt(0)
}

// peekCharAt looks n characters past peekChar.
func (l *Lexer) peekCharAt(n int) byte {
	if l.readPosition+n >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition+n]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// skipWhitespace consumes whitespace characters (space, tab, newline, carriage return).
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token. Once the input is
// exhausted every call returns the same EOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos()

	if l.atEOF() {
		return Token{Type: EOF, Literal: "", Pos: start, End: start.Offset}
	}

	switch l.ch {
	case '=':
		return l.either('=', EQ, ASSIGN, start)
	case '!':
		return l.either('=', NOT_EQ, BANG, start)
	case '+':
		return l.either('+', INCREMENT, PLUS, start)
	case '-':
		return l.either('-', DECREMENT, MINUS, start)
	case '*':
		return l.either('*', EXPONENT, ASTERISK, start)
	case '&':
		return l.either('&', LAND, BIT_AND, start)
	case '|':
		return l.either('|', LOR, BIT_OR, start)
	case ':':
		return l.either('=', DECLARE, COLON, start)
	case '<':
		switch l.peekChar() {
		case '=':
			return l.lexeme(LTE, 2, start)
		case '<':
			return l.lexeme(BIT_LSHIFT, 2, start)
		}
		return l.lexeme(LT, 1, start)
	case '>':
		switch {
		case l.peekChar() == '=':
			return l.lexeme(GTE, 2, start)
		case l.peekChar() == '>' && l.peekCharAt(1) == '>':
			return l.lexeme(BIT_ZRSHIFT, 3, start)
		case l.peekChar() == '>':
			return l.lexeme(BIT_RSHIFT, 2, start)
		}
		return l.lexeme(GT, 1, start)
	case '.':
		if l.peekChar() == '.' {
			if l.peekCharAt(1) == '.' {
				return l.lexeme(RANGE_INCL, 3, start)
			}
			return l.lexeme(RANGE, 2, start)
		}
		return l.lexeme(PERIOD, 1, start)
	case '/':
		if l.peekChar() == '/' {
			literal := l.readComment()
			return Token{Type: COMMENT, Literal: literal, Pos: start, End: l.position}
		}
		return l.lexeme(SLASH, 1, start)
	case '%':
		return l.lexeme(REM, 1, start)
	case '^':
		return l.lexeme(BIT_XOR, 1, start)
	case '~':
		return l.lexeme(BIT_NOT, 1, start)
	case ',':
		return l.lexeme(COMMA, 1, start)
	case ';':
		return l.lexeme(SEMICOLON, 1, start)
	case '(':
		return l.lexeme(LPAREN, 1, start)
	case ')':
		return l.lexeme(RPAREN, 1, start)
	case '{':
		return l.lexeme(LBRACE, 1, start)
	case '}':
		return l.lexeme(RBRACE, 1, start)
	case '[':
		return l.lexeme(LBRACKET, 1, start)
	case ']':
		return l.lexeme(RBRACKET, 1, start)
	case '@':
		return l.lexeme(AT, 1, start)
	case '"', '\'':
		literal, ok := l.readString(l.ch)
		if !ok {
			// Keep the raw text, opening quote included, for the diagnostic.
			return Token{Type: ILLEGAL, Literal: l.input[start.Offset:l.position], Pos: start, End: l.position}
		}
		return Token{Type: STRING, Literal: literal, Pos: start, End: l.position}
	}

	if l.isIdentStart() {
		literal := l.readIdentifier()
		return Token{Type: LookupIdent(literal), Literal: literal, Pos: start, End: l.position}
	}
	if isDigit(l.ch) {
		literal, tokType := l.readNumber()
		return Token{Type: tokType, Literal: literal, Pos: start, End: l.position}
	}

	// Illegal character; consume the whole rune so the literal is printable.
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	return l.lexeme(ILLEGAL, size, start)
}

// Tokenize returns every token of the input, ending with EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// lexeme consumes n bytes starting at the current char as one token.
func (l *Lexer) lexeme(t TokenType, n int, start Position) Token {
	for i := 0; i < n; i++ {
		l.readChar()
	}
	return Token{Type: t, Literal: l.input[start.Offset:l.position], Pos: start, End: l.position}
}

// either produces the two-character token when the next char is next and
// the single-character one otherwise.
func (l *Lexer) either(next byte, double, single TokenType, start Position) Token {
	if l.peekChar() == next {
		return l.lexeme(double, 2, start)
	}
	return l.lexeme(single, 1, start)
}

func (l *Lexer) isIdentStart() bool {
	if isLetter(l.ch) {
		return true
	}
	if l.ch < utf8.RuneSelf {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.position:])
	return unicode.IsLetter(r)
}

// readIdentifier reads a maximal run of letters, digits and underscores.
func (l *Lexer) readIdentifier() string {
	startPos := l.position
	for !l.atEOF() {
		if isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
			continue
		}
		if l.ch < utf8.RuneSelf {
			break
		}
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		for i := 0; i < size; i++ {
			l.readChar()
		}
	}
	return l.input[startPos:l.position]
}

// readNumber reads an integer, or a float when a single '.' is followed by a
// digit. "1..5" therefore lexes as INT RANGE INT.
func (l *Lexer) readNumber() (string, TokenType) {
	startPos := l.position
	tokType := INT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tokType = FLOAT
		l.readChar() // Consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[startPos:l.position], tokType
}

// readString reads a string literal enclosed in the given quote character.
// It handles the escape sequences \n, \t, \r, \\ and escaped quotes; any other
// escaped character is kept as written.
// The boolean is false when the string is not closed before end of line or
// end of input; the returned literal then holds what was read so far.
func (l *Lexer) readString(quote byte) (string, bool) {
	var builder strings.Builder
	l.readChar() // Consume the opening quote

	for {
		switch {
		case l.ch == quote:
			l.readChar() // Consume the closing quote
			return builder.String(), true
		case l.atEOF(), l.ch == '\n':
			return builder.String(), false
		case l.ch == '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			case 'r':
				builder.WriteByte('\r')
			case '\\', '"', '\'':
				builder.WriteByte(l.ch)
			default:
				if l.atEOF() || l.ch == '\n' {
					return builder.String(), false
				}
				builder.WriteByte('\\')
				builder.WriteByte(l.ch)
			}
		default:
			builder.WriteByte(l.ch)
		}
		l.readChar()
	}
}

// readComment reads from "//" to the end of the line, excluding the newline.
func (l *Lexer) readComment() string {
	startPos := l.position
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
	return strings.TrimRight(l.input[startPos:l.position], "\r")
}

// isLetter checks if the character is an ASCII letter or underscore.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
