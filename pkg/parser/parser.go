package parser

import (
	"fmt"

	"dolang/pkg/errors"
	"dolang/pkg/lexer"
	"dolang/pkg/source"
)

// --- Debug Flag ---
const debugParser = false

func debugPrint(format string, args ...interface{}) {
	if debugParser {
		fmt.Printf("[Parser Debug] "+format+"\n", args...)
	}
}

// --- End Debug Flag ---

// Options tune a Parser. The zero value gives the default behaviour.
type Options struct {
	// MaxErrors caps the number of diagnostics; 0 means errors.DefaultMaxErrors.
	MaxErrors int
	// Strict stops parsing at the first internal error.
	Strict bool
	// LenientAnnotations skips the token after an annotation value instead
	// of requiring ')'.
	LenientAnnotations bool
}

// Parser takes a lexer and builds an AST.
type Parser struct {
	l      *lexer.Lexer
	source *source.SourceFile // cached from lexer
	opts   Options
	errors *errors.List

	curToken  lexer.Token
	peekToken lexer.Token

	comments []*Comment

	// Delimiters opened by the tokens consumed so far, innermost last. A
	// for header's '(' is recorded as FOR.
	nesting []lexer.TokenType
	// Nesting depth the current token sits at.
	curLevel int

	// Offset of a '}' that an expression ran into without owning it, or -1.
	strayClose int
	halted     bool
}

// Parsing functions types for Pratt parser
type (
	prefixParseFn func(*Parser) Expression
	infixParseFn  func(*Parser, Expression) Expression // Second arg is the left side expression
)

// Precedence levels
const (
	_ int = iota
	LOWEST
	LOGICAL     // || or && and
	EQUALS      // == !=
	LESSGREATER // > < >= <=
	SUM         // + -
	PRODUCT     // * / % **
	PREFIX      // -X !X ~X
	BITWISE     // & | ^ << >> >>> .. ...
	CALL        // myFunction(X)
	INDEX       // array[index]
)

var precedences = [lexer.NumTokenTypes]int{
	lexer.LOR:         LOGICAL,
	lexer.LAND:        LOGICAL,
	lexer.EQ:          EQUALS,
	lexer.NOT_EQ:      EQUALS,
	lexer.LT:          LESSGREATER,
	lexer.GT:          LESSGREATER,
	lexer.LTE:         LESSGREATER,
	lexer.GTE:         LESSGREATER,
	lexer.PLUS:        SUM,
	lexer.MINUS:       SUM,
	lexer.ASTERISK:    PRODUCT,
	lexer.SLASH:       PRODUCT,
	lexer.REM:         PRODUCT,
	lexer.EXPONENT:    PRODUCT,
	lexer.BIT_AND:     BITWISE,
	lexer.BIT_OR:      BITWISE,
	lexer.BIT_XOR:     BITWISE,
	lexer.BIT_LSHIFT:  BITWISE,
	lexer.BIT_RSHIFT:  BITWISE,
	lexer.BIT_ZRSHIFT: BITWISE,
	lexer.RANGE:       BITWISE,
	lexer.RANGE_INCL:  BITWISE,
	lexer.LPAREN:      CALL,
	lexer.LBRACKET:    INDEX,
}

// Dispatch tables, indexed by token type. They are filled once by init and
// only read afterwards, so parsers running in parallel share them safely.
var (
	prefixParseFns [lexer.NumTokenTypes]prefixParseFn
	infixParseFns  [lexer.NumTokenTypes]infixParseFn
)

func init() {
	registerPrefix((*Parser).parseIdentifier, lexer.IDENT)
	registerPrefix((*Parser).parseIntegerLiteral, lexer.INT)
	registerPrefix((*Parser).parseFloatLiteral, lexer.FLOAT)
	registerPrefix((*Parser).parseStringLiteral, lexer.STRING)
	registerPrefix((*Parser).parseBooleanLiteral, lexer.TRUE, lexer.FALSE)
	registerPrefix((*Parser).parseNullLiteral, lexer.NULL)
	registerPrefix((*Parser).parseComment, lexer.COMMENT)
	registerPrefix((*Parser).parsePrefixExpression, lexer.BANG, lexer.MINUS, lexer.BIT_NOT)
	registerPrefix((*Parser).parsePreIncrement, lexer.INCREMENT, lexer.DECREMENT)
	registerPrefix((*Parser).parseGroupedExpression, lexer.LPAREN)
	registerPrefix((*Parser).parseIfExpression, lexer.IF)
	registerPrefix((*Parser).parseFunctionLiteral, lexer.FUNCTION)
	registerPrefix((*Parser).parseArrayLiteral, lexer.LBRACKET)
	registerPrefix((*Parser).parseHashLiteral, lexer.LBRACE)
	registerPrefix((*Parser).parseSwitchExpression, lexer.SWITCH)
	registerPrefix((*Parser).parseEnumLiteral, lexer.ENUM)
	registerPrefix((*Parser).parseClassLiteral, lexer.CLASS)
	registerPrefix((*Parser).parseImportExpression, lexer.IMPORT)

	registerInfix((*Parser).parseInfixExpression,
		lexer.PLUS, lexer.MINUS, lexer.ASTERISK, lexer.SLASH, lexer.REM, lexer.EXPONENT,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE,
		lexer.LAND, lexer.LOR,
		lexer.BIT_AND, lexer.BIT_OR, lexer.BIT_XOR,
		lexer.BIT_LSHIFT, lexer.BIT_RSHIFT, lexer.BIT_ZRSHIFT,
		lexer.RANGE, lexer.RANGE_INCL)
	registerInfix((*Parser).parseCallExpression, lexer.LPAREN)
	registerInfix((*Parser).parseIndexExpression, lexer.LBRACKET)
}

func registerPrefix(fn prefixParseFn, types ...lexer.TokenType) {
	for _, t := range types {
		prefixParseFns[t] = fn
	}
}

func registerInfix(fn infixParseFn, types ...lexer.TokenType) {
	for _, t := range types {
		infixParseFns[t] = fn
	}
}

// NewParser creates a parser with default options.
func NewParser(l *lexer.Lexer) *Parser {
	return NewParserWithOptions(l, Options{})
}

// NewParserWithOptions creates a parser reading tokens from l.
func NewParserWithOptions(l *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		l:          l,
		source:     l.GetSource(),
		opts:       opts,
		errors:     errors.NewList(opts.MaxErrors),
		strayClose: -1,
	}

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the diagnostics collected so far.
func (p *Parser) Errors() []errors.DoError {
	return p.errors.Errors()
}

// Comments returns every comment seen so far, in source order.
func (p *Parser) Comments() []*Comment {
	return p.comments
}

// Source returns the source file being parsed.
func (p *Parser) Source() *source.SourceFile {
	return p.source
}

// nextToken advances the current and peek tokens.
func (p *Parser) nextToken() {
	prev := p.curToken.Type
	p.curToken = p.peekToken
	p.track(prev)
	p.peekToken = p.l.NextToken()
	p.notePeek()
	debugPrint("nextToken(): cur='%s' (%s), peek='%s' (%s)", p.curToken.Literal, p.curToken.Type, p.peekToken.Literal, p.peekToken.Type)
}

// track updates the delimiter nesting for the new current token. An opening
// or closing delimiter sits at the depth outside the pair it belongs to.
func (p *Parser) track(prev lexer.TokenType) {
	switch t := p.curToken.Type; t {
	case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
		p.curLevel = len(p.nesting)
		if t == lexer.LPAREN && prev == lexer.FOR {
			t = lexer.FOR
		}
		p.nesting = append(p.nesting, t)
	case lexer.RPAREN, lexer.RBRACKET:
		if n := len(p.nesting); n > 0 && p.nesting[n-1] != lexer.LBRACE {
			p.nesting = p.nesting[:n-1]
		}
		p.curLevel = len(p.nesting)
	case lexer.RBRACE:
		// Parentheses still open inside the block are dropped with it
		if i := p.openBrace(); i >= 0 {
			p.nesting = p.nesting[:i]
		}
		p.curLevel = len(p.nesting)
	case lexer.SEMICOLON:
		// Only a for header keeps a '(' open across ';'
		for n := len(p.nesting); n > 0 && (p.nesting[n-1] == lexer.LPAREN || p.nesting[n-1] == lexer.LBRACKET); n = len(p.nesting) {
			p.nesting = p.nesting[:n-1]
		}
		p.curLevel = len(p.nesting)
	default:
		p.curLevel = len(p.nesting)
	}
}

// openBrace returns the index of the innermost open '{', or -1.
func (p *Parser) openBrace() int {
	for i := len(p.nesting) - 1; i >= 0; i-- {
		if p.nesting[i] == lexer.LBRACE {
			return i
		}
	}
	return -1
}

// notePeek runs once for every token as it becomes the lookahead.
func (p *Parser) notePeek() {
	switch p.peekToken.Type {
	case lexer.COMMENT:
		p.comments = append(p.comments, newComment(p.peekToken))
	case lexer.ILLEGAL:
		p.illegalTokenError(p.peekToken)
	}
}

// skipPeekComments drops comment tokens sitting in the lookahead. Used where
// the grammar requires a specific token next.
func (p *Parser) skipPeekComments() {
	for p.peekToken.Type == lexer.COMMENT {
		p.peekToken = p.l.NextToken()
		p.notePeek()
	}
}

// ParseProgram parses the entire input and returns the root Program node and any errors.
func (p *Parser) ParseProgram() (*Program, []errors.DoError) {
	program := &Program{Statements: []Statement{}}

	for !p.curTokenIs(lexer.EOF) && !p.stopped() {
		before := p.errors.Len()
		if stmt := p.parseStatementRecovering(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		// Nothing encloses a top-level statement, so a '}' left after a
		// failure closes the construct that failed.
		if p.errors.Len() > before && !p.curTokenIs(lexer.RBRACE) && p.peekTokenIs(lexer.RBRACE) {
			p.nextToken()
		}
		p.nextToken()
	}

	return program, p.errors.Errors()
}

// parseStatementRecovering parses one statement and, if it reported errors,
// skips ahead to a point where the next statement can start.
func (p *Parser) parseStatementRecovering() Statement {
	level := p.curLevel
	before := p.errors.Len()
	stmt := p.parseStatement()
	if p.errors.Len() > before {
		p.synchronize(level)
	}
	return stmt
}

// synchronize advances until the current token ends the statement that
// started at nesting depth level, or the lookahead can start a new one at
// that depth. Delimited groups the failed statement opened are skipped
// whole; a '}' closing an enclosing block is left for its owner.
func (p *Parser) synchronize(level int) {
	for !p.curTokenIs(lexer.EOF) && !p.peekTokenIs(lexer.EOF) {
		if (p.curTokenIs(lexer.SEMICOLON) || p.curTokenIs(lexer.RBRACE)) && p.curLevel <= level {
			return
		}
		if p.peekTokenIs(lexer.RBRACE) && p.openBrace() < level {
			return
		}
		if len(p.nesting) == level && isRecoveryPoint(p.peekToken.Type) {
			return
		}
		p.nextToken()
	}
}

// isRecoveryPoint reports whether t can only start a new statement or a
// switch clause.
func isRecoveryPoint(t lexer.TokenType) bool {
	switch t {
	case lexer.VAR, lexer.CONST, lexer.RETURN, lexer.TYPE, lexer.MODEL, lexer.AT,
		lexer.WHILE, lexer.FOR, lexer.FUNCTION, lexer.IF, lexer.SWITCH,
		lexer.ENUM, lexer.CLASS, lexer.IMPORT,
		lexer.CASE, lexer.DEFAULT:
		return true
	}
	return false
}

// --- Expression Parsing (Pratt Parser) ---

func (p *Parser) parseExpression(precedence int) Expression {
	debugPrint("parseExpression(prec=%d): cur='%s' (%s)", precedence, p.curToken.Literal, p.curToken.Type)
	prefix := prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix(p)
	if leftExp == nil {
		debugPrint("parseExpression(prec=%d): prefix function for '%s' returned nil", precedence, p.curToken.Literal)
		return nil // Prefix parsing failed, propagate nil
	}

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()

		leftExp = infix(p, leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// parseExpressionList parses a comma separated list of expressions closed by
// end. The current token is the opening delimiter.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	p.skipPeekComments()
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	list = append(list, expr)

	for p.skipPeekComments(); p.peekTokenIs(lexer.COMMA); p.skipPeekComments() {
		p.nextToken()
		p.skipPeekComments()
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseBlockStatement parses '{ ... }' and leaves the current token on the '}'.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken, Statements: []Statement{}} // The '{' token

	p.nextToken() // Consume '{'

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) && !p.stopped() {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.atStrayClose() {
			break
		}
		p.nextToken()
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.unterminated("block", block.Token)
		return nil
	}

	return block
}

// --- Helper Methods ---

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek checks the type of the next token and advances if it matches.
// If it doesn't match, it adds an error.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if t != lexer.COMMENT {
		p.skipPeekComments()
	}
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec := precedences[p.peekToken.Type]; prec > 0 {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec := precedences[p.curToken.Type]; prec > 0 {
		return prec
	}
	return LOWEST
}

// atStrayClose reports, once, whether the current '}' was reached by an
// expression that failed on it, so the enclosing construct may claim it.
func (p *Parser) atStrayClose() bool {
	if p.curTokenIs(lexer.RBRACE) && p.curToken.Pos.Offset == p.strayClose {
		p.strayClose = -1
		return true
	}
	return false
}

func (p *Parser) stopped() bool {
	return p.halted || p.errors.Full()
}

// --- Errors ---

func (p *Parser) addError(tok lexer.Token, msg string) {
	debugPrint("addError at %s: %s", tok.Pos, msg)
	p.errors.Syntax(tok.Pos, msg)
}

func (p *Parser) peekError(t lexer.TokenType) {
	if p.peekTokenIs(lexer.ILLEGAL) {
		return // Already reported as a lexical error
	}
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	p.addError(p.peekToken, msg)
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	switch t {
	case lexer.ILLEGAL:
		return // Already reported as a lexical error
	case lexer.RBRACE:
		p.strayClose = p.curToken.Pos.Offset
	}
	p.addError(p.curToken, fmt.Sprintf("no prefix parse function for %s found", t))
}

func (p *Parser) illegalTokenError(tok lexer.Token) {
	msg := "illegal token " + tok.Literal
	if tok.Literal != "" && (tok.Literal[0] == '"' || tok.Literal[0] == '\'') {
		msg = "unterminated string " + tok.Literal
	}
	p.errors.Add(&errors.LexicalError{Position: tok.Pos, Msg: msg})
}

// unterminated records running out of input inside the construct that
// opened with open. It does nothing unless end of input was actually hit.
func (p *Parser) unterminated(what string, open lexer.Token) {
	if !p.curTokenIs(lexer.EOF) || p.halted {
		return
	}
	p.errors.Add(&errors.InternalError{
		Position: p.curToken.Pos,
		Msg:      fmt.Sprintf("unexpected end of input: %s opened at %s is not closed", what, open.Pos),
	})
	if p.opts.Strict {
		p.halted = true
	}
}
