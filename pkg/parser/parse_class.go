package parser

import (
	"fmt"

	"dolang/pkg/lexer"
)

// parseClassLiteral parses a class declaration
// Syntax: class ClassName { method() { ... } function other(a) { ... } }
func (p *Parser) parseClassLiteral() Expression {
	class := &ClassLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	class.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	open := p.curToken
	class.Methods = []*FunctionLiteral{}

	for {
		// Skip semicolons and comments between members
		p.skipPeekComments()
		for p.peekTokenIs(lexer.SEMICOLON) {
			p.nextToken()
			p.skipPeekComments()
		}

		switch {
		case p.peekTokenIs(lexer.RBRACE):
			p.nextToken()
			// parseClassLiteral leaves us at the '}' token, the caller advances past it
			return class
		case p.peekTokenIs(lexer.EOF):
			p.nextToken()
			p.unterminated("class body", open)
			return nil
		}

		method := p.parseClassMethod()
		if method == nil {
			return nil
		}
		class.Methods = append(class.Methods, method)
	}
}

// parseClassMethod parses 'name(params) { body }' or
// 'function name(params) { body }' starting at the lookahead.
func (p *Parser) parseClassMethod() *FunctionLiteral {
	p.nextToken()
	method := &FunctionLiteral{Token: p.curToken}

	if p.curTokenIs(lexer.FUNCTION) {
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
	} else if !p.curTokenIs(lexer.IDENT) {
		msg := fmt.Sprintf("expected method name inside class body, got %s instead", p.curToken.Type)
		p.addError(p.curToken, msg)
		return nil
	}
	method.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	if !p.parseFunctionRest(method) {
		return nil
	}
	return method
}
