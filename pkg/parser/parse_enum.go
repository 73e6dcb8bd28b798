package parser

import (
	"dolang/pkg/lexer"
)

// parseEnumLiteral parses an enum declaration
// Syntax: enum Name { Member1, Member2 = value, Member3 }
func (p *Parser) parseEnumLiteral() Expression {
	enum := &EnumLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	enum.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	enum.Elements = []*EnumElement{}

	// Parse enum members
	p.skipPeekComments()
	if !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken() // Move to first member

		for {
			element := p.parseEnumElement()
			if element == nil {
				return nil
			}
			enum.Elements = append(enum.Elements, element)

			p.skipPeekComments()
			if p.peekTokenIs(lexer.RBRACE) {
				break
			}

			if !p.expectPeek(lexer.COMMA) {
				return nil
			}

			// Handle trailing comma
			p.skipPeekComments()
			if p.peekTokenIs(lexer.RBRACE) {
				break
			}

			p.nextToken() // Move to next member
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return enum
}

// parseEnumElement parses a single enum member
// Syntax: MemberName [= value]
// Without a value the member is valued by its own name.
func (p *Parser) parseEnumElement() *EnumElement {
	if !p.curTokenIs(lexer.IDENT) {
		p.addError(p.curToken, "expected enum member name, got "+p.curToken.Type.String())
		return nil
	}

	name := &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	element := &EnumElement{Token: p.curToken, Name: name, Value: name}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken() // consume '='
		p.nextToken() // move to value expression

		if element.Value = p.parseExpression(LOWEST); element.Value == nil {
			return nil
		}
	}
	return element
}
