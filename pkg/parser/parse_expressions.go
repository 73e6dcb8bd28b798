package parser

import (
	"fmt"
	"strconv"
	"strings"

	"dolang/pkg/lexer"
)

// -- Prefix Parse Functions --

// parseIdentifier handles a bare identifier and the postfix forms i++ / i--.
func (p *Parser) parseIdentifier() Expression {
	ident := &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	switch {
	case p.peekTokenIs(lexer.INCREMENT):
		p.nextToken()
		return &IncrementExpression{Token: ident.Token, Name: ident}
	case p.peekTokenIs(lexer.DECREMENT):
		p.nextToken()
		return &DecrementExpression{Token: ident.Token, Name: ident}
	}
	return ident
}

// parsePreIncrement handles ++i and --i.
func (p *Parser) parsePreIncrement() Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	ident := &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if tok.Type == lexer.INCREMENT {
		return &IncrementExpression{Token: tok, Name: ident, Prefix: true}
	}
	return &DecrementExpression{Token: tok, Name: ident, Prefix: true}
}

// parseIntegerLiteral handles an integer and folds '<int>..<int>' and
// '<int>...<int>' into a RangeLiteral.
func (p *Parser) parseIntegerLiteral() Expression {
	left := p.parseIntegerValue()
	if left == nil {
		return nil
	}
	if !p.peekTokenIs(lexer.RANGE) && !p.peekTokenIs(lexer.RANGE_INCL) {
		return left
	}

	p.nextToken()
	rng := &RangeLiteral{Token: p.curToken, Left: left, Inclusive: p.curTokenIs(lexer.RANGE_INCL)}
	if !p.expectPeek(lexer.INT) {
		return nil
	}
	if rng.Right = p.parseIntegerValue(); rng.Right == nil {
		return nil
	}
	return rng
}

func (p *Parser) parseIntegerValue() *IntegerLiteral {
	lit := &IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError(p.curToken, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() Expression {
	lit := &FloatLiteral{Token: p.curToken}

	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError(p.curToken, fmt.Sprintf("could not parse %q as float", p.curToken.Literal))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNullLiteral() Expression {
	return &NullLiteral{Token: p.curToken}
}

func (p *Parser) parseComment() Expression {
	return newComment(p.curToken)
}

func newComment(tok lexer.Token) *Comment {
	return &Comment{Token: tok, Value: strings.TrimPrefix(tok.Literal, "//")}
}

// parsePrefixExpression handles expressions like !expr, -expr and ~expr.
func (p *Parser) parsePrefixExpression() Expression {
	expression := &PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.skipPeekComments()
	p.nextToken() // Consume the operator

	if expression.Right = p.parseExpression(PREFIX); expression.Right == nil {
		return nil
	}
	return expression
}

// parseGroupedExpression handles '( expr )'. No node is produced for the
// parentheses themselves.
func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken() // Consume '('

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

// parseIfExpression handles 'if (<cond>) { ... } else { ... }'. The else
// branch must be a block.
func (p *Parser) parseIfExpression() Expression {
	expression := &IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	if expression.Condition = p.parseExpression(LOWEST); expression.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) || !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	if expression.Consequence = p.parseBlockStatement(); expression.Consequence == nil {
		return nil
	}

	p.skipPeekComments()
	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		if expression.Alternative = p.parseBlockStatement(); expression.Alternative == nil {
			return nil
		}
	}
	return expression
}

// parseFunctionLiteral handles 'function [name](params) { body }'.
func (p *Parser) parseFunctionLiteral() Expression {
	fn := &FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		fn.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	if !p.parseFunctionRest(fn) {
		return nil
	}
	return fn
}

// parseFunctionRest parses the parameter list and body of fn. The current
// token is the '(' opening the parameters.
func (p *Parser) parseFunctionRest(fn *FunctionLiteral) bool {
	params, ok := p.parseFunctionParameters()
	if !ok {
		return false
	}
	fn.Parameters = params

	if !p.expectPeek(lexer.LBRACE) {
		return false
	}
	fn.Body = p.parseBlockStatement()
	return fn.Body != nil
}

func (p *Parser) parseFunctionParameters() ([]*Identifier, bool) {
	identifiers := []*Identifier{}

	p.skipPeekComments()
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return identifiers, true
	}

	for {
		if !p.expectPeek(lexer.IDENT) {
			return nil, false
		}
		identifiers = append(identifiers, &Identifier{Token: p.curToken, Value: p.curToken.Literal})
		if !p.peekTokenIs(lexer.COMMA) {
			break
		}
		p.nextToken() // cur is ','
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil, false
	}
	return identifiers, true
}

func (p *Parser) parseArrayLiteral() Expression {
	array := &ArrayLiteral{Token: p.curToken}
	if array.Elements = p.parseExpressionList(lexer.RBRACKET); array.Elements == nil {
		return nil
	}
	return array
}

// parseHashLiteral handles '{ key: value, ... }'. Pairs keep source order.
func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Token: p.curToken, Pairs: []HashPair{}}

	for {
		p.skipPeekComments()
		if p.peekTokenIs(lexer.RBRACE) {
			break
		}
		if p.peekTokenIs(lexer.EOF) {
			p.nextToken()
			p.unterminated("hash literal", hash.Token)
			return nil
		}

		p.nextToken()
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil
		}
		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})

		p.skipPeekComments()
		if !p.peekTokenIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return hash
}

// parseImportExpression handles 'import("path")' and 'import("path") as name'.
func (p *Parser) parseImportExpression() Expression {
	spec := &ImportSpec{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) || !p.expectPeek(lexer.STRING) {
		return nil
	}
	spec.Path = &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if p.peekTokenIs(lexer.AS) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		spec.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	return spec
}

// -- Infix Parse Functions --

// parseInfixExpression handles binary operators. Operands of equal
// precedence associate to the left.
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expression := &InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.skipPeekComments()
	p.nextToken() // Consume the operator

	if expression.Right = p.parseExpression(precedence); expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	call := &CallExpression{Token: p.curToken, Function: function}
	if call.Arguments = p.parseExpressionList(lexer.RPAREN); call.Arguments == nil {
		return nil
	}
	return call
}

// parseIndexExpression returns an untyped nil on failure; returning the
// *IndexExpression directly would make a nil pointer a non-nil Expression.
func (p *Parser) parseIndexExpression(left Expression) Expression {
	if exp := p.parseSubscript(left); exp != nil {
		return exp
	}
	return nil
}

// parseSubscript parses the bracketed part of a[i], a[:j], a[i:] or a[i:j].
// The current token is '['; on success it is left on ']'.
func (p *Parser) parseSubscript(left Expression) *IndexExpression {
	exp := &IndexExpression{Token: p.curToken, Left: left}

	if !p.peekTokenIs(lexer.COLON) && !p.peekTokenIs(lexer.RBRACKET) {
		p.nextToken()
		if exp.Index = p.parseExpression(LOWEST); exp.Index == nil {
			return nil
		}
	}

	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		exp.HasColon = true
	}

	if exp.HasColon && !p.peekTokenIs(lexer.RBRACKET) {
		p.nextToken()
		if exp.RightIndex = p.parseExpression(LOWEST); exp.RightIndex == nil {
			return nil
		}
	}

	if exp.Index == nil && !exp.HasColon {
		p.addError(p.peekToken, "expected an index or slice inside []")
		return nil
	}
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return exp
}
