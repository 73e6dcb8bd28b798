package parser

import (
	"dolang/pkg/lexer"
)

// --- Statement Parsing ---

func (p *Parser) parseStatement() Statement {
	debugPrint("parseStatement: cur='%s' (%s), peek='%s' (%s)", p.curToken.Literal, p.curToken.Type, p.peekToken.Literal, p.peekToken.Type)
	switch p.curToken.Type {
	case lexer.SEMICOLON:
		return nil // Empty statement
	case lexer.VAR:
		if stmt := p.parseVarStatement(); stmt != nil {
			return stmt
		}
		return nil
	case lexer.CONST:
		return p.parseConstStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.TYPE:
		return p.parseTypeDeclaration()
	case lexer.MODEL:
		return p.parseModelDeclaration()
	case lexer.AT:
		return p.parseAnnotation()
	case lexer.FUNCTION:
		if p.peekTokenIs(lexer.IDENT) {
			return p.parseFunctionDeclaration()
		}
	case lexer.IMPORT:
		return p.parseImportStatement()
	}
	return p.parseExpressionStatement()
}

// parseVarStatement parses 'var <name>[<index>]? = <value>;?'.
func (p *Parser) parseVarStatement() *VarStatement {
	stmt := &VarStatement{Token: p.curToken}
	var ok bool
	if stmt.Name, stmt.Index, stmt.Value, ok = p.parseBinding(); !ok {
		return nil
	}
	return stmt
}

func (p *Parser) parseConstStatement() Statement {
	stmt := &ConstStatement{Token: p.curToken}
	var ok bool
	if stmt.Name, stmt.Index, stmt.Value, ok = p.parseBinding(); !ok {
		return nil
	}
	return stmt
}

// parseBinding parses what follows the var/const keyword. The optional
// trailing ';' is consumed.
func (p *Parser) parseBinding() (*Identifier, *IndexExpression, Expression, bool) {
	if !p.expectPeek(lexer.IDENT) {
		return nil, nil, nil, false
	}
	name := &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	var index *IndexExpression
	if p.peekTokenIs(lexer.LBRACKET) {
		p.nextToken()
		if index = p.parseSubscript(name); index == nil {
			return nil, nil, nil, false
		}
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil, nil, nil, false
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil, nil, nil, false
	}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return name, index, value, true
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}

	switch {
	case p.peekTokenIs(lexer.SEMICOLON):
		p.nextToken()
		return stmt
	case p.peekTokenIs(lexer.RBRACE), p.peekTokenIs(lexer.EOF):
		return stmt
	}

	p.nextToken() // Consume 'return'
	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	// Optional semicolon - consume if next
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseWhileStatement parses 'while (<cond>) { <body> }'.
func (p *Parser) parseWhileStatement() Statement {
	stmt := &WhileStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	if stmt.Condition = p.parseExpression(LOWEST); stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) || !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	if stmt.Body = p.parseBlockStatement(); stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForStatement parses 'for (var i = 0; i < n; var i = i + 1) { ... }'.
// The init and step slots only accept var bindings.
func (p *Parser) parseForStatement() Statement {
	stmt := &ForStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) || !p.expectPeek(lexer.VAR) {
		return nil
	}
	if stmt.Init = p.parseVarStatement(); stmt.Init == nil {
		return nil
	}
	if !p.curTokenIs(lexer.SEMICOLON) {
		p.peekError(lexer.SEMICOLON)
		return nil
	}

	p.nextToken()
	check := &ExpressionStatement{Token: p.curToken}
	if check.Expression = p.parseExpression(LOWEST); check.Expression == nil {
		return nil
	}
	stmt.Condition = check
	if !p.expectPeek(lexer.SEMICOLON) || !p.expectPeek(lexer.VAR) {
		return nil
	}

	if stmt.Iterate = p.parseVarStatement(); stmt.Iterate == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) || !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	if stmt.Body = p.parseBlockStatement(); stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseFunctionDeclaration parses 'function <name>(...) { ... }' in
// statement position.
func (p *Parser) parseFunctionDeclaration() Statement {
	tok := p.curToken
	fn, ok := p.parseFunctionLiteral().(*FunctionLiteral)
	if !ok {
		return nil
	}
	return &FunctionDeclaration{Token: tok, Function: fn}
}

// parseTypeDeclaration parses 'type <Name> := <member> | <member> ... ;'.
func (p *Parser) parseTypeDeclaration() Statement {
	stmt := &TypeDeclaration{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.DECLARE) {
		return nil
	}

	for {
		p.nextToken()
		member := p.parseTypeMember()
		if member == nil {
			return nil
		}
		stmt.Members = append(stmt.Members, member)
		if !p.peekTokenIs(lexer.BIT_OR) {
			break
		}
		p.nextToken() // Consume the member, cur is '|'
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseTypeMember parses one member of a type union or the type of a
// model member: an identifier or a literal.
func (p *Parser) parseTypeMember() Expression {
	switch p.curToken.Type {
	case lexer.IDENT:
		return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.INT:
		return p.parseIntegerValue()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBooleanLiteral()
	case lexer.NULL:
		return p.parseNullLiteral()
	case lexer.ILLEGAL:
		return nil
	}
	p.addError(p.curToken, "expected a type name or literal, got "+p.curToken.Type.String())
	return nil
}

// parseModelDeclaration parses 'model <Name> { <member> <type> ... }'.
// Members may be separated by ';' or ',' or just whitespace.
func (p *Parser) parseModelDeclaration() Statement {
	stmt := &ModelDeclaration{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	open := p.curToken
	stmt.Members = []*ModelMember{}

	for {
		p.skipPeekComments()
		for p.peekTokenIs(lexer.SEMICOLON) || p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.skipPeekComments()
		}
		if p.peekTokenIs(lexer.RBRACE) {
			p.nextToken()
			return stmt
		}
		if p.peekTokenIs(lexer.EOF) {
			p.nextToken()
			p.unterminated("model", open)
			return nil
		}
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		member := &ModelMember{Token: p.curToken}
		member.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

		p.nextToken()
		if member.Type = p.parseTypeMember(); member.Type == nil {
			return nil
		}
		stmt.Members = append(stmt.Members, member)
	}
}

// parseAnnotation parses '@Name' or '@Name(value)'.
func (p *Parser) parseAnnotation() Statement {
	stmt := &Annotation{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.peekTokenIs(lexer.LPAREN) {
		return stmt
	}
	p.nextToken() // Consume the name, cur is '('
	p.nextToken()

	if stmt.Value = p.parseExpression(LOWEST); stmt.Value == nil {
		return nil
	}

	if p.opts.LenientAnnotations {
		p.nextToken()
		return stmt
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return stmt
}

// parseImportStatement parses import("path") [as name] as a statement.
func (p *Parser) parseImportStatement() Statement {
	spec, ok := p.parseImportExpression().(*ImportSpec)
	if !ok {
		return nil
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return spec
}
