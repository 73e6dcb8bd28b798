package parser

import (
	"fmt"

	"dolang/pkg/lexer"
)

// parseSwitchExpression parses 'switch (<value>) { case <expr>: ... default: ... }'.
// The current token is left on the closing '}'.
func (p *Parser) parseSwitchExpression() Expression {
	expr := &SwitchExpression{Token: p.curToken, Cases: []*CaseExpression{}} // 'switch' token

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken() // Consume '('
	if expr.Value = p.parseExpression(LOWEST); expr.Value == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) || !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	p.nextToken() // Consume '{'

	sawDefault := false
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) && !p.stopped() {
		if p.curTokenIs(lexer.COMMENT) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(lexer.CASE) && !p.curTokenIs(lexer.DEFAULT) {
			msg := fmt.Sprintf("expected 'case' or 'default' inside switch block, got %s instead", p.curToken.Type)
			p.addError(p.curToken, msg)
			p.skipToClause()
			continue
		}

		clause := p.parseCaseExpression()
		if clause == nil {
			p.skipToClause()
			continue
		}
		if clause.Default {
			if sawDefault {
				p.addError(clause.Token, "switch may have only one default case")
			}
			sawDefault = true
		}
		expr.Cases = append(expr.Cases, clause)
		// parseCaseExpression leaves the current token at the next clause or the '}'
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.unterminated("switch", expr.Token)
		return nil
	}
	return expr
}

// parseCaseExpression parses one 'case <expr>:' or 'default:' clause. The
// body is either a braced block or the statements up to the next clause.
func (p *Parser) parseCaseExpression() *CaseExpression {
	clause := &CaseExpression{Token: p.curToken} // 'case' or 'default' token

	if p.curTokenIs(lexer.DEFAULT) {
		clause.Default = true
	} else {
		p.nextToken() // Consume 'case'
		if clause.Value = p.parseExpression(LOWEST); clause.Value == nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.COLON) {
		return nil
	}

	p.skipPeekComments()
	if p.peekTokenIs(lexer.LBRACE) {
		p.nextToken()
		if clause.Body = p.parseBlockStatement(); clause.Body == nil {
			return nil
		}
		p.nextToken() // Consume '}'
		return clause
	}

	p.nextToken() // Consume ':'
	clause.Body = &BlockStatement{Token: clause.Token, Statements: []Statement{}}
	for !p.curTokenIs(lexer.CASE) && !p.curTokenIs(lexer.DEFAULT) && !p.curTokenIs(lexer.RBRACE) &&
		!p.curTokenIs(lexer.EOF) && !p.stopped() {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			clause.Body.Statements = append(clause.Body.Statements, stmt)
		}
		if p.atStrayClose() {
			break // The '}' closes the switch
		}
		p.nextToken()
	}
	return clause
}

// skipToClause moves past the current token and on to the next case,
// default or closing brace.
func (p *Parser) skipToClause() {
	p.nextToken()
	for !p.curTokenIs(lexer.CASE) && !p.curTokenIs(lexer.DEFAULT) && !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		p.nextToken()
	}
}
