package parser

import (
	"strconv"

	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/token"
)

// parseExpression is the Pratt driver: parse one prefix expression, then
// keep folding infix operators while their precedence outranks the
// caller's, following expressions_core.go's parseExpression(precedence).
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.Errors = append(p.Errors, diagnostics.NewError(
			diagnostics.InternalTypeError, p.curToken, "could not parse %q as a number", p.curToken.Literal,
		))
		return nil
	}
	lit.Value = v
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expr := &ast.LogicalExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	expr := &ast.ConditionalExpression{Token: p.curToken, Test: test}
	p.nextToken()
	expr.Consequent = p.parseExpression(TERNARY)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	expr.Alternate = p.parseExpression(TERNARY)
	return expr
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	expr := &ast.AssignmentExpression{Token: p.curToken, Target: left}
	p.nextToken()
	expr.Value = p.parseExpression(LOWEST)
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: object}
	p.nextToken()
	expr.Property = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	expr := &ast.ArrayExpression{Token: p.curToken}
	expr.Elements = p.parseExpressionList(token.RBRACKET)
	return expr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseGroupedOrArrow disambiguates `(expr)` from an arrow function's
// parameter list `(a, b) => ...`. The parameter list can be arbitrarily
// long, so unlike the rest of this parser's single-token lookahead this
// speculatively parses the parenthesised list and rewinds the scanner if it
// is not followed by `=>`, a backtrack-on-failure shape for when a
// production can't be told apart by a fixed lookahead.
func (p *Parser) parseGroupedOrArrow() ast.Expression {
	mark := p.snapshot()
	tok := p.curToken
	params, ok := p.parseFunctionParams()
	if ok && p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume '=>'
		return p.finishArrowFunction(tok, params)
	}
	p.restore(mark)

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) finishArrowFunction(tok token.Token, params []*ast.Identifier) ast.Expression {
	expr := &ast.ArrowFunctionExpression{Token: tok, Params: params}
	p.nextToken()
	if p.curTokenIs(token.LBRACE) {
		expr.Body = p.parseBlockStatement()
	} else {
		expr.Body = p.parseExpression(LOWEST)
	}
	return expr
}

// parseFunctionParams parses a parenthesised, comma-separated identifier
// list starting at the current '('. ok is false if the contents don't parse
// as a plain identifier list (so the caller can fall back to treating the
// parens as a grouped expression).
func (p *Parser) parseFunctionParams() ([]*ast.Identifier, bool) {
	var params []*ast.Identifier
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}
	if !p.peekTokenIs(token.IDENT) {
		return nil, false
	}
	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.peekTokenIs(token.IDENT) {
			return nil, false
		}
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	}
	if !p.peekTokenIs(token.RPAREN) {
		return nil, false
	}
	p.nextToken()
	return params, true
}
