// Package parser implements a Pratt/precedence-climbing recursive-descent
// parser over the Source subset's token stream: a
// parseExpression(precedence)/prefixParseFns/infixParseFns shape, trimmed to
// this language's smaller grammar.
package parser

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/lexer"
	"github.com/sourcetype/srctc/internal/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGNMENT // =
	TERNARY    // ?:
	LOGICAL    // && ||
	EQUALITY   // === !==
	RELATIONAL // < <= > >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // -x !x
	CALL       // f(x)
	INDEX      // a[i]
)

var precedences = map[token.Type]int{
	token.ASSIGN:   ASSIGNMENT,
	token.QUESTION: TERNARY,
	token.OR:       LOGICAL,
	token.AND:      LOGICAL,
	token.EQ:       EQUALITY,
	token.NOT_EQ:   EQUALITY,
	token.LT:       RELATIONAL,
	token.LT_EQ:    RELATIONAL,
	token.GT:       RELATIONAL,
	token.GT_EQ:    RELATIONAL,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into an *ast.Program, accumulating
// diagnostics rather than aborting on the first syntax error.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	Errors []*diagnostics.DiagnosticError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New builds a Parser reading from l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.NUMBER:   p.parseNumberLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NULL:     p.parseNullLiteral,
		token.BANG:     p.parseUnaryExpression,
		token.MINUS:    p.parseUnaryExpression,
		token.LPAREN:   p.parseGroupedOrArrow,
		token.LBRACKET: p.parseArrayLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpression,
		token.MINUS:    p.parseBinaryExpression,
		token.STAR:     p.parseBinaryExpression,
		token.SLASH:    p.parseBinaryExpression,
		token.PERCENT:  p.parseBinaryExpression,
		token.EQ:       p.parseBinaryExpression,
		token.NOT_EQ:   p.parseBinaryExpression,
		token.LT:       p.parseBinaryExpression,
		token.LT_EQ:    p.parseBinaryExpression,
		token.GT:       p.parseBinaryExpression,
		token.GT_EQ:    p.parseBinaryExpression,
		token.AND:      p.parseLogicalExpression,
		token.OR:       p.parseLogicalExpression,
		token.QUESTION: p.parseConditionalExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
		token.ASSIGN:   p.parseAssignmentExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// parserState snapshots everything parseGroupedOrArrow needs to rewind a
// failed speculative parse of an arrow function's parameter list.
type parserState struct {
	lex       lexer.State
	curToken  token.Token
	peekToken token.Token
	errLen    int
}

func (p *Parser) snapshot() parserState {
	return parserState{lex: p.l.Snapshot(), curToken: p.curToken, peekToken: p.peekToken, errLen: len(p.Errors)}
}

func (p *Parser) restore(s parserState) {
	p.l.Restore(s.lex)
	p.curToken, p.peekToken = s.curToken, s.peekToken
	p.Errors = p.Errors[:s.errLen]
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.Errors = append(p.Errors, diagnostics.NewError(
		diagnostics.InternalTypeError, p.peekToken,
		"expected next token to be %s, got %s instead", t, p.peekToken.Type,
	))
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.Errors = append(p.Errors, diagnostics.NewError(
		diagnostics.InternalTypeError, p.curToken,
		"no prefix parse function for %s found", t,
	))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

