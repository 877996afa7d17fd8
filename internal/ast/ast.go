// Package ast defines the typed AST node set for the Source subset this
// checker accepts. Every node embeds a token.Token and a small set of
// marker methods; the tree is walked by the inferencer's own type switch
// rather than by a Visitor, dispatching on concrete node type directly.
package ast

import (
	"github.com/sourcetype/srctc/internal/token"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// Typability is the per-node typing status the checker reports.
type Typability int

const (
	NotYetTyped Typability = iota
	Typed
	Untypable
)

func (t Typability) String() string {
	switch t {
	case Typed:
		return "Typed"
	case Untypable:
		return "Untypable"
	default:
		return "NotYetTyped"
	}
}

// TypeInfo is embedded in every node. InferredType starts as a fresh
// Variable during Pass A and is overwritten with its substituted form
// during Pass C.
type TypeInfo struct {
	InferredType typesystem.Term
	Typability   Typability
}

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node that appears in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in expression position.
type Expression interface {
	Node
	expressionNode()
}

// DeclKind distinguishes const from let bindings.
type DeclKind int

const (
	DeclConst DeclKind = iota
	DeclLet
)

func (k DeclKind) String() string {
	if k == DeclLet {
		return "let"
	}
	return "const"
}

// ---------------------------------------------------------------------------
// Program / Block
// ---------------------------------------------------------------------------

// Program is the root node of a parsed source file.
type Program struct {
	Token token.Token
	Body  []Statement
	TypeInfo
}

func (p *Program) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Program) GetToken() token.Token { return p.Token }

// BlockStatement is a `{ ... }` lexical scope: a function body, or the body
// of an if/while/for.
type BlockStatement struct {
	Token token.Token
	Body  []Statement
	TypeInfo
}

func (b *BlockStatement) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BlockStatement) GetToken() token.Token { return b.Token }
func (b *BlockStatement) statementNode()        {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// ExpressionStatement wraps an expression used for its side effect.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
	TypeInfo
}

func (s *ExpressionStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ExpressionStatement) GetToken() token.Token { return s.Token }
func (s *ExpressionStatement) statementNode()        {}

// VariableDeclaration binds Name to Value with the given declaration kind.
type VariableDeclaration struct {
	Token token.Token
	Kind  DeclKind
	Name  *Identifier
	Value Expression
	TypeInfo
}

func (s *VariableDeclaration) TokenLiteral() string  { return s.Token.Lexeme }
func (s *VariableDeclaration) GetToken() token.Token { return s.Token }
func (s *VariableDeclaration) statementNode()        {}

// FunctionDeclaration is a named function statement. Its own node type is
// always undefined (declarations are statements, not expressions);
// FunctionInferredType carries the function's own type schema.
type FunctionDeclaration struct {
	Token                 token.Token
	Name                  *Identifier
	Params                []*Identifier
	Body                  *BlockStatement
	FunctionInferredType  typesystem.Term
	TypeInfo
}

func (s *FunctionDeclaration) TokenLiteral() string  { return s.Token.Lexeme }
func (s *FunctionDeclaration) GetToken() token.Token { return s.Token }
func (s *FunctionDeclaration) statementNode()        {}

// ReturnStatement yields Value as the enclosing function's result.
type ReturnStatement struct {
	Token token.Token
	Value Expression
	TypeInfo
}

func (s *ReturnStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ReturnStatement) GetToken() token.Token { return s.Token }
func (s *ReturnStatement) statementNode()        {}

// IfStatement is a conditional statement; Alternate is nil, an
// *IfStatement (else-if chain), or a *BlockStatement.
type IfStatement struct {
	Token       token.Token
	Test        Expression
	Consequent  *BlockStatement
	Alternate   Statement
	TypeInfo
}

func (s *IfStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *IfStatement) GetToken() token.Token { return s.Token }
func (s *IfStatement) statementNode()        {}

// WhileStatement loops Body while Test holds.
type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  *BlockStatement
	TypeInfo
}

func (s *WhileStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *WhileStatement) GetToken() token.Token { return s.Token }
func (s *WhileStatement) statementNode()        {}

// ForStatement is a classic C-style for loop. Init is nil, an
// *ExpressionStatement, or a *VariableDeclaration.
type ForStatement struct {
	Token  token.Token
	Init   Statement
	Test   Expression
	Update Expression
	Body   *BlockStatement
	TypeInfo
}

func (s *ForStatement) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ForStatement) GetToken() token.Token { return s.Token }
func (s *ForStatement) statementNode()        {}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Identifier is a name reference.
type Identifier struct {
	Token token.Token
	Name  string
	TypeInfo
}

func (e *Identifier) TokenLiteral() string  { return e.Token.Lexeme }
func (e *Identifier) GetToken() token.Token { return e.Token }
func (e *Identifier) expressionNode()       {}

// NumberLiteral is a numeric literal.
type NumberLiteral struct {
	Token token.Token
	Value float64
	TypeInfo
}

func (e *NumberLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *NumberLiteral) GetToken() token.Token { return e.Token }
func (e *NumberLiteral) expressionNode()       {}

// StringLiteral is a string literal.
type StringLiteral struct {
	Token token.Token
	Value string
	TypeInfo
}

func (e *StringLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *StringLiteral) GetToken() token.Token { return e.Token }
func (e *StringLiteral) expressionNode()       {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
	TypeInfo
}

func (e *BooleanLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BooleanLiteral) GetToken() token.Token { return e.Token }
func (e *BooleanLiteral) expressionNode()       {}

// NullLiteral is `null`, the empty list.
type NullLiteral struct {
	Token token.Token
	TypeInfo
}

func (e *NullLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *NullLiteral) GetToken() token.Token { return e.Token }
func (e *NullLiteral) expressionNode()       {}

// UnaryExpression is a prefix operator applied to one operand (`-x`, `!x`).
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
	TypeInfo
}

func (e *UnaryExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *UnaryExpression) GetToken() token.Token { return e.Token }
func (e *UnaryExpression) expressionNode()       {}

// BinaryExpression is an infix arithmetic/comparison operator.
type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
	TypeInfo
}

func (e *BinaryExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BinaryExpression) GetToken() token.Token { return e.Token }
func (e *BinaryExpression) expressionNode()       {}

// LogicalExpression is `&&` or `||`.
type LogicalExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
	TypeInfo
}

func (e *LogicalExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *LogicalExpression) GetToken() token.Token { return e.Token }
func (e *LogicalExpression) expressionNode()       {}

// CallExpression applies Callee to Arguments.
type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
	TypeInfo
}

func (e *CallExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *CallExpression) GetToken() token.Token { return e.Token }
func (e *CallExpression) expressionNode()       {}

// ConditionalExpression is the `test ? consequent : alternate` ternary.
type ConditionalExpression struct {
	Token       token.Token
	Test        Expression
	Consequent  Expression
	Alternate   Expression
	TypeInfo
}

func (e *ConditionalExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ConditionalExpression) GetToken() token.Token { return e.Token }
func (e *ConditionalExpression) expressionNode()       {}

// ArrowFunctionExpression is `(params) => body`; Body is either an
// Expression (expression-bodied arrow) or a *BlockStatement.
type ArrowFunctionExpression struct {
	Token  token.Token
	Params []*Identifier
	Body   Node
	TypeInfo
}

func (e *ArrowFunctionExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ArrowFunctionExpression) GetToken() token.Token { return e.Token }
func (e *ArrowFunctionExpression) expressionNode()       {}

// AssignmentExpression is `target = value`; Target is an *Identifier or a
// *MemberExpression.
type AssignmentExpression struct {
	Token  token.Token
	Target Expression
	Value  Expression
	TypeInfo
}

func (e *AssignmentExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *AssignmentExpression) GetToken() token.Token { return e.Token }
func (e *AssignmentExpression) expressionNode()       {}

// MemberExpression is array indexing: Object[Property].
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	TypeInfo
}

func (e *MemberExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *MemberExpression) GetToken() token.Token { return e.Token }
func (e *MemberExpression) expressionNode()       {}

// ArrayExpression is an array literal `[e1, e2, ...]`.
type ArrayExpression struct {
	Token    token.Token
	Elements []Expression
	TypeInfo
}

func (e *ArrayExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ArrayExpression) GetToken() token.Token { return e.Token }
func (e *ArrayExpression) expressionNode()       {}
