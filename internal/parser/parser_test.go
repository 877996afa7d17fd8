package parser

import (
	"testing"

	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		var msgs []string
		for _, e := range p.Errors {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("parse errors for %q: %v", input, msgs)
	}
	return prog
}

func TestParserAcceptsEveryStatementForm(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"let_declaration", "let x = 1;"},
		{"const_declaration", "const x = 1;"},
		{"function_declaration", "function add(a, b) { return a + b; }"},
		{"if_else", "if (true) { 1; } else { 2; }"},
		{"if_else_if_chain", "if (true) { 1; } else if (false) { 2; } else { 3; }"},
		{"while_loop", "while (true) { 1; }"},
		{"for_loop", "for (let i = 0; i < 10; i = i + 1) { i; }"},
		{"nested_block", "{ let x = 1; { let y = 2; } }"},
		{"array_literal", "let xs = [1, 2, 3];"},
		{"array_index", "let y = xs[0];"},
		{"ternary", "let x = true ? 1 : 2;"},
		{"arrow_expression_body", "let f = (x) => x + 1;"},
		{"arrow_block_body", "let f = (x) => { return x + 1; };"},
		{"grouped_expression", "let x = (1 + 2) * 3;"},
		{"call_expression", "let x = f(1, 2);"},
		{"member_assignment", "xs[0] = 1;"},
		{"logical_operators", "let x = a && b || c;"},
		{"equality_operators", "let x = a === b !== c;"},
		{"unary_operators", "let x = -a; let y = !b;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prog := parseProgram(t, tc.input)
			if len(prog.Body) == 0 {
				t.Fatalf("expected at least one statement, got none")
			}
		})
	}
}

func TestParseGroupedOrArrowDisambiguatesByArrowToken(t *testing.T) {
	prog := parseProgram(t, "let a = (1 + 2); let b = (x) => x;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}

	decl1, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement 0: want *ast.VariableDeclaration, got %T", prog.Body[0])
	}
	if _, ok := decl1.Value.(*ast.BinaryExpression); !ok {
		t.Errorf("first declaration's value: want *ast.BinaryExpression, got %T", decl1.Value)
	}

	decl2, ok := prog.Body[1].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement 1: want *ast.VariableDeclaration, got %T", prog.Body[1])
	}
	arrow, ok := decl2.Value.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("second declaration's value: want *ast.ArrowFunctionExpression, got %T", decl2.Value)
	}
	if len(arrow.Params) != 1 || arrow.Params[0].Name != "x" {
		t.Errorf("arrow params: want [x], got %v", arrow.Params)
	}
}

func TestOperatorPrecedenceProducesExpectedTree(t *testing.T) {
	prog := parseProgram(t, "let x = 1 + 2 * 3;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	bin, ok := decl.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("want *ast.BinaryExpression, got %T", decl.Value)
	}
	if bin.Operator != "+" {
		t.Fatalf("top-level operator: want +, got %s", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.NumberLiteral); !ok {
		t.Errorf("left operand: want *ast.NumberLiteral, got %T", bin.Left)
	}
	rightMul, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || rightMul.Operator != "*" {
		t.Errorf("right operand: want a * binary expression, got %T", bin.Right)
	}
}

func TestElseIfChainNestsAsStatement(t *testing.T) {
	prog := parseProgram(t, "if (a) { 1; } else if (b) { 2; } else { 3; }")
	ifStmt := prog.Body[0].(*ast.IfStatement)
	elseIf, ok := ifStmt.Alternate.(*ast.IfStatement)
	if !ok {
		t.Fatalf("alternate: want *ast.IfStatement, got %T", ifStmt.Alternate)
	}
	if _, ok := elseIf.Alternate.(*ast.BlockStatement); !ok {
		t.Errorf("else-if's own alternate: want *ast.BlockStatement, got %T", elseIf.Alternate)
	}
}

func TestMissingClosingParenIsReportedAsAnError(t *testing.T) {
	p := New(lexer.New("let x = (1 + 2;"))
	p.ParseProgram()
	if len(p.Errors) == 0 {
		t.Fatal("expected a parse error for the unclosed paren, got none")
	}
}
