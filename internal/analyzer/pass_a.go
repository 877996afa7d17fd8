package analyzer

import "github.com/sourcetype/srctc/internal/ast"

// decorate is Pass A: a pre-order walk that stamps a fresh type variable
// onto every node's InferredType before constraint emission begins, so Pass
// B can reference a node's own variable (e.g. a function's parameters) even
// before that node's constraints have been visited — the forward
// references recursion and mutual recursion need.
func decorate(ctx *Context, node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.Program:
		n.InferredType = ctx.Counter.FreshVariable()
		for _, s := range n.Body {
			decorate(ctx, s)
		}
	case *ast.BlockStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		for _, s := range n.Body {
			decorate(ctx, s)
		}
	case *ast.ExpressionStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Expr)
	case *ast.VariableDeclaration:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Name)
		decorate(ctx, n.Value)
	case *ast.FunctionDeclaration:
		n.InferredType = ctx.Counter.FreshVariable()
		n.FunctionInferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Name)
		for _, p := range n.Params {
			decorate(ctx, p)
		}
		decorate(ctx, n.Body)
	case *ast.ReturnStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Value)
	case *ast.IfStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Test)
		decorate(ctx, n.Consequent)
		decorate(ctx, n.Alternate)
	case *ast.WhileStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Test)
		decorate(ctx, n.Body)
	case *ast.ForStatement:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Init)
		decorate(ctx, n.Test)
		decorate(ctx, n.Update)
		decorate(ctx, n.Body)
	case *ast.Identifier:
		n.InferredType = ctx.Counter.FreshVariable()
	case *ast.NumberLiteral:
		n.InferredType = ctx.Counter.FreshVariable()
	case *ast.StringLiteral:
		n.InferredType = ctx.Counter.FreshVariable()
	case *ast.BooleanLiteral:
		n.InferredType = ctx.Counter.FreshVariable()
	case *ast.NullLiteral:
		n.InferredType = ctx.Counter.FreshVariable()
	case *ast.UnaryExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Operand)
	case *ast.BinaryExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Left)
		decorate(ctx, n.Right)
	case *ast.LogicalExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Left)
		decorate(ctx, n.Right)
	case *ast.CallExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Callee)
		for _, a := range n.Arguments {
			decorate(ctx, a)
		}
	case *ast.ConditionalExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Test)
		decorate(ctx, n.Consequent)
		decorate(ctx, n.Alternate)
	case *ast.ArrowFunctionExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		for _, p := range n.Params {
			decorate(ctx, p)
		}
		decorate(ctx, n.Body)
	case *ast.AssignmentExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Target)
		decorate(ctx, n.Value)
	case *ast.MemberExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		decorate(ctx, n.Object)
		decorate(ctx, n.Property)
	case *ast.ArrayExpression:
		n.InferredType = ctx.Counter.FreshVariable()
		for _, el := range n.Elements {
			decorate(ctx, el)
		}
	default:
		panic("analyzer: decorate: unrecognised node type reached Pass A")
	}
}
