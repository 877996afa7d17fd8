package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// resolve is Pass C: a pre-order walk that substitutes every node's
// InferredType against the finished constraint store, the last step of the
// decorate/emit/resolve three-pass design. A node whose substitution hits a
// cycle the occurs-check couldn't rescue keeps its pre-substitution variable
// and is marked Untypable rather than aborting the walk — one bad node
// should not blank out diagnostics for the rest of the file. Every other
// node is marked Typed, whether or not its substituted type still contains
// unbound variables.
func resolve(ctx *Context, node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.Program:
		resolveInto(ctx, &n.TypeInfo)
		for _, s := range n.Body {
			resolve(ctx, s)
		}
	case *ast.BlockStatement:
		resolveInto(ctx, &n.TypeInfo)
		for _, s := range n.Body {
			resolve(ctx, s)
		}
	case *ast.ExpressionStatement:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Expr)
	case *ast.VariableDeclaration:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Name)
		resolve(ctx, n.Value)
	case *ast.FunctionDeclaration:
		resolveInto(ctx, &n.TypeInfo)
		n.FunctionInferredType, _ = typesystem.Apply(n.FunctionInferredType, ctx.Store)
		resolve(ctx, n.Name)
		for _, p := range n.Params {
			resolve(ctx, p)
		}
		resolve(ctx, n.Body)
	case *ast.ReturnStatement:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Value)
	case *ast.IfStatement:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Test)
		resolve(ctx, n.Consequent)
		resolve(ctx, n.Alternate)
	case *ast.WhileStatement:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Test)
		resolve(ctx, n.Body)
	case *ast.ForStatement:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Init)
		resolve(ctx, n.Test)
		resolve(ctx, n.Update)
		resolve(ctx, n.Body)
	case *ast.Identifier:
		resolveInto(ctx, &n.TypeInfo)
	case *ast.NumberLiteral:
		resolveInto(ctx, &n.TypeInfo)
	case *ast.StringLiteral:
		resolveInto(ctx, &n.TypeInfo)
	case *ast.BooleanLiteral:
		resolveInto(ctx, &n.TypeInfo)
	case *ast.NullLiteral:
		resolveInto(ctx, &n.TypeInfo)
	case *ast.UnaryExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Operand)
	case *ast.BinaryExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Left)
		resolve(ctx, n.Right)
	case *ast.LogicalExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Left)
		resolve(ctx, n.Right)
	case *ast.CallExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Callee)
		for _, a := range n.Arguments {
			resolve(ctx, a)
		}
	case *ast.ConditionalExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Test)
		resolve(ctx, n.Consequent)
		resolve(ctx, n.Alternate)
	case *ast.ArrowFunctionExpression:
		resolveInto(ctx, &n.TypeInfo)
		for _, p := range n.Params {
			resolve(ctx, p)
		}
		resolve(ctx, n.Body)
	case *ast.AssignmentExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Target)
		resolve(ctx, n.Value)
	case *ast.MemberExpression:
		resolveInto(ctx, &n.TypeInfo)
		resolve(ctx, n.Object)
		resolve(ctx, n.Property)
	case *ast.ArrayExpression:
		resolveInto(ctx, &n.TypeInfo)
		for _, el := range n.Elements {
			resolve(ctx, el)
		}
	default:
		panic("analyzer: resolve: unrecognised node type reached Pass C")
	}
}

// resolveInto substitutes info.InferredType in place against ctx.Store and
// sets info.Typability accordingly.
func resolveInto(ctx *Context, info *ast.TypeInfo) {
	resolved, err := typesystem.Apply(info.InferredType, ctx.Store)
	if err != nil {
		info.Typability = ast.Untypable
		return
	}
	info.InferredType = resolved
	info.Typability = ast.Typed
}
