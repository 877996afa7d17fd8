package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// emitFunctionBody checks a named function declaration's body and
// constrains funcType, the fresh variable Pass A decorated onto the
// declaration, to the resulting Function term. Parameters are bound monomorphically in a child scope; the
// return type is threaded through ctx.returnStack so nested return
// statements can unify against it, and the body's own Block-Value (when
// the body ends in a bare expression statement rather than a return) is
// unified against the same return variable, so a function written with an
// implicit trailing expression and one written with an explicit return
// statement are checked by the same rule.
func emitFunctionBody(ctx *Context, env *Environment, params []*ast.Identifier, body *ast.BlockStatement, funcType typesystem.Term) {
	fnEnv := env.Clone()
	paramTypes := make([]typesystem.Term, len(params))
	for i, p := range params {
		fnEnv.Define(p.Name, typesystem.FromTerm(p.InferredType), false)
		paramTypes[i] = p.InferredType
	}

	returnVar := ctx.Counter.FreshVariable()
	ctx.pushReturn(returnVar)
	emitBlockWithEnv(ctx, fnEnv, body)
	ctx.popReturn()

	if blockEndsInExpression(body) {
		emitConstraint(ctx, body.Token, diagnostics.InvalidArgumentTypes,
			"function's trailing expression does not match its other return values", returnVar, body.InferredType)
	}

	emitConstraint(ctx, body.Token, diagnostics.InternalTypeError, "function declaration",
		funcType, typesystem.Function{Params: paramTypes, Return: returnVar})
}

// emitArrowFunction checks an arrow function expression. Its body is
// either a block (checked exactly like a named function's body) or a bare
// expression (the function's one and only return value, no explicit
// return statement possible).
func emitArrowFunction(ctx *Context, env *Environment, n *ast.ArrowFunctionExpression) {
	fnEnv := env.Clone()
	paramTypes := make([]typesystem.Term, len(n.Params))
	for i, p := range n.Params {
		fnEnv.Define(p.Name, typesystem.FromTerm(p.InferredType), false)
		paramTypes[i] = p.InferredType
	}

	returnVar := ctx.Counter.FreshVariable()
	ctx.pushReturn(returnVar)

	switch body := n.Body.(type) {
	case *ast.BlockStatement:
		emitBlockWithEnv(ctx, fnEnv, body)
		if blockEndsInExpression(body) {
			emitConstraint(ctx, body.Token, diagnostics.InvalidArgumentTypes,
				"function's trailing expression does not match its other return values", returnVar, body.InferredType)
		}
	case ast.Expression:
		emitExpression(ctx, fnEnv, body)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "arrow function body", returnVar, exprType(body))
	default:
		panic("analyzer: emitArrowFunction: arrow function body is neither a block nor an expression")
	}

	ctx.popReturn()
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "arrow function expression",
		n.InferredType, typesystem.Function{Params: paramTypes, Return: returnVar})
}
