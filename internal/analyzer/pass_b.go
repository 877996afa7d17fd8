// Pass B walks the decorated tree and emits one syntactic form's constraints
// at a time, converting internal typesystem errors into diagnostics instead
// of aborting the walk, dispatching by statement/expression kind rather than
// re-deriving a Go type from scratch on every node.
package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/token"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// emitConstraint adds lhs = rhs to the store, reporting err at tok under
// code if unification fails. It returns whether the constraint held.
func emitConstraint(ctx *Context, tok token.Token, code diagnostics.ErrorCode, msg string, lhs, rhs typesystem.Term) bool {
	if err := typesystem.AddConstraint(ctx.Store, lhs, rhs); err != nil {
		ctx.addError(diagnostics.NewError(code, tok, "%s: %v", msg, err))
		return false
	}
	return true
}

// emitStatement emits Pass B constraints for one statement.
func emitStatement(ctx *Context, env *Environment, stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		emitExpression(ctx, env, n.Expr)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "expression statement", n.InferredType, exprType(n.Expr))

	case *ast.VariableDeclaration:
		emitExpression(ctx, env, n.Value)
		emitConstraint(ctx, n.Token, diagnostics.DifferentAssignment,
			"declared value does not match its binding", n.Name.InferredType, exprType(n.Value))
		env.Define(n.Name.Name, typesystem.FromTerm(n.Name.InferredType), n.Kind == ast.DeclConst)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "declaration statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.FunctionDeclaration:
		emitFunctionBody(ctx, env, n.Params, n.Body, n.FunctionInferredType)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "function declaration statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.ReturnStatement:
		var valueType typesystem.Term = typesystem.Primitive{Name: typesystem.Undefined}
		if n.Value != nil {
			emitExpression(ctx, env, n.Value)
			valueType = exprType(n.Value)
		}
		if ret, ok := ctx.currentReturn(); ok {
			emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "returned value does not match the function's other returns", ret, valueType)
		}
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "return statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.IfStatement:
		emitExpression(ctx, env, n.Test)
		emitConstraint(ctx, n.Test.GetToken(), diagnostics.InvalidTestCondition,
			"if condition must be a boolean", exprType(n.Test), typesystem.Primitive{Name: typesystem.Boolean})
		emitBlock(ctx, env, n.Consequent)
		if n.Alternate != nil {
			emitStatement(ctx, env, n.Alternate)
		}
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "if statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.WhileStatement:
		emitExpression(ctx, env, n.Test)
		emitConstraint(ctx, n.Test.GetToken(), diagnostics.InvalidTestCondition,
			"while condition must be a boolean", exprType(n.Test), typesystem.Primitive{Name: typesystem.Boolean})
		emitBlock(ctx, env, n.Body)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "while statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.ForStatement:
		loopEnv := env.Clone()
		if n.Init != nil {
			emitStatement(ctx, loopEnv, n.Init)
		}
		if n.Test != nil {
			emitExpression(ctx, loopEnv, n.Test)
			emitConstraint(ctx, n.Test.GetToken(), diagnostics.InvalidTestCondition,
				"for condition must be a boolean", exprType(n.Test), typesystem.Primitive{Name: typesystem.Boolean})
		}
		if n.Update != nil {
			emitExpression(ctx, loopEnv, n.Update)
		}
		emitBlockWithEnv(ctx, loopEnv, n.Body)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "for statement", n.InferredType, typesystem.Primitive{Name: typesystem.Undefined})

	case *ast.BlockStatement:
		emitBlock(ctx, env, n)

	default:
		panic("analyzer: emitStatement: unrecognised statement node reached Pass B")
	}
}

// exprType returns the type a node was decorated with in Pass A, already
// constrained by emitExpression/emitStatement to equal its Pass B result.
func exprType(n ast.Node) typesystem.Term {
	switch e := n.(type) {
	case *ast.Identifier:
		return e.InferredType
	case *ast.NumberLiteral:
		return e.InferredType
	case *ast.StringLiteral:
		return e.InferredType
	case *ast.BooleanLiteral:
		return e.InferredType
	case *ast.NullLiteral:
		return e.InferredType
	case *ast.UnaryExpression:
		return e.InferredType
	case *ast.BinaryExpression:
		return e.InferredType
	case *ast.LogicalExpression:
		return e.InferredType
	case *ast.CallExpression:
		return e.InferredType
	case *ast.ConditionalExpression:
		return e.InferredType
	case *ast.ArrowFunctionExpression:
		return e.InferredType
	case *ast.AssignmentExpression:
		return e.InferredType
	case *ast.MemberExpression:
		return e.InferredType
	case *ast.ArrayExpression:
		return e.InferredType
	case *ast.BlockStatement:
		return e.InferredType
	default:
		panic("analyzer: exprType: unrecognised node")
	}
}
