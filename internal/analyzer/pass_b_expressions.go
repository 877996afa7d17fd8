package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// emitExpression emits Pass B constraints for one expression, ultimately
// unifying n's own decorated InferredType with whatever term the form
// resolves to.
func emitExpression(ctx *Context, env *Environment, expr ast.Expression) {
	switch n := expr.(type) {
	case *ast.Identifier:
		emitIdentifier(ctx, env, n)

	case *ast.NumberLiteral:
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "number literal", n.InferredType, typesystem.Primitive{Name: typesystem.Number})

	case *ast.StringLiteral:
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "string literal", n.InferredType, typesystem.Primitive{Name: typesystem.String})

	case *ast.BooleanLiteral:
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "boolean literal", n.InferredType, typesystem.Primitive{Name: typesystem.Boolean})

	case *ast.NullLiteral:
		// null is the empty list: it unifies with List(e) for a fresh,
		// unconstrained element type e, so `pair(1, null)` folds into
		// List(number) and `pair("x", null)` folds into List(string).
		elem := ctx.Counter.FreshVariable()
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "null literal", n.InferredType, typesystem.List{Element: elem})

	case *ast.UnaryExpression:
		emitUnary(ctx, env, n)

	case *ast.BinaryExpression:
		emitBinary(ctx, env, n)

	case *ast.LogicalExpression:
		emitLogical(ctx, env, n)

	case *ast.ConditionalExpression:
		emitConditional(ctx, env, n)

	case *ast.CallExpression:
		emitCall(ctx, env, n)

	case *ast.ArrowFunctionExpression:
		emitArrowFunction(ctx, env, n)

	case *ast.AssignmentExpression:
		emitAssignment(ctx, env, n)

	case *ast.MemberExpression:
		emitMember(ctx, env, n)

	case *ast.ArrayExpression:
		emitArray(ctx, env, n)

	default:
		panic("analyzer: emitExpression: unrecognised expression node reached Pass B")
	}
}

func emitIdentifier(ctx *Context, env *Environment, n *ast.Identifier) {
	schema, ok := env.Lookup(n.Name)
	if !ok {
		ctx.addError(diagnostics.NewError(diagnostics.UndefinedIdentifier, n.Token, "undefined identifier %q", n.Name))
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "identifier", n.InferredType, ctx.Counter.FreshVariable())
		return
	}
	resolved := instantiate(ctx, schema)
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "identifier", n.InferredType, resolved)
}

// instantiate returns a fresh monomorphic copy of schema's type, or its
// type directly if schema is not generalized.
func instantiate(ctx *Context, schema typesystem.TypeOrSchema) typesystem.Term {
	if schema.IsSchema() {
		return typesystem.Instantiate(ctx.Counter, *schema.Schema)
	}
	return schema.Mono
}

func emitUnary(ctx *Context, env *Environment, n *ast.UnaryExpression) {
	emitExpression(ctx, env, n.Operand)
	switch n.Operator {
	case "!":
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "! requires a boolean operand", exprType(n.Operand), typesystem.Primitive{Name: typesystem.Boolean})
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "unary expression", n.InferredType, typesystem.Primitive{Name: typesystem.Boolean})
	case "-":
		// Modelled directly: the initial environment holds no operator
		// bindings (no "-_1" entry). Same addable-kinded self-map every
		// binary arithmetic operator uses, just arity one.
		addable := ctx.Counter.Fresh(typesystem.KindAddable)
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "- requires a number or string operand", exprType(n.Operand), addable)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "unary expression", n.InferredType, addable)
	default:
		panic("analyzer: emitUnary: unrecognised operator " + n.Operator)
	}
}

func emitBinary(ctx *Context, env *Environment, n *ast.BinaryExpression) {
	emitExpression(ctx, env, n.Left)
	emitExpression(ctx, env, n.Right)

	switch n.Operator {
	case "+", "-", "*", "/", "%":
		addable := ctx.Counter.Fresh(typesystem.KindAddable)
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "left operand is not addable", exprType(n.Left), addable)
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "right operand is not addable", exprType(n.Right), addable)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "binary expression", n.InferredType, addable)
	case "<", "<=", ">", ">=", "===", "!==":
		addable := ctx.Counter.Fresh(typesystem.KindAddable)
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "left operand is not addable", exprType(n.Left), addable)
		emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "right operand is not addable", exprType(n.Right), addable)
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "binary expression", n.InferredType, typesystem.Primitive{Name: typesystem.Boolean})
	default:
		panic("analyzer: emitBinary: unrecognised operator " + n.Operator)
	}
}

func emitLogical(ctx *Context, env *Environment, n *ast.LogicalExpression) {
	emitExpression(ctx, env, n.Left)
	emitExpression(ctx, env, n.Right)
	// ∀T. bool -> T -> T
	emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "left operand of && or || must be a boolean", exprType(n.Left), typesystem.Primitive{Name: typesystem.Boolean})
	result := ctx.Counter.FreshVariable()
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "logical expression", result, exprType(n.Right))
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "logical expression", n.InferredType, result)
}

func emitConditional(ctx *Context, env *Environment, n *ast.ConditionalExpression) {
	emitExpression(ctx, env, n.Test)
	emitConstraint(ctx, n.Test.GetToken(), diagnostics.InvalidTestCondition, "ternary condition must be a boolean", exprType(n.Test), typesystem.Primitive{Name: typesystem.Boolean})
	emitExpression(ctx, env, n.Consequent)
	emitExpression(ctx, env, n.Alternate)
	emitConstraint(ctx, n.Token, diagnostics.ConsequentAlternateMismatch, "the two branches of a ternary must have the same type", exprType(n.Consequent), exprType(n.Alternate))
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "conditional expression", n.InferredType, exprType(n.Consequent))
}

func emitAssignment(ctx *Context, env *Environment, n *ast.AssignmentExpression) {
	emitExpression(ctx, env, n.Value)
	switch target := n.Target.(type) {
	case *ast.Identifier:
		if env.IsConst(target.Name) {
			ctx.addError(diagnostics.NewError(diagnostics.ReassignConst, n.Token, "cannot reassign const binding %q", target.Name))
		}
		emitExpression(ctx, env, target)
		emitConstraint(ctx, n.Token, diagnostics.DifferentAssignment, "assigned value does not match the variable's type", exprType(target), exprType(n.Value))
	case *ast.MemberExpression:
		emitExpression(ctx, env, target)
		emitConstraint(ctx, n.Token, diagnostics.ArrayAssignment, "assigned value does not match the array's element type", exprType(target), exprType(n.Value))
	default:
		ctx.addError(diagnostics.NewError(diagnostics.InternalTypeError, n.Token, "invalid assignment target"))
	}
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "assignment expression", n.InferredType, exprType(n.Value))
}

func emitMember(ctx *Context, env *Environment, n *ast.MemberExpression) {
	emitExpression(ctx, env, n.Object)
	emitExpression(ctx, env, n.Property)
	emitConstraint(ctx, n.Property.GetToken(), diagnostics.InvalidArrayIndexType, "array index must be a number", exprType(n.Property), typesystem.Primitive{Name: typesystem.Number})
	elem := ctx.Counter.FreshVariable()
	emitConstraint(ctx, n.Token, diagnostics.InvalidArgumentTypes, "indexing requires an array", exprType(n.Object), typesystem.Array{Element: elem})
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "member expression", n.InferredType, elem)
}

func emitArray(ctx *Context, env *Environment, n *ast.ArrayExpression) {
	elem := ctx.Counter.FreshVariable()
	for _, el := range n.Elements {
		emitExpression(ctx, env, el)
		emitConstraint(ctx, el.GetToken(), diagnostics.ArrayAssignment, "every array element must share the array's element type", exprType(el), elem)
	}
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "array expression", n.InferredType, typesystem.Array{Element: elem})
}
