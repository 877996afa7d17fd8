package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/typesystem"
)

func emitCall(ctx *Context, env *Environment, n *ast.CallExpression) {
	if ident, ok := n.Callee.(*ast.Identifier); ok && VariadicBuiltins[ident.Name] {
		emitVariadicCall(ctx, env, n, ident)
		return
	}

	emitExpression(ctx, env, n.Callee)

	argTypes := make([]typesystem.Term, len(n.Arguments))
	for i, arg := range n.Arguments {
		emitExpression(ctx, env, arg)
		argTypes[i] = exprType(arg)
	}
	result := ctx.Counter.FreshVariable()
	expected := typesystem.Function{Params: argTypes, Return: result}

	if err := typesystem.AddConstraint(ctx.Store, exprType(n.Callee), expected); err != nil {
		reportCallError(ctx, n, err)
	}
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "call expression", n.InferredType, result)
}

// emitVariadicCall special-cases math_hypot/math_max/math_min: their
// declared schema has a single parameter, so instead of going through the
// ordinary fixed-arity path every actual argument is unified with that one
// parameter type and the call's type with the declared return type.
func emitVariadicCall(ctx *Context, env *Environment, n *ast.CallExpression, ident *ast.Identifier) {
	emitExpression(ctx, env, ident)

	schema, ok := env.Lookup(ident.Name)
	if !ok {
		ctx.addError(diagnostics.NewError(diagnostics.UndefinedIdentifier, ident.Token, "undefined identifier %q", ident.Name))
		emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "call expression", n.InferredType, ctx.Counter.FreshVariable())
		return
	}
	fn, ok := instantiate(ctx, schema).(typesystem.Function)
	if !ok || len(fn.Params) != 1 {
		panic("analyzer: variadic builtin " + ident.Name + " does not have a unary declared schema")
	}
	param := fn.Params[0]
	for _, arg := range n.Arguments {
		emitExpression(ctx, env, arg)
		emitConstraint(ctx, arg.GetToken(), diagnostics.InvalidArgumentTypes, "argument does not match "+ident.Name+"'s declared parameter type", exprType(arg), param)
	}
	emitConstraint(ctx, n.Token, diagnostics.InternalTypeError, "call expression", n.InferredType, fn.Return)
}

func reportCallError(ctx *Context, n *ast.CallExpression, err error) {
	switch e := err.(type) {
	case *typesystem.ArityError:
		// The callee's declared type is the right side of the failed
		// Function/Function rule, so its arity is e.Received and the
		// call site's argument count is e.Expected.
		ctx.addError(diagnostics.NewError(diagnostics.DifferentNumberArguments, n.Token,
			"expected %d argument(s), got %d", e.Received, e.Expected))
	case *typesystem.CyclicError:
		ctx.addError(diagnostics.NewError(diagnostics.CyclicReference, n.Token, "cyclic type while checking call: %v", e))
	default:
		ctx.addError(diagnostics.NewError(diagnostics.InvalidArgumentTypes, n.Token, "%v", err))
	}
}
