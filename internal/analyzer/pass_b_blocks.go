package analyzer

import (
	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/typesystem"
)

// emitBlock clones env and delegates to emitBlockWithEnv, the entry point
// used whenever a block introduces its own scope (if/while bodies, a bare
// nested block statement).
func emitBlock(ctx *Context, env *Environment, block *ast.BlockStatement) {
	emitBlockWithEnv(ctx, env.Clone(), block)
}

// emitBlockWithEnv implements the Block-Value rule and the generalisation
// policy for a block's function declarations. Every function declaration
// in the block is pre-bound to its own monomorphic type variable before any
// statement is processed, so two sibling functions that call each other (in either
// source order) resolve against a concrete, if not yet generalised, type —
// the mutual-recursion case. Statements then run in source order, and each
// function declaration is generalised and rebound to a schema immediately
// after its own body finishes (not deferred to the end of the block): a
// statement later in the same block that calls an earlier sibling gets a
// fresh instantiated copy per call (ordinary let-polymorphism), while a
// sibling function whose body calls another sibling still sees that
// sibling's pre-generalisation monomorphic binding if the callee hasn't
// been walked yet, exactly the recursion/mutual-recursion case this
// ordering is built for. Variable declarations are not pre-bound: they
// follow ordinary sequential, declare-before-use scoping.
func emitBlockWithEnv(ctx *Context, blockEnv *Environment, block *ast.BlockStatement) {
	for _, stmt := range block.Body {
		if fn, ok := stmt.(*ast.FunctionDeclaration); ok {
			blockEnv.Define(fn.Name.Name, typesystem.FromTerm(fn.FunctionInferredType), true)
		}
	}

	for _, stmt := range block.Body {
		emitStatement(ctx, blockEnv, stmt)
		fn, ok := stmt.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		resolved, err := typesystem.Apply(fn.FunctionInferredType, ctx.Store)
		if err != nil {
			ctx.addError(diagnostics.NewError(diagnostics.CyclicReference, fn.Token, "cyclic function type for %q: %v", fn.Name.Name, err))
			continue
		}
		blockEnv.Define(fn.Name.Name, typesystem.Generalize(resolved), true)
	}

	if len(block.Body) > 0 {
		if last, ok := block.Body[len(block.Body)-1].(*ast.ExpressionStatement); ok {
			emitConstraint(ctx, block.Token, diagnostics.InternalTypeError, "block value", block.InferredType, exprType(last.Expr))
			return
		}
	}
	emitConstraint(ctx, block.Token, diagnostics.InternalTypeError, "block value", block.InferredType, typesystem.Primitive{Name: typesystem.Undefined})
}

// blockEndsInExpression reports whether block's last statement is a plain
// expression statement, the shape whose value flows out of the block as an
// implicit completion value.
func blockEndsInExpression(block *ast.BlockStatement) bool {
	if len(block.Body) == 0 {
		return false
	}
	_, ok := block.Body[len(block.Body)-1].(*ast.ExpressionStatement)
	return ok
}
