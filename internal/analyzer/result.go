package analyzer

import (
	"github.com/google/uuid"

	"github.com/sourcetype/srctc/internal/ast"
	"github.com/sourcetype/srctc/internal/diagnostics"
	"github.com/sourcetype/srctc/internal/lexer"
	"github.com/sourcetype/srctc/internal/parser"
)

// Result is the outcome of one TypeCheck run: the program (every node's
// InferredType/Typability set by Pass C when parsing succeeded) and the diagnostics
// accumulated along the way. RunID has no bearing on inference; it exists
// so a caller juggling several runs (an editor re-checking on every
// keystroke, a CLI batch) can tell which diagnostics came from which run.
type Result struct {
	Program     *ast.Program
	Diagnostics []*diagnostics.DiagnosticError
	RunID       uuid.UUID
}

// TypeCheck lexes, parses, and type-checks source. When parsing reports
// errors it stops there: Diagnostics holds the parse errors and Program is
// returned undecorated. Otherwise Program is fully decorated and
// Diagnostics collects every type error found. It never panics on
// malformed user input; a panic escaping this call is always an
// unrecognised-node invariant violation, not a user-facing type error.
func TypeCheck(source string) *Result {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors) > 0 {
		// A failed parse can leave nil expressions in the tree, which
		// Pass B does not accept.
		return &Result{Program: program, Diagnostics: p.Errors, RunID: uuid.New()}
	}

	ctx := NewContext()
	ctx.Errors = append(ctx.Errors, p.Errors...)

	env := NewGlobalEnvironment()
	decorate(ctx, program)

	// Program's top-level statements are checked exactly like a block's
	// body (same declaration-hoisting, same Block-Value bookkeeping), via
	// a throwaway BlockStatement wrapper that shares the same statement
	// slice decorate() already stamped types onto. The wrapper's own
	// InferredType is discarded; a Program has no meaningful "value".
	wrapper := &ast.BlockStatement{Token: program.Token, Body: program.Body}
	wrapper.InferredType = ctx.Counter.FreshVariable()
	emitBlockWithEnv(ctx, env, wrapper)

	resolve(ctx, program)

	return &Result{
		Program:     program,
		Diagnostics: ctx.Errors,
		RunID:       uuid.New(),
	}
}
