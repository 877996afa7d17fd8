package analyzer

import "github.com/sourcetype/srctc/internal/typesystem"

// Environment is the lexical scope chain used during Pass B constraint
// emission: a binding's TypeOrSchema plus whether it was declared const
// (ReassignConst diagnostics key off this). Environments are cloned, not
// mutated in place, when entering a new block. This checker's scopes are
// small enough that copy-on-enter keeps the Block-Value generalisation rule
// easy to reason about, at the cost of a few extra map allocations per
// block.
type Environment struct {
	vars   map[string]typesystem.TypeOrSchema
	consts map[string]bool
}

// NewEnvironment returns an empty environment, used as the root scope of a
// program before builtins are installed.
func NewEnvironment() *Environment {
	return &Environment{
		vars:   make(map[string]typesystem.TypeOrSchema),
		consts: make(map[string]bool),
	}
}

// Clone returns a new Environment with the same bindings, safe for the
// callee to extend without affecting the caller's scope.
func (e *Environment) Clone() *Environment {
	ne := NewEnvironment()
	for k, v := range e.vars {
		ne.vars[k] = v
	}
	for k, v := range e.consts {
		ne.consts[k] = v
	}
	return ne
}

// Define binds name to t in this environment, overwriting any prior binding
// of the same name (shadowing, not redeclaration error — this checker does
// not forbid shadowing).
func (e *Environment) Define(name string, t typesystem.TypeOrSchema, isConst bool) {
	e.vars[name] = t
	e.consts[name] = isConst
}

// Lookup returns the binding for name and whether it exists.
func (e *Environment) Lookup(name string) (typesystem.TypeOrSchema, bool) {
	t, ok := e.vars[name]
	return t, ok
}

// IsConst reports whether name was bound with `const`. Only meaningful if
// Lookup(name) succeeds.
func (e *Environment) IsConst(name string) bool {
	return e.consts[name]
}
