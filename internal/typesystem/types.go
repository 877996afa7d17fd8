// Package typesystem implements the algebraic type terms, the constraint
// store and unifier, and the substitution walker that together form the
// hard core of the checker: everything the inferencer needs to assign,
// solve, and read back types without ever running the program it describes.
package typesystem

import (
	"fmt"
	"sort"
)

// Kind constrains what a Variable may ultimately resolve to.
type Kind int

const (
	// KindNone admits any term.
	KindNone Kind = iota
	// KindAddable rejects every primitive other than number and string.
	// Bound to a KindNone variable, it tightens that variable to
	// KindAddable. Function, pair, list and array terms are not rejected.
	KindAddable
)

func (k Kind) String() string {
	if k == KindAddable {
		return "addable"
	}
	return "none"
}

// Term is the tagged union of type terms. Concrete variants are Primitive,
// Variable, Function, Pair, List, and Array.
type Term interface {
	String() string
	isTerm()
}

// PrimitiveName enumerates the primitive type names.
type PrimitiveName string

const (
	Boolean   PrimitiveName = "boolean"
	Number    PrimitiveName = "number"
	String    PrimitiveName = "string"
	Undefined PrimitiveName = "undefined"
)

// Primitive is a ground type with no substructure.
type Primitive struct {
	Name PrimitiveName
}

func (Primitive) isTerm() {}
func (p Primitive) String() string {
	return string(p.Name)
}

// Variable is a type variable, unique by Name, optionally kind-constrained.
type Variable struct {
	Name string
	Kind Kind
}

func (Variable) isTerm() {}
func (v Variable) String() string {
	return v.Name
}

// Function is an n-ary function term.
type Function struct {
	Params []Term
	Return Term
}

func (Function) isTerm() {}
func (f Function) String() string {
	s := "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Return.String()
}

// Pair is a cons cell of a head and a tail term.
type Pair struct {
	Head Term
	Tail Term
}

func (Pair) isTerm() {}
func (p Pair) String() string {
	return fmt.Sprintf("Pair<%s, %s>", p.Head.String(), p.Tail.String())
}

// List is the type of a (possibly empty) homogeneous list.
type List struct {
	Element Term
}

func (List) isTerm() {}
func (l List) String() string {
	return fmt.Sprintf("List<%s>", l.Element.String())
}

// Array is the type of a fixed-size, mutable, homogeneous array.
type Array struct {
	Element Term
}

func (Array) isTerm() {}
func (a Array) String() string {
	return fmt.Sprintf("Array<%s>", a.Element.String())
}

// ForAll wraps a term to mark it universally quantified over its free
// variables at the instant of generalisation. Schemas never nest, and a
// Primitive term is never wrapped.
type ForAll struct {
	Vars []string
	Term Term
}

func (f ForAll) String() string {
	s := "forall"
	for _, v := range f.Vars {
		s += " " + v
	}
	return s + ". " + f.Term.String()
}

// TypeOrSchema is either a bare Term or a ForAll schema, as stored in an
// Environment. It exists only to make that distinction explicit at the type
// level; callers switch on it rather than relying on a type assertion on
// Term (ForAll is deliberately not a Term — a bare schema must never flow
// into the unifier).
type TypeOrSchema struct {
	Schema *ForAll
	Mono   Term
}

func FromTerm(t Term) TypeOrSchema     { return TypeOrSchema{Mono: t} }
func FromSchema(f ForAll) TypeOrSchema { return TypeOrSchema{Schema: &f} }
func (s TypeOrSchema) IsSchema() bool  { return s.Schema != nil }

// Counter mints globally unique, monotonically increasing type variable
// names for one type-checking invocation. It is the sole piece of process-
// wide state in the core and is reset at the start of every top-level
// TypeCheck call so that two independent runs over the same program produce
// byte-identical variable names.
type Counter struct {
	n int
}

// Fresh mints a fresh Variable of the given kind.
func (c *Counter) Fresh(k Kind) Variable {
	c.n++
	return Variable{Name: fmt.Sprintf("t%d", c.n), Kind: k}
}

// FreshVariable mints a fresh Variable with kind KindNone.
func (c *Counter) FreshVariable() Variable {
	return c.Fresh(KindNone)
}

// FreeVariables returns the set of free variables in t, ordered by first
// appearance (pre-order, left to right), so the result is deterministic for
// a given term.
func FreeVariables(t Term) []Variable {
	seen := map[string]bool{}
	var order []Variable
	var walk func(Term)
	walk = func(t Term) {
		switch tt := t.(type) {
		case Primitive:
		case Variable:
			if !seen[tt.Name] {
				seen[tt.Name] = true
				order = append(order, tt)
			}
		case Function:
			for _, p := range tt.Params {
				walk(p)
			}
			walk(tt.Return)
		case Pair:
			walk(tt.Head)
			walk(tt.Tail)
		case List:
			walk(tt.Element)
		case Array:
			walk(tt.Element)
		default:
			panic(fmt.Sprintf("typesystem: unrecognised term variant %T in FreeVariables", t))
		}
	}
	walk(t)
	return order
}

// freeVariableSet is a convenience used by Generalize/Instantiate to look up
// a free variable's kind by name.
func freeVariableSet(t Term) map[string]Kind {
	out := map[string]Kind{}
	for _, v := range FreeVariables(t) {
		out[v.Name] = v.Kind
	}
	return out
}

// Generalize wraps t in a ForAll over all of its free variables. A
// Primitive term is returned unwrapped, since primitives are never wrapped.
func Generalize(t Term) TypeOrSchema {
	free := FreeVariables(t)
	if len(free) == 0 {
		return FromTerm(t)
	}
	names := make([]string, len(free))
	for i, v := range free {
		names[i] = v.Name
	}
	sort.Strings(names)
	return FromSchema(ForAll{Vars: names, Term: t})
}

// Instantiate is the only way a schema is consumed: every free variable of
// the wrapped term is replaced with a freshly minted variable of the same
// kind, and the result is returned as a monotype Term ready for unification.
// Bare schemas must never flow into the unifier; this is the boundary where
// a schema becomes a Term.
func Instantiate(c *Counter, s ForAll) Term {
	kinds := freeVariableSet(s.Term)
	fresh := map[string]Term{}
	for _, name := range s.Vars {
		fresh[name] = c.Fresh(kinds[name])
	}
	return substituteNames(s.Term, fresh)
}

// substituteNames performs a pure, capture-free rename of the named
// variables in t according to m. It never consults a constraint store and
// is used only by Instantiate.
func substituteNames(t Term, m map[string]Term) Term {
	switch tt := t.(type) {
	case Primitive:
		return tt
	case Variable:
		if r, ok := m[tt.Name]; ok {
			return r
		}
		return tt
	case Function:
		params := make([]Term, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = substituteNames(p, m)
		}
		return Function{Params: params, Return: substituteNames(tt.Return, m)}
	case Pair:
		return Pair{Head: substituteNames(tt.Head, m), Tail: substituteNames(tt.Tail, m)}
	case List:
		return List{Element: substituteNames(tt.Element, m)}
	case Array:
		return Array{Element: substituteNames(tt.Element, m)}
	default:
		panic(fmt.Sprintf("typesystem: unrecognised term variant %T in substituteNames", t))
	}
}

// Equal reports whether two terms are structurally identical (same shape,
// same variable names). It does not consult any store.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av.Name == bv.Name
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	case Function:
		bv, ok := b.(Function)
		if !ok || len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if !Equal(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return Equal(av.Return, bv.Return)
	case Pair:
		bv, ok := b.(Pair)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	case List:
		bv, ok := b.(List)
		return ok && Equal(av.Element, bv.Element)
	case Array:
		bv, ok := b.(Array)
		return ok && Equal(av.Element, bv.Element)
	default:
		return false
	}
}

// Contains reports whether variable v occurs anywhere inside t.
func Contains(t Term, v Variable) bool {
	for _, fv := range FreeVariables(t) {
		if fv.Name == v.Name {
			return true
		}
	}
	return false
}
