package analyzer

import "github.com/sourcetype/srctc/internal/typesystem"

// NewGlobalEnvironment builds the initial environment every TypeCheck run
// starts from: mathematical constants, math_* functions, the pair/list
// primitives that give this language its folding behaviour, and the array
// builtins, installed as ordinary bindings in the root scope rather than as
// special forms the inferencer has to recognise by name.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	num := typesystem.Primitive{Name: typesystem.Number}
	boolean := typesystem.Primitive{Name: typesystem.Boolean}

	env.Define("math_pi", typesystem.FromTerm(num), true)
	env.Define("math_e", typesystem.FromTerm(num), true)

	unaryNum := typesystem.ForAll{Term: typesystem.Function{Params: []typesystem.Term{num}, Return: num}}
	for _, name := range []string{"math_sqrt", "math_abs", "math_floor", "math_ceil", "math_round", "math_sin", "math_cos", "math_log", "math_exp"} {
		env.Define(name, typesystem.FromSchema(unaryNum), true)
	}

	binaryNum := typesystem.ForAll{Term: typesystem.Function{Params: []typesystem.Term{num, num}, Return: num}}
	env.Define("math_pow", typesystem.FromSchema(binaryNum), true)

	// math_hypot/math_max/math_min are call-site variadic: the Function term
	// has a fixed-arity parameter list, so rather than extend the term
	// algebra for three builtins, CallExpression inference special-cases
	// these three names (VariadicBuiltins) and unifies every actual argument
	// with the declared single parameter.
	variadicNum := typesystem.ForAll{Term: typesystem.Function{Params: []typesystem.Term{num}, Return: num}}
	env.Define("math_hypot", typesystem.FromSchema(variadicNum), true)
	env.Define("math_max", typesystem.FromSchema(variadicNum), true)
	env.Define("math_min", typesystem.FromSchema(variadicNum), true)

	// pair/head/tail/set_head/set_tail/is_null/list give the language its
	// automatic pair/list folding: head/tail/set_head/set_tail all thread
	// the same element variable so the folding rewrite in typesystem.Apply
	// can collapse a chain of pairs into a uniform List.
	c := &typesystem.Counter{}
	h, t := c.Fresh(typesystem.KindNone), c.Fresh(typesystem.KindNone)
	pairSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{h, t},
		Return: typesystem.Pair{Head: h, Tail: t},
	})
	env.Define("pair", pairSchema, true)

	e := c.Fresh(typesystem.KindNone)
	headSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Pair{Head: e, Tail: c.Fresh(typesystem.KindNone)}},
		Return: e,
	})
	env.Define("head", headSchema, true)

	e2, tailVar := c.Fresh(typesystem.KindNone), c.Fresh(typesystem.KindNone)
	tailSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Pair{Head: e2, Tail: tailVar}},
		Return: tailVar,
	})
	env.Define("tail", tailSchema, true)

	ph, pt := c.Fresh(typesystem.KindNone), c.Fresh(typesystem.KindNone)
	setHeadSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Pair{Head: ph, Tail: pt}, ph},
		Return: typesystem.Primitive{Name: typesystem.Undefined},
	})
	env.Define("set_head", setHeadSchema, true)

	sh, st := c.Fresh(typesystem.KindNone), c.Fresh(typesystem.KindNone)
	setTailSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Pair{Head: sh, Tail: st}, st},
		Return: typesystem.Primitive{Name: typesystem.Undefined},
	})
	env.Define("set_tail", setTailSchema, true)

	anyForIsNull := c.Fresh(typesystem.KindNone)
	isNullSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{anyForIsNull},
		Return: boolean,
	})
	env.Define("is_null", isNullSchema, true)

	listElem := c.Fresh(typesystem.KindNone)
	listSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{listElem},
		Return: typesystem.List{Element: listElem},
	})
	env.Define("list", listSchema, true)

	arrElem := c.Fresh(typesystem.KindNone)
	arrayLenSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Array{Element: arrElem}},
		Return: num,
	})
	env.Define("array_length", arrayLenSchema, true)

	getElem := c.Fresh(typesystem.KindNone)
	arrayGetSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Array{Element: getElem}, num},
		Return: getElem,
	})
	env.Define("array_get", arrayGetSchema, true)

	setElem := c.Fresh(typesystem.KindNone)
	arraySetSchema := typesystem.Generalize(typesystem.Function{
		Params: []typesystem.Term{typesystem.Array{Element: setElem}, num, setElem},
		Return: typesystem.Array{Element: setElem},
	})
	env.Define("array_set", arraySetSchema, true)

	return env
}

// VariadicBuiltins names the builtins whose real arity is determined by the
// call site rather than their declared schema: they accept any number of
// number-typed arguments and return a number.
var VariadicBuiltins = map[string]bool{
	"math_hypot": true,
	"math_max":   true,
	"math_min":   true,
}
