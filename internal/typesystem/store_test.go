package typesystem

import "testing"

func TestAddConstraintPrimitiveNoOp(t *testing.T) {
	s := NewStore()
	if err := AddConstraint(s, Primitive{Name: Number}, Primitive{Name: Number}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("expected no entries, got %v", s.Entries())
	}
}

func TestAddConstraintPrimitiveMismatch(t *testing.T) {
	s := NewStore()
	err := AddConstraint(s, Primitive{Name: Number}, Primitive{Name: Boolean})
	if _, ok := err.(*UnifyError); !ok {
		t.Fatalf("expected *UnifyError, got %v", err)
	}
}

func TestAddConstraintVariableBinds(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1"}
	if err := AddConstraint(s, v, Primitive{Name: Number}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := s.Lookup("t1")
	if !ok || !Equal(got, Primitive{Name: Number}) {
		t.Fatalf("expected t1 = number, got %v, %v", got, ok)
	}
}

func TestAddableRejectsBoolean(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1", Kind: KindAddable}
	err := AddConstraint(s, v, Primitive{Name: Boolean})
	if _, ok := err.(*UnifyError); !ok {
		t.Fatalf("expected *UnifyError for addable/boolean, got %v", err)
	}
}

func TestAddableAcceptsNumberAndString(t *testing.T) {
	for _, p := range []Primitive{{Name: Number}, {Name: String}} {
		s := NewStore()
		v := Variable{Name: "t1", Kind: KindAddable}
		if err := AddConstraint(s, v, p); err != nil {
			t.Fatalf("addable should accept %v: %v", p, err)
		}
	}
}

func TestAddableKindWidensWeakerVariable(t *testing.T) {
	s := NewStore()
	a := Variable{Name: "a", Kind: KindAddable}
	b := Variable{Name: "b", Kind: KindNone}
	if err := AddConstraint(s, a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := s.Lookup("a")
	if !ok {
		t.Fatalf("expected a bound")
	}
	bound, ok := got.(Variable)
	if !ok || bound.Kind != KindAddable {
		t.Fatalf("expected a bound to addable variable b, got %v", got)
	}
}

func TestOccursCheckRejectsNonListCycle(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1"}
	// t1 = Array<t1> is not a legal cyclic-list shape.
	err := AddConstraint(s, v, Array{Element: v})
	if _, ok := err.(*CyclicError); !ok {
		t.Fatalf("expected *CyclicError, got %v", err)
	}
}

func TestOccursCheckRescuesPairShapeIntoList(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1"}
	// t1 = Pair(number, t1) legalises into t1 = List(number).
	err := AddConstraint(s, v, Pair{Head: Primitive{Name: Number}, Tail: v})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := s.Lookup("t1")
	if !ok {
		t.Fatalf("expected t1 bound")
	}
	lst, ok := got.(List)
	if !ok || !Equal(lst.Element, Primitive{Name: Number}) {
		t.Fatalf("expected t1 = List<number>, got %v", got)
	}
}

func TestOccursCheckRescuesDoublePairShape(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1"}
	inner := Pair{Head: Primitive{Name: Number}, Tail: v}
	err := AddConstraint(s, v, Pair{Head: Primitive{Name: Number}, Tail: inner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Lookup("t1")
	if _, ok := got.(List); !ok {
		t.Fatalf("expected t1 bound to a List, got %v", got)
	}
}

func TestListVsPairUnification(t *testing.T) {
	s := NewStore()
	e := Variable{Name: "e"}
	l := List{Element: e}
	h := Variable{Name: "h"}
	tl := Variable{Name: "tl"}
	p := Pair{Head: h, Tail: tl}
	if err := AddConstraint(s, l, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// h should unify with e, tl with the list itself.
	hResolved, _ := s.Lookup("h")
	if hResolved == nil {
		if hResolved2, ok := s.Lookup("e"); ok {
			_ = hResolved2
		}
	}
	// Either h is bound to e, or e bound to h — either way applying h should equal applying e.
	appliedH, err := Apply(h, s)
	if err != nil {
		t.Fatalf("apply h: %v", err)
	}
	appliedE, err := Apply(e, s)
	if err != nil {
		t.Fatalf("apply e: %v", err)
	}
	if !Equal(appliedH, appliedE) {
		t.Fatalf("expected h and e to resolve identically, got %v vs %v", appliedH, appliedE)
	}
}

func TestFunctionArityMismatch(t *testing.T) {
	s := NewStore()
	lhs := Function{Params: []Term{Primitive{Name: Number}}, Return: Primitive{Name: Boolean}}
	rhs := Function{Params: []Term{Primitive{Name: Number}, Primitive{Name: Number}}, Return: Primitive{Name: Boolean}}
	err := AddConstraint(s, lhs, rhs)
	ae, ok := err.(*ArityError)
	if !ok {
		t.Fatalf("expected *ArityError, got %v", err)
	}
	if ae.Expected != 1 || ae.Received != 2 {
		t.Fatalf("unexpected arities: %+v", ae)
	}
}

func TestFailedConstraintLeavesStoreUnchanged(t *testing.T) {
	s := NewStore()
	v := Variable{Name: "t1"}
	if err := AddConstraint(s, v, Primitive{Name: Number}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(s.Entries())
	// t1 is already number; binding it to boolean should fail and not mutate the store.
	_ = AddConstraint(s, v, Primitive{Name: Boolean})
	if len(s.Entries()) != before {
		t.Fatalf("store should be unchanged after failed constraint")
	}
}
