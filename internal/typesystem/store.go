package typesystem

// entry is one solved-form equation: Var resolves to Term, modulo further
// variables inside Term, which are looked up by re-entering the store from
// the beginning.
type entry struct {
	Var  Variable
	Term Term
}

// Store is the ordered sequence of (Variable, Term) equations accumulated
// while solving one program's constraints. It is deliberately a list, not a
// map: the list-folding rewrite in Apply depends on earlier entries being
// visible before later ones, and first-wins lookup is cheap enough over the
// sizes a single program produces. The store is mutated in place by
// AddConstraint, which leaves s.entries untouched on any error path rather
// than returning a new store value.
type Store struct {
	entries []entry
}

// NewStore returns an empty constraint store.
func NewStore() *Store {
	return &Store{}
}

// Lookup returns the first entry binding the variable named name, scanning
// from the beginning so that first-wins is honoured.
func (s *Store) Lookup(name string) (Term, bool) {
	for _, e := range s.entries {
		if e.Var.Name == name {
			return e.Term, true
		}
	}
	return nil, false
}

// Entries returns the accumulated equations in insertion order. Used by
// tests that check soundness (apply(store) to both sides of every stored
// equation yields identical terms) and by the resolution pass's iteration.
func (s *Store) Entries() []struct {
	Var  Variable
	Term Term
} {
	out := make([]struct {
		Var  Variable
		Term Term
	}, len(s.entries))
	for i, e := range s.entries {
		out[i] = struct {
			Var  Variable
			Term Term
		}{Var: e.Var, Term: e.Term}
	}
	return out
}

func (s *Store) bind(v Variable, t Term) {
	s.entries = append(s.entries, entry{Var: v, Term: t})
}

// AddConstraint attempts to extend the store with the equation lhs = rhs,
// applying unification's structural rules in order, one per term shape pair.
// On success it returns nil and the store now contains whatever new
// equations were needed to solve the constraint; on failure the store is
// left exactly as it was before the call.
func AddConstraint(s *Store, lhs, rhs Term) (err error) {
	// Entries are only ever appended, so truncating back to the length on
	// entry undoes any bindings a compound rule made before failing.
	mark := len(s.entries)
	defer func() {
		if err != nil {
			s.entries = s.entries[:mark]
		}
	}()

	// Rule 1: two identical primitives.
	if lp, ok := lhs.(Primitive); ok {
		if rp, ok := rhs.(Primitive); ok {
			if lp.Name == rp.Name {
				return nil
			}
		}
	}

	// Rule 2: two Arrays.
	if la, ok := lhs.(Array); ok {
		if ra, ok := rhs.(Array); ok {
			return AddConstraint(s, la.Element, ra.Element)
		}
	}

	// Rule 3: two Lists.
	if ll, ok := lhs.(List); ok {
		if rl, ok := rhs.(List); ok {
			return AddConstraint(s, ll.Element, rl.Element)
		}
	}

	// Rules 4-5: Pair vs List, either order. Rewritten as List = Pair, then
	// "List L with element e vs Pair P: add P = Pair(e, L)" — implemented by
	// recursing into the Pair/Pair rule (6) against a freshly built
	// Pair(e, L), which pins the pair's head to e and its tail to the list
	// itself (the one-step unfolding of a recursive list).
	if ll, ok := lhs.(List); ok {
		if rp, ok := rhs.(Pair); ok {
			return AddConstraint(s, rp, Pair{Head: ll.Element, Tail: ll})
		}
	}
	if lp, ok := lhs.(Pair); ok {
		if rl, ok := rhs.(List); ok {
			return AddConstraint(s, lp, Pair{Head: rl.Element, Tail: rl})
		}
	}

	// Rule 6: two Pairs.
	if lp, ok := lhs.(Pair); ok {
		if rp, ok := rhs.(Pair); ok {
			if err := AddConstraint(s, lp.Head, rp.Head); err != nil {
				return err
			}
			return AddConstraint(s, lp.Tail, rp.Tail)
		}
	}

	// Rule 7: Variable on the left.
	if v, ok := lhs.(Variable); ok {
		return bindVariable(s, v, rhs)
	}

	// Rule 8: Variable on the right only.
	if v, ok := rhs.(Variable); ok {
		return bindVariable(s, v, lhs)
	}

	// Rule 9: two Functions.
	if lf, ok := lhs.(Function); ok {
		if rf, ok := rhs.(Function); ok {
			if len(lf.Params) != len(rf.Params) {
				return &ArityError{Expected: len(lf.Params), Received: len(rf.Params)}
			}
			for i := range lf.Params {
				if err := AddConstraint(s, lf.Params[i], rf.Params[i]); err != nil {
					return err
				}
			}
			return AddConstraint(s, lf.Return, rf.Return)
		}
	}

	// Rule 10: anything else.
	return &UnifyError{Left: lhs, Right: rhs}
}

// bindVariable implements rule 7 in full, including the cyclic-list rescue,
// the addable-kind check, the shortcut through an existing solution, and the
// kind-widening transfer when binding one variable to a weaker-kinded one.
func bindVariable(s *Store, v Variable, rhs Term) error {
	if rv, ok := rhs.(Variable); ok && rv.Name == v.Name {
		return nil
	}

	if Contains(rhs, v) {
		if rescued, ok := cyclicListRescue(v, rhs); ok {
			return bindVariable(s, v, rescued)
		}
		return &CyclicError{Variable: v, Term: rhs}
	}

	if v.Kind == KindAddable {
		if p, ok := rhs.(Primitive); ok && p.Name != Number && p.Name != String {
			return &UnifyError{Left: v, Right: rhs}
		}
	}

	if existing, ok := s.Lookup(v.Name); ok {
		return AddConstraint(s, rhs, existing)
	}

	if rv, ok := rhs.(Variable); ok && v.Kind == KindAddable && rv.Kind == KindNone {
		rhs = Variable{Name: rv.Name, Kind: KindAddable}
	}

	// A List is stored as a List with its element substituted, not in the
	// unrolled Pair(e, List(e)) form Apply gives it, so the cyclic-list
	// rescue leaves the binding v = List(h).
	if l, ok := rhs.(List); ok {
		el, err := Apply(l.Element, s)
		if err != nil {
			return err
		}
		s.bind(v, List{Element: el})
		return nil
	}

	applied, err := Apply(rhs, s)
	if err != nil {
		return err
	}
	s.bind(v, applied)
	return nil
}

// cyclicListRescue recognises the two shapes this checker legalises instead
// of rejecting outright: Pair(h, v) and Pair(h, Pair(_, v)). Both describe a
// would-be cyclic pair that is actually an infinite, uniform list; the
// rescue rewrites the binding to v = List(h).
func cyclicListRescue(v Variable, rhs Term) (Term, bool) {
	p, ok := rhs.(Pair)
	if !ok {
		return nil, false
	}
	if tv, ok := p.Tail.(Variable); ok && tv.Name == v.Name {
		return List{Element: p.Head}, true
	}
	if inner, ok := p.Tail.(Pair); ok {
		if tv, ok := inner.Tail.(Variable); ok && tv.Name == v.Name {
			return List{Element: p.Head}, true
		}
	}
	return nil, false
}
