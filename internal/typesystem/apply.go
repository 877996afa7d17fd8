package typesystem

// Apply is the canonical form operator: it recursively rewrites t by
// following every variable through store, then runs the two list-folding
// normalisation rewrites post-order on every Pair/List it produces. It may
// extend store (the normalisation rule that unifies every
// element of a folded list does so by calling AddConstraint), and it can
// fail with a CyclicError if following a variable would recurse outside the
// legal cyclic-list shape.
func Apply(t Term, s *Store) (Term, error) {
	return applyVisited(t, s, map[string]bool{})
}

func applyVisited(t Term, s *Store, visited map[string]bool) (Term, error) {
	switch tt := t.(type) {
	case Primitive:
		return tt, nil

	case Variable:
		if visited[tt.Name] {
			if rhs, ok := s.Lookup(tt.Name); ok && isListFoldShape(rhs) {
				return tt, nil
			}
			return nil, &CyclicError{Variable: tt, Term: t}
		}
		rhs, ok := s.Lookup(tt.Name)
		if !ok {
			return tt, nil
		}
		nv := copyVisited(visited)
		nv[tt.Name] = true
		return applyVisited(rhs, s, nv)

	case Array:
		el, err := applyVisited(tt.Element, s, visited)
		if err != nil {
			return nil, err
		}
		return Array{Element: el}, nil

	case Function:
		params := make([]Term, len(tt.Params))
		for i, p := range tt.Params {
			ap, err := applyVisited(p, s, visited)
			if err != nil {
				return nil, err
			}
			params[i] = ap
		}
		ret, err := applyVisited(tt.Return, s, visited)
		if err != nil {
			return nil, err
		}
		return Function{Params: params, Return: ret}, nil

	case List:
		el, err := applyVisited(tt.Element, s, visited)
		if err != nil {
			return nil, err
		}
		// Unroll the recursive definition one step for display-friendliness.
		return Pair{Head: el, Tail: List{Element: el}}, nil

	case Pair:
		h, err := applyVisited(tt.Head, s, visited)
		if err != nil {
			return nil, err
		}
		tl, err := applyVisited(tt.Tail, s, visited)
		if err != nil {
			return nil, err
		}
		return normalizePair(Pair{Head: h, Tail: tl}, s)

	default:
		return tt, nil
	}
}

// normalizePair implements the second normalisation rewrite: a shape
// Pair(h1, Pair(h2, List(h3))) records that every element of a list must be
// identical, so it adds h2 = h3 and h2 = h1 to the store and returns the
// (re-applied) tail Pair(h2, List(h3)).
func normalizePair(p Pair, s *Store) (Term, error) {
	inner, ok := p.Tail.(Pair)
	if !ok {
		return p, nil
	}
	lst, ok := inner.Tail.(List)
	if !ok {
		return p, nil
	}
	h1, h2, h3 := p.Head, inner.Head, lst.Element
	if err := AddConstraint(s, h2, h3); err != nil {
		return nil, err
	}
	if err := AddConstraint(s, h2, h1); err != nil {
		return nil, err
	}
	// h2, h3 and h1 are now unified; resolve the shared element once and
	// rebuild the canonical Pair(elem, List(elem)) directly rather than
	// re-running normalisation on the same shape (which would recurse
	// forever, since that shape is exactly what this function matches).
	elem, err := applyVisited(h2, s, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return Pair{Head: elem, Tail: List{Element: elem}}, nil
}

// isListFoldShape reports whether t is a List, or a Pair whose tail is
// (transitively) a List — the shape the occurs-check invariant legalises
// as a cyclic list rather than rejecting as a cyclic type.
func isListFoldShape(t Term) bool {
	switch tt := t.(type) {
	case List:
		return true
	case Pair:
		return isListFoldShape(tt.Tail)
	default:
		return false
	}
}

func copyVisited(m map[string]bool) map[string]bool {
	nv := make(map[string]bool, len(m)+1)
	for k, v := range m {
		nv[k] = v
	}
	return nv
}
