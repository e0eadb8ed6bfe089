package attrs

// Dict is an attribute dictionary: name to value-set, attached to a
// node, an edge, a graph, a typing, or a relation (spec.md §3, 𝒜).
type Dict map[string]Set

// Clone returns an independent deep copy.
func (d Dict) Clone() Dict {
	if d == nil {
		return nil
	}
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v.Clone()
	}
	return out
}

// Union returns the per-name union of d and other: for names present in
// both, the value sets are unioned; for names present in only one, the
// value set is carried over unchanged (clone semantics on merge/pushout
// per spec.md §3's "union of attributes").
func Union(d, other Dict) (Dict, error) {
	out := make(Dict, len(d)+len(other))
	for k, v := range d {
		out[k] = v.Clone()
	}
	for k, v := range other {
		if existing, ok := out[k]; ok {
			merged, err := existing.Union(v)
			if err != nil {
				return nil, err
			}
			out[k] = merged
		} else {
			out[k] = v.Clone()
		}
	}
	return out, nil
}

// Intersect returns the per-name intersection: only names present in
// both survive, each holding the intersected value set (used by
// pullback's node/edge attribute rule).
func Intersect(d, other Dict) (Dict, error) {
	out := make(Dict)
	for k, v := range d {
		if o, ok := other[k]; ok {
			inter, err := v.Intersect(o)
			if err != nil {
				return nil, err
			}
			out[k] = inter
		}
	}
	return out, nil
}

// SubsetOf reports whether d ⊆ other: every name in d has a value set
// that is a subset of other's value set for that name (a name absent
// from other fails the check, as does a name with a smaller set there).
// This is the attribute-preservation check a homomorphism must satisfy.
func SubsetOf(d, other Dict) (bool, error) {
	for k, v := range d {
		o, ok := other[k]
		if !ok {
			return false, nil
		}
		sub, err := v.SubsetOf(o)
		if err != nil {
			return false, err
		}
		if !sub {
			return false, nil
		}
	}
	return true, nil
}

// Remove subtracts other from d per-name: a name present in other with
// a FiniteSet/IntegerSet of values is removed from d's set for that
// name; if the resulting set is empty the name itself is dropped. Used
// by attribute-removal propagation (rule-removed attrs, spec.md §4.4).
func Remove(d, other Dict) (Dict, error) {
	out := d.Clone()
	for k, v := range other {
		cur, ok := out[k]
		if !ok {
			continue
		}
		remaining, err := subtract(cur, v)
		if err != nil {
			return nil, err
		}
		if remaining.Len() == 0 {
			delete(out, k)
		} else {
			out[k] = remaining
		}
	}
	return out, nil
}

func subtract(a, b Set) (Set, error) {
	switch av := a.(type) {
	case FiniteSet:
		bv, ok := b.(FiniteSet)
		if !ok {
			return nil, errTypeMismatch(a, b)
		}
		out := make(FiniteSet, len(av))
		for v := range av {
			if _, present := bv[v]; !present {
				out[v] = struct{}{}
			}
		}
		return out, nil
	case IntegerSet:
		bv, ok := b.(IntegerSet)
		if !ok {
			return nil, errTypeMismatch(a, b)
		}
		out := make(IntegerSet, len(av))
		for v := range av {
			if _, present := bv[v]; !present {
				out[v] = struct{}{}
			}
		}
		return out, nil
	default:
		return nil, errTypeMismatch(a, b)
	}
}
