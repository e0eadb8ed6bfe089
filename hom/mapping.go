// Package hom implements the partial and total maps that appear
// pervasively in the specification — instance maps, typings, the spans
// of a Rule — as a compact {src → tgt} value type (spec.md §9's "Map
// representation" design note) with explicit domain checks rather than
// sparse/optional codomains.
package hom

import "sort"

// Mapping is a finite partial map from source node ids to target node
// ids. The zero value is the empty map; Mapping is a plain map type so
// callers may construct it with a literal.
type Mapping map[string]string

// New builds a Mapping with capacity hint n.
func New(n int) Mapping { return make(Mapping, n) }

// Identity returns the identity mapping over ids.
func Identity(ids []string) Mapping {
	m := make(Mapping, len(ids))
	for _, id := range ids {
		m[id] = id
	}
	return m
}

// Domain returns the mapping's domain, sorted.
func (m Mapping) Domain() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsTotal reports whether every id in universe is in m's domain.
func (m Mapping) IsTotal(universe []string) bool {
	for _, id := range universe {
		if _, ok := m[id]; !ok {
			return false
		}
	}
	return true
}

// IsMono reports whether m is injective: no two distinct domain
// elements share an image.
func (m Mapping) IsMono() bool {
	seen := make(map[string]struct{}, len(m))
	for _, v := range m {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Preimage returns every source id that maps to tgt, sorted.
func (m Mapping) Preimage(tgt string) []string {
	var out []string
	for k, v := range m {
		if v == tgt {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Image returns the distinct set of target ids hit by m, sorted.
func (m Mapping) Image() []string {
	seen := make(map[string]struct{}, len(m))
	for _, v := range m {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Compose returns n∘m: the map x ↦ n(m(x)), defined over every x in
// m's domain whose image m(x) is in n's domain. ok is false if some
// m(x) is missing from n's domain (not composable).
func (m Mapping) Compose(n Mapping) (composed Mapping, ok bool) {
	out := make(Mapping, len(m))
	for src, mid := range m {
		tgt, present := n[mid]
		if !present {
			return nil, false
		}
		out[src] = tgt
	}
	return out, true
}

// Restrict returns the sub-map of m defined on exactly the given keys
// (keys absent from m's domain are skipped).
func (m Mapping) Restrict(keys []string) Mapping {
	out := make(Mapping, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Clone returns an independent copy.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether m and n have identical domain and agree on it.
func (m Mapping) Equal(n Mapping) bool {
	if len(m) != len(n) {
		return false
	}
	for k, v := range m {
		if nv, ok := n[k]; !ok || nv != v {
			return false
		}
	}
	return true
}

// Agrees reports whether m and n agree on their common domain — used
// by the commutativity check (spec.md §3 invariant 2, §4.2's
// edge-acceptance step 3) which only needs agreement where both paths
// are defined over the same source set.
func (m Mapping) Agrees(n Mapping) bool {
	for k, v := range m {
		if nv, ok := n[k]; ok && nv != v {
			return false
		}
	}
	return true
}
