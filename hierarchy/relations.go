package hierarchy

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/rgerrors"
)

// AddRelation inserts an undirected relation between graphs a and b.
// rel maps a-node ids to the set of b-node ids they relate to; it need
// not be symmetric as supplied — the symmetric view is derived when
// queried from b's side.
func (h *Hierarchy) AddRelation(a, b string, rel map[string][]string, relAttrs attrs.Dict) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.graphs[a]; !ok {
		return rgerrors.Hierarchy("graph %q not found", a)
	}
	if _, ok := h.graphs[b]; !ok {
		return rgerrors.Hierarchy("graph %q not found", b)
	}
	key := newRelKey(a, b)
	if _, exists := h.relations[key]; exists {
		return rgerrors.Hierarchy("relation between %q and %q already exists", a, b)
	}

	stored := make(map[string]map[string]struct{})
	// Canonicalize to the key's (u,v) orientation so lookups don't care
	// which side the caller supplied "a" as.
	flip := a != key.u
	for src, dsts := range rel {
		for _, dst := range dsts {
			from, to := src, dst
			if flip {
				from, to = dst, src
			}
			if stored[from] == nil {
				stored[from] = make(map[string]struct{})
			}
			stored[from][to] = struct{}{}
		}
	}
	h.relations[key] = &relation{rel: stored, attrs: relAttrs.Clone()}
	return nil
}

// RemoveRelation deletes the relation between a and b, if present.
func (h *Hierarchy) RemoveRelation(a, b string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := newRelKey(a, b)
	if _, ok := h.relations[key]; !ok {
		return nil
	}
	delete(h.relations, key)
	return nil
}

// GetRelation returns, for every node of a, the sorted set of b-nodes
// it relates to (from a's point of view, regardless of which side was
// given as "u" when the relation was added).
func (h *Hierarchy) GetRelation(a, b string) (map[string][]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	key := newRelKey(a, b)
	r, ok := h.relations[key]
	if !ok {
		return nil, rgerrors.Hierarchy("relation between %q and %q not found", a, b)
	}
	out := make(map[string][]string)
	if a == key.u {
		for from, tos := range r.rel {
			out[from] = sortedSetKeys(tos)
		}
	} else {
		for from, tos := range r.rel {
			for to := range tos {
				out[to] = append(out[to], from)
			}
		}
		for k := range out {
			sort.Strings(out[k])
		}
	}
	return out, nil
}

// GetRelationAttrs returns a clone of the a-b relation's attribute dict.
func (h *Hierarchy) GetRelationAttrs(a, b string) (attrs.Dict, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.relations[newRelKey(a, b)]
	if !ok {
		return nil, rgerrors.Hierarchy("relation between %q and %q not found", a, b)
	}
	return r.attrs.Clone(), nil
}

// SetNodeRelation sets the full related-set for node u of graph a
// against graph b, replacing whatever was there before for u.
func (h *Hierarchy) SetNodeRelation(a, u, b string, related []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := newRelKey(a, b)
	r, ok := h.relations[key]
	if !ok {
		return rgerrors.Hierarchy("relation between %q and %q not found", a, b)
	}
	if a == key.u {
		if r.rel[u] == nil {
			r.rel[u] = make(map[string]struct{})
		} else {
			for k := range r.rel[u] {
				delete(r.rel[u], k)
			}
		}
		for _, v := range related {
			r.rel[u][v] = struct{}{}
		}
		return nil
	}
	for from := range r.rel {
		delete(r.rel[from], u)
	}
	for _, v := range related {
		if r.rel[v] == nil {
			r.rel[v] = make(map[string]struct{})
		}
		r.rel[v][u] = struct{}{}
	}
	return nil
}

// AdjacentRelations returns the sorted list of graph ids that graphID
// has a relation with. Supplemented from the original implementation's
// Hierarchy.adjacent_relations, dropped from the distilled spec.
func (h *Hierarchy) AdjacentRelations(graphID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []string
	for key := range h.relations {
		switch graphID {
		case key.u:
			out = append(out, key.v)
		case key.v:
			out = append(out, key.u)
		}
	}
	sort.Strings(out)
	return out
}

// Relations returns every relation's (u, v) pair in the canonical
// orientation AddRelation stored it under, sorted by u then v. Used by
// regraphjson to enumerate relations deterministically without
// exposing the internal relKey/relation types.
func (h *Hierarchy) Relations() [][2]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([][2]string, 0, len(h.relations))
	for key := range h.relations {
		out = append(out, [2]string{key.u, key.v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func sortedSetKeys(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
