package graph

import "github.com/birdduck/regraph/attrs"

// MergeNodes merges the non-empty set ids into a single node newID:
// the union of their attributes, and the union of their in/out edges
// with attribute union on duplicates (spec.md §3's merge primitive).
// newID may equal one of ids (merging "into" an existing id) or be a
// fresh id; if newID is not already one of ids it is created.
//
// The merged node's edges are every edge that was incident to any node
// in ids, redirected to newID; an edge between two merged nodes becomes
// a self-loop on newID; two redirected edges landing on the same
// (from, to) pair after merging are coalesced by attribute union, so
// the graph keeps at most one edge per ordered pair.
func (g *Graph) MergeNodes(ids []string, newID string) (string, error) {
	if len(ids) == 0 {
		return "", errEmptyMergeSet()
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	merging := make(map[string]bool, len(ids))
	var merged attrs.Dict
	for _, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			return "", errNodeNotFound(id)
		}
		merging[id] = true
		if merged == nil {
			merged = n.Attrs.Clone()
		} else {
			u, err := attrs.Union(merged, n.Attrs)
			if err != nil {
				return "", err
			}
			merged = u
		}
	}

	// Collect every incident edge before mutating anything, keyed by
	// its (redirected) endpoints so duplicates coalesce deterministically.
	type key struct{ from, to string }
	outEdges := make(map[key]attrs.Dict)
	redirect := func(id string) string {
		if merging[id] {
			return newID
		}
		return id
	}
	for _, id := range ids {
		for to, e := range g.out[id] {
			k := key{newID, redirect(to)}
			if cur, ok := outEdges[k]; ok {
				u, err := attrs.Union(cur, e.Attrs)
				if err != nil {
					return "", err
				}
				outEdges[k] = u
			} else {
				outEdges[k] = e.Attrs.Clone()
			}
		}
		for from, e := range g.in[id] {
			k := key{redirect(from), newID}
			if cur, ok := outEdges[k]; ok {
				u, err := attrs.Union(cur, e.Attrs)
				if err != nil {
					return "", err
				}
				outEdges[k] = u
			} else {
				outEdges[k] = e.Attrs.Clone()
			}
		}
	}

	// Remove the merged-away nodes (and their edges) now that edges are captured.
	for _, id := range ids {
		if id == newID {
			continue
		}
		g.removeNodeLocked(id)
	}
	// Ensure newID exists with the merged attrs (fresh, or reusing one of ids).
	g.nodes[newID] = &Node{ID: newID, Attrs: merged}
	if g.out[newID] == nil {
		g.out[newID] = make(map[string]*Edge)
	}
	if g.in[newID] == nil {
		g.in[newID] = make(map[string]*Edge)
	}

	for k, a := range outEdges {
		ne := &Edge{From: k.from, To: k.to, Attrs: a}
		g.out[k.from][k.to] = ne
		g.in[k.to][k.from] = ne
	}

	return newID, nil
}
