package graph

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/rgerrors"
)

// AddEdge creates (or, if one already exists, attribute-unions into) the
// edge from→to. Endpoints are auto-added if missing, mirroring the
// teacher's AddEdge auto-vertex convenience (core/methods_edges.go).
func (g *Graph) AddEdge(from, to string, a attrs.Dict) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		g.nodes[from] = &Node{ID: from, Attrs: attrs.Dict{}}
		g.out[from] = make(map[string]*Edge)
		g.in[from] = make(map[string]*Edge)
	}
	if _, ok := g.nodes[to]; !ok {
		g.nodes[to] = &Node{ID: to, Attrs: attrs.Dict{}}
		g.out[to] = make(map[string]*Edge)
		g.in[to] = make(map[string]*Edge)
	}

	if e, ok := g.out[from][to]; ok {
		merged, err := attrs.Union(e.Attrs, a)
		if err != nil {
			return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: merging attrs for edge %s->%s", from, to)
		}
		e.Attrs = merged
		return nil
	}

	e := &Edge{From: from, To: to, Attrs: a.Clone()}
	g.out[from][to] = e
	g.in[to][from] = e
	return nil
}

// HasEdge reports whether an edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]
	return ok
}

// Edge returns the edge from→to, or nil if absent.
func (g *Graph) Edge(from, to string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.out[from][to]
}

// RemoveEdge deletes the edge from→to, if present.
func (g *Graph) RemoveEdge(from, to string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.out[from], to)
	delete(g.in[to], from)
}

// Edges returns every edge, ordered by (From, To) for determinism.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0)
	for from, nbrs := range g.out {
		for to := range nbrs {
			out = append(out, nbrs[to])
			_ = from
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// OutNeighbors returns the sorted ids reachable by a single out-edge
// from id.
func (g *Graph) OutNeighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.out[id]))
	for to := range g.out[id] {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// InNeighbors returns the sorted ids with a single edge into id.
func (g *Graph) InNeighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.in[id]))
	for from := range g.in[id] {
		out = append(out, from)
	}
	sort.Strings(out)
	return out
}

// AddEdgeAttrs unions a into the edge's existing attribute dict.
func (g *Graph) AddEdgeAttrs(from, to string, a attrs.Dict) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.out[from][to]
	if !ok {
		return rgerrors.Hierarchy("graph: edge %s->%s not found", from, to)
	}
	merged, err := attrs.Union(e.Attrs, a)
	if err != nil {
		return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: adding attrs to edge %s->%s", from, to)
	}
	e.Attrs = merged
	return nil
}

// RemoveEdgeAttrs subtracts a from the edge's attribute dict.
func (g *Graph) RemoveEdgeAttrs(from, to string, a attrs.Dict) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.out[from][to]
	if !ok {
		return rgerrors.Hierarchy("graph: edge %s->%s not found", from, to)
	}
	remaining, err := attrs.Remove(e.Attrs, a)
	if err != nil {
		return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: removing attrs from edge %s->%s", from, to)
	}
	e.Attrs = remaining
	return nil
}
