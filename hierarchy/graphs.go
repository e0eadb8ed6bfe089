package hierarchy

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// AddEmptyGraph inserts a fresh, empty graph under graphID.
func (h *Hierarchy) AddEmptyGraph(graphID string, graphAttrs attrs.Dict) error {
	return h.AddGraph(graphID, graph.New(), graphAttrs)
}

// AddGraph inserts g under graphID. graphID must not already name a
// graph in the hierarchy.
func (h *Hierarchy) AddGraph(graphID string, g *graph.Graph, graphAttrs attrs.Dict) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.hasIDLocked(graphID) {
		return rgerrors.Hierarchy("graph id %q already in use", graphID)
	}
	h.graphs[graphID] = g
	h.graphAttrs[graphID] = graphAttrs.Clone()
	h.typings[graphID] = make(map[string]hom.Mapping)
	return nil
}

// AddGraphFromData builds a graph from node ids (with optional attrs)
// and (from,to) edges, then inserts it under graphID. It mirrors the
// hierarchy constructors in the original implementation that accept
// raw node/edge lists rather than a pre-built graph.Graph.
func (h *Hierarchy) AddGraphFromData(graphID string, nodes []string, nodeAttrs map[string]attrs.Dict, edges [][2]string, graphAttrs attrs.Dict) error {
	g := graph.New()
	for _, n := range nodes {
		if err := g.AddNode(n, nodeAttrs[n]); err != nil {
			return rgerrors.Wrap(rgerrors.KindHierarchy, err, "building graph %q", graphID)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], nil); err != nil {
			return rgerrors.Wrap(rgerrors.KindHierarchy, err, "building graph %q", graphID)
		}
	}
	return h.AddGraph(graphID, g, graphAttrs)
}

// RemoveGraph deletes graphID and every typing/relation incident to
// it. If reconnect is true, every pair of typings s->graphID->t is
// replaced by a single composed typing s->t (skipped when one already
// exists), preserving ancestor/descendant reachability through the
// removed node.
func (h *Hierarchy) RemoveGraph(graphID string, reconnect bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.graphs[graphID]; !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}

	if reconnect {
		preds := h.predecessorsLocked(graphID)
		succs := make([]string, 0, len(h.typings[graphID]))
		for t := range h.typings[graphID] {
			succs = append(succs, t)
		}
		for _, s := range preds {
			for _, t := range succs {
				if _, exists := h.typings[s][t]; exists {
					continue
				}
				composed, ok := h.typings[s][graphID].Compose(h.typings[graphID][t])
				if !ok {
					continue
				}
				h.typings[s][t] = composed
				h.typingAttrs[s][t] = attrs.Dict{}
			}
		}
	}

	for s := range h.typings {
		delete(h.typings[s], graphID)
		if h.typingAttrs[s] != nil {
			delete(h.typingAttrs[s], graphID)
		}
	}
	delete(h.typings, graphID)
	delete(h.typingAttrs, graphID)
	delete(h.graphs, graphID)
	delete(h.graphAttrs, graphID)

	for key := range h.relations {
		if key.u == graphID || key.v == graphID {
			delete(h.relations, key)
		}
	}
	return nil
}

// GetGraph returns the graph stored under graphID, or nil if absent.
func (h *Hierarchy) GetGraph(graphID string) *graph.Graph {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.graphs[graphID]
}

// Graphs returns the sorted list of graph ids in the hierarchy.
func (h *Hierarchy) Graphs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.graphs))
	for id := range h.graphs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// GetGraphAttrs returns a clone of graphID's attribute dictionary.
func (h *Hierarchy) GetGraphAttrs(graphID string) (attrs.Dict, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.graphAttrs[graphID]
	if !ok {
		return nil, rgerrors.Hierarchy("graph %q not found", graphID)
	}
	return a.Clone(), nil
}

// SetGraphAttrs replaces graphID's attribute dictionary.
func (h *Hierarchy) SetGraphAttrs(graphID string, a attrs.Dict) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.graphAttrs[graphID]; !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	h.graphAttrs[graphID] = a.Clone()
	return nil
}

// hasIDLocked reports whether id already names a graph (the id space
// for graphs is shared across the hierarchy; typings/relations are
// addressed by graph-id pairs, not their own ids).
func (h *Hierarchy) hasIDLocked(id string) bool {
	_, ok := h.graphs[id]
	return ok
}
