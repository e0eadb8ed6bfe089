package hierarchy

import (
	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// UniqueGraphID returns a graph id starting from prefix that does not
// yet name a graph in the hierarchy, using the same tie-break rule as
// graph.Graph.FreshNodeID.
func (h *Hierarchy) UniqueGraphID(prefix string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return graph.FreshID(prefix, h.hasIDLocked)
}

// CopyGraph duplicates graphID's graph and attrs under newID, and
// duplicates every typing and relation incident to graphID so that
// newID sits in the hierarchy exactly where graphID does. Because the
// copy preserves node ids verbatim, the duplicated typings reuse the
// original mappings unchanged.
func (h *Hierarchy) CopyGraph(graphID, newID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	src, ok := h.graphs[graphID]
	if !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	if h.hasIDLocked(newID) {
		return rgerrors.Hierarchy("graph id %q already in use", newID)
	}

	h.graphs[newID] = src.Clone()
	h.graphAttrs[newID] = h.graphAttrs[graphID].Clone()
	h.typings[newID] = make(map[string]hom.Mapping)
	h.typingAttrs[newID] = make(map[string]attrs.Dict)

	for t, m := range h.typings[graphID] {
		h.typings[newID][t] = m.Clone()
		h.typingAttrs[newID][t] = h.typingAttrs[graphID][t].Clone()
	}
	for _, s := range h.predecessorsLocked(graphID) {
		m := h.typings[s][graphID]
		h.typings[s][newID] = m.Clone()
		h.typingAttrs[s][newID] = h.typingAttrs[s][graphID].Clone()
	}
	for key, r := range h.relations {
		var other string
		switch graphID {
		case key.u:
			other = key.v
		case key.v:
			other = key.u
		default:
			continue
		}
		newKey := newRelKey(newID, other)
		rel := cloneRelMap(r.rel)
		if (key.u == graphID) != (newKey.u == newID) {
			flipped := make(map[string]map[string]struct{})
			for from, tos := range rel {
				for to := range tos {
					if flipped[to] == nil {
						flipped[to] = make(map[string]struct{})
					}
					flipped[to][from] = struct{}{}
				}
			}
			rel = flipped
		}
		h.relations[newKey] = &relation{rel: rel, attrs: r.attrs.Clone()}
	}
	return nil
}

// DuplicateSubgraph inserts a new graph under newID containing the
// induced subgraph of graphID on nodes, with an inclusion typing
// newID -> graphID mapping each copied node to itself.
func (h *Hierarchy) DuplicateSubgraph(graphID string, nodes []string, newID string) error {
	h.mu.Lock()

	src, ok := h.graphs[graphID]
	if !ok {
		h.mu.Unlock()
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	if h.hasIDLocked(newID) {
		h.mu.Unlock()
		return rgerrors.Hierarchy("graph id %q already in use", newID)
	}

	sub := graph.New()
	nodeSet := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = true
		node := src.Node(n)
		if node == nil {
			h.mu.Unlock()
			return rgerrors.Hierarchy("node %q not found in graph %q", n, graphID)
		}
		if err := sub.AddNode(n, node.Attrs); err != nil {
			h.mu.Unlock()
			return rgerrors.Wrap(rgerrors.KindHierarchy, err, "duplicating subgraph of %q", graphID)
		}
	}
	for _, e := range src.Edges() {
		if nodeSet[e.From] && nodeSet[e.To] {
			if err := sub.AddEdge(e.From, e.To, e.Attrs); err != nil {
				h.mu.Unlock()
				return rgerrors.Wrap(rgerrors.KindHierarchy, err, "duplicating subgraph of %q", graphID)
			}
		}
	}
	h.mu.Unlock()

	if err := h.AddGraph(newID, sub, attrs.Dict{}); err != nil {
		return err
	}
	return h.AddTyping(newID, graphID, hom.Identity(sub.Nodes()), attrs.Dict{})
}

func cloneRelMap(r map[string]map[string]struct{}) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(r))
	for k, set := range r {
		s := make(map[string]struct{}, len(set))
		for v := range set {
			s[v] = struct{}{}
		}
		out[k] = s
	}
	return out
}
