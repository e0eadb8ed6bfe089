package hierarchy

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// SetGraph replaces the content of an existing graph id in place,
// leaving its attribute dict, typings and relations attached
// (unlike RemoveGraph+AddGraph, which drops them). Exported for the
// rewrite/propagate engines (package rewrite, package propagate),
// which must swap in a rule-transformed graph under its original id
// without disturbing the DAG edges around it.
func (h *Hierarchy) SetGraph(graphID string, g *graph.Graph) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.graphs[graphID]; !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	h.graphs[graphID] = g
	return nil
}

// ReplaceTyping overwrites the mapping of an existing s->t typing edge
// after validating it is still a homomorphism against the current
// graph content. Unlike AddTyping it does not re-run the cycle or
// commutativity checks: it is for repairing an edge the propagation
// engine already owns, not for introducing a new one.
func (h *Hierarchy) ReplaceTyping(s, t string, m hom.Mapping) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.typings[s][t]; !ok {
		return rgerrors.Hierarchy("typing %q -> %q not found", s, t)
	}
	if err := hom.CheckHomomorphism(h.graphs[s], h.graphs[t], m); err != nil {
		return err
	}
	h.typings[s][t] = m.Clone()
	return nil
}

// GraphsSnapshot returns the live *graph.Graph for every id, keyed by
// id, without cloning — used internally by propagate/rewrite which
// already hold the hierarchy's exclusive write access during a
// rewrite (spec.md §5's single-writer model).
func (h *Hierarchy) GraphsSnapshot() map[string]*graph.Graph {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]*graph.Graph, len(h.graphs))
	for id, g := range h.graphs {
		out[id] = g
	}
	return out
}

// TypingsSnapshot returns the live typing mappings, keyed by (s,t),
// without cloning.
func (h *Hierarchy) TypingsSnapshot() map[[2]string]hom.Mapping {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[[2]string]hom.Mapping)
	for s, row := range h.typings {
		for t, m := range row {
			out[[2]string{s, t}] = m
		}
	}
	return out
}
