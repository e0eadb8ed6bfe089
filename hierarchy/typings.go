package hierarchy

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// AddTyping inserts a typing edge s -> t carrying mapping m: V(s)->V(t).
// It enforces, in order, the three acceptance checks from the
// hierarchy's edge-addition algorithm:
//  1. m must be a valid total homomorphism s -> t.
//  2. the edge must not already exist, and adding it must not close a
//     cycle in the typing DAG.
//  3. if some other path already connects s to t, its composed mapping
//     must agree with m on every node of s (commutativity).
func (h *Hierarchy) AddTyping(s, t string, m hom.Mapping, typingAttrs attrs.Dict) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	src, ok := h.graphs[s]
	if !ok {
		return rgerrors.Hierarchy("graph %q not found", s)
	}
	tgt, ok := h.graphs[t]
	if !ok {
		return rgerrors.Hierarchy("graph %q not found", t)
	}
	if err := hom.CheckHomomorphism(src, tgt, m); err != nil {
		return err
	}

	if _, exists := h.typings[s][t]; exists {
		return rgerrors.Hierarchy("typing %q -> %q already exists", s, t)
	}
	if h.reachableLocked(t, s) {
		return rgerrors.Hierarchy("typing %q -> %q would introduce a cycle", s, t)
	}
	if composed, ok := h.composedPathLocked(s, t); ok && !composed.Agrees(m) {
		return rgerrors.Hierarchy("typing %q -> %q does not commute with an existing path", s, t)
	}

	if h.typings[s] == nil {
		h.typings[s] = make(map[string]hom.Mapping)
	}
	h.typings[s][t] = m.Clone()
	if h.typingAttrs[s] == nil {
		h.typingAttrs[s] = make(map[string]attrs.Dict)
	}
	h.typingAttrs[s][t] = typingAttrs.Clone()
	return nil
}

// RemoveTyping deletes the s -> t typing edge, if present.
func (h *Hierarchy) RemoveTyping(s, t string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.typings[s][t]; !ok {
		return nil
	}
	delete(h.typings[s], t)
	if h.typingAttrs[s] != nil {
		delete(h.typingAttrs[s], t)
	}
	return nil
}

// GetTyping returns a clone of the s -> t mapping, or nil if absent.
func (h *Hierarchy) GetTyping(s, t string) hom.Mapping {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.typings[s][t]
	if !ok {
		return nil
	}
	return m.Clone()
}

// GetTypingAttrs returns a clone of the s -> t typing's attribute dict.
func (h *Hierarchy) GetTypingAttrs(s, t string) (attrs.Dict, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.typingAttrs[s][t]
	if !ok {
		return nil, rgerrors.Hierarchy("typing %q -> %q not found", s, t)
	}
	return a.Clone(), nil
}

// SetTypingAttrs replaces the s -> t typing's attribute dict.
func (h *Hierarchy) SetTypingAttrs(s, t string, a attrs.Dict) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.typings[s][t]; !ok {
		return rgerrors.Hierarchy("typing %q -> %q not found", s, t)
	}
	h.typingAttrs[s][t] = a.Clone()
	return nil
}

// Successors returns the sorted list of graphs that graphID is
// directly typed into.
func (h *Hierarchy) Successors(graphID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.typings[graphID]))
	for t := range h.typings[graphID] {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Predecessors returns the sorted list of graphs directly typed into
// graphID.
func (h *Hierarchy) Predecessors(graphID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := h.predecessorsLocked(graphID)
	sort.Strings(out)
	return out
}

func (h *Hierarchy) predecessorsLocked(graphID string) []string {
	var out []string
	for s, row := range h.typings {
		if _, ok := row[graphID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// reachableLocked reports whether to is reachable from from by
// following typing edges forward zero or more steps.
func (h *Hierarchy) reachableLocked(from, to string) bool {
	if from == to {
		return true
	}
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range h.typings[cur] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// composedPathLocked finds any existing path from s to t (length >= 1)
// and composes its typings in order. Invariant 2 guarantees every such
// path already agrees, so the first one found is representative.
func (h *Hierarchy) composedPathLocked(s, t string) (hom.Mapping, bool) {
	type frame struct {
		node string
		path hom.Mapping
	}
	seen := map[string]bool{s: true}
	queue := []frame{{s, hom.Identity(h.graphs[s].Nodes())}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next, m := range h.typings[cur.node] {
			composed, ok := cur.path.Compose(m)
			if !ok {
				continue
			}
			if next == t {
				return composed, true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, frame{next, composed})
			}
		}
	}
	return nil, false
}
