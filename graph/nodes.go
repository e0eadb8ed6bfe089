package graph

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/rgerrors"
)

// AddNode inserts a node with the given attrs. Idempotent: re-adding an
// existing id merges attrs into the existing node rather than erroring,
// matching the teacher's AddVertex idempotence (core/methods_vertices.go).
func (g *Graph) AddNode(id string, a attrs.Dict) error {
	if id == "" {
		return rgerrors.ReGraph("graph: node id is empty")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		merged, err := attrs.Union(n.Attrs, a)
		if err != nil {
			return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: merging attrs for existing node %q", id)
		}
		n.Attrs = merged
		return nil
	}
	g.nodes[id] = &Node{ID: id, Attrs: a.Clone()}
	g.out[id] = make(map[string]*Edge)
	g.in[id] = make(map[string]*Edge)
	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id, or nil if absent.
func (g *Graph) Node(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// Nodes returns all node ids in sorted order (deterministic iteration,
// per the teacher's convention that enumeration surfaces are stable).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// RemoveNode deletes id and every edge incident to it (in or out).
func (g *Graph) RemoveNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeNodeLocked(id)
}

func (g *Graph) removeNodeLocked(id string) {
	for to := range g.out[id] {
		delete(g.in[to], id)
	}
	for from := range g.in[id] {
		delete(g.out[from], id)
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)
}

// AddNodeAttrs unions a into the node's existing attribute dict.
func (g *Graph) AddNodeAttrs(id string, a attrs.Dict) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return rgerrors.Hierarchy("graph: node %q not found", id)
	}
	merged, err := attrs.Union(n.Attrs, a)
	if err != nil {
		return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: adding attrs to node %q", id)
	}
	n.Attrs = merged
	return nil
}

// RemoveNodeAttrs subtracts a from the node's attribute dict.
func (g *Graph) RemoveNodeAttrs(id string, a attrs.Dict) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return rgerrors.Hierarchy("graph: node %q not found", id)
	}
	remaining, err := attrs.Remove(n.Attrs, a)
	if err != nil {
		return rgerrors.Wrap(rgerrors.KindReGraph, err, "graph: removing attrs from node %q", id)
	}
	n.Attrs = remaining
	return nil
}
