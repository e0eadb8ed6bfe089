package hierarchy

import (
	"sort"

	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// BFSTree returns the BFS spanning tree rooted at src over the typing
// DAG, following edges forward (towards successors) unless reverse is
// true (towards predecessors). The result maps each reached graph id
// to its parent in the tree; src itself maps to "".
func (h *Hierarchy) BFSTree(src string, reverse bool) (map[string]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.graphs[src]; !ok {
		return nil, rgerrors.Hierarchy("graph %q not found", src)
	}

	parent := map[string]string{src: ""}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		var neighbors []string
		if reverse {
			neighbors = h.predecessorsLocked(cur)
		} else {
			for t := range h.typings[cur] {
				neighbors = append(neighbors, t)
			}
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				queue = append(queue, n)
			}
		}
	}
	return parent, nil
}

// BFSOrder returns every graph reachable from src (excluding src
// itself) in the order BFSTree visits them — predecessors if reverse,
// successors otherwise. Used by the propagation engine to process the
// ancestor/descendant closure closest-first.
func (h *Hierarchy) BFSOrder(src string, reverse bool) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.graphs[src]; !ok {
		return nil, rgerrors.Hierarchy("graph %q not found", src)
	}

	var order []string
	seen := map[string]bool{src: true}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		var neighbors []string
		if reverse {
			neighbors = h.predecessorsLocked(cur)
		} else {
			for t := range h.typings[cur] {
				neighbors = append(neighbors, t)
			}
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
				queue = append(queue, n)
			}
		}
	}
	return order, nil
}

// ShortestPath returns the sequence of graph ids from s to t along
// typing edges, shortest first, or nil if t is unreachable from s.
func (h *Hierarchy) ShortestPath(s, t string) ([]string, error) {
	tree, err := h.BFSTree(s, false)
	if err != nil {
		return nil, err
	}
	if _, ok := tree[t]; !ok {
		return nil, nil
	}
	var path []string
	for cur := t; cur != ""; cur = tree[cur] {
		path = append([]string{cur}, path...)
		if cur == s {
			break
		}
	}
	return path, nil
}

// GetAncestors returns every graph id with a typing path to graphID
// (not including graphID itself), sorted.
func (h *Hierarchy) GetAncestors(graphID string) ([]string, error) {
	tree, err := h.BFSTree(graphID, true)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(tree)-1)
	for id := range tree {
		if id != graphID {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

// GetDescendants returns every graph id reachable from graphID by a
// typing path (not including graphID itself), sorted.
func (h *Hierarchy) GetDescendants(graphID string) ([]string, error) {
	tree, err := h.BFSTree(graphID, false)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(tree)-1)
	for id := range tree {
		if id != graphID {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ComposePathTyping returns the composed mapping along the shortest
// typing path from s to t, or an error if no path exists.
func (h *Hierarchy) ComposePathTyping(s, t string) (hom.Mapping, error) {
	path, err := h.ShortestPath(s, t)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, rgerrors.Hierarchy("no typing path from %q to %q", s, t)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	composed := hom.Identity(h.graphs[s].Nodes())
	for i := 0; i+1 < len(path); i++ {
		next, ok := composed.Compose(h.typings[path[i]][path[i+1]])
		if !ok {
			return nil, rgerrors.Hierarchy("path %q -> %q does not compose", s, t)
		}
		composed = next
	}
	return composed, nil
}

// NodeType returns the image of node under the composed typing from
// graphID to typingGraphID, or an error if node is unmapped or no
// typing path exists.
func (h *Hierarchy) NodeType(graphID, node, typingGraphID string) (string, error) {
	m, err := h.ComposePathTyping(graphID, typingGraphID)
	if err != nil {
		return "", err
	}
	t, ok := m[node]
	if !ok {
		return "", rgerrors.Hierarchy("node %q of %q has no type in %q", node, graphID, typingGraphID)
	}
	return t, nil
}
