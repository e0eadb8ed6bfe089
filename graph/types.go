// Package graph implements the Attributed Graph backend named as an
// external collaborator in the specification (C1): a finite directed
// graph carrying, per node and per edge, an attribute dictionary
// (attrs.Dict), plus the primitives the rest of regraph invokes on it —
// clone, merge, add/remove node & edge, attribute mutation, and fresh
// node-id generation.
//
// Graph is safe for concurrent use: a single sync.RWMutex guards both
// the node and edge catalogs, following the teacher's lock-per-struct
// discipline (one step coarser than core.Graph's split muVert/muEdgeAdj,
// since here node and edge mutation are rarely independent — clone and
// merge always touch both).
package graph

import (
	"sync"

	"github.com/birdduck/regraph/attrs"
)

// Node is a vertex with an attribute dictionary.
type Node struct {
	ID    string
	Attrs attrs.Dict
}

// Edge is a directed connection between two node ids, with its own
// attribute dictionary. At most one Edge exists per ordered (From, To)
// pair — this is the simple-digraph model the specification assumes
// ("enumerate nodes/edges"; merge coalesces duplicate edges by
// attribute union rather than keeping parallel edges).
type Edge struct {
	From, To string
	Attrs    attrs.Dict
}

// Graph is the core mutable attributed graph.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	// out[from][to] = *Edge ; in[to][from] = same *Edge pointer.
	out map[string]map[string]*Edge
	in  map[string]map[string]*Edge
}

// New constructs an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string]map[string]*Edge),
		in:    make(map[string]map[string]*Edge),
	}
}
