// Package hierarchy implements the DAG of attributed graphs connected
// by typing homomorphisms and symmetric relations (spec.md §3's
// Hierarchy, component C4): structural mutation (add/remove graphs,
// typings, relations), analysis (BFS, shortest path, ancestors,
// descendants), and the invariants that must hold at every quiescent
// state — acyclicity, commutativity, homomorphism validity, and id
// uniqueness.
package hierarchy

import (
	"sync"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
)

// relKey canonically orders an unordered relation pair {u,v}, u<v.
type relKey struct{ u, v string }

func newRelKey(a, b string) relKey {
	if a <= b {
		return relKey{a, b}
	}
	return relKey{b, a}
}

// relation is ℛ's payload for one unordered pair: a mapping from the
// lexicographically-smaller graph's node ids to sets of the other
// graph's node ids; the symmetric view is derived on query.
type relation struct {
	rel   map[string]map[string]struct{}
	attrs attrs.Dict
}

// Hierarchy is the mutable DAG of graphs, typings and relations.
type Hierarchy struct {
	mu sync.RWMutex

	graphs      map[string]*graph.Graph
	graphAttrs  map[string]attrs.Dict
	typings     map[string]map[string]hom.Mapping // s -> t -> mapping
	typingAttrs map[string]map[string]attrs.Dict
	relations   map[relKey]*relation
}

// Option configures a Hierarchy at construction time, in the teacher's
// functional-options idiom (core.GraphOption).
type Option func(*Hierarchy)

// WithCapacity hints the expected number of graphs, avoiding map
// growth during bulk construction.
func WithCapacity(n int) Option {
	return func(h *Hierarchy) {
		h.graphs = make(map[string]*graph.Graph, n)
		h.graphAttrs = make(map[string]attrs.Dict, n)
	}
}

// New constructs an empty Hierarchy.
func New(opts ...Option) *Hierarchy {
	h := &Hierarchy{
		graphs:      make(map[string]*graph.Graph),
		graphAttrs:  make(map[string]attrs.Dict),
		typings:     make(map[string]map[string]hom.Mapping),
		typingAttrs: make(map[string]map[string]attrs.Dict),
		relations:   make(map[relKey]*relation),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
