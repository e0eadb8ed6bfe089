package kernel

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// taggedID disambiguates B's and C's node ids before gluing, since the
// two graphs may reuse the same local ids for unrelated nodes.
type taggedID struct {
	side byte // 'B' or 'C'
	id   string
}

// unionFind is a tiny disjoint-set over taggedID, used to compute the
// gluing classes a pushout identifies.
type unionFind struct {
	parent map[taggedID]taggedID
}

func newUnionFind() *unionFind { return &unionFind{parent: make(map[taggedID]taggedID)} }

func (u *unionFind) find(x taggedID) taggedID {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		return x
	}
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

func (u *unionFind) union(x, y taggedID) {
	rx, ry := u.find(x), u.find(y)
	if rx != ry {
		u.parent[rx] = ry
	}
}

// Pushout computes the universal cospan (Q, iotaB: B→Q, iotaC: C→Q) of
// the span f: A→B, g: A→C by gluing B and C along A. A glued node's
// attrs are the union of its members' attrs; edges are unioned, with
// attribute union on coincident edges (spec.md §4.1).
func Pushout(f, g hom.Mapping, a, b, c *graph.Graph) (q *graph.Graph, iotaB, iotaC hom.Mapping, err error) {
	uf := newUnionFind()
	for _, bv := range b.Nodes() {
		uf.find(taggedID{'B', bv})
	}
	for _, cv := range c.Nodes() {
		uf.find(taggedID{'C', cv})
	}
	for _, av := range a.Nodes() {
		bv, bok := f[av]
		cv, cok := g[av]
		if bok && cok {
			uf.union(taggedID{'B', bv}, taggedID{'C', cv})
		}
	}

	// Group members by their class representative.
	classes := make(map[taggedID][]taggedID)
	for _, bv := range b.Nodes() {
		t := taggedID{'B', bv}
		r := uf.find(t)
		classes[r] = append(classes[r], t)
	}
	for _, cv := range c.Nodes() {
		t := taggedID{'C', cv}
		r := uf.find(t)
		classes[r] = append(classes[r], t)
	}

	q = graph.New()
	iotaB, iotaC = hom.New(0), hom.New(0)
	classID := make(map[taggedID]string, len(classes))

	// Deterministic class processing order: sort representatives by
	// their canonical member list.
	reps := make([]taggedID, 0, len(classes))
	for r := range classes {
		reps = append(reps, r)
	}
	sort.Slice(reps, func(i, j int) bool { return canonicalName(classes[reps[i]]) < canonicalName(classes[reps[j]]) })

	for _, r := range reps {
		members := classes[r]
		name := canonicalName(members)
		qid := graph.FreshID(name, func(cand string) bool { return q.HasNode(cand) })

		var merged attrs.Dict
		for _, m := range members {
			classID[m] = qid
			var ma attrs.Dict
			switch m.side {
			case 'B':
				ma = nodeAttrsOf(b, m.id)
			case 'C':
				ma = nodeAttrsOf(c, m.id)
			}
			if merged == nil {
				merged = ma.Clone()
			} else {
				u, uerr := attrs.Union(merged, ma)
				if uerr != nil {
					return nil, nil, nil, rgerrors.Wrap(rgerrors.KindReGraph, uerr, "pushout: unioning attrs for class %q", name)
				}
				merged = u
			}
		}
		if err := q.AddNode(qid, merged); err != nil {
			return nil, nil, nil, err
		}
	}

	for _, bv := range b.Nodes() {
		iotaB[bv] = classID[taggedID{'B', bv}]
	}
	for _, cv := range c.Nodes() {
		iotaC[cv] = classID[taggedID{'C', cv}]
	}

	for _, e := range b.Edges() {
		if err := q.AddEdge(iotaB[e.From], iotaB[e.To], e.Attrs); err != nil {
			return nil, nil, nil, err
		}
	}
	for _, e := range c.Edges() {
		if err := q.AddEdge(iotaC[e.From], iotaC[e.To], e.Attrs); err != nil {
			return nil, nil, nil, err
		}
	}

	return q, iotaB, iotaC, nil
}

// canonicalName picks the pushout node's fresh-id prefix per spec.md
// §4.1's tie-break rule: "use the source id prefixed if unique". For a
// glued class we use the lexicographically smallest local id among its
// members as that prefix, which keeps singleton classes (the common
// case — a node untouched by the gluing) named exactly as they were.
func canonicalName(members []taggedID) string {
	best := members[0].id
	for _, m := range members[1:] {
		if m.id < best {
			best = m.id
		}
	}
	return best
}

// UniqueMapFromPushout returns the unique mediating map Q→Y for a
// cocone (Y, yB: B→Y, yC: C→Y) that agrees on A (yB∘f = yC∘g). Every Q
// node is hit by iotaB or iotaC (or both), so looking up either side's
// preimage under yB/yC yields the image in Y.
func UniqueMapFromPushout(yB, yC hom.Mapping, q *graph.Graph, iotaB, iotaC hom.Mapping) (hom.Mapping, error) {
	fromB := make(map[string]string, len(iotaB))
	for b, qid := range iotaB {
		fromB[qid] = b
	}
	fromC := make(map[string]string, len(iotaC))
	for c, qid := range iotaC {
		fromC[qid] = c
	}

	out := hom.New(len(q.Nodes()))
	for _, qid := range q.Nodes() {
		if b, ok := fromB[qid]; ok {
			if y, ok := yB[b]; ok {
				out[qid] = y
				continue
			}
		}
		if c, ok := fromC[qid]; ok {
			if y, ok := yC[c]; ok {
				out[qid] = y
				continue
			}
		}
		return nil, rgerrors.ReGraph("unique_map_from_pushout: no image for pushout node %q", qid)
	}
	return out, nil
}
