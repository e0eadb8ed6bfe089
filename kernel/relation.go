package kernel

import (
	"sort"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
)

// RelationToSpan builds the span A ← C → B for a relation rel ⊆
// V(A)×V(B) given as a → []b (spec.md §4.1): one C-node per related
// pair. When edgeClosure is set, C also gets an edge c1→c2 whenever both
// endpoints' A-projections and B-projections have a corresponding edge.
// When attrClosure is set, a C-node/edge's attrs are the intersection
// of its A-side and B-side attrs instead of being left empty.
func RelationToSpan(a, b *graph.Graph, rel map[string][]string, edgeClosure, attrClosure bool) (c *graph.Graph, cToA, cToB hom.Mapping, err error) {
	c = graph.New()
	cToA, cToB = hom.New(0), hom.New(0)
	nodeOf := make(map[[2]string]string)

	for _, av := range sortedKeys(rel) {
		for _, bv := range rel[av] {
			var na attrs.Dict
			if attrClosure {
				na, err = attrs.Intersect(nodeAttrsOf(a, av), nodeAttrsOf(b, bv))
				if err != nil {
					return nil, nil, nil, err
				}
			} else {
				na = attrs.Dict{}
			}
			cid := graph.FreshID(av+"_"+bv, func(cand string) bool { return c.HasNode(cand) })
			if err := c.AddNode(cid, na); err != nil {
				return nil, nil, nil, err
			}
			nodeOf[[2]string{av, bv}] = cid
			cToA[cid] = av
			cToB[cid] = bv
		}
	}

	if edgeClosure {
		for pair1, c1 := range nodeOf {
			for pair2, c2 := range nodeOf {
				if !a.HasEdge(pair1[0], pair2[0]) || !b.HasEdge(pair1[1], pair2[1]) {
					continue
				}
				var ea attrs.Dict
				if attrClosure {
					ea, err = attrs.Intersect(a.Edge(pair1[0], pair2[0]).Attrs, b.Edge(pair1[1], pair2[1]).Attrs)
					if err != nil {
						return nil, nil, nil, err
					}
				} else {
					ea = attrs.Dict{}
				}
				if err := c.AddEdge(c1, c2, ea); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}

	return c, cToA, cToB, nil
}

func sortedKeys(rel map[string][]string) []string {
	out := make([]string, 0, len(rel))
	for k := range rel {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
