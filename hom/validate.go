package hom

import (
	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/rgerrors"
)

// CheckHomomorphism verifies that m: src → tgt is a total, edge- and
// attribute-preserving map (spec.md §3's Homomorphism definition):
//
//  1. m is total over every node of src.
//  2. every image id exists in tgt.
//  3. for every edge (u,v) of src, (m(u),m(v)) is an edge of tgt.
//  4. for every node n, src's attrs of n are ⊆ tgt's attrs of m(n).
//  5. for every edge e, src's attrs of e are ⊆ tgt's attrs of the image edge.
//
// Returns nil on success, else an *rgerrors.Error of kind
// InvalidHomomorphism describing the first violation found.
func CheckHomomorphism(src, tgt *graph.Graph, m Mapping) error {
	nodes := src.Nodes()
	if !m.IsTotal(nodes) {
		return rgerrors.InvalidHomomorphism("mapping is not total over the source graph's nodes")
	}
	for _, n := range nodes {
		img := m[n]
		if !tgt.HasNode(img) {
			return rgerrors.InvalidHomomorphism("node %q maps to non-existent target node %q", n, img)
		}
		srcAttrs := attrs.Dict{}
		if sn := src.Node(n); sn != nil {
			srcAttrs = sn.Attrs
		}
		tgtAttrs := attrs.Dict{}
		if tn := tgt.Node(img); tn != nil {
			tgtAttrs = tn.Attrs
		}
		ok, err := attrs.SubsetOf(srcAttrs, tgtAttrs)
		if err != nil {
			return rgerrors.Wrap(rgerrors.KindInvalidHomomorphism, err, "comparing attrs of node %q", n)
		}
		if !ok {
			return rgerrors.InvalidHomomorphism("node %q's attrs are not a subset of image node %q's attrs", n, img)
		}
	}

	for _, e := range src.Edges() {
		imgFrom, imgTo := m[e.From], m[e.To]
		if !tgt.HasEdge(imgFrom, imgTo) {
			return rgerrors.InvalidHomomorphism("edge %s->%s has no image edge %s->%s in target", e.From, e.To, imgFrom, imgTo)
		}
		tgtEdge := tgt.Edge(imgFrom, imgTo)
		ok, err := attrs.SubsetOf(e.Attrs, tgtEdge.Attrs)
		if err != nil {
			return rgerrors.Wrap(rgerrors.KindInvalidHomomorphism, err, "comparing attrs of edge %s->%s", e.From, e.To)
		}
		if !ok {
			return rgerrors.InvalidHomomorphism("edge %s->%s's attrs are not a subset of the image edge's attrs", e.From, e.To)
		}
	}
	return nil
}
