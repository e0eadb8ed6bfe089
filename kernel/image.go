package kernel

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// ImageFactorization factors h: A→B through its image h(A): (I, e:
// A↠I, m: I↪B) with e surjective, m injective and m∘e = h (spec.md
// §4.1). I's node ids are exactly B's node ids that are hit by h, so m
// is the identity mapping restricted to the image — the inclusion of I
// into B is "for free" once I's node set is fixed, matching how image
// factorization is used downstream (C7's projection of a rule's LHS).
func ImageFactorization(h hom.Mapping, a, b *graph.Graph) (img *graph.Graph, e, m hom.Mapping, err error) {
	img = graph.New()
	e = hom.New(len(h))
	m = hom.New(0)

	for _, av := range a.Nodes() {
		bv, ok := h[av]
		if !ok {
			return nil, nil, nil, rgerrors.InvalidHomomorphism("image_factorization: %q has no image under h", av)
		}
		e[av] = bv
		if !img.HasNode(bv) {
			if err := img.AddNode(bv, nodeAttrsOf(b, bv)); err != nil {
				return nil, nil, nil, err
			}
			m[bv] = bv
		}
	}

	for _, edg := range a.Edges() {
		i1, i2 := h[edg.From], h[edg.To]
		if img.HasEdge(i1, i2) {
			continue
		}
		if !b.HasEdge(i1, i2) {
			return nil, nil, nil, rgerrors.InvalidHomomorphism("image_factorization: edge %s->%s has no image edge %s->%s in target", edg.From, edg.To, i1, i2)
		}
		if err := img.AddEdge(i1, i2, b.Edge(i1, i2).Attrs); err != nil {
			return nil, nil, nil, err
		}
	}

	return img, e, m, nil
}
