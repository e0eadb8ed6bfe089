// Package kernel implements the category-theoretic primitives the rest
// of regraph builds on (spec.md §4.1, component C3): pullback, pushout,
// image factorization, relation-to-span, and the two universal mediating
// maps. Everything here is a pure function over *graph.Graph values and
// hom.Mapping homomorphisms — no hierarchy- or rule-level state.
package kernel

import (
	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// Pullback computes the universal span (P, piA: P→A, piB: P→B) of the
// cospan f: A→C, g: B→C. P's nodes are pairs (a,b) with f(a)=g(b), node
// attrs are the intersection of A's and B's attrs, and P has an edge
// between two such pairs exactly when both A and B have the
// corresponding parallel edges, with intersected attrs.
func Pullback(f, g hom.Mapping, a, b, c *graph.Graph) (p *graph.Graph, piA, piB hom.Mapping, err error) {
	p = graph.New()
	piA, piB = hom.New(0), hom.New(0)

	// pairID[(a,b)] = p-node id, built deterministically from sorted
	// iteration so output is stable under a fixed node-id ordering.
	pairID := make(map[[2]string]string)

	for _, av := range a.Nodes() {
		fav, ok := f[av]
		if !ok {
			continue
		}
		for _, bv := range b.Nodes() {
			gbv, ok := g[bv]
			if !ok || fav != gbv {
				continue
			}
			nodeAttrs, ierr := attrs.Intersect(nodeAttrsOf(a, av), nodeAttrsOf(b, bv))
			if ierr != nil {
				return nil, nil, nil, rgerrors.Wrap(rgerrors.KindReGraph, ierr, "pullback: intersecting attrs of %q,%q", av, bv)
			}
			pid := graph.FreshID(av+"_"+bv, func(cand string) bool { return p.HasNode(cand) })
			if err := p.AddNode(pid, nodeAttrs); err != nil {
				return nil, nil, nil, err
			}
			pairID[[2]string{av, bv}] = pid
			piA[pid] = av
			piB[pid] = bv
		}
	}

	for pair1, p1 := range pairID {
		for pair2, p2 := range pairID {
			a1, b1 := pair1[0], pair1[1]
			a2, b2 := pair2[0], pair2[1]
			if !a.HasEdge(a1, a2) || !b.HasEdge(b1, b2) {
				continue
			}
			edgeAttrs, ierr := attrs.Intersect(a.Edge(a1, a2).Attrs, b.Edge(b1, b2).Attrs)
			if ierr != nil {
				return nil, nil, nil, rgerrors.Wrap(rgerrors.KindReGraph, ierr, "pullback: intersecting edge attrs")
			}
			if err := p.AddEdge(p1, p2, edgeAttrs); err != nil {
				return nil, nil, nil, err
			}
		}
	}

	_ = c // c is not consulted; callers are trusted to pass f,g that share a codomain.
	return p, piA, piB, nil
}

func nodeAttrsOf(g *graph.Graph, id string) attrs.Dict {
	if n := g.Node(id); n != nil {
		return n.Attrs
	}
	return attrs.Dict{}
}

// UniqueMapToPullback returns the unique mediating map X→P for a cone
// (X, xA: X→A, xB: X→B) that commutes with f∘xA = g∘xB over P's
// defining cospan (spec.md §4.1's universality clause; testable
// property #6). Returns an error if no such cone actually commutes
// through P (i.e. some (xA(x), xB(x)) pair has no corresponding P node).
func UniqueMapToPullback(xA, xB hom.Mapping, p *graph.Graph, piA, piB hom.Mapping) (hom.Mapping, error) {
	lookup := make(map[[2]string]string, len(piA))
	for _, pid := range p.Nodes() {
		lookup[[2]string{piA[pid], piB[pid]}] = pid
	}
	out := hom.New(len(xA))
	for x, a := range xA {
		b, ok := xB[x]
		if !ok {
			return nil, rgerrors.ReGraph("unique_map_to_pullback: %q has no image under xB", x)
		}
		pid, ok := lookup[[2]string{a, b}]
		if !ok {
			return nil, rgerrors.ReGraph("unique_map_to_pullback: no pullback node for pair (%q,%q); cone does not commute", a, b)
		}
		out[x] = pid
	}
	return out, nil
}
