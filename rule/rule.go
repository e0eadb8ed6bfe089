// Package rule implements the Rule span L ← P → R (spec.md §3) and the
// derived classifications a rewrite and a rule-hierarchy lift/project
// need: which nodes are cloned, removed, merged or added, and whether
// the rule is restrictive, relaxing, or both.
package rule

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
)

// Rule is a span of two homomorphisms over three graphs: PLhs: P→L and
// PRhs: P→R. Rules are values — the hierarchy never stores one; they
// exist for the duration of a single rewrite or rule-hierarchy query.
type Rule struct {
	LHS, P, RHS *graph.Graph
	PLhs, PRhs  hom.Mapping
}

// New validates and returns a Rule. PLhs and PRhs must be total
// homomorphisms P→LHS and P→RHS respectively.
func New(lhs, p, rhs *graph.Graph, pLhs, pRhs hom.Mapping) (Rule, error) {
	if err := hom.CheckHomomorphism(p, lhs, pLhs); err != nil {
		return Rule{}, err
	}
	if err := hom.CheckHomomorphism(p, rhs, pRhs); err != nil {
		return Rule{}, err
	}
	return Rule{LHS: lhs, P: p, RHS: rhs, PLhs: pLhs, PRhs: pRhs}, nil
}

// Identity returns the empty rule over g: L=P=R=g with identity spans.
// Per spec.md §8, rewriting with this rule leaves a hierarchy unchanged
// up to attribute equality.
func Identity(g *graph.Graph) Rule {
	ids := hom.Identity(g.Nodes())
	return Rule{LHS: g, P: g, RHS: g, PLhs: ids, PRhs: ids}
}

// ClonedNodes returns, for every L-node with 2+ P-preimages, the sorted
// list of its P-preimages.
func (r Rule) ClonedNodes() map[string][]string {
	out := make(map[string][]string)
	for _, l := range r.LHS.Nodes() {
		pre := r.PLhs.Preimage(l)
		if len(pre) >= 2 {
			out[l] = pre
		}
	}
	return out
}

// RemovedNodes returns every L-node with zero P-preimages.
func (r Rule) RemovedNodes() []string {
	var out []string
	for _, l := range r.LHS.Nodes() {
		if len(r.PLhs.Preimage(l)) == 0 {
			out = append(out, l)
		}
	}
	return out
}

// RemovedEdges returns every L-edge (from,to) not reached from any
// P-edge (i.e. no P-edge's image under PLhs is this L-edge).
func (r Rule) RemovedEdges() [][2]string {
	reached := r.reachedEdges(r.P, r.PLhs)
	var out [][2]string
	for _, e := range r.LHS.Edges() {
		if !reached[[2]string{e.From, e.To}] {
			out = append(out, [2]string{e.From, e.To})
		}
	}
	return out
}

// RemovedNodeAttrs returns, per L-node, the attrs present in L but not
// reached from any P-node mapping to it (union over all preimages).
func (r Rule) RemovedNodeAttrs() map[string]graphAttrsDiff {
	out := make(map[string]graphAttrsDiff)
	for _, l := range r.LHS.Nodes() {
		lAttrs := attrsOfNode(r.LHS, l)
		reached := emptyAttrs()
		for _, p := range r.PLhs.Preimage(l) {
			reached = unionAttrs(reached, attrsOfNode(r.P, p))
		}
		diff := subtractAttrs(lAttrs, reached)
		if len(diff) > 0 {
			out[l] = diff
		}
	}
	return out
}

// MergedNodes returns, for every R-node with 2+ P-preimages, the sorted
// list of its P-preimages.
func (r Rule) MergedNodes() map[string][]string {
	out := make(map[string][]string)
	for _, rhsNode := range r.RHS.Nodes() {
		pre := r.PRhs.Preimage(rhsNode)
		if len(pre) >= 2 {
			out[rhsNode] = pre
		}
	}
	return out
}

// AddedNodes returns every R-node with zero P-preimages.
func (r Rule) AddedNodes() []string {
	var out []string
	for _, rhsNode := range r.RHS.Nodes() {
		if len(r.PRhs.Preimage(rhsNode)) == 0 {
			out = append(out, rhsNode)
		}
	}
	return out
}

// AddedEdges returns every R-edge not reached from any P-edge.
func (r Rule) AddedEdges() [][2]string {
	reached := r.reachedEdges(r.P, r.PRhs)
	var out [][2]string
	for _, e := range r.RHS.Edges() {
		if !reached[[2]string{e.From, e.To}] {
			out = append(out, [2]string{e.From, e.To})
		}
	}
	return out
}

// AddedNodeAttrs returns, per R-node, the attrs present in R but not
// reached from any P-node mapping to it.
func (r Rule) AddedNodeAttrs() map[string]graphAttrsDiff {
	out := make(map[string]graphAttrsDiff)
	for _, rhsNode := range r.RHS.Nodes() {
		rAttrs := attrsOfNode(r.RHS, rhsNode)
		reached := emptyAttrs()
		for _, p := range r.PRhs.Preimage(rhsNode) {
			reached = unionAttrs(reached, attrsOfNode(r.P, p))
		}
		diff := subtractAttrs(rAttrs, reached)
		if len(diff) > 0 {
			out[rhsNode] = diff
		}
	}
	return out
}

// reachedEdges returns the set of (from,to) pairs of g that are the
// image, under m, of some edge of r.P.
func (r Rule) reachedEdges(p *graph.Graph, m hom.Mapping) map[[2]string]bool {
	reached := make(map[[2]string]bool)
	for _, e := range p.Edges() {
		reached[[2]string{m[e.From], m[e.To]}] = true
	}
	return reached
}

// IsRestrictive reports whether the rule clones or removes anything.
func (r Rule) IsRestrictive() bool {
	return len(r.ClonedNodes()) > 0 || len(r.RemovedNodes()) > 0 || len(r.RemovedEdges()) > 0
}

// IsRelaxing reports whether the rule merges or adds anything.
func (r Rule) IsRelaxing() bool {
	return len(r.MergedNodes()) > 0 || len(r.AddedNodes()) > 0 || len(r.AddedEdges()) > 0
}

// IsEmpty reports whether the rule changes nothing at all.
func (r Rule) IsEmpty() bool {
	return !r.IsRestrictive() && !r.IsRelaxing() &&
		len(r.RemovedNodeAttrs()) == 0 && len(r.AddedNodeAttrs()) == 0 &&
		len(r.RemovedEdgeAttrs()) == 0 && len(r.AddedEdgeAttrs()) == 0
}
