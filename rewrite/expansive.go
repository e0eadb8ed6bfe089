package rewrite

import (
	"sort"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// applyExpansive builds G′ from G⁻ by applying the merges and
// additions prescribed by the rule's P ⇄ R span (spec.md §4.3 stage
// 3). It returns rhs_g_prime (R -> G′) and g_minus_g_prime (G⁻ -> G′,
// used only locally to repair origin's own incoming typings).
func applyExpansive(gMinus *graph.Graph, r rule.Rule, pGMinus hom.Mapping) (gPrime *graph.Graph, rhsGPrime, gMinusGPrime hom.Mapping) {
	gPrime = gMinus.Clone()
	gMinusGPrime = hom.Identity(gMinus.Nodes())
	rhsGPrime = make(hom.Mapping, len(r.RHS.Nodes()))

	addedAttrs := r.AddedNodeAttrs()
	addedEdgeAttrs := r.AddedEdgeAttrs()

	for rNode, preimages := range r.MergedNodes() {
		var gNodes []string
		seen := make(map[string]bool, len(preimages))
		for _, p := range preimages {
			gn, ok := pGMinus[p]
			if ok && !seen[gn] {
				seen[gn] = true
				gNodes = append(gNodes, gn)
			}
		}
		if len(gNodes) == 0 {
			continue
		}
		sort.Strings(gNodes)
		rep := gNodes[0]
		if len(gNodes) > 1 {
			// The merged node is named after its R-node.
			rep = rNode
			if !seen[rNode] {
				rep = gPrime.FreshNodeID(rNode)
			}
			if _, err := gPrime.MergeNodes(gNodes, rep); err != nil {
				continue
			}
		}
		for _, gn := range gNodes {
			gMinusGPrime[gn] = rep
		}
		rhsGPrime[rNode] = rep
		if diff, ok := addedAttrs[rNode]; ok {
			_ = gPrime.AddNodeAttrs(rep, diff)
		}
	}

	for _, p := range r.P.Nodes() {
		rNode := r.PRhs[p]
		if _, done := rhsGPrime[rNode]; done {
			continue
		}
		gn, ok := pGMinus[p]
		if !ok {
			continue
		}
		rhsGPrime[rNode] = gn
		if diff, ok := addedAttrs[rNode]; ok {
			_ = gPrime.AddNodeAttrs(gn, diff)
		}
	}

	for _, n := range r.AddedNodes() {
		id := gPrime.FreshNodeID(n)
		var a = r.RHS.Node(n)
		if a != nil {
			_ = gPrime.AddNode(id, a.Attrs)
		} else {
			_ = gPrime.AddNode(id, nil)
		}
		rhsGPrime[n] = id
	}

	for _, e := range r.AddedEdges() {
		from, okF := rhsGPrime[e[0]]
		to, okT := rhsGPrime[e[1]]
		if okF && okT {
			_ = gPrime.AddEdge(from, to, nil)
		}
	}
	for key, diff := range addedEdgeAttrs {
		from, okF := rhsGPrime[key[0]]
		to, okT := rhsGPrime[key[1]]
		if okF && okT {
			_ = gPrime.AddEdgeAttrs(from, to, diff)
		}
	}

	return gPrime, rhsGPrime, gMinusGPrime
}

// repairPredecessors recomputes every direct predecessor's typing into
// graphID by composing its (already backward-propagation-repaired,
// G⁻-valid) typing through g_minus_g_prime: merges and additions never
// remove anything a predecessor could be pointing at, so this is pure
// recomposition, not a cascading structural change.
func repairPredecessors(h *hierarchy.Hierarchy, graphID string, gMinusGPrime hom.Mapping) error {
	for _, p := range h.Predecessors(graphID) {
		old := h.GetTyping(p, graphID)
		newMap := make(hom.Mapping, len(old))
		for k, v := range old {
			if img, ok := gMinusGPrime[v]; ok {
				newMap[k] = img
			} else {
				newMap[k] = v
			}
		}
		if err := h.ReplaceTyping(p, graphID, newMap); err != nil {
			return err
		}
	}
	return nil
}
