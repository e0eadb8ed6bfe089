package rewrite

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// applyRestrictive builds G⁻ from g by applying the clones and
// deletions prescribed by the rule's L ⇄ P span (spec.md §4.3 stage
// 1). It returns p_g_minus (P -> G⁻, where the interface lands) and
// g_minus_g (G⁻ -> G, the original node each surviving or cloned node
// descends from — used only locally, to repair origin's own outgoing
// typings; ancestors use the pullback-equivalent repair in package
// propagate instead).
func applyRestrictive(g *graph.Graph, r rule.Rule, instance hom.Mapping) (gMinus *graph.Graph, pGMinus, gMinusG hom.Mapping) {
	gMinus = g.Clone()
	gMinusG = hom.Identity(gMinus.Nodes())
	pGMinus = make(hom.Mapping, len(r.P.Nodes()))

	removedL := make(map[string]bool)
	for _, l := range r.RemovedNodes() {
		removedL[l] = true
	}

	for _, e := range r.RemovedEdges() {
		gMinus.RemoveEdge(instance[e[0]], instance[e[1]])
	}
	for key, diff := range r.RemovedEdgeAttrs() {
		_ = gMinus.RemoveEdgeAttrs(instance[key[0]], instance[key[1]], diff)
	}

	removedAttrs := r.RemovedNodeAttrs()
	for _, l := range r.LHS.Nodes() {
		gNode := instance[l]
		if removedL[l] {
			gMinus.RemoveNode(gNode)
			delete(gMinusG, gNode)
			continue
		}

		preimages := r.PLhs.Preimage(l)
		for i, p := range preimages {
			id := gNode
			if i > 0 {
				newID, err := gMinus.CloneNode(gNode, p)
				if err != nil {
					// gNode is guaranteed present (instance is total and
					// checked against g); CloneNode can only fail on a
					// missing source node.
					continue
				}
				id = newID
				gMinusG[newID] = gNode
			}
			pGMinus[p] = id
		}
		// The copies of a cloned node are named after their P-nodes
		// (made fresh if taken), the original included.
		if len(preimages) > 1 && preimages[0] != gNode {
			first := gMinus.FreshNodeID(preimages[0])
			if err := gMinus.RelabelNode(gNode, first); err == nil {
				delete(gMinusG, gNode)
				gMinusG[first] = gNode
				pGMinus[preimages[0]] = first
			}
		}
		if diff, ok := removedAttrs[l]; ok {
			for _, p := range preimages {
				_ = gMinus.RemoveNodeAttrs(pGMinus[p], diff)
			}
		}
	}
	return gMinus, pGMinus, gMinusG
}

// repairSuccessors recomputes graphID's own typing into every direct
// successor by composing the old typing through g_minus_g: no
// cascading structural change reaches the successor, only a domain
// restriction (removed/cloned-away source nodes) and relabeling
// (fresh clone ids) of graphID's own node space.
func repairSuccessors(h *hierarchy.Hierarchy, graphID string, gMinus *graph.Graph, gMinusG hom.Mapping) error {
	for _, s := range h.Successors(graphID) {
		old := h.GetTyping(graphID, s)
		newMap := make(hom.Mapping, len(gMinus.Nodes()))
		for _, x := range gMinus.Nodes() {
			orig, ok := gMinusG[x]
			if !ok {
				continue
			}
			if img, ok := old[orig]; ok {
				newMap[x] = img
			}
		}
		if err := h.ReplaceTyping(graphID, s, newMap); err != nil {
			return err
		}
	}
	return nil
}
