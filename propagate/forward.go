package propagate

import (
	"sort"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// Forward pushes the expansive half of a rewrite on originID out to
// every descendant, then restores the commutativity invariant across
// the descendant sub-DAG. gPrime is the fully-rewritten originID
// graph; rhsGPrime maps each R-node to its image in gPrime. rhsTyping
// routes, per descendant graph id and added R-node, which existing
// descendant node(s) the addition should be typed onto (nil/absent
// means "introduce a fresh node").
func Forward(h *hierarchy.Hierarchy, originID string, r rule.Rule, instance hom.Mapping, gPrime *graph.Graph, rhsGPrime hom.Mapping, rhsTyping map[string]map[string][]string) error {
	descendants, err := h.BFSOrder(originID, false)
	if err != nil {
		return err
	}
	if len(descendants) == 0 {
		return nil
	}

	mergeGroups := gNodeGroupsFromMerges(r, instance)

	origToD := make(map[string]hom.Mapping, len(descendants))
	for _, d := range descendants {
		m, err := h.ComposePathTyping(originID, d)
		if err != nil {
			return err
		}
		origToD[d] = m
	}

	toGPrime := map[string]hom.Mapping{originID: hom.Identity(gPrime.Nodes())}

	addedDNode := make(map[string]map[string]string) // rNode -> descendant -> d-node
	for _, n := range r.AddedNodes() {
		addedDNode[n] = make(map[string]string)
	}

	for _, d := range descendants {
		g := h.GetGraph(d)
		merged := make(map[string]string)        // old d-node -> representative
		mergeRepRNode := make(map[string]string) // representative -> responsible rNode

		for rNode, group := range mergeGroups {
			var dNodes []string
			seen := map[string]bool{}
			for _, gnode := range group {
				if dn, ok := origToD[d][gnode]; ok && !seen[dn] {
					seen[dn] = true
					dNodes = append(dNodes, dn)
				}
			}
			if len(dNodes) < 2 {
				continue
			}
			sort.Strings(dNodes)
			rep := dNodes[0]
			if _, err := g.MergeNodes(dNodes, rep); err != nil {
				return err
			}
			for _, dn := range dNodes {
				merged[dn] = rep
			}
			mergeRepRNode[rep] = rNode
		}

		for _, n := range r.AddedNodes() {
			var target string
			if targets, ok := rhsTyping[d][n]; ok && len(targets) > 0 {
				target = targets[0]
			} else {
				target = g.FreshNodeID("n")
				if err := g.AddNode(target, nil); err != nil {
					return err
				}
			}
			addedDNode[n][d] = target
		}

		for _, e := range r.AddedEdges() {
			from, okF := resolveRNodeInD(e[0], r, instance, origToD[d], merged, addedDNode, d)
			to, okT := resolveRNodeInD(e[1], r, instance, origToD[d], merged, addedDNode, d)
			if okF && okT {
				_ = g.AddEdge(from, to, nil)
			}
		}

		built := make(hom.Mapping)
		for rep, rNode := range mergeRepRNode {
			built[rep] = rhsGPrime[rNode]
		}
		for n, targets := range addedDNode {
			if t, ok := targets[d]; ok {
				built[t] = rhsGPrime[n]
			}
		}
		dPreimage := make(map[string]string, len(origToD[d]))
		for u, v := range origToD[d] {
			if _, ok := dPreimage[v]; !ok {
				dPreimage[v] = u
			}
		}
		for _, v := range g.Nodes() {
			if _, done := built[v]; done {
				continue
			}
			if u, ok := dPreimage[v]; ok {
				if img, ok := toGPrime[originID][u]; ok {
					built[v] = img
				}
			}
		}
		toGPrime[d] = built
	}

	return repairForward(h, originID, descendants, toGPrime)
}

// gNodeGroupsFromMerges translates the rule's R-node merge classes
// into, per rNode, the group of G-node ids its merged P-preimages
// correspond to (via instance ∘ p_lhs) — descendants only ever see
// G-nodes, never L/P/R nodes directly.
func gNodeGroupsFromMerges(r rule.Rule, instance hom.Mapping) map[string][]string {
	groups := make(map[string][]string)
	for rNode, preimages := range r.MergedNodes() {
		seen := map[string]bool{}
		var group []string
		for _, p := range preimages {
			g := instance[r.PLhs[p]]
			if g != "" && !seen[g] {
				seen[g] = true
				group = append(group, g)
			}
		}
		if len(group) >= 2 {
			groups[rNode] = group
		}
	}
	return groups
}

// resolveRNodeInD finds the descendant-graph node that rNode
// corresponds to: an added node's tracked target, or a
// surviving-from-P node's G-image, remapped to D and through any
// merge applied there.
func resolveRNodeInD(rNode string, r rule.Rule, instance hom.Mapping, origToD hom.Mapping, merged map[string]string, addedDNode map[string]map[string]string, d string) (string, bool) {
	if targets, ok := addedDNode[rNode]; ok {
		t, ok := targets[d]
		return t, ok
	}
	pre := r.PRhs.Preimage(rNode)
	if len(pre) == 0 {
		return "", false
	}
	g := instance[r.PLhs[pre[0]]]
	dn, ok := origToD[g]
	if !ok {
		return "", false
	}
	if rep, ok := merged[dn]; ok {
		return rep, true
	}
	return dn, true
}

func repairForward(h *hierarchy.Hierarchy, originID string, descendants []string, toGPrime map[string]hom.Mapping) error {
	involved := append([]string{originID}, descendants...)
	involvedSet := make(map[string]bool, len(involved))
	for _, id := range involved {
		involvedSet[id] = true
	}

	for _, d := range involved {
		for _, s := range h.Successors(d) {
			if !involvedSet[s] {
				continue
			}
			fMap, ok := toGPrime[d]
			if !ok {
				continue
			}
			sMap, ok := toGPrime[s]
			if !ok {
				continue
			}
			newMap := make(hom.Mapping, len(fMap))
			for node, img := range fMap {
				if target, ok := sMap[img]; ok {
					newMap[node] = target
				} else {
					newMap[node] = img
				}
			}
			if err := h.ReplaceTyping(d, s, newMap); err != nil {
				return err
			}
		}
	}
	return nil
}
