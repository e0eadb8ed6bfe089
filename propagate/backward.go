package propagate

import (
	"sort"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// Backward pushes the restrictive half of a rewrite on originID out to
// every ancestor, then restores the commutativity invariant across
// the ancestor sub-DAG. gMinus is the already-computed restrictive
// result for originID; pGMinus maps each P-node to its image in
// gMinus. pTyping restricts, per ancestor graph id and node, which
// P-node labels a clone should be split into (nil/absent means "all of
// them" — the canonical propagation).
func Backward(h *hierarchy.Hierarchy, originID string, r rule.Rule, instance hom.Mapping, gMinus *graph.Graph, pGMinus hom.Mapping, pTyping map[string]map[string][]string) error {
	ancestors, err := h.BFSOrder(originID, true)
	if err != nil {
		return err
	}
	if len(ancestors) == 0 {
		return nil
	}

	invInstance := make(map[string]string, len(instance))
	for l, g := range instance {
		invInstance[g] = l
	}
	removedL := make(map[string]bool)
	for _, l := range r.RemovedNodes() {
		removedL[l] = true
	}
	clonedL := r.ClonedNodes()
	removedAttrs := r.RemovedNodeAttrs()

	removedGEdges := make(map[[2]string]bool)
	for _, e := range r.RemovedEdges() {
		removedGEdges[[2]string{instance[e[0]], instance[e[1]]}] = true
	}

	toOriginOld := make(map[string]hom.Mapping, len(ancestors))
	for _, a := range ancestors {
		m, err := h.ComposePathTyping(a, originID)
		if err != nil {
			return err
		}
		toOriginOld[a] = m
	}

	toGminus := map[string]hom.Mapping{originID: hom.Identity(gMinus.Nodes())}

	for _, x := range ancestors {
		g := h.GetGraph(x)
		oldNodes := g.Nodes()
		oldEdges := g.Edges()

		for _, e := range oldEdges {
			key := [2]string{toOriginOld[x][e.From], toOriginOld[x][e.To]}
			if removedGEdges[key] {
				_ = g.RemoveEdge(e.From, e.To)
			}
		}

		built := make(hom.Mapping, len(oldNodes))
		for _, a := range oldNodes {
			g0 := toOriginOld[x][a]
			l0, isL := invInstance[g0]

			if isL && removedL[l0] {
				g.RemoveNode(a)
				continue
			}

			if isL {
				if preimages := clonedL[l0]; len(preimages) >= 2 {
					candidates := preimages
					if restrict, ok := pTyping[x][a]; ok {
						candidates = intersectSorted(preimages, restrict)
					}
					if len(candidates) == 0 {
						g.RemoveNode(a)
						continue
					}
					for i, p := range candidates {
						target := pGMinus[p]
						id := a
						if i > 0 {
							newID, err := g.CloneNode(a, a)
							if err != nil {
								return err
							}
							id = newID
						}
						built[id] = target
					}
					if diff, ok := removedAttrs[l0]; ok {
						for id := range built {
							_ = g.RemoveNodeAttrs(id, diff)
						}
					}
					continue
				}
				if diff, ok := removedAttrs[l0]; ok {
					_ = g.RemoveNodeAttrs(a, diff)
				}
			}
			built[a] = g0
		}
		toGminus[x] = built
	}

	return repairBackward(h, originID, ancestors, toGminus)
}

// repairBackward recomputes every typing edge among {originID} ∪
// ancestors so that each source graph's map lands consistently in
// gMinus's node space — the mediating-map-to-the-pullback restoration
// from §4.4, computed here by directly inverting the two total maps
// into the shared codomain (mathematically the pullback's induced
// map; kernel.Pullback materializes the same correspondence as a
// graph when a caller needs the pulled-back object itself, which the
// repair step here does not).
func repairBackward(h *hierarchy.Hierarchy, originID string, ancestors []string, toGminus map[string]hom.Mapping) error {
	involved := append([]string{originID}, ancestors...)
	involvedSet := make(map[string]bool, len(involved))
	for _, id := range involved {
		involvedSet[id] = true
	}

	for _, a := range involved {
		for _, p := range h.Predecessors(a) {
			if !involvedSet[p] {
				continue
			}
			fMap, ok := toGminus[a]
			if !ok {
				continue
			}
			gMap, ok := toGminus[p]
			if !ok {
				continue
			}
			reverse := make(map[string]string, len(fMap))
			for node, img := range fMap {
				reverse[img] = node
			}
			newMap := make(hom.Mapping, len(gMap))
			for y, img := range gMap {
				if target, ok := reverse[img]; ok {
					newMap[y] = target
				}
			}
			if err := h.ReplaceTyping(p, a, newMap); err != nil {
				return err
			}
		}
	}
	return nil
}

func intersectSorted(a, b []string) []string {
	bs := make(map[string]bool, len(b))
	for _, v := range b {
		bs[v] = true
	}
	var out []string
	for _, v := range a {
		if bs[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
