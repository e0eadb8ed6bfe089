package rewrite

import (
	"sort"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
	"github.com/birdduck/regraph/rule"
)

// normalizeInstance defaults instance to the identity on V(L) when nil
// (only valid if every L-node id already names a G-node), then checks
// it is a total homomorphism L -> G and a mono.
func normalizeInstance(g *graph.Graph, r rule.Rule, instance hom.Mapping) (hom.Mapping, error) {
	if instance == nil {
		for _, l := range r.LHS.Nodes() {
			if !g.HasNode(l) {
				return nil, rgerrors.Rewriting("no instance given and LHS node %q is not present in the target graph by id", l)
			}
		}
		instance = hom.Identity(r.LHS.Nodes())
	}
	if err := hom.CheckHomomorphism(r.LHS, g, instance); err != nil {
		return nil, err
	}
	if !instance.IsMono() {
		return nil, rgerrors.Rewriting("instance is not mono: two LHS nodes share a target image")
	}
	return instance, nil
}

// validatePTyping enforces stage 0's two p_typing checks: it must not
// re-type any node relative to the existing ancestor -> origin typing,
// and — wherever an ancestor's unconstrained predecessor also straddles
// a clone site — the ancestor's restriction must be canonical (cover
// every P-preimage of the cloned L-node), since otherwise the
// unconstrained predecessor would have no unambiguous way to route its
// own copies down to the ancestor's narrowed set.
func validatePTyping(h *hierarchy.Hierarchy, graphID string, ancestors []string, r rule.Rule, instance hom.Mapping, pTyping map[string]map[string][]string) error {
	if len(pTyping) == 0 {
		return nil
	}
	ancestorSet := make(map[string]bool, len(ancestors))
	for _, a := range ancestors {
		ancestorSet[a] = true
	}
	invInstance := make(map[string]string, len(instance))
	for l, g0 := range instance {
		invInstance[g0] = l
	}

	for a, nodeMap := range pTyping {
		if !ancestorSet[a] {
			return rgerrors.Rewriting("p_typing refers to %q, which is not an ancestor of %q", a, graphID)
		}
		composed, err := h.ComposePathTyping(a, graphID)
		if err != nil {
			return err
		}
		for k, vs := range nodeMap {
			existing, ok := composed[k]
			if !ok {
				return rgerrors.Rewriting("p_typing node %q of %q has no existing typing into %q", k, a, graphID)
			}
			for _, v := range vs {
				l, ok := r.PLhs[v]
				if !ok {
					return rgerrors.Rewriting("p_typing[%q][%q] names unknown P-node %q", a, k, v)
				}
				if instance[l] != existing {
					return rgerrors.Rewriting("p_typing[%q][%q] would re-type node %q: existing image %q disagrees with P-node %q", a, k, k, existing, v)
				}
			}
		}
	}

	for a, nodeMap := range pTyping {
		composed, err := h.ComposePathTyping(a, graphID)
		if err != nil {
			return err
		}
		for _, pred := range h.Predecessors(a) {
			if !ancestorSet[pred] {
				continue
			}
			if _, constrained := pTyping[pred]; constrained {
				continue
			}
			for k, vs := range nodeMap {
				g0 := composed[k]
				l0, isL := invInstance[g0]
				if !isL {
					continue
				}
				full := r.PLhs.Preimage(l0)
				if len(full) <= 1 {
					continue
				}
				if !sameStringSet(vs, full) {
					return rgerrors.Rewriting(
						"p_typing[%q][%q] is not canonical: predecessor %q of %q has no entry and requires coverage of every clone of %q",
						a, k, pred, a, l0,
					)
				}
			}
		}
	}
	return nil
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// completeRHSTyping auto-fills a descendant's rhs_typing from its
// dominator (its parent in the forward BFS spanning tree from
// graphID) when the descendant itself carries no entry, by composing
// the dominator's targets through the direct dominator -> descendant
// typing. In strict mode, every added R-node must end up with a
// non-empty entry in every descendant, or rewriting fails before any
// mutation.
func completeRHSTyping(h *hierarchy.Hierarchy, graphID string, descendants []string, r rule.Rule, rhsTyping map[string]map[string][]string, strict bool) (map[string]map[string][]string, error) {
	out := make(map[string]map[string][]string, len(rhsTyping))
	for d, m := range rhsTyping {
		out[d] = m
	}

	tree, err := h.BFSTree(graphID, false)
	if err != nil {
		return nil, err
	}

	for _, d := range descendants {
		if _, present := out[d]; present {
			continue
		}
		dominator := tree[d]
		if dominator == "" {
			continue
		}
		domMap, ok := out[dominator]
		if !ok {
			continue
		}
		typing := h.GetTyping(dominator, d)
		derived := make(map[string][]string, len(domMap))
		for n, targets := range domMap {
			seen := make(map[string]bool, len(targets))
			var mapped []string
			for _, t := range targets {
				if img, ok := typing[t]; ok && !seen[img] {
					seen[img] = true
					mapped = append(mapped, img)
				}
			}
			if len(mapped) > 0 {
				derived[n] = mapped
			}
		}
		if len(derived) > 0 {
			out[d] = derived
		}
	}

	if strict {
		added := r.AddedNodes()
		for _, n := range added {
			for _, d := range descendants {
				if len(out[d][n]) == 0 {
					return nil, rgerrors.Rewriting("strict rewrite: added node %q has no rhs_typing entry for descendant %q", n, d)
				}
			}
		}
	}
	return out, nil
}
