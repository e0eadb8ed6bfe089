package rulehierarchy

import (
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/kernel"
	"github.com/birdduck/regraph/rule"
)

// liftToAncestor computes the rule lifted to ancestor a of origin,
// given origin's rule r and its instance into origin (spec.md §4.5,
// "Lifting to ancestor A"):
//
//  1. Lₐ is the pullback of the cospan a -t-> origin <-instance- LHS:
//     nodes of Lₐ are pairs (ancestor-node, LHS-node) agreeing on their
//     common image in origin.
//  2. the canonical Pₐ is the pullback of Lₐ -l_a_l-> LHS <-p_lhs- P.
//  3. if p_typing[a] restricts some ancestor node's clones, Pₐ is
//     pruned to exactly the designated P-node per restricted node.
//
// The lifted rule is purely restrictive: its RHS equals its (possibly
// pruned) P with the identity span, since a lifted rule only exists to
// carry clones/deletions upward, never merges/additions.
//
// It also returns the rule homomorphism from the lifted rule to r
// itself (the L/P/R maps induced by the two pullbacks), since that is
// exactly the data GetRulePropagations needs to populate
// RuleHomomorphisms for the (a, origin) typing edge.
func liftToAncestor(h *hierarchy.Hierarchy, a, origin string, r rule.Rule, instance hom.Mapping, pTyping map[string][]string) (rule.Rule, hom.Mapping, RuleHom, error) {
	t, err := h.ComposePathTyping(a, origin)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}
	ancestorGraph := h.GetGraph(a)
	originGraph := h.GetGraph(origin)

	lA, lAtoA, lAtoL, err := kernel.Pullback(t, instance, ancestorGraph, r.LHS, originGraph)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	pA, pAtoLA, pAtoP, err := kernel.Pullback(lAtoL, r.PLhs, lA, r.P, r.LHS)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	if len(pTyping) > 0 {
		var toRemove []string
		for _, n := range pA.Nodes() {
			lANode := pAtoLA[n]
			ancestorNode := lAtoA[lANode]
			allowed, constrained := pTyping[ancestorNode]
			if !constrained {
				continue
			}
			if !containsString(allowed, pAtoP[n]) {
				toRemove = append(toRemove, n)
			}
		}
		for _, n := range toRemove {
			pA.RemoveNode(n)
			delete(pAtoLA, n)
			delete(pAtoP, n)
		}
	}

	liftedRule, err := rule.New(lA, pA, pA, pAtoLA, hom.Identity(pA.Nodes()))
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	pToRHS, _ := pAtoP.Compose(r.PRhs)
	ruleHom := RuleHom{L: lAtoL, P: pAtoP, R: pToRHS}
	return liftedRule, lAtoA, ruleHom, nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
