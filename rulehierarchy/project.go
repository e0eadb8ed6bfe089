package rulehierarchy

import (
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/kernel"
	"github.com/birdduck/regraph/rgerrors"
	"github.com/birdduck/regraph/rule"
)

// projectToDescendant computes the rule projected to descendant d of
// origin, given origin's rule r and its instance into origin (spec.md
// §4.5, "Projection to descendant D"):
//
//  1. L_D is the image of L in D under instance composed with origin's
//     typing into D (image_factorization).
//  2. R_D is the pushout of P -> L_D (through L_D's inclusion) and
//     P -> R: the preserved part of L_D glued to the rule's additions.
//  3. if rhs_typing[d] names existing D-nodes that an added R-node
//     should also be considered to preserve, those D-nodes are adjoined
//     to L_D (as new nodes of the interface, routed straight to the
//     corresponding R_D node) rather than left to be freshly introduced
//     by forward propagation.
//
// The projected rule's P equals its LHS with the identity span: a
// projected rule never restricts anything D already has, it only
// describes what gets merged or added.
//
// It also returns the rule homomorphism from r to the projected rule
// (the L/P/R maps induced by the image factorization and the
// pushout), the data GetRulePropagations needs to populate
// RuleHomomorphisms for the (origin, d) typing edge.
func projectToDescendant(h *hierarchy.Hierarchy, origin, d string, r rule.Rule, instance hom.Mapping, rhsTyping map[string][]string) (rule.Rule, hom.Mapping, RuleHom, error) {
	originToD, err := h.ComposePathTyping(origin, d)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}
	composed, ok := instance.Compose(originToD)
	if !ok {
		return rule.Rule{}, nil, RuleHom{}, rgerrors.ReGraph("instance into %q does not compose with the %q -> %q typing", origin, origin, d)
	}
	descendantGraph := h.GetGraph(d)

	lD, lLhsToLD, lDtoD, err := kernel.ImageFactorization(composed, r.LHS, descendantGraph)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	pToLD, ok := r.PLhs.Compose(lLhsToLD)
	if !ok {
		return rule.Rule{}, nil, RuleHom{}, rgerrors.ReGraph("rule's P -> L does not compose with the image factorization into %q", d)
	}

	rD, lDtoRD, rToRD, err := kernel.Pushout(pToLD, r.PRhs, r.P, lD, r.RHS)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	if len(rhsTyping) > 0 {
		covered := make(map[string]bool, len(lDtoD))
		for _, dNode := range lDtoD {
			covered[dNode] = true
		}
		for rNode, dNodes := range rhsTyping {
			rDNode, ok := rToRD[rNode]
			if !ok {
				continue
			}
			for _, dNode := range dNodes {
				if covered[dNode] {
					continue
				}
				newID := lD.FreshNodeID(dNode)
				if err := lD.AddNode(newID, descendantGraph.Node(dNode).Attrs); err != nil {
					return rule.Rule{}, nil, RuleHom{}, err
				}
				lDtoD[newID] = dNode
				lDtoRD[newID] = rDNode
				covered[dNode] = true
			}
		}
	}

	projected, err := rule.New(lD, lD, rD, hom.Identity(lD.Nodes()), lDtoRD)
	if err != nil {
		return rule.Rule{}, nil, RuleHom{}, err
	}

	ruleHom := RuleHom{L: lLhsToLD, P: pToLD, R: rToRD}
	return projected, lDtoD, ruleHom, nil
}
