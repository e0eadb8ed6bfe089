package rulehierarchy

import (
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// GetRulePropagations derives, without mutating h, the rule that a
// Rewrite(h, origin, r, instance) would implicitly apply at every
// ancestor and descendant of origin (spec.md §4.5). Ancestors receive
// a purely restrictive rule obtained by lifting r's LHS/P through a
// pullback; descendants receive a rule obtained by projecting r's
// LHS/RHS through an image factorization and a pushout.
//
// pTyping and rhsTyping are the same maps Rewrite accepts, keyed by
// ancestor/descendant graph id; they disambiguate clone sites and
// pre-seed descendant targets for added nodes exactly as they do for
// Rewrite itself.
func GetRulePropagations(h *hierarchy.Hierarchy, origin string, r rule.Rule, instance hom.Mapping, pTyping map[string]map[string][]string, rhsTyping map[string]map[string][]string) (*RuleHierarchy, error) {
	rh := newRuleHierarchy()
	rh.Rules[origin] = r
	rh.Instances[origin] = instance.Clone()

	ancestors, err := h.GetAncestors(origin)
	if err != nil {
		return nil, err
	}
	for _, a := range ancestors {
		liftedRule, liftedInstance, ruleHom, err := liftToAncestor(h, a, origin, r, instance, pTyping[a])
		if err != nil {
			return nil, err
		}
		rh.Rules[a] = liftedRule
		rh.Instances[a] = liftedInstance
		rh.RuleHomomorphisms[[2]string{a, origin}] = ruleHom
	}

	descendants, err := h.GetDescendants(origin)
	if err != nil {
		return nil, err
	}
	for _, d := range descendants {
		projectedRule, projectedInstance, ruleHom, err := projectToDescendant(h, origin, d, r, instance, rhsTyping[d])
		if err != nil {
			return nil, err
		}
		rh.Rules[d] = projectedRule
		rh.Instances[d] = projectedInstance
		rh.RuleHomomorphisms[[2]string{origin, d}] = ruleHom
	}

	return rh, nil
}
