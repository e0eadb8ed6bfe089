package rulehierarchy

import (
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// RefineRuleHierarchy closes rh over h (spec.md §4.5, "refinement"): it
// does not change any rule or instance GetRulePropagations already
// computed, it only adds what is missing so that rh covers the whole
// hierarchy:
//
//   - every graph in h not yet carrying a rule gets the identity rule
//     over it, with the identity instance;
//   - every direct typing edge (s, t) of h whose endpoints both carry a
//     rule, but whose pair has no entry in rh.RuleHomomorphisms, gets
//     one filled in wherever it can be derived without ambiguity: when
//     t's rule is the identity rule just added, the homomorphism is
//     simply s's instance composed with the typing (and, when s's rule
//     is itself purely restrictive, the same map serves all three of
//     L, P and R since s's P and RHS coincide).
//
// Edges between two rules neither of which is an identity rule added
// by this call are left as GetRulePropagations produced them: deriving
// a homomorphism there needs the rewrite's own added-node routing,
// which only GetRulePropagations(at that graph) has.
func RefineRuleHierarchy(h *hierarchy.Hierarchy, rh *RuleHierarchy) error {
	filledIdentity := make(map[string]bool)
	for _, g := range h.Graphs() {
		if _, ok := rh.Rules[g]; ok {
			continue
		}
		gg := h.GetGraph(g)
		rh.Rules[g] = rule.Identity(gg)
		rh.Instances[g] = hom.Identity(gg.Nodes())
		filledIdentity[g] = true
	}

	for _, s := range h.Graphs() {
		for _, t := range h.Successors(s) {
			key := [2]string{s, t}
			if _, done := rh.RuleHomomorphisms[key]; done {
				continue
			}
			rs, sOk := rh.Rules[s]
			rt, tOk := rh.Rules[t]
			if !sOk || !tOk {
				continue
			}
			typing := h.GetTyping(s, t)
			if typing == nil {
				continue
			}

			if filledIdentity[s] && filledIdentity[t] {
				rh.RuleHomomorphisms[key] = RuleHom{L: typing.Clone(), P: typing.Clone(), R: typing.Clone()}
				continue
			}
			if !filledIdentity[t] {
				continue
			}

			is := rh.Instances[s]
			lMap, ok := is.Compose(typing)
			if !ok {
				continue
			}
			pInstance, ok := rs.PLhs.Compose(is)
			if !ok {
				continue
			}
			pMap, ok := pInstance.Compose(typing)
			if !ok {
				continue
			}

			ruleHom := RuleHom{L: lMap, P: pMap}
			if !rs.IsRelaxing() {
				ruleHom.R = pMap
			}
			rh.RuleHomomorphisms[key] = ruleHom
		}
	}
	return nil
}
