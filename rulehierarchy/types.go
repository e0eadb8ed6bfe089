package rulehierarchy

import (
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// RuleHom is the triple of L/P/R component maps between the rules
// attached to two adjacent graphs in a RuleHierarchy.
type RuleHom struct {
	L, P, R hom.Mapping
}

// RuleHierarchy is the result of GetRulePropagations: a rule attached
// to origin and to every ancestor/descendant it touches, the instance
// of each attached rule's LHS into its graph, and the homomorphisms
// between rules keyed by (ancestor, origin) and (origin, descendant)
// pairs, whether or not the two graphs are directly typed.
type RuleHierarchy struct {
	Rules             map[string]rule.Rule
	Instances         map[string]hom.Mapping
	RuleHomomorphisms map[[2]string]RuleHom
}

func newRuleHierarchy() *RuleHierarchy {
	return &RuleHierarchy{
		Rules:             make(map[string]rule.Rule),
		Instances:         make(map[string]hom.Mapping),
		RuleHomomorphisms: make(map[[2]string]RuleHom),
	}
}
