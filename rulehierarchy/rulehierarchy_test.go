package rulehierarchy_test

import (
	"testing"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
	"github.com/birdduck/regraph/rulehierarchy"
	"github.com/stretchr/testify/require"
)

// TestGetRulePropagationsLiftsCloningToAncestor mirrors the cloning
// scenario also exercised end to end in package rewrite, but checks
// the rule GetRulePropagations derives for the ancestor G without
// mutating the hierarchy.
func TestGetRulePropagationsLiftsCloningToAncestor(t *testing.T) {
	h := hierarchy.New()
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	require.NoError(t, gg.AddNode("y", nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "a"}, nil))

	lhs := graph.New()
	require.NoError(t, lhs.AddNode("a", nil))
	require.NoError(t, lhs.AddNode("b", nil))
	p := graph.New()
	require.NoError(t, p.AddNode("a1", nil))
	require.NoError(t, p.AddNode("a2", nil))
	require.NoError(t, p.AddNode("b", nil))
	r, err := rule.New(lhs, p, p,
		hom.Mapping{"a1": "a", "a2": "a", "b": "b"},
		hom.Identity(p.Nodes()),
	)
	require.NoError(t, err)

	rh, err := rulehierarchy.GetRulePropagations(h, "T", r, hom.Identity(lhs.Nodes()),
		map[string]map[string][]string{"G": {"x": {"a1"}, "y": {"a2"}}},
		nil,
	)
	require.NoError(t, err)

	// the hierarchy itself must be untouched
	require.ElementsMatch(t, []string{"a", "b"}, h.GetGraph("T").Nodes())
	require.ElementsMatch(t, []string{"x", "y"}, h.GetGraph("G").Nodes())

	liftedG, ok := rh.Rules["G"]
	require.True(t, ok)
	require.Len(t, liftedG.LHS.Nodes(), 2)
	require.Len(t, liftedG.P.Nodes(), 2)
	require.False(t, liftedG.IsRestrictive())

	instG, ok := rh.Instances["G"]
	require.True(t, ok)
	require.ElementsMatch(t, []string{"x", "y"}, instG.Image())
	require.True(t, instG.IsTotal(liftedG.LHS.Nodes()))

	homGT, ok := rh.RuleHomomorphisms[[2]string{"G", "T"}]
	require.True(t, ok)
	require.Len(t, homGT.L, 2)
	for _, target := range homGT.L {
		require.Equal(t, "a", target)
	}
}

// TestGetRulePropagationsProjectsMergeToDescendant mirrors the merge
// scenario also exercised end to end in package rewrite, but for the
// opposite direction: the merge happens at the concrete graph G and
// must be reflected at its type graph T.
func TestGetRulePropagationsProjectsMergeToDescendant(t *testing.T) {
	h := hierarchy.New()
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	require.NoError(t, gg.AddNode("y", nil))
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "b"}, nil))

	p := graph.New()
	require.NoError(t, p.AddNode("x", nil))
	require.NoError(t, p.AddNode("y", nil))
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("m", nil))
	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Mapping{"x": "m", "y": "m"})
	require.NoError(t, err)

	rh, err := rulehierarchy.GetRulePropagations(h, "G", r, hom.Identity(p.Nodes()), nil, nil)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"a", "b"}, h.GetGraph("T").Nodes())

	projectedT, ok := rh.Rules["T"]
	require.True(t, ok)
	require.ElementsMatch(t, []string{"a", "b"}, []string(rh.Instances["T"].Image()))
	require.Len(t, projectedT.LHS.Nodes(), 2)
	require.Len(t, projectedT.RHS.Nodes(), 1)

	homGT, ok := rh.RuleHomomorphisms[[2]string{"G", "T"}]
	require.True(t, ok)
	require.Len(t, homGT.R, 1)
	_, hasM := homGT.R["m"]
	require.True(t, hasM)
}

// TestRefineRuleHierarchyFillsUntouchedGraphs checks that graphs
// neither ancestor nor descendant of the origin get an identity rule,
// and that a typing edge between two such graphs gets a homomorphism
// equal to the typing itself.
func TestRefineRuleHierarchyFillsUntouchedGraphs(t *testing.T) {
	h := hierarchy.New()
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a"}, nil))

	w1 := graph.New()
	require.NoError(t, w1.AddNode("p", nil))
	w2 := graph.New()
	require.NoError(t, w2.AddNode("q", nil))
	require.NoError(t, h.AddGraph("W1", w1, nil))
	require.NoError(t, h.AddGraph("W2", w2, nil))
	require.NoError(t, h.AddTyping("W1", "W2", hom.Mapping{"p": "q"}, nil))

	r := rule.Identity(tg)
	rh, err := rulehierarchy.GetRulePropagations(h, "T", r, hom.Identity(tg.Nodes()), nil, nil)
	require.NoError(t, err)
	require.NotContains(t, rh.Rules, "W1")
	require.NotContains(t, rh.Rules, "W2")

	require.NoError(t, rulehierarchy.RefineRuleHierarchy(h, rh))

	w1Rule, ok := rh.Rules["W1"]
	require.True(t, ok)
	require.Equal(t, []string{"p"}, w1Rule.LHS.Nodes())
	w2Rule, ok := rh.Rules["W2"]
	require.True(t, ok)
	require.Equal(t, []string{"q"}, w2Rule.LHS.Nodes())

	hom12, ok := rh.RuleHomomorphisms[[2]string{"W1", "W2"}]
	require.True(t, ok)
	require.Equal(t, "q", hom12.L["p"])
	require.Equal(t, "q", hom12.P["p"])
	require.Equal(t, "q", hom12.R["p"])
}
