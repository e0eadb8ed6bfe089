package rule_test

import (
	"testing"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
	"github.com/stretchr/testify/require"
)

// cloneRule builds L={a,b}, P={a1,a2,b}, R=P with p_lhs cloning a.
func cloneRule(t *testing.T) rule.Rule {
	t.Helper()
	lhs := graph.New()
	require.NoError(t, lhs.AddNode("a", nil))
	require.NoError(t, lhs.AddNode("b", nil))

	p := graph.New()
	require.NoError(t, p.AddNode("a1", nil))
	require.NoError(t, p.AddNode("a2", nil))
	require.NoError(t, p.AddNode("b", nil))

	pLhs := hom.Mapping{"a1": "a", "a2": "a", "b": "b"}
	pRhs := hom.Identity(p.Nodes())

	r, err := rule.New(lhs, p, p, pLhs, pRhs)
	require.NoError(t, err)
	return r
}

func TestClonedNodes(t *testing.T) {
	r := cloneRule(t)
	cloned := r.ClonedNodes()
	require.ElementsMatch(t, []string{"a1", "a2"}, cloned["a"])
	require.True(t, r.IsRestrictive())
	require.False(t, r.IsRelaxing())
}

func TestRemovedAndAddedNodes(t *testing.T) {
	lhs := graph.New()
	require.NoError(t, lhs.AddNode("a", nil))
	p := graph.New()
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("c", nil))

	r, err := rule.New(lhs, p, rhs, hom.Mapping{}, hom.Mapping{})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, r.RemovedNodes())
	require.Equal(t, []string{"c"}, r.AddedNodes())
	require.True(t, r.IsRestrictive())
	require.True(t, r.IsRelaxing())
}

func TestMergedNodes(t *testing.T) {
	p := graph.New()
	require.NoError(t, p.AddNode("a", nil))
	require.NoError(t, p.AddNode("b", nil))
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("c", nil))

	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Mapping{"a": "c", "b": "c"})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, r.MergedNodes()["c"])
}

func TestIdentityRuleIsEmpty(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("x", attrs.Dict{"k": attrs.NewFiniteSet("v")}))
	r := rule.Identity(g)
	require.True(t, r.IsEmpty())
}

func TestEqualIgnoresMapIterationOrder(t *testing.T) {
	r1 := cloneRule(t)
	r2 := cloneRule(t)
	require.True(t, r1.Equal(r2))

	g := graph.New()
	require.NoError(t, g.AddNode("z", nil))
	other := rule.Identity(g)
	require.False(t, r1.Equal(other))
}
