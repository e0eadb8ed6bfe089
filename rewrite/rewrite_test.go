package rewrite_test

import (
	"testing"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rewrite"
	"github.com/birdduck/regraph/rgerrors"
	"github.com/birdduck/regraph/rule"
	"github.com/stretchr/testify/require"
)

func chainHierarchy(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	h := hierarchy.New()
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	require.NoError(t, gg.AddNode("y", nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	return h
}

// TestRewriteIdentityIsNoOp exercises testable-property 4: L=P=R with
// identity spans leaves the hierarchy unchanged up to attribute
// equality.
func TestRewriteIdentityIsNoOp(t *testing.T) {
	h := chainHierarchy(t)
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "a"}, nil))

	before := h.Clone()
	tg := h.GetGraph("T")
	r := rule.Identity(tg)

	_, err := rewrite.Rewrite(h, "T", r, hom.Identity(tg.Nodes()))
	require.NoError(t, err)
	require.True(t, before.Equal(h))
}

// TestRewriteTwoLevelCloning reproduces scenario S1 end to end through
// the public Rewrite entry point.
func TestRewriteTwoLevelCloning(t *testing.T) {
	h := chainHierarchy(t)
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

	rhsGPrime, err := rewrite.Rewrite(h, "T", r, hom.Identity(lhs.Nodes()),
		rewrite.WithPTyping(map[string]map[string][]string{
			"G": {"x": {"a1"}, "y": {"a2"}},
		}),
	)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a1", "a2", "b"}, h.GetGraph("T").Nodes())
	require.ElementsMatch(t, []string{"x", "y"}, h.GetGraph("G").Nodes())

	got := h.GetTyping("G", "T")
	require.Equal(t, rhsGPrime["a1"], got["x"])
	require.Equal(t, rhsGPrime["a2"], got["y"])
}

// TestRewriteForwardMerge reproduces scenario S2.
func TestRewriteForwardMerge(t *testing.T) {
	h := chainHierarchy(t)
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "b"}, nil))

	p := graph.New()
	require.NoError(t, p.AddNode("a", nil))
	require.NoError(t, p.AddNode("b", nil))
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("c", nil))
	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Mapping{"a": "c", "b": "c"})
	require.NoError(t, err)

	_, err = rewrite.Rewrite(h, "T", r, hom.Identity(p.Nodes()))
	require.NoError(t, err)

	require.Equal(t, []string{"c"}, h.GetGraph("T").Nodes())
	require.ElementsMatch(t, []string{"x", "y"}, h.GetGraph("G").Nodes())
	got := h.GetTyping("G", "T")
	require.Equal(t, "c", got["x"])
	require.Equal(t, "c", got["y"])
}

// TestRewriteDeletionPropagation reproduces scenario S3: a deletion on
// T cascades to prune M and G, with all three graphs and every
// incident typing updated by one call.
func TestRewriteDeletionPropagation(t *testing.T) {
	h := hierarchy.New()
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	mg := graph.New()
	require.NoError(t, mg.AddNode("u", nil))
	require.NoError(t, mg.AddNode("v", nil))
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddGraph("M", mg, nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	require.NoError(t, h.AddTyping("M", "T", hom.Mapping{"u": "a", "v": "b"}, nil))
	require.NoError(t, h.AddTyping("G", "M", hom.Mapping{"x": "u"}, nil))

	lhs := graph.New()
	require.NoError(t, lhs.AddNode("a", nil))
	require.NoError(t, lhs.AddNode("b", nil))
	p := graph.New()
	require.NoError(t, p.AddNode("b", nil))
	r, err := rule.New(lhs, p, p, hom.Mapping{"b": "b"}, hom.Identity(p.Nodes()))
	require.NoError(t, err)

	_, err = rewrite.Rewrite(h, "T", r, hom.Identity(lhs.Nodes()))
	require.NoError(t, err)

	require.Equal(t, []string{"b"}, h.GetGraph("T").Nodes())
	require.Equal(t, []string{"v"}, h.GetGraph("M").Nodes())
	require.Empty(t, h.GetGraph("G").Nodes())
}

// TestRewriteStrictAdditionWithoutDescendantTypingFails reproduces
// scenario S4: adding a node under strict=true without an rhs_typing
// entry for a live descendant must fail in stage 0, before any graph
// is mutated.
func TestRewriteStrictAdditionWithoutDescendantTypingFails(t *testing.T) {
	h := hierarchy.New()
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	mg := graph.New()
	require.NoError(t, mg.AddNode("u", nil))
	require.NoError(t, mg.AddNode("v", nil))
	dg := graph.New()
	require.NoError(t, dg.AddNode("p", nil))
	require.NoError(t, dg.AddNode("q", nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddGraph("M", mg, nil))
	require.NoError(t, h.AddGraph("D", dg, nil))
	require.NoError(t, h.AddTyping("M", "T", hom.Mapping{"u": "a", "v": "b"}, nil))
	require.NoError(t, h.AddTyping("T", "D", hom.Mapping{"a": "p", "b": "q"}, nil))

	before := h.Clone()

	p := graph.New()
	require.NoError(t, p.AddNode("a", nil))
	require.NoError(t, p.AddNode("b", nil))
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("a", nil))
	require.NoError(t, rhs.AddNode("b", nil))
	require.NoError(t, rhs.AddNode("c", attrs.Dict{}))
	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Identity(p.Nodes()))
	require.NoError(t, err)

	_, err = rewrite.Rewrite(h, "T", r, hom.Identity(p.Nodes()), rewrite.WithStrict(true))
	require.Error(t, err)
	require.True(t, rgerrors.Of(err, rgerrors.KindRewriting))
	require.True(t, before.Equal(h))
}
