package propagate_test

import (
	"testing"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/propagate"
	"github.com/birdduck/regraph/rule"
	"github.com/stretchr/testify/require"
)

// TestBackwardTwoLevelCloning reproduces scenario S1: T={a,b}, G={x,y},
// t={x->a,y->a}. Cloning a into {a1,a2} in T, with p_typing[G] routing
// x to a1 and y to a2, must leave G's node set unchanged and update
// t to {x->a1, y->a2}.
func TestBackwardTwoLevelCloning(t *testing.T) {
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

	gMinus := p.Clone()
	pGMinus := hom.Identity(p.Nodes())
	instance := hom.Identity(lhs.Nodes())
	pTyping := map[string]map[string][]string{
		"G": {"x": {"a1"}, "y": {"a2"}},
	}

	require.NoError(t, h.SetGraph("T", gMinus))
	require.NoError(t, propagate.Backward(h, "T", r, instance, gMinus, pGMinus, pTyping))

	require.ElementsMatch(t, []string{"x", "y"}, h.GetGraph("G").Nodes())
	got := h.GetTyping("G", "T")
	require.Equal(t, "a1", got["x"])
	require.Equal(t, "a2", got["y"])
}

// TestForwardMerge reproduces scenario S2: T={a,b}, G={x,y},
// t={x->a,y->b}. Merging a,b into c in T must leave G unchanged and
// update t to {x->c,y->c}.
func TestForwardMerge(t *testing.T) {
	h := hierarchy.New()
	tg := graph.New()
	require.NoError(t, tg.AddNode("a", nil))
	require.NoError(t, tg.AddNode("b", nil))
	gg := graph.New()
	require.NoError(t, gg.AddNode("x", nil))
	require.NoError(t, gg.AddNode("y", nil))
	require.NoError(t, h.AddGraph("T", tg, nil))
	require.NoError(t, h.AddGraph("G", gg, nil))
	require.NoError(t, h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "b"}, nil))

	p := graph.New()
	require.NoError(t, p.AddNode("a", nil))
	require.NoError(t, p.AddNode("b", nil))
	rhs := graph.New()
	require.NoError(t, rhs.AddNode("c", nil))
	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Mapping{"a": "c", "b": "c"})
	require.NoError(t, err)

	gPrime := graph.New()
	require.NoError(t, gPrime.AddNode("c", nil))
	rhsGPrime := hom.Mapping{"c": "c"}
	instance := hom.Identity(p.Nodes())

	require.NoError(t, propagate.Forward(h, "T", r, instance, gPrime, rhsGPrime, nil))
	require.NoError(t, h.SetGraph("T", gPrime))

	require.ElementsMatch(t, []string{"x", "y"}, h.GetGraph("G").Nodes())
	got := h.GetTyping("G", "T")
	require.Equal(t, "c", got["x"])
	require.Equal(t, "c", got["y"])
}

// TestBackwardDeletionPropagation reproduces scenario S3: T={a,b},
// M={u,v}, G={x}, t_MT={u->a,v->b}, t_GM={x->u}. Deleting a in T must
// prune u from M and x from G, with all typings pruned.
func TestBackwardDeletionPropagation(t *testing.T) {
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

	gMinus := p.Clone()
	pGMinus := hom.Identity(p.Nodes())
	instance := hom.Identity(lhs.Nodes())

	require.NoError(t, propagate.Backward(h, "T", r, instance, gMinus, pGMinus, nil))
	require.NoError(t, h.SetGraph("T", gMinus))

	require.Equal(t, []string{"v"}, h.GetGraph("M").Nodes())
	require.Empty(t, h.GetGraph("G").Nodes())
}
