package kernel_test

import (
	"testing"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/kernel"
	"github.com/stretchr/testify/require"
)

func buildTriangleCospan(t *testing.T) (a, b, c *graph.Graph, f, g hom.Mapping) {
	t.Helper()
	a = graph.New()
	require.NoError(t, a.AddNode("x", nil))
	require.NoError(t, a.AddNode("y", nil))
	require.NoError(t, a.AddEdge("x", "y", nil))

	b = graph.New()
	require.NoError(t, b.AddNode("u", nil))
	require.NoError(t, b.AddNode("v", nil))
	require.NoError(t, b.AddEdge("u", "v", nil))

	c = graph.New()
	require.NoError(t, c.AddNode("p", nil))
	require.NoError(t, c.AddNode("q", nil))
	require.NoError(t, c.AddEdge("p", "q", nil))

	f = hom.Mapping{"x": "p", "y": "q"}
	g = hom.Mapping{"u": "p", "v": "q"}
	return
}

func TestPullbackIsomorphicCospan(t *testing.T) {
	a, b, c, f, g := buildTriangleCospan(t)
	p, piA, piB, err := kernel.Pullback(f, g, a, b, c)
	require.NoError(t, err)
	require.Len(t, p.Nodes(), 2)
	require.Len(t, p.Edges(), 1)

	// Mediating map from A itself back into the pullback should be the
	// identity composed appropriately: xA=identity on A, xB=g^-1∘f.
	xA := hom.Identity(a.Nodes())
	xB := hom.Mapping{"x": "u", "y": "v"}
	med, err := kernel.UniqueMapToPullback(xA, xB, p, piA, piB)
	require.NoError(t, err)
	require.Len(t, med, 2)
}

func TestPushoutGluesAlongSpan(t *testing.T) {
	a := graph.New()
	require.NoError(t, a.AddNode("shared", nil))

	b := graph.New()
	require.NoError(t, b.AddNode("shared", nil))
	require.NoError(t, b.AddNode("b2", nil))
	require.NoError(t, b.AddEdge("shared", "b2", nil))

	c := graph.New()
	require.NoError(t, c.AddNode("shared", nil))
	require.NoError(t, c.AddNode("c2", nil))
	require.NoError(t, c.AddEdge("shared", "c2", nil))

	f := hom.Mapping{"shared": "shared"}
	g := hom.Mapping{"shared": "shared"}

	q, iotaB, iotaC, err := kernel.Pushout(f, g, a, b, c)
	require.NoError(t, err)
	require.Len(t, q.Nodes(), 3)
	require.Equal(t, iotaB["shared"], iotaC["shared"])

	yB := hom.Mapping{"shared": "y1", "b2": "y2"}
	yC := hom.Mapping{"shared": "y1", "c2": "y3"}
	med, err := kernel.UniqueMapFromPushout(yB, yC, q, iotaB, iotaC)
	require.NoError(t, err)
	require.Equal(t, "y1", med[iotaB["shared"]])
}

func TestImageFactorization(t *testing.T) {
	a := graph.New()
	require.NoError(t, a.AddNode("a1", nil))
	require.NoError(t, a.AddNode("a2", nil))
	require.NoError(t, a.AddEdge("a1", "a2", nil))

	b := graph.New()
	require.NoError(t, b.AddNode("b1", nil))
	require.NoError(t, b.AddNode("b2", nil))
	require.NoError(t, b.AddNode("b3", nil))
	require.NoError(t, b.AddEdge("b1", "b2", nil))

	h := hom.Mapping{"a1": "b1", "a2": "b2"}
	img, e, m, err := kernel.ImageFactorization(h, a, b)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b1", "b2"}, img.Nodes())
	require.True(t, e.IsTotal(a.Nodes()))
	require.True(t, m.IsMono())
}

func TestRelationToSpan(t *testing.T) {
	a := graph.New()
	require.NoError(t, a.AddNode("a1", nil))
	b := graph.New()
	require.NoError(t, b.AddNode("b1", nil))
	require.NoError(t, b.AddNode("b2", nil))

	c, cToA, cToB, err := kernel.RelationToSpan(a, b, map[string][]string{"a1": {"b1", "b2"}}, false, false)
	require.NoError(t, err)
	require.Len(t, c.Nodes(), 2)
	for _, cid := range c.Nodes() {
		require.Equal(t, "a1", cToA[cid])
	}
	_ = cToB
}
