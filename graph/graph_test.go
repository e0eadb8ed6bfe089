package graph_test

import (
	"testing"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
	"github.com/stretchr/testify/require"
)

func TestAddNodeEdgeBasics(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", attrs.Dict{"color": attrs.NewFiniteSet("red")}))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", attrs.Dict{"weight": attrs.NewIntegerSet(1)}))

	require.True(t, g.HasNode("a"))
	require.True(t, g.HasEdge("a", "b"))
	require.Equal(t, []string{"a", "b"}, g.Nodes())
	require.Equal(t, []string{"b"}, g.OutNeighbors("a"))
	require.Equal(t, []string{"a"}, g.InNeighbors("b"))
}

func TestCloneNodeCarriesEdgesAndAttrs(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", attrs.Dict{"k": attrs.NewFiniteSet("v")}))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))
	require.NoError(t, g.AddEdge("b", "a", nil))

	newID, err := g.CloneNode("a", "a")
	require.NoError(t, err)
	require.Equal(t, "a0", newID)
	require.True(t, g.HasEdge(newID, "b"))
	require.True(t, g.HasEdge("b", newID))
	require.True(t, g.HasEdge("a", "b"))
	clonedNode := g.Node(newID)
	require.Equal(t, []string{"v"}, clonedNode.Attrs["k"].(attrs.FiniteSet).Values())
}

func TestCloneNodeSelfLoop(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddEdge("a", "a", nil))

	newID, err := g.CloneNode("a", "a")
	require.NoError(t, err)
	require.True(t, g.HasEdge(newID, newID))
	require.False(t, g.HasEdge(newID, "a"))
	require.False(t, g.HasEdge("a", newID))
}

func TestMergeNodesUnionsAttrsAndEdges(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", attrs.Dict{"n": attrs.NewFiniteSet("a")}))
	require.NoError(t, g.AddNode("b", attrs.Dict{"n": attrs.NewFiniteSet("b")}))
	require.NoError(t, g.AddNode("x", nil))
	require.NoError(t, g.AddEdge("x", "a", nil))
	require.NoError(t, g.AddEdge("x", "b", nil))

	newID, err := g.MergeNodes([]string{"a", "b"}, "c")
	require.NoError(t, err)
	require.Equal(t, "c", newID)
	require.False(t, g.HasNode("a"))
	require.False(t, g.HasNode("b"))
	require.True(t, g.HasEdge("x", "c"))
	require.ElementsMatch(t, []string{"a", "b"}, g.Node("c").Attrs["n"].(attrs.FiniteSet).Values())

	// only one coalesced edge from x to c, not two
	count := 0
	for _, e := range g.Edges() {
		if e.From == "x" && e.To == "c" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestMergeNodesBetweenMergedBecomesSelfLoop(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))

	newID, err := g.MergeNodes([]string{"a", "b"}, "ab")
	require.NoError(t, err)
	require.True(t, g.HasEdge(newID, newID))
}

func TestFreshNodeIDTieBreak(t *testing.T) {
	g := graph.New()
	require.Equal(t, "p", g.FreshNodeID("p"))
	require.NoError(t, g.AddNode("p", nil))
	require.Equal(t, "p0", g.FreshNodeID("p"))
	require.NoError(t, g.AddNode("p0", nil))
	require.Equal(t, "p1", g.FreshNodeID("p"))
}
