package fixtures

import (
	"fmt"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
)

// Chain builds a linear hierarchy levels[0] -> levels[1] -> ... ->
// levels[n-1] (each arrow a typing edge from the more concrete graph
// to the more abstract one, per the typing convention), every graph
// holding width nodes named "<levelID>_<i>", with consecutive levels
// typed by matching index: level i's node j types to level i+1's node
// j. width must be at least 1; levels must name at least 2 graphs.
func Chain(levels []string, width int) (*hierarchy.Hierarchy, error) {
	if len(levels) < 2 {
		return nil, ErrTooFewLevels
	}
	h := hierarchy.New(hierarchy.WithCapacity(len(levels)))
	for _, id := range levels {
		g := graph.New()
		for i := 0; i < width; i++ {
			if err := g.AddNode(nodeName(id, i), nil); err != nil {
				return nil, err
			}
		}
		if err := h.AddGraph(id, g, nil); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(levels)-1; i++ {
		m := make(hom.Mapping, width)
		for j := 0; j < width; j++ {
			m[nodeName(levels[i], j)] = nodeName(levels[i+1], j)
		}
		if err := h.AddTyping(levels[i], levels[i+1], m, nil); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func nodeName(graphID string, i int) string {
	return fmt.Sprintf("%s_%d", graphID, i)
}
