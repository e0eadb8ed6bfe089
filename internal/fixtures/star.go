package fixtures

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
)

// Star builds center, a width-node graph, plus one typing edge per
// leaf into center: every leaf is itself a width-node graph, typed to
// center by matching index (leaf's node j -> center's node j). Every
// leaf is thus a direct ancestor of center, and center a direct
// descendant of every leaf — useful for exercising multi-ancestor
// propagation/lifting in one call.
func Star(center string, leaves []string, width int) (*hierarchy.Hierarchy, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeafSet
	}
	h := hierarchy.New(hierarchy.WithCapacity(len(leaves) + 1))

	cg := graph.New()
	for i := 0; i < width; i++ {
		if err := cg.AddNode(nodeName(center, i), nil); err != nil {
			return nil, err
		}
	}
	if err := h.AddGraph(center, cg, nil); err != nil {
		return nil, err
	}

	for _, leaf := range leaves {
		lg := graph.New()
		for i := 0; i < width; i++ {
			if err := lg.AddNode(nodeName(leaf, i), nil); err != nil {
				return nil, err
			}
		}
		if err := h.AddGraph(leaf, lg, nil); err != nil {
			return nil, err
		}
		m := make(hom.Mapping, width)
		for i := 0; i < width; i++ {
			m[nodeName(leaf, i)] = nodeName(center, i)
		}
		if err := h.AddTyping(leaf, center, m, nil); err != nil {
			return nil, err
		}
	}
	return h, nil
}
