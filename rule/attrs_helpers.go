package rule

import (
	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/graph"
)

// graphAttrsDiff is the attribute dictionary left over after
// subtracting one node/edge's attrs from another's — reused as the
// value type for RemovedNodeAttrs/AddedNodeAttrs.
type graphAttrsDiff = attrs.Dict

func attrsOfNode(g *graph.Graph, id string) attrs.Dict {
	if n := g.Node(id); n != nil {
		return n.Attrs
	}
	return attrs.Dict{}
}

func emptyAttrs() attrs.Dict { return attrs.Dict{} }

func unionAttrs(a, b attrs.Dict) attrs.Dict {
	u, err := attrs.Union(a, b)
	if err != nil {
		// Mixed attribute-set kinds under the same name is a modeling
		// error the caller's graph construction should never produce;
		// fall back to a rather than silently drop data.
		return a
	}
	return u
}

func subtractAttrs(a, b attrs.Dict) attrs.Dict {
	d, err := attrs.Remove(a, b)
	if err != nil {
		return a
	}
	return d
}
