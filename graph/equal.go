package graph

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpDictOpts = []cmp.Option{cmpopts.EquateEmpty()}

// Equal reports whether g and other have the same nodes and edges, up
// to attribute equality. g carries an unexported mutex, so this
// compares through the exported accessors rather than a direct
// cmp.Equal on the struct.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	gn, on := g.Nodes(), other.Nodes()
	if len(gn) != len(on) {
		return false
	}
	for i, id := range gn {
		if id != on[i] {
			return false
		}
		if !cmp.Equal(g.Node(id).Attrs, other.Node(id).Attrs, cmpDictOpts...) {
			return false
		}
	}
	ge, oe := g.Edges(), other.Edges()
	if len(ge) != len(oe) {
		return false
	}
	for i, e := range ge {
		o := oe[i]
		if e.From != o.From || e.To != o.To {
			return false
		}
		if !cmp.Equal(e.Attrs, o.Attrs, cmpDictOpts...) {
			return false
		}
	}
	return true
}
