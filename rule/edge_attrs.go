package rule

import "github.com/birdduck/regraph/attrs"

// RemovedEdgeAttrs returns, per surviving L-edge (one still reached
// from P), the attrs present in L but not reached from the
// corresponding P-edge(s).
func (r Rule) RemovedEdgeAttrs() map[[2]string]attrs.Dict {
	out := make(map[[2]string]attrs.Dict)
	for _, e := range r.LHS.Edges() {
		key := [2]string{e.From, e.To}
		reached := emptyAttrs()
		found := false
		for _, pe := range r.P.Edges() {
			if r.PLhs[pe.From] == e.From && r.PLhs[pe.To] == e.To {
				found = true
				reached = unionAttrs(reached, pe.Attrs)
			}
		}
		if !found {
			continue // whole edge removed; not an attr-only diff
		}
		diff := subtractAttrs(e.Attrs, reached)
		if len(diff) > 0 {
			out[key] = diff
		}
	}
	return out
}

// AddedEdgeAttrs returns, per surviving R-edge, the attrs present in R
// but not reached from the corresponding P-edge(s).
func (r Rule) AddedEdgeAttrs() map[[2]string]attrs.Dict {
	out := make(map[[2]string]attrs.Dict)
	for _, e := range r.RHS.Edges() {
		key := [2]string{e.From, e.To}
		reached := emptyAttrs()
		found := false
		for _, pe := range r.P.Edges() {
			if r.PRhs[pe.From] == e.From && r.PRhs[pe.To] == e.To {
				found = true
				reached = unionAttrs(reached, pe.Attrs)
			}
		}
		if !found {
			continue
		}
		diff := subtractAttrs(e.Attrs, reached)
		if len(diff) > 0 {
			out[key] = diff
		}
	}
	return out
}
