package hierarchy

import (
	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/hom"
)

// Clone returns a deep, independent copy of h: every graph, typing and
// relation is duplicated, not shared. Used to snapshot a hierarchy
// before a rewrite whose stage 0 has already passed but whose later
// stages might still fail (spec.md §5: "implementations MUST perform
// stage 0 fully before stage 1 and may optionally snapshot-and-restore
// on deeper failure").
func (h *Hierarchy) Clone() *Hierarchy {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := New()
	for id, g := range h.graphs {
		out.graphs[id] = g.Clone()
		out.graphAttrs[id] = h.graphAttrs[id].Clone()
		out.typings[id] = make(map[string]hom.Mapping)
	}
	for s, row := range h.typings {
		for t, m := range row {
			if out.typings[s] == nil {
				out.typings[s] = make(map[string]hom.Mapping)
			}
			out.typings[s][t] = m.Clone()
		}
	}
	for s, row := range h.typingAttrs {
		for t, a := range row {
			if out.typingAttrs[s] == nil {
				out.typingAttrs[s] = make(map[string]attrs.Dict)
			}
			out.typingAttrs[s][t] = a.Clone()
		}
	}
	for key, rel := range h.relations {
		cloned := &relation{rel: cloneRelMap(rel.rel), attrs: rel.attrs.Clone()}
		out.relations[key] = cloned
	}
	return out
}
