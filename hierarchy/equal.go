package hierarchy

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpDictOpts = []cmp.Option{cmpopts.EquateEmpty()}

// Equal reports whether h and other have the same graphs, typings and
// relations up to attribute equality — the round-trip check spec.md
// §8's scenario S6 exercises. Supplemented from the original
// implementation's Hierarchy.__eq__, dropped from the distilled spec.
func (h *Hierarchy) Equal(other *Hierarchy) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(h.graphs) != len(other.graphs) {
		return false
	}
	for id, g := range h.graphs {
		og, ok := other.graphs[id]
		if !ok || !g.Equal(og) {
			return false
		}
		if !cmp.Equal(h.graphAttrs[id], other.graphAttrs[id], cmpDictOpts...) {
			return false
		}
	}

	if len(h.typings) != len(other.typings) {
		return false
	}
	for s, row := range h.typings {
		oRow, ok := other.typings[s]
		if !ok || len(row) != len(oRow) {
			return false
		}
		for t, m := range row {
			if !m.Equal(oRow[t]) {
				return false
			}
			if !cmp.Equal(h.typingAttrs[s][t], other.typingAttrs[s][t], cmpDictOpts...) {
				return false
			}
		}
	}

	if len(h.relations) != len(other.relations) {
		return false
	}
	for key, r := range h.relations {
		or, ok := other.relations[key]
		if !ok || !relMapsEqual(r.rel, or.rel) {
			return false
		}
		if !cmp.Equal(r.attrs, or.attrs, cmpDictOpts...) {
			return false
		}
	}
	return true
}

func relMapsEqual(a, b map[string]map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || len(v) != len(ov) {
			return false
		}
		for x := range v {
			if _, ok := ov[x]; !ok {
				return false
			}
		}
	}
	return true
}
