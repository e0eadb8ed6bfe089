package hierarchy

import (
	"github.com/birdduck/regraph/rgerrors"
)

// RelabelGraphNode renames a node inside graphID and fixes up every
// typing and relation incident to that graph so mappings still refer
// to the new id: as a source, oldID's key becomes newID; as a target,
// any value equal to oldID becomes newID.
func (h *Hierarchy) RelabelGraphNode(graphID, oldID, newID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	g, ok := h.graphs[graphID]
	if !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	if err := g.RelabelNode(oldID, newID); err != nil {
		return rgerrors.Wrap(rgerrors.KindHierarchy, err, "relabeling node %q of %q", oldID, graphID)
	}

	for t, m := range h.typings[graphID] {
		if v, had := m[oldID]; had {
			delete(m, oldID)
			m[newID] = v
		}
		h.typings[graphID][t] = m
	}
	for s := range h.typings {
		m, ok := h.typings[s][graphID]
		if !ok {
			continue
		}
		for k, v := range m {
			if v == oldID {
				m[k] = newID
			}
		}
	}
	for key, r := range h.relations {
		if key.u == graphID {
			if tos, had := r.rel[oldID]; had {
				delete(r.rel, oldID)
				r.rel[newID] = tos
			}
		}
		if key.v == graphID {
			for _, tos := range r.rel {
				if _, had := tos[oldID]; had {
					delete(tos, oldID)
					tos[newID] = struct{}{}
				}
			}
		}
	}
	return nil
}

// RelabelGraph renames graphID to newID in the hierarchy's graph,
// typing and relation id spaces.
func (h *Hierarchy) RelabelGraph(graphID, newID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.relabelGraphLocked(graphID, newID)
}

func (h *Hierarchy) relabelGraphLocked(graphID, newID string) error {
	g, ok := h.graphs[graphID]
	if !ok {
		return rgerrors.Hierarchy("graph %q not found", graphID)
	}
	if h.hasIDLocked(newID) {
		return rgerrors.Hierarchy("graph id %q already in use", newID)
	}

	h.graphs[newID] = g
	h.graphAttrs[newID] = h.graphAttrs[graphID]
	h.typings[newID] = h.typings[graphID]
	h.typingAttrs[newID] = h.typingAttrs[graphID]
	delete(h.graphs, graphID)
	delete(h.graphAttrs, graphID)
	delete(h.typings, graphID)
	delete(h.typingAttrs, graphID)

	for _, row := range h.typings {
		if m, ok := row[graphID]; ok {
			row[newID] = m
			delete(row, graphID)
		}
	}
	for _, row := range h.typingAttrs {
		if a, ok := row[graphID]; ok {
			row[newID] = a
			delete(row, graphID)
		}
	}
	for key, r := range h.relations {
		var newKey relKey
		switch graphID {
		case key.u:
			newKey = newRelKey(newID, key.v)
		case key.v:
			newKey = newRelKey(key.u, newID)
		default:
			continue
		}
		delete(h.relations, key)
		if (key.u == graphID) != (newKey.u == newID) {
			flipped := make(map[string]map[string]struct{})
			for from, tos := range r.rel {
				for to := range tos {
					if flipped[to] == nil {
						flipped[to] = make(map[string]struct{})
					}
					flipped[to][from] = struct{}{}
				}
			}
			r.rel = flipped
		}
		h.relations[newKey] = r
	}
	return nil
}

// RelabelGraphs applies a batch of graph-id renames atomically. The
// mapping must be injective; renames are applied via a two-phase
// swap through temporary ids so that cyclic renames (a->b, b->a) do
// not collide mid-way.
func (h *Hierarchy) RelabelGraphs(mapping map[string]string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[string]bool, len(mapping))
	for _, newID := range mapping {
		if seen[newID] {
			return rgerrors.Hierarchy("relabel mapping is not injective: %q used twice", newID)
		}
		seen[newID] = true
	}
	for old, newID := range mapping {
		if _, ok := h.graphs[old]; !ok {
			return rgerrors.Hierarchy("graph %q not found", old)
		}
		if _, renamed := mapping[newID]; !renamed && h.hasIDLocked(newID) {
			return rgerrors.Hierarchy("graph id %q already in use", newID)
		}
	}

	temp := make(map[string]string, len(mapping))
	for old := range mapping {
		tmpID := "__relabel_tmp__" + old
		if err := h.relabelGraphLocked(old, tmpID); err != nil {
			return err
		}
		temp[old] = tmpID
	}
	for old, newID := range mapping {
		if err := h.relabelGraphLocked(temp[old], newID); err != nil {
			return err
		}
	}
	return nil
}
