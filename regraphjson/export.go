package regraphjson

import (
	"encoding/json"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/rgerrors"
)

// ToJSON serializes h per spec.md §6's wire shape.
func ToJSON(h *hierarchy.Hierarchy) ([]byte, error) {
	doc := wireDocument{}

	for _, id := range h.Graphs() {
		g := h.GetGraph(id)
		wg, err := graphToWire(g)
		if err != nil {
			return nil, err
		}
		a, err := h.GetGraphAttrs(id)
		if err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: graph %q attrs", id)
		}
		wa, err := attrsToWire(a)
		if err != nil {
			return nil, err
		}
		doc.Graphs = append(doc.Graphs, wireGraphEntry{ID: id, Graph: wg, Attrs: wa})

		for _, t := range h.Successors(id) {
			m := h.GetTyping(id, t)
			ta, err := h.GetTypingAttrs(id, t)
			if err != nil {
				return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: typing %q->%q attrs", id, t)
			}
			wta, err := attrsToWire(ta)
			if err != nil {
				return nil, err
			}
			doc.Typing = append(doc.Typing, wireTypingEntry{From: id, To: t, Mapping: map[string]string(m), Attrs: wta})
		}
	}

	for _, pair := range h.Relations() {
		a, b := pair[0], pair[1]
		rel, err := h.GetRelation(a, b)
		if err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: relation %q-%q", a, b)
		}
		ra, err := h.GetRelationAttrs(a, b)
		if err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: relation %q-%q attrs", a, b)
		}
		wra, err := attrsToWire(ra)
		if err != nil {
			return nil, err
		}
		doc.Relations = append(doc.Relations, wireRelationEntry{From: a, To: b, Rel: rel, Attrs: wra})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: marshal hierarchy")
	}
	return data, nil
}

func graphToWire(g *graph.Graph) (wireGraph, error) {
	wg := wireGraph{}
	for _, id := range g.Nodes() {
		n := g.Node(id)
		wa, err := attrsToWire(n.Attrs)
		if err != nil {
			return wireGraph{}, err
		}
		wg.Nodes = append(wg.Nodes, wireNode{ID: id, Attrs: wa})
	}
	for _, e := range g.Edges() {
		wa, err := attrsToWire(e.Attrs)
		if err != nil {
			return wireGraph{}, err
		}
		wg.Edges = append(wg.Edges, wireEdge{From: e.From, To: e.To, Attrs: wa})
	}
	return wg, nil
}
