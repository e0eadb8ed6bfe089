package regraphjson

import (
	"encoding/json"

	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rgerrors"
)

// Ignore filters graphs/typings/relations out of a load by id, per
// spec.md §6's "loader accepts an ignore block". A nil or zero Ignore
// loads everything.
type Ignore struct {
	Graphs    map[string]bool
	Typings   map[[2]string]bool
	Relations map[[2]string]bool
}

func (ig *Ignore) graph(id string) bool {
	return ig != nil && ig.Graphs[id]
}

func (ig *Ignore) typing(s, t string) bool {
	return ig != nil && ig.Typings[[2]string{s, t}]
}

func (ig *Ignore) relation(a, b string) bool {
	return ig != nil && ig.Relations[[2]string{a, b}]
}

// FromJSON rebuilds a Hierarchy from data produced by ToJSON, applying
// ignore to drop named graphs/typings/relations at the boundary.
func FromJSON(data []byte, ignore *Ignore) (*hierarchy.Hierarchy, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: unmarshal hierarchy")
	}

	h := hierarchy.New(hierarchy.WithCapacity(len(doc.Graphs)))

	for _, ge := range doc.Graphs {
		if ignore.graph(ge.ID) {
			continue
		}
		g, err := wireToGraph(ge.Graph)
		if err != nil {
			return nil, err
		}
		a, err := wireToAttrs(ge.Attrs)
		if err != nil {
			return nil, err
		}
		if err := h.AddGraph(ge.ID, g, a); err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: add graph %q", ge.ID)
		}
	}

	for _, te := range doc.Typing {
		if ignore.graph(te.From) || ignore.graph(te.To) || ignore.typing(te.From, te.To) {
			continue
		}
		a, err := wireToAttrs(te.Attrs)
		if err != nil {
			return nil, err
		}
		if err := h.AddTyping(te.From, te.To, hom.Mapping(te.Mapping), a); err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: add typing %q->%q", te.From, te.To)
		}
	}

	for _, re := range doc.Relations {
		if ignore.graph(re.From) || ignore.graph(re.To) || ignore.relation(re.From, re.To) {
			continue
		}
		a, err := wireToAttrs(re.Attrs)
		if err != nil {
			return nil, err
		}
		if err := h.AddRelation(re.From, re.To, re.Rel, a); err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: add relation %q-%q", re.From, re.To)
		}
	}

	return h, nil
}

func wireToGraph(wg wireGraph) (*graph.Graph, error) {
	g := graph.New()
	for _, wn := range wg.Nodes {
		a, err := wireToAttrs(wn.Attrs)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(wn.ID, a); err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: add node %q", wn.ID)
		}
	}
	for _, we := range wg.Edges {
		a, err := wireToAttrs(we.Attrs)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(we.From, we.To, a); err != nil {
			return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: add edge %s->%s", we.From, we.To)
		}
	}
	return g, nil
}
