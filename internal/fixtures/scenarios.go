package fixtures

import (
	"github.com/birdduck/regraph/graph"
	"github.com/birdduck/regraph/hierarchy"
	"github.com/birdduck/regraph/hom"
	"github.com/birdduck/regraph/rule"
)

// Scenario bundles a hierarchy together with the rule, instance and
// (possibly nil) p_typing/rhs_typing a rewrite against it needs — the
// shape every spec.md §8 end-to-end test starts from.
type Scenario struct {
	Hierarchy *hierarchy.Hierarchy
	Origin    string
	Rule      rule.Rule
	Instance  hom.Mapping
	PTyping   map[string]map[string][]string
	RHSTyping map[string]map[string][]string
}

// CloningScenario reproduces S1: T{a,b} typed over by G{x,y} (both x
// and y typed to a); cloning a into a1/a2 at T, disambiguated by
// p_typing so x lands on a1 and y on a2.
func CloningScenario() (Scenario, error) {
	h := hierarchy.New()
	tg := graph.New()
	if err := addNodes(tg, "a", "b"); err != nil {
		return Scenario{}, err
	}
	gg := graph.New()
	if err := addNodes(gg, "x", "y"); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("T", tg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("G", gg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "a"}, nil); err != nil {
		return Scenario{}, err
	}

	lhs := graph.New()
	if err := addNodes(lhs, "a", "b"); err != nil {
		return Scenario{}, err
	}
	p := graph.New()
	if err := addNodes(p, "a1", "a2", "b"); err != nil {
		return Scenario{}, err
	}
	r, err := rule.New(lhs, p, p, hom.Mapping{"a1": "a", "a2": "a", "b": "b"}, hom.Identity(p.Nodes()))
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{
		Hierarchy: h,
		Origin:    "T",
		Rule:      r,
		Instance:  hom.Identity(lhs.Nodes()),
		PTyping:   map[string]map[string][]string{"G": {"x": {"a1"}, "y": {"a2"}}},
	}, nil
}

// MergeScenario reproduces S2: T{a,b} typed over by G{x,y} (x to a, y
// to b); merging a and b into c at T.
func MergeScenario() (Scenario, error) {
	h := hierarchy.New()
	tg := graph.New()
	if err := addNodes(tg, "a", "b"); err != nil {
		return Scenario{}, err
	}
	gg := graph.New()
	if err := addNodes(gg, "x", "y"); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("T", tg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("G", gg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddTyping("G", "T", hom.Mapping{"x": "a", "y": "b"}, nil); err != nil {
		return Scenario{}, err
	}

	p := graph.New()
	if err := addNodes(p, "a", "b"); err != nil {
		return Scenario{}, err
	}
	rhs := graph.New()
	if err := addNodes(rhs, "c"); err != nil {
		return Scenario{}, err
	}
	r, err := rule.New(p, p, rhs, hom.Identity(p.Nodes()), hom.Mapping{"a": "c", "b": "c"})
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{
		Hierarchy: h,
		Origin:    "T",
		Rule:      r,
		Instance:  hom.Identity(p.Nodes()),
	}, nil
}

// DeletionScenario reproduces S3: a three-level chain G{x} -> M{u,v} ->
// T{a,b}, deleting a at T and letting the deletion cascade down to M
// and G.
func DeletionScenario() (Scenario, error) {
	h := hierarchy.New()
	tg := graph.New()
	if err := addNodes(tg, "a", "b"); err != nil {
		return Scenario{}, err
	}
	mg := graph.New()
	if err := addNodes(mg, "u", "v"); err != nil {
		return Scenario{}, err
	}
	gg := graph.New()
	if err := addNodes(gg, "x"); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("T", tg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("M", mg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddGraph("G", gg, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddTyping("M", "T", hom.Mapping{"u": "a", "v": "b"}, nil); err != nil {
		return Scenario{}, err
	}
	if err := h.AddTyping("G", "M", hom.Mapping{"x": "u"}, nil); err != nil {
		return Scenario{}, err
	}

	lhs := graph.New()
	if err := addNodes(lhs, "a", "b"); err != nil {
		return Scenario{}, err
	}
	p := graph.New()
	if err := addNodes(p, "b"); err != nil {
		return Scenario{}, err
	}
	r, err := rule.New(lhs, p, p, hom.Mapping{"b": "b"}, hom.Identity(p.Nodes()))
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{
		Hierarchy: h,
		Origin:    "T",
		Rule:      r,
		Instance:  hom.Identity(lhs.Nodes()),
	}, nil
}

func addNodes(g *graph.Graph, ids ...string) error {
	for _, id := range ids {
		if err := g.AddNode(id, nil); err != nil {
			return err
		}
	}
	return nil
}
