package regraphjson

import (
	"encoding/json"

	"github.com/birdduck/regraph/attrs"
	"github.com/birdduck/regraph/rgerrors"
)

// wireDocument is the top-level JSON shape for a hierarchy.
type wireDocument struct {
	Graphs    []wireGraphEntry    `json:"graphs"`
	Typing    []wireTypingEntry   `json:"typing"`
	Relations []wireRelationEntry `json:"relations"`
}

type wireGraphEntry struct {
	ID    string              `json:"id"`
	Graph wireGraph           `json:"graph"`
	Attrs map[string]wireSet  `json:"attrs"`
}

type wireGraph struct {
	Nodes []wireNode `json:"nodes"`
	Edges []wireEdge `json:"edges"`
}

type wireNode struct {
	ID    string             `json:"id"`
	Attrs map[string]wireSet `json:"attrs"`
}

type wireEdge struct {
	From  string             `json:"from"`
	To    string             `json:"to"`
	Attrs map[string]wireSet `json:"attrs"`
}

type wireTypingEntry struct {
	From    string             `json:"from"`
	To      string             `json:"to"`
	Mapping map[string]string  `json:"mapping"`
	Attrs   map[string]wireSet `json:"attrs"`
}

type wireRelationEntry struct {
	From  string              `json:"from"`
	To    string              `json:"to"`
	Rel   map[string][]string `json:"rel"`
	Attrs map[string]wireSet  `json:"attrs"`
}

// wireSet is the opaque {"type", "data"} tagged union for a single
// attribute's value set (spec.md §6).
type wireSet struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// attrsToWire converts a domain attribute dict to its wire form. A nil
// dict marshals to an empty (non-nil) map so round-tripping an empty
// attrs.Dict{} and a nil Dict both produce "{}" rather than "null".
func attrsToWire(d attrs.Dict) (map[string]wireSet, error) {
	out := make(map[string]wireSet, len(d))
	for name, set := range d {
		switch s := set.(type) {
		case attrs.FiniteSet:
			data, err := json.Marshal(s.Values())
			if err != nil {
				return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: marshal FiniteSet %q", name)
			}
			out[name] = wireSet{Type: "FiniteSet", Data: data}
		case attrs.IntegerSet:
			data, err := json.Marshal(s.Values())
			if err != nil {
				return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: marshal IntegerSet %q", name)
			}
			out[name] = wireSet{Type: "IntegerSet", Data: data}
		default:
			return nil, rgerrors.ReGraph("regraphjson: attribute %q has unsupported set type %T", name, set)
		}
	}
	return out, nil
}

// wireToAttrs is attrsToWire's inverse.
func wireToAttrs(w map[string]wireSet) (attrs.Dict, error) {
	out := make(attrs.Dict, len(w))
	for name, ws := range w {
		switch ws.Type {
		case "FiniteSet":
			var values []string
			if err := json.Unmarshal(ws.Data, &values); err != nil {
				return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: unmarshal FiniteSet %q", name)
			}
			out[name] = attrs.NewFiniteSet(values...)
		case "IntegerSet":
			var values []int64
			if err := json.Unmarshal(ws.Data, &values); err != nil {
				return nil, rgerrors.Wrap(rgerrors.KindReGraph, err, "regraphjson: unmarshal IntegerSet %q", name)
			}
			out[name] = attrs.NewIntegerSet(values...)
		default:
			return nil, rgerrors.ReGraph("regraphjson: attribute %q has unknown set type %q", name, ws.Type)
		}
	}
	return out, nil
}
