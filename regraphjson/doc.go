// Package regraphjson implements the JSON import/export surface named
// as an external collaborator in the specification (§6): a hierarchy
// serializes to
//
//	{ "graphs":    [ {"id", "graph": <graph-json>, "attrs"}, ... ],
//	  "typing":    [ {"from", "to", "mapping": {src: tgt}, "attrs"}, ... ],
//	  "relations": [ {"from", "to", "rel": {src: [tgt, ...]}, "attrs"}, ... ] }
//
// and back. Attribute dicts serialize name → {"type": "FiniteSet" |
// "IntegerSet", "data": [...]}, opaque to the core per spec.md §6.
// FromJSON accepts an Ignore filter so a caller can load a hierarchy
// while dropping named graphs/typings/relations at the boundary.
package regraphjson
