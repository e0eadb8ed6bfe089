// Package propagate implements the hierarchy-wide repair walks a
// rewrite needs after it changes one graph: Backward pushes clones,
// deletions and attribute removals out to ancestors; Forward pushes
// merges, additions and attribute additions out to descendants.
// Both walk the hierarchy via hierarchy.BFSOrder and restore the
// commutativity invariant across the affected sub-DAG by composing
// per-graph node maps directly (package kernel is not used), once, after every graph's local content has settled (§4.4
// of the design this engine follows: "the repair step happens once at
// the end of each direction so the cost of map composition is linear
// in the number of edges touched, not quadratic").
package propagate
