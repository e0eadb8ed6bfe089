// Package rewrite implements the single entry point of the engine: a
// sesqui-pushout rewrite of one hierarchy graph under a rule and an
// instance, with the clone/delete/merge/add consequences propagated to
// every ancestor and descendant so the typing DAG keeps commuting
// afterwards (spec.md §4.3). The four stages — restrictive rewrite,
// backward propagation, expansive rewrite, forward propagation — are
// sequenced by Rewrite; package propagate supplies stages 2 and 4.
package rewrite
