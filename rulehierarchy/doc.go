// Package rulehierarchy implements the rule-hierarchy builder (spec.md
// §4.5, component C7): given a rule and an instance at one graph of a
// hierarchy, it derives, without mutating anything, the corresponding
// rule at every ancestor (by lifting the rule's LHS/P along a
// pullback) and at every descendant (by projecting the rule's LHS/RHS
// through an image factorization and a pushout). Callers use this to
// preview or replay a rewrite's effect across the whole sub-DAG before
// committing to package rewrite's in-place Rewrite.
package rulehierarchy
