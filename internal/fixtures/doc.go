// Package fixtures builds small, deterministic hierarchies for tests:
// linear chains and stars of typed graphs, plus builders for three of
// the end-to-end scenarios spec.md §8 describes (S1 two-level cloning,
// S2 forward merge, S3 deletion propagation). It mirrors the
// teacher's builder package's Constructor/option shape (deterministic
// ids, sentinel errors on malformed parameters, no randomness) adapted
// from random-topology generation to named hierarchy construction.
package fixtures
