// Package hostkv defines the ordered persistent map contract coredb
// consumes from the host runtime (spec.md §6) and provides a reference
// implementation of that contract for tests, the CLI, and any embedder that
// hasn't wired in its own stable-memory B-tree yet.
//
// The real host (e.g. a canister's stable memory) is an external
// collaborator and out of scope for this repository; Map is the seam.
// BTreeMap, backed by github.com/google/btree, is deliberately ordinary in-process
// memory — it exists so every other package in coredb can be exercised
// without a host at all.
package hostkv
