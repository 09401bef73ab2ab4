// Package exec implements coredb's three request executors (spec.md
// §4.3): LoadExecutor (plan → materialize → post-filter → sort →
// paginate), SaveExecutor (validate → serialize → index-diff → write,
// with mid-call rollback on a unique-index violation), and DeleteExecutor
// (plan → per-candidate index cleanup → row removal, idempotent).
//
// All three share the same resolve-through-schema.Registry,
// dispatch-through-registry.StoreRegistry wiring; materialize.go holds
// the candidate-gathering logic Load and Delete both need.
package exec
