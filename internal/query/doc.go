// Package query implements coredb's selector/filter/planner subsystem
// (spec.md §4.3): turning a caller's declarative request for "which rows"
// into a concrete execution plan the executors in internal/exec can run
// against a datastore.DataStore and its indexstore.IndexStore siblings.
//
// # Architecture
//
//	Selector ──┐
//	           ├─► BuildPlan() ─► Plan{Keys | Range | Index}
//	FilterExpr ┘
//
// Selector narrows the candidate set structurally (a key, a prefix, a
// range); FilterExpr narrows it by predicate. BuildPlan tries to absorb as much
// of the filter as possible into an index lookup before falling back to a
// range scan followed by in-memory post-filtering.
package query
