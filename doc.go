// Package coredb is an embedded, schema-driven object store for a
// single-process execution environment: entity types declare their
// storage shape once, and the engine resolves every Load/Save/Delete
// call against that declared shape instead of a client-composed query
// plan.
//
// Architecture:
//
//	┌───────────────────────────────────────────────┐
//	│                     Engine                      │
//	├───────────────────────────────────────────────┤
//	│  schema.Registry   - entity/store metadata      │
//	│  registry.StoreRegistry - live store handles    │
//	│  exec.SaveExecutor/LoadExecutor/DeleteExecutor  │
//	└───────────────────────────────────────────────┘
//
// An Engine is built once per process via New, populated with a
// schema.Document (typically parsed from a YAML file alongside the
// generated entity codecs) via LoadSchema, and then driven through its
// Save/Load/Delete methods for the remainder of the process's life.
//
// coredb consumes a host-provided ordered map per store (internal/hostkv)
// rather than owning its own persistence; see Config for how a store's
// backing map is opened.
package coredb
