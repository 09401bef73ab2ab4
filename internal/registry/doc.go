// Package registry implements the runtime half of store resolution
// (spec.md §4.2): given a store path, hand back the concrete
// *datastore.DataStore or *indexstore.IndexStore bound to it, with the
// two kept statically distinct so a caller can never accidentally range
// over a data store's keys as if they were index keys or vice versa.
//
// schema.Registry resolves the declarative metadata (what stores exist,
// what kind they are); this package resolves the live handles that back
// them, mirroring the teacher's shard_registry.go split between
// "what shard owns this key" (assignment lookup) and the shard's own
// storage instance.
package registry
