// Package datastore implements coredb's row storage layer (spec.md §4.2):
// a single hostkv.Map[key.DataKey, []byte] per StoreDef holding the
// serialized rows of the entities declared against it, ordered by composite key so prefix and range
// scans need no secondary index.
//
// DataStore's method bodies are grounded on the teacher's
// storage.MemoryStore: read-lock for lookups, write-lock for mutation,
// always copy bytes in and out so a caller can't mutate stored state
// through an aliased slice.
package datastore
