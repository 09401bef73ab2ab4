// Package indexstore implements coredb's secondary-index storage layer
// (spec.md §4.2): a hostkv.Map[key.IndexKey, Entry] per IndexDef mapping
// an index key to the set of data rows (by DataKey) that project to it.
//
// A unique index's Entry always holds exactly one DataKey; inserting a
// second under the same IndexKey is an IndexViolation. A non-unique
// index's Entry holds every matching DataKey, added and removed like a
// set. This mirrors the teacher's storage.MemoryStore locking discipline
// (read lock for lookups, write lock for mutation, always copy in/out)
// generalized from a flat byte-value store to a set-valued one.
package indexstore
