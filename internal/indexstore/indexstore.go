package indexstore

import (
	"sync"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/hostkv"
	"github.com/dreamware/coredb/internal/key"
)

// Entry is the value half of the index map: the set of DataKeys currently
// projecting to one IndexKey, keyed internally by the DataKey's encoded
// bytes so membership tests don't depend on DataKey being comparable.
type Entry struct {
	byEncoded map[string]key.DataKey
}

func newEntry() Entry {
	return Entry{byEncoded: make(map[string]key.DataKey)}
}

// DataKeys returns the entry's members in no particular order.
func (e Entry) DataKeys() []key.DataKey {
	out := make([]key.DataKey, 0, len(e.byEncoded))
	for _, dk := range e.byEncoded {
		out = append(out, dk)
	}
	return out
}

func (e Entry) len() int { return len(e.byEncoded) }

// IndexStore holds one IndexDef's entries, keyed by composite IndexKey and
// ordered accordingly (spec.md §4.2), so a planner can range-scan an
// index's key prefix directly.
type IndexStore struct {
	mu      sync.RWMutex
	unique  bool
	entries hostkv.Map[key.IndexKey, Entry]
}

// New wraps an existing hostkv.Map as an IndexStore. unique must match the
// owning IndexDef's Unique flag; it governs Insert's conflict behavior.
func New(entries hostkv.Map[key.IndexKey, Entry], unique bool) *IndexStore {
	return &IndexStore{entries: entries, unique: unique}
}

// Insert adds dk as a member of ik's entry. For a unique index, inserting
// a second distinct DataKey under the same IndexKey is an IndexViolation
// and leaves the store unchanged; re-inserting the same DataKey (e.g. a
// row update that doesn't change the indexed fields) is a no-op success.
func (s *IndexStore) Insert(ik key.IndexKey, dk key.DataKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries.Get(ik)
	if !ok {
		entry = newEntry()
	}

	encoded := string(key.EncodeDataKey(dk))
	if s.unique && entry.len() > 0 {
		if _, already := entry.byEncoded[encoded]; !already {
			return dberr.New(dberr.KindIndexViolation, ik.String())
		}
		return nil
	}

	entry.byEncoded[encoded] = dk
	s.entries.Insert(ik, entry)
	return nil
}

// Remove drops dk from ik's entry, deleting the entry entirely once it's
// empty. Removing a DataKey that isn't a member, or an IndexKey with no
// entry at all, is a no-op (spec.md §4.2's index-maintenance contract is
// idempotent on the remove side, matching the teacher's Delete).
func (s *IndexStore) Remove(ik key.IndexKey, dk key.DataKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries.Get(ik)
	if !ok {
		return
	}
	delete(entry.byEncoded, string(key.EncodeDataKey(dk)))
	if entry.len() == 0 {
		s.entries.Remove(ik)
		return
	}
	s.entries.Insert(ik, entry)
}

// Lookup returns the DataKeys currently indexed under ik.
func (s *IndexStore) Lookup(ik key.IndexKey) ([]key.DataKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries.Get(ik)
	if !ok {
		return nil, false
	}
	return entry.DataKeys(), true
}

// Range returns every (IndexKey, Entry) pair in [start, end], inclusive on
// both ends, in ascending key order — the scan a Planner's IndexPlan
// drives over a key prefix or bounded range.
func (s *IndexStore) Range(start, end key.IndexKey) []hostkv.Entry[key.IndexKey, Entry] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Range(start, end)
}
