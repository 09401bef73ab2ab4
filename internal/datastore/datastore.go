package datastore

import (
	"sync"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/hostkv"
	"github.com/dreamware/coredb/internal/key"
)

// DataStore holds one entity store's serialized rows, keyed by composite
// DataKey and ordered accordingly (spec.md §4.2). It is the row-storage
// half of a StoreDef whose Kind is StoreKindData; the corresponding
// secondary indexes live in a sibling indexstore.IndexStore.
type DataStore struct {
	mu    sync.RWMutex
	rows  hostkv.Map[key.DataKey, []byte]
	stats Stats
}

// Stats mirrors the teacher's StoreStats: point-in-time, approximate
// under concurrent mutation, useful for monitoring rather than exact
// accounting.
type Stats struct {
	Rows  int
	Bytes int
}

// New wraps an existing hostkv.Map (typically a *hostkv.BTreeMap backed by
// a host stable-memory region) as a DataStore.
func New(rows hostkv.Map[key.DataKey, []byte]) *DataStore {
	return &DataStore{rows: rows}
}

// Get returns a copy of the row stored at dk, or a KeyNotFound error.
func (s *DataStore) Get(dk key.DataKey) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.rows.Get(dk)
	if !ok {
		return nil, dberr.New(dberr.KindKeyNotFound, dk.String())
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put stores row at dk, creating or overwriting it, and reports whether a
// row already existed there.
func (s *DataStore) Put(dk key.DataKey, row []byte) (existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(row))
	copy(stored, row)

	old, existed := s.rows.Insert(dk, stored)
	if existed {
		s.stats.Bytes -= len(old)
	} else {
		s.stats.Rows++
	}
	s.stats.Bytes += len(stored)
	return existed
}

// Delete removes the row at dk. Idempotent: deleting an absent key is not
// an error, matching the teacher's MemoryStore.Delete contract.
func (s *DataStore) Delete(dk key.DataKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, existed := s.rows.Remove(dk)
	if existed {
		s.stats.Rows--
		s.stats.Bytes -= len(old)
	}
}

// Range returns every row whose key falls in [start, end], inclusive on
// both ends (spec.md §4.2), in ascending key order.
func (s *DataStore) Range(start, end key.DataKey) []hostkv.Entry[key.DataKey, []byte] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows.Range(start, end)
}

// Iter returns every row in ascending key order.
func (s *DataStore) Iter() []hostkv.Entry[key.DataKey, []byte] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows.Iter()
}

// Stats reports the current row count and aggregate byte size.
func (s *DataStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
