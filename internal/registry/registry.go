package registry

import (
	"fmt"
	"sync"

	"github.com/dreamware/coredb/internal/datastore"
	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/indexstore"
)

// StoreRegistry holds the live store handles a process has opened,
// keyed by store path and split by kind at the type level (spec.md §4.2).
// Registration happens once during engine startup, alongside
// schema.Registry's metadata registration; lookups happen on every
// Load/Save/Delete call afterward.
type StoreRegistry struct {
	mu      sync.RWMutex
	data    map[string]*datastore.DataStore
	indexes map[string]*indexstore.IndexStore
}

// New builds an empty StoreRegistry.
func New() *StoreRegistry {
	return &StoreRegistry{
		data:    make(map[string]*datastore.DataStore),
		indexes: make(map[string]*indexstore.IndexStore),
	}
}

// RegisterData binds a path to a live DataStore handle. Re-registering an
// existing path is a duplicate error.
func (r *StoreRegistry) RegisterData(path string, store *datastore.DataStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[path]; exists {
		return dberr.New(dberr.KindDuplicate, fmt.Sprintf("data store %q already registered", path))
	}
	r.data[path] = store
	return nil
}

// RegisterIndex binds a path to a live IndexStore handle.
func (r *StoreRegistry) RegisterIndex(path string, store *indexstore.IndexStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indexes[path]; exists {
		return dberr.New(dberr.KindDuplicate, fmt.Sprintf("index store %q already registered", path))
	}
	r.indexes[path] = store
	return nil
}

// Data resolves path to a live DataStore handle.
func (r *StoreRegistry) Data(path string) (*datastore.DataStore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.data[path]
	if !ok {
		return nil, dberr.New(dberr.KindStoreNotFound, path)
	}
	return store, nil
}

// Index resolves path to a live IndexStore handle.
func (r *StoreRegistry) Index(path string) (*indexstore.IndexStore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.indexes[path]
	if !ok {
		return nil, dberr.New(dberr.KindStoreNotFound, path)
	}
	return store, nil
}
