package schema

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"go.uber.org/zap"

	"github.com/dreamware/coredb/internal/dberr"
)

// Registry is the process-wide schema resolver (spec.md §4.5): a
// validated, append-only map from entity/store path to its definition.
// Its shape is grounded on the teacher's ShardRegistry — a
// RWMutex-guarded map built once via a validated Register call, read
// concurrently afterward — generalized from shard assignments to
// entity/store metadata.
type Registry struct {
	mu sync.RWMutex

	entities map[string]*EntityDef
	stores   map[string]*StoreDef
	codecs   map[string]Codec

	// usedEntityIDs catches a duplicate entity_id across two distinct
	// entity paths at registration time, the same bookkeeping role a
	// roaring bitmap plays tracking assigned shard IDs in the teacher.
	usedEntityIDs *roaring64.Bitmap

	log *zap.Logger
}

// NewRegistry builds an empty Registry. A nil logger is replaced with
// zap.NewNop() so callers that don't care about schema-load diagnostics
// don't have to thread one through.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		entities:      make(map[string]*EntityDef),
		stores:        make(map[string]*StoreDef),
		codecs:        make(map[string]Codec),
		usedEntityIDs: roaring64.New(),
		log:           log,
	}
}

// RegisterStore adds a StoreDef. Re-registering an existing path is a
// duplicate error; store defs are otherwise immutable once registered.
func (r *Registry) RegisterStore(def StoreDef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[def.Path]; exists {
		return dberr.New(dberr.KindDuplicate, fmt.Sprintf("store %q already registered", def.Path))
	}
	cp := def
	r.stores[def.Path] = &cp
	r.log.Debug("store registered", zap.String("path", def.Path), zap.String("kind", def.Kind.String()))
	return nil
}

// Register adds an EntityDef plus the Codec used to serialize its rows.
// It validates that: the entity's store exists and is a data store, the
// entity path isn't already registered, and entity_id hasn't been used by
// another entity (spec.md §9).
func (r *Registry) Register(def EntityDef, codec Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[def.Path]; exists {
		return dberr.New(dberr.KindDuplicate, fmt.Sprintf("entity %q already registered", def.Path))
	}
	store, ok := r.stores[def.StorePath]
	if !ok {
		return dberr.New(dberr.KindStoreNotFound, def.StorePath)
	}
	if store.Kind != StoreKindData {
		return dberr.New(dberr.KindStoreNotFound, fmt.Sprintf("store %q is not a data store", def.StorePath))
	}
	if r.usedEntityIDs.Contains(def.EntityID) {
		return dberr.New(dberr.KindDuplicate, fmt.Sprintf("entity_id %d already used by another entity", def.EntityID))
	}
	for _, idx := range def.Indexes {
		if _, ok := r.stores[idx.StorePath]; !ok {
			return dberr.New(dberr.KindStoreNotFound, idx.StorePath)
		}
	}

	cp := def
	r.entities[def.Path] = &cp
	r.codecs[def.Path] = codec
	r.usedEntityIDs.Add(def.EntityID)

	r.log.Info("entity registered",
		zap.String("path", def.Path),
		zap.Uint64("entity_id", def.EntityID),
		zap.String("store", def.StorePath),
		zap.Int("indexes", len(def.Indexes)))
	return nil
}

// Entity resolves an entity path to its EntityDef.
func (r *Registry) Entity(path string) (*EntityDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entities[path]
	if !ok {
		return nil, dberr.New(dberr.KindEntityNotFound, path)
	}
	return def, nil
}

// Store resolves a store path to its StoreDef.
func (r *Registry) Store(path string) (*StoreDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.stores[path]
	if !ok {
		return nil, dberr.New(dberr.KindStoreNotFound, path)
	}
	return def, nil
}

// Codec resolves the Codec registered alongside an entity path.
func (r *Registry) Codec(path string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[path]
	if !ok {
		return nil, dberr.New(dberr.KindEntityNotFound, path)
	}
	return codec, nil
}

// StorePathOf is shorthand for Entity(path).StorePath, the lookup every
// Load/Save/Delete call starts with.
func (r *Registry) StorePathOf(path string) (string, error) {
	def, err := r.Entity(path)
	if err != nil {
		return "", err
	}
	return def.StorePath, nil
}

// IndexesOf returns the index list declared for an entity path.
func (r *Registry) IndexesOf(path string) ([]IndexDef, error) {
	def, err := r.Entity(path)
	if err != nil {
		return nil, err
	}
	return def.Indexes, nil
}

// Entities returns every registered entity path, for diagnostics and the
// inspection CLI. The returned slice is a snapshot; it does not alias
// Registry state.
func (r *Registry) Entities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entities))
	for path := range r.entities {
		out = append(out, path)
	}
	return out
}

// Stores returns a snapshot of every registered StoreDef, in no particular
// order. Used by the engine facade to open a backing hostkv.Map for each
// declared store once, at startup.
func (r *Registry) Stores() []StoreDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]StoreDef, 0, len(r.stores))
	for _, def := range r.stores {
		out = append(out, *def)
	}
	return out
}

// EntityDefs returns a snapshot of every registered EntityDef. Used by the
// inspection CLI to print schema detail.
func (r *Registry) EntityDefs() []EntityDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EntityDef, 0, len(r.entities))
	for _, def := range r.entities {
		out = append(out, *def)
	}
	return out
}
