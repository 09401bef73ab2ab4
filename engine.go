package coredb

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamware/coredb/internal/datastore"
	"github.com/dreamware/coredb/internal/exec"
	"github.com/dreamware/coredb/internal/indexstore"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
)

// Engine is coredb's top-level handle: the schema metadata resolver, the
// live store handles it resolves against, and the three executors that
// implement every external operation. Grounded on cmd/coordinator/main.go's
// top-level wiring (construct a registry, construct the services that
// depend on it, expose entry points) minus the HTTP transport — coredb is
// embedded in its host process rather than served over the network.
type Engine struct {
	schema *schema.Registry
	stores *registry.StoreRegistry

	save *exec.SaveExecutor
	load *exec.LoadExecutor
	del  *exec.DeleteExecutor

	log *zap.Logger
}

// New builds an empty Engine: a schema.Registry and registry.StoreRegistry
// with nothing registered yet, and the three executors wired against them.
// Call LoadSchema before issuing any Save/Load/Delete call.
func New(cfg Config) (*Engine, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	schemaReg := schema.NewRegistry(cfg.Logger)
	stores := registry.New()

	return &Engine{
		schema: schemaReg,
		stores: stores,
		save:   exec.NewSaveExecutor(schemaReg, stores, cfg.Clock, cfg.Logger),
		load:   exec.NewLoadExecutor(schemaReg, stores, cfg.Logger),
		del:    exec.NewDeleteExecutor(schemaReg, stores, cfg.Logger),
		log:    cfg.Logger,
	}, nil
}

// LoadSchema registers every store and entity named in doc, in the order
// a declarative schema.Document expects (stores before the entities that
// reference them), then opens a backing hostkv.Map for each declared
// store via cfg's openers and binds it into the engine's StoreRegistry.
//
// codecs supplies the Go schema.Codec for each entity path; LoadSchema
// fails if any declared entity has no matching codec.
func (e *Engine) LoadSchema(cfg Config, doc *schema.Document, codecs map[string]schema.Codec) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	if err := schema.LoadDocument(e.schema, doc, codecs); err != nil {
		return err
	}

	uniqueByStore := indexUniquenessByStore(doc)

	for _, s := range e.schema.Stores() {
		switch s.Kind {
		case schema.StoreKindData:
			m := cfg.OpenDataMap(s.Path, s.MemoryID)
			if err := e.stores.RegisterData(s.Path, datastore.New(m)); err != nil {
				return err
			}
		case schema.StoreKindIndex:
			m := cfg.OpenIndexMap(s.Path, s.MemoryID)
			if err := e.stores.RegisterIndex(s.Path, indexstore.New(m, uniqueByStore[s.Path])); err != nil {
				return err
			}
		default:
			return fmt.Errorf("coredb: store %q has unknown kind", s.Path)
		}
	}

	return nil
}

// indexUniquenessByStore scans doc's entities for the Unique flag declared
// against each index store path. A store with no referencing index
// defaults to non-unique; LoadDocument does not reject such a store.
func indexUniquenessByStore(doc *schema.Document) map[string]bool {
	out := make(map[string]bool, len(doc.Entities))
	for _, e := range doc.Entities {
		for _, idx := range e.Indexes {
			out[idx.StorePath] = idx.Unique
		}
	}
	return out
}

// Schema exposes the engine's schema.Registry for read-only inspection
// (the coredb-shell CLI's schema listing, for example).
func (e *Engine) Schema() *schema.Registry { return e.schema }

// Save runs the save pipeline for one entity under path (spec.md §4.3).
func (e *Engine) Save(path string, entity schema.Entity, mode exec.Mode) (exec.Result, error) {
	return e.save.Save(path, entity, mode)
}

// Load runs q against path's entity and returns a Result shaped by
// q.Format (spec.md §4.3, §6).
func (e *Engine) Load(path string, q exec.Query) (exec.Result, error) {
	return e.load.Load(path, q)
}

// Patch applies a partial update view to the row at dk (spec.md §9 "Update
// semantics"): fields view omits keep their stored value. The target row's
// Go type must implement schema.PatchableEntity.
func (e *Engine) Patch(path string, dk key.DataKey, view schema.UpdateView) (exec.Result, error) {
	return e.save.Patch(path, dk, view)
}

// Delete removes every row under path matched by sel and filter, and
// returns the keys actually removed. Deleting a selector that matches
// nothing is a no-op, not an error (spec.md §8 property 8).
func (e *Engine) Delete(path string, sel query.Selector, filter *query.Expr) ([]key.DataKey, error) {
	return e.del.Delete(path, sel, filter)
}
