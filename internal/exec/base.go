package exec

import (
	"github.com/dreamware/coredb/internal/datastore"
	"github.com/dreamware/coredb/internal/indexstore"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
)

// base is the resolve-through-schema, dispatch-through-registry wiring
// every executor shares.
type base struct {
	schemaReg *schema.Registry
	stores    *registry.StoreRegistry
}

func (b base) resolveEntity(path string) (*schema.EntityDef, error) {
	return b.schemaReg.Entity(path)
}

func (b base) dataStoreFor(def *schema.EntityDef) (*datastore.DataStore, error) {
	return b.stores.Data(def.StorePath)
}

func (b base) indexStoreFor(idx schema.IndexDef) (*indexstore.IndexStore, error) {
	return b.stores.Index(idx.StorePath)
}
