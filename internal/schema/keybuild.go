package schema

import (
	"fmt"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/value"
)

// BuildDataKey assembles the composite DataKey for e under def: the
// SortKeyChain's parent-key components followed by e's own primary key
// (spec.md §3, §9).
func BuildDataKey(def *EntityDef, e Entity) key.DataKey {
	parents := e.SortKeyValues()
	parts := make([]value.IndexValue, 0, len(parents)+1)
	parts = append(parts, parents...)
	parts = append(parts, e.PrimaryKeyValue())
	return key.NewDataKey(def.EntityID, key.New(parts...))
}

// BuildIndexKey projects e's fields through idx's field chain into an
// IndexKey. A field idx names but e.ProjectToValues doesn't supply is a
// KeyProjectionFailed error — the entity's Go type and its IndexDef have
// drifted out of sync.
func BuildIndexKey(def *EntityDef, idx IndexDef, e Entity) (key.IndexKey, error) {
	values := e.ProjectToValues()
	parts := make([]value.IndexValue, 0, len(idx.Fields))
	for _, field := range idx.Fields {
		v, ok := values[field]
		if !ok {
			return key.IndexKey{}, dberr.New(dberr.KindKeyProjectionFailed,
				fmt.Sprintf("entity %q missing field %q required by index", def.Path, field))
		}
		parts = append(parts, value.FromValue(v))
	}
	return key.NewIndexKey(def.EntityID, idx.ID, key.New(parts...)), nil
}
