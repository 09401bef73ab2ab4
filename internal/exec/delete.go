package exec

import (
	"go.uber.org/zap"

	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
)

// DeleteExecutor implements spec.md §4.3's DeleteExecutor: resolve a plan,
// then for each candidate clean up every index entry before removing the
// data row. Missing rows are skipped silently, so repeating a delete is a
// no-op the second time (spec.md §8 property 8).
type DeleteExecutor struct {
	base
	log *zap.Logger
}

// NewDeleteExecutor builds a DeleteExecutor. A nil logger defaults to
// zap.NewNop().
func NewDeleteExecutor(schemaReg *schema.Registry, stores *registry.StoreRegistry, log *zap.Logger) *DeleteExecutor {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeleteExecutor{base: base{schemaReg: schemaReg, stores: stores}, log: log}
}

// Delete removes every row under path matched by sel and filter, and
// returns the keys actually removed (spec.md §6 DeleteResponse).
func (d *DeleteExecutor) Delete(path string, sel query.Selector, filter *query.Expr) ([]key.DataKey, error) {
	def, err := d.resolveEntity(path)
	if err != nil {
		return nil, err
	}
	codec, err := d.schemaReg.Codec(path)
	if err != nil {
		return nil, err
	}

	plan := query.BuildPlan(def, sel, filter)
	candidates, err := d.materialize(def, plan)
	if err != nil {
		return nil, err
	}

	dataStore, err := d.dataStoreFor(def)
	if err != nil {
		return nil, err
	}

	var removed []key.DataKey
	for _, c := range candidates {
		entity, err := codec.Decode(path, c.Env.Bytes)
		if err != nil {
			return removed, err
		}

		if filter != nil {
			ok, err := query.Eval(*filter, entity.ProjectToValues())
			if err != nil {
				return removed, err
			}
			if !ok {
				continue
			}
		}

		for _, idx := range def.Indexes {
			idxStore, err := d.indexStoreFor(idx)
			if err != nil {
				return removed, err
			}
			if ik, err := schema.BuildIndexKey(def, idx, entity); err == nil {
				idxStore.Remove(ik, c.Key)
			}
		}

		dataStore.Delete(c.Key)
		removed = append(removed, c.Key)
	}

	d.log.Debug("entities deleted", zap.String("path", path), zap.Int("count", len(removed)))
	return removed, nil
}
