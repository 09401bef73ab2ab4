package exec

import (
	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/schema"
)

// candidate is one row the planner's output resolved to: its key and its
// decoded envelope (metadata plus the still-serialized entity bytes).
type candidate struct {
	Key key.DataKey
	Env envelope
}

// materialize runs plan against def's data store (and, for an Index plan,
// the chosen index's store) and returns every row found. Keys that no
// longer exist are skipped rather than erroring — both Load and Delete
// treat a vanished candidate as "not a match" (spec.md §4.3, §8 property
// 8's idempotent-delete).
func (b base) materialize(def *schema.EntityDef, plan query.Plan) ([]candidate, error) {
	dataStore, err := b.dataStoreFor(def)
	if err != nil {
		return nil, err
	}

	switch plan.Kind {
	case query.PlanKeys:
		var out []candidate
		for _, dk := range plan.Keys {
			c, ok, err := fetchOne(dataStore, dk)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, c)
			}
		}
		return out, nil

	case query.PlanRange:
		entries := dataStore.Range(plan.RangeStart, plan.RangeEnd)
		out := make([]candidate, 0, len(entries))
		for _, e := range entries {
			env, err := decodeEnvelope(e.Value)
			if err != nil {
				return nil, dberr.Wrap(dberr.KindSerdeFailure, e.Key.String(), err)
			}
			out = append(out, candidate{Key: e.Key, Env: env})
		}
		return out, nil

	case query.PlanIndex:
		idxStore, err := b.indexStoreFor(plan.Index.Index)
		if err != nil {
			return nil, err
		}
		ik := key.NewIndexKey(def.EntityID, plan.Index.Index.ID, key.New(plan.Index.Values...))
		dks, ok := idxStore.Lookup(ik)
		if !ok {
			return nil, nil
		}
		var out []candidate
		for _, dk := range dks {
			c, ok, err := fetchOne(dataStore, dk)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, c)
			}
		}
		return out, nil

	default:
		return nil, dberr.New(dberr.KindShapeNotSupported, "unknown plan kind")
	}
}

func fetchOne(dataStore interface {
	Get(key.DataKey) ([]byte, error)
}, dk key.DataKey) (candidate, bool, error) {
	raw, err := dataStore.Get(dk)
	if err != nil {
		if dberr.Is(err, dberr.KindKeyNotFound) {
			return candidate{}, false, nil
		}
		return candidate{}, false, err
	}
	env, err := decodeEnvelope(raw)
	if err != nil {
		return candidate{}, false, dberr.Wrap(dberr.KindSerdeFailure, dk.String(), err)
	}
	return candidate{Key: dk, Env: env}, true, nil
}
