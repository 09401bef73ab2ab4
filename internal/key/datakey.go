package key

import "fmt"

// DataKey addresses a single row in a DataStore: an entity id prefix
// (separating rows of different entities sharing a store) followed by the
// entity's composite key (spec.md §3).
type DataKey struct {
	EntityID uint64
	Key      Key
}

// NewDataKey builds a DataKey for entityID and k.
func NewDataKey(entityID uint64, k Key) DataKey {
	return DataKey{EntityID: entityID, Key: k}
}

// CmpDataKey orders DataKeys by (EntityID, Key), agreeing with the byte
// encoding produced by EncodeDataKey (spec.md §3 invariant 6).
func CmpDataKey(a, b DataKey) int {
	switch {
	case a.EntityID < b.EntityID:
		return -1
	case a.EntityID > b.EntityID:
		return 1
	default:
		return Cmp(a.Key, b.Key)
	}
}

// WithLastMax returns a DataKey with the same EntityID whose Key has had
// WithLastMax applied, for synthesizing prefix/range scan upper bounds.
func (dk DataKey) WithLastMax() DataKey {
	return DataKey{EntityID: dk.EntityID, Key: dk.Key.WithLastMax()}
}

func (dk DataKey) String() string {
	return fmt.Sprintf("DataKey{entity:%d, key:%s}", dk.EntityID, dk.Key)
}

// IndexKey addresses a row in an IndexStore: the owning entity id, the
// index definition id (so multiple indexes on one entity can share a
// store), and the indexed field values.
type IndexKey struct {
	EntityID   uint64
	IndexDefID uint64
	Values     Key
}

// NewIndexKey builds an IndexKey.
func NewIndexKey(entityID, indexDefID uint64, values Key) IndexKey {
	return IndexKey{EntityID: entityID, IndexDefID: indexDefID, Values: values}
}

// CmpIndexKey orders IndexKeys by (EntityID, IndexDefID, Values).
func CmpIndexKey(a, b IndexKey) int {
	switch {
	case a.EntityID != b.EntityID:
		if a.EntityID < b.EntityID {
			return -1
		}
		return 1
	case a.IndexDefID != b.IndexDefID:
		if a.IndexDefID < b.IndexDefID {
			return -1
		}
		return 1
	default:
		return Cmp(a.Values, b.Values)
	}
}

func (ik IndexKey) String() string {
	return fmt.Sprintf("IndexKey{entity:%d, index:%d, values:%s}", ik.EntityID, ik.IndexDefID, ik.Values)
}
