package hostkv

import (
	"unsafe"

	"github.com/google/btree"
)

// btreeDegree mirrors the teacher's preference for conservative, documented
// constants over magic numbers; 32 is google/btree's own suggested default
// for in-memory use.
const btreeDegree = 32

// BTreeMap is the reference Map implementation: an in-process
// github.com/google/btree ordered tree. It has no persistence and no
// concurrency control of its own (spec.md §5 treats each store as owned by
// exactly one mutable borrow at a time; BTreeMap trusts its caller to
// uphold that, the same precondition the teacher's storage.Store
// implementations document but don't enforce for range scans).
type BTreeMap[K, V any] struct {
	tree *btree.BTreeG[Entry[K, V]]
	cmp  CmpFunc[K]
	size uint64 // approximate resident bytes, tracked incrementally
}

// NewBTreeMap constructs an empty BTreeMap ordered by cmp.
func NewBTreeMap[K, V any](cmp CmpFunc[K]) *BTreeMap[K, V] {
	less := func(a, b Entry[K, V]) bool { return cmp(a.Key, b.Key) < 0 }
	return &BTreeMap[K, V]{
		tree: btree.NewG(btreeDegree, less),
		cmp:  cmp,
	}
}

func (m *BTreeMap[K, V]) searchItem(k K) Entry[K, V] {
	var zero V
	return Entry[K, V]{Key: k, Value: zero}
}

func (m *BTreeMap[K, V]) Get(k K) (V, bool) {
	item, ok := m.tree.Get(m.searchItem(k))
	if !ok {
		var zero V
		return zero, false
	}
	return item.Value, true
}

func (m *BTreeMap[K, V]) Insert(k K, v V) (V, bool) {
	old, existed := m.tree.ReplaceOrInsert(Entry[K, V]{Key: k, Value: v})
	m.size += entrySize(k, v)
	if existed {
		m.size -= entrySize(old.Key, old.Value)
		return old.Value, true
	}
	var zero V
	return zero, false
}

func (m *BTreeMap[K, V]) Remove(k K) (V, bool) {
	old, existed := m.tree.Delete(m.searchItem(k))
	if !existed {
		var zero V
		return zero, false
	}
	m.size -= entrySize(old.Key, old.Value)
	return old.Value, true
}

// Range walks ascending from start and stops past end, so the result is
// inclusive on both bounds (spec.md §4.2's range(start..=end)) without
// relying on google/btree's exclusive-end AscendRange.
func (m *BTreeMap[K, V]) Range(start, end K) []Entry[K, V] {
	var out []Entry[K, V]
	m.tree.AscendGreaterOrEqual(m.searchItem(start), func(item Entry[K, V]) bool {
		if m.cmp(item.Key, end) > 0 {
			return false
		}
		out = append(out, item)
		return true
	})
	return out
}

func (m *BTreeMap[K, V]) Iter() []Entry[K, V] {
	var out []Entry[K, V]
	m.tree.Ascend(func(item Entry[K, V]) bool {
		out = append(out, item)
		return true
	})
	return out
}

func (m *BTreeMap[K, V]) Len() int { return m.tree.Len() }

func (m *BTreeMap[K, V]) FirstKeyValue() (Entry[K, V], bool) {
	item, ok := m.tree.Min()
	return item, ok
}

func (m *BTreeMap[K, V]) LastKeyValue() (Entry[K, V], bool) {
	item, ok := m.tree.Max()
	return item, ok
}

func (m *BTreeMap[K, V]) MemoryBytes() uint64 { return m.size }

// entrySize is a coarse, allocation-free approximation used only for
// capacity reporting; it is not byte-exact for variable-length payloads
// holding pointers/slices beyond their header.
func entrySize[K, V any](k K, v V) uint64 {
	return uint64(unsafe.Sizeof(k)) + uint64(unsafe.Sizeof(v))
}
