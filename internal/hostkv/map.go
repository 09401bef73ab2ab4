package hostkv

// CmpFunc totally orders keys of type K. Every Map implementation in this
// package is handed one at construction time rather than requiring K to
// satisfy cmp.Ordered, because coredb's real key types (key.DataKey,
// key.IndexKey) don't have a native Go ordering operator.
type CmpFunc[K any] func(a, b K) int

// Entry is one row of an ordered map, returned by Range/Iter.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is the ordered persistent map contract coredb requires from its host
// (spec.md §6). All operations are synchronous; there is no suspension
// point anywhere in this interface, matching the single-threaded execution
// model of spec.md §5.
type Map[K, V any] interface {
	// Get returns the value stored at k, if any.
	Get(k K) (V, bool)

	// Insert stores v at k, returning the value it replaced, if any.
	Insert(k K, v V) (old V, existed bool)

	// Remove deletes k, returning the value removed, if any.
	Remove(k K) (old V, existed bool)

	// Range returns entries with start <= key <= end, in ascending key
	// order, inclusive on both ends (spec.md §4.2).
	Range(start, end K) []Entry[K, V]

	// Iter returns every entry in ascending key order.
	Iter() []Entry[K, V]

	// Len reports the number of entries.
	Len() int

	// FirstKeyValue returns the least entry, if the map is non-empty.
	FirstKeyValue() (Entry[K, V], bool)

	// LastKeyValue returns the greatest entry, if the map is non-empty.
	LastKeyValue() (Entry[K, V], bool)

	// MemoryBytes estimates the map's resident size, for capacity
	// reporting. Reference implementations may approximate.
	MemoryBytes() uint64
}
