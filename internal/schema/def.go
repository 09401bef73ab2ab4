package schema

// StoreKind distinguishes a data store (row storage keyed by DataKey) from
// an index store (IndexKey -> primary-key projection), spec.md §4.2.
type StoreKind uint8

const (
	_ StoreKind = iota
	StoreKindData
	StoreKindIndex
)

func (k StoreKind) String() string {
	switch k {
	case StoreKindData:
		return "data"
	case StoreKindIndex:
		return "index"
	default:
		return "unknown"
	}
}

// StoreDef describes one hostkv.Map-backed store: its path (the namespace
// every DataKey/IndexKey built against it shares), its kind, and the
// host-memory region it's bound to (spec.md §6 — every store claims a
// distinct MemoryID so the host runtime can hand back a stable region
// across upgrades). RegisterStore does not check that MemoryIDs are
// distinct.
type StoreDef struct {
	Path     string
	Kind     StoreKind
	MemoryID uint32
}

// IndexDef describes one secondary index: the store it lives in, the
// ordered field list that makes up its IndexKey component chain, and
// whether it enforces uniqueness (spec.md §3, §4.2).
type IndexDef struct {
	// ID is the IndexDefID embedded in every IndexKey built against this
	// index — stable once assigned, never reused.
	ID        uint64
	StorePath string
	Fields    []string
	Unique    bool
}

// EntityDef is the resolver's central record: everything needed to turn an
// entity path into a concrete store, primary key, sort-key chain, and index
// list (spec.md §4.5, §9).
type EntityDef struct {
	Path string

	// StorePath names the StoreDef this entity's rows live in.
	StorePath string

	// EntityID is the stable numeric discriminant stored alongside every
	// row of this entity so a data store holding more than one entity type
	// can tell its rows apart (spec.md §9).
	EntityID uint64

	// PKField is the field name supplying the final component of every
	// DataKey built for this entity.
	PKField string

	// SortKeyChain lists parent entity paths, outermost first, whose
	// primary keys are prepended before PKField when building a composite
	// key — the nested-collection case from spec.md §3 ("entities nested
	// under a parent share the parent's key prefix").
	SortKeyChain []string

	Indexes []IndexDef

	// Validate, if set, is consulted by the save executor before an entity
	// is serialized (spec.md §4.4's validate_self/validate_children driven
	// through a Visitor, wired per entity type at registration time). A
	// nil Validate means the entity declares no validation rules.
	Validate func(Entity) error
}
