package schema

import "github.com/dreamware/coredb/internal/value"

// Entity is the capability set every stored row's Go type must implement
// (spec.md §9 "EntityKind"): enough to place the row in the key space, to
// project it into the typed Value columns the validator and the query
// filter evaluator operate on, and to round-trip it through a Codec.
type Entity interface {
	// EntityPath returns the schema path this instance was registered
	// under, e.g. "app.user".
	EntityPath() string

	// ProjectToValues exposes every field as a typed Value keyed by field
	// name, the shape internal/validate and internal/query's filter
	// evaluator both consume.
	ProjectToValues() map[string]value.Value

	// PrimaryKeyValue returns the component that becomes the final segment
	// of this entity's DataKey.
	PrimaryKeyValue() value.IndexValue

	// SortKeyValues returns the parent-key-prefix components, outermost
	// first, that precede PrimaryKeyValue in the composite key. Entities
	// with no parent return nil.
	SortKeyValues() []value.IndexValue
}

// Codec serializes and deserializes an Entity's row bytes. coredb ships no
// built-in codec (the host runtime's own stable-structure serialization
// lives outside this module's scope per spec.md §1 Non-goals); callers
// supply one per EntityDef through Registry.Register.
type Codec interface {
	Encode(e Entity) ([]byte, error)
	Decode(path string, data []byte) (Entity, error)
}
