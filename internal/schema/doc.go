// Package schema implements coredb's process-wide schema resolver
// (spec.md §4.5): the registry of EntityDef/StoreDef/IndexDef metadata that
// every other subsystem consults to turn an entity path into a store, a
// primary key, a sort-key chain, and an index list.
//
// # Overview
//
// The code-generation layer that would normally emit this metadata from a
// DSL is out of scope (spec.md §1). In its place, coredb accepts either
// programmatic registration (Registry.Register) or a declarative YAML
// Document (LoadDocument) loaded once at process start — the same
// "parse a config file into a registry, once, at startup" shape
// awsqed-config-formatter uses for its own declarative config.
//
// # Architecture
//
//	┌────────────────────────────────────────┐
//	│                Registry                 │
//	├────────────────────────────────────────┤
//	│  entities: path -> *EntityDef           │
//	│  stores:   path -> *StoreDef            │
//	│  usedIDs:  roaring64.Bitmap of          │
//	│            registered entity_id values  │
//	│  mu:       sync.RWMutex                 │
//	├────────────────────────────────────────┤
//	│  Register once at init; read-only after │
//	└────────────────────────────────────────┘
//
// Registration happens during program initialization and the Registry is
// treated as read-only afterward (spec.md §4.5, §9): there is no API to
// unregister or mutate an EntityDef in place.
package schema
