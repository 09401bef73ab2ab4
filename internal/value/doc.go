// Package value implements the typed scalar model shared by every entity and
// index in coredb: a closed, totally-ordered sum type ("Value"), a
// key-component restriction of it ("IndexValue"), and the canonical 128-bit
// content hash used for identity comparisons.
//
// # Overview
//
// Every field coredb ever stores, compares, or hashes is first projected to
// a Value. Values are tagged by a stable, never-reused Kind byte so the
// on-disk and wire encodings never need a schema to decode the shape of a
// single field.
//
// # Architecture
//
//	┌───────────────────────────────────────────┐
//	│                  Value                     │
//	├───────────────────────────────────────────┤
//	│ Kind byte (stable, never reused)           │
//	│ one active payload: Bool, Blob, Decimal,    │
//	│ Float32, Float64, Int, Int128, Nat, Nat128, │
//	│ Principal, Text, Timestamp, Ulid, List,     │
//	│ Unit, None                                  │
//	├───────────────────────────────────────────┤
//	│ Cmp(a, b)  -> total order                  │
//	│ HashValue(v) -> [16]byte canonical digest  │
//	└───────────────────────────────────────────┘
//	                     │ restrict
//	                     ▼
//	┌───────────────────────────────────────────┐
//	│               IndexValue                   │
//	│  a Value, or one of two sentinels:         │
//	│    - per-variant upper bound               │
//	│    - the universal upper bound             │
//	└───────────────────────────────────────────┘
//
// # Ordering
//
// Cmp is total. Two values of the same Kind compare by that Kind's natural
// order; values of different Kind compare by a fixed Kind rank (see
// kindRank). This lets a composite Key mix scalar types in one component
// sequence and still sort consistently with its byte encoding
// (internal/key handles the byte side of that guarantee).
//
// # Non-goals
//
// Floating point NaN/±Inf ordering is explicitly out of scope (spec.md §1);
// constructors reject non-finite floats instead of defining an order for
// them.
package value
