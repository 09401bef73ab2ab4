// Package key implements coredb's composite key model: an ordered sequence
// of value.IndexValue components (Key), the two storage-row addresses built
// from it (DataKey, IndexKey), and an order-preserving byte encoding for
// all three (spec.md §4.1).
//
// # Overview
//
//	Key        = IndexValue*                       (composite, in-memory)
//	DataKey     = EntityID ∥ Key                    (data store row address)
//	IndexKey    = EntityID ∥ IndexDefID ∥ IndexValue* (index store row address)
//
// # Byte encoding
//
// Encode produces bytes whose lexicographic (bytes.Compare) order agrees
// exactly with Cmp's semantic order (spec.md §8 invariant 5, "key order
// agrees with byte order"). Each IndexValue is encoded so that:
//
//   - fixed-width numeric types use big-endian bytes with a sign-flip bias
//     for signed variants, so two's-complement negative numbers still sort
//     before positive ones byte-wise;
//   - floats use the standard IEEE-754 order-preserving bit transform
//     (flip the sign bit for positives, invert all bits for negatives);
//   - variable-length byte content (Blob, Text, Principal, Decimal digits,
//     List) is escaped (0x00 -> 0x00 0xFF) and terminated with 0x00 0x00,
//     the classic technique also used by tuple-encoding libraries such as
//     FoundationDB's, so no value's encoding is a silent prefix of
//     another's.
//
// Hierarchical locality (sort-key chains, spec.md §3) falls directly out of
// this scheme: a DataKey whose leading components name a parent entity
// sorts contiguously with every other DataKey sharing that prefix.
package key
