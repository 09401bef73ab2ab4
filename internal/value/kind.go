package value

// Kind is the stable discriminant tag for a Value variant. Kind bytes are
// never reused across releases: the on-disk key and hash encodings embed
// them directly (spec.md §6), so renumbering a Kind would silently corrupt
// every store already written with the old numbering.
type Kind uint8

// The full closed set of scalar variants a Value can hold. Ordinal values
// are the wire tag bytes: do not reorder existing entries, only append.
const (
	KindBool Kind = iota + 1
	KindBlob
	KindDecimal
	KindFloat32
	KindFloat64
	KindInt
	KindInt128
	KindNat
	KindNat128
	KindPrincipal
	KindText
	KindTimestamp
	KindUlid
	KindList
	KindUnit
	KindNone
)

var kindNames = map[Kind]string{
	KindBool:      "Bool",
	KindBlob:      "Blob",
	KindDecimal:   "Decimal",
	KindFloat32:   "Float32",
	KindFloat64:   "Float64",
	KindInt:       "Int",
	KindInt128:    "Int128",
	KindNat:       "Nat",
	KindNat128:    "Nat128",
	KindPrincipal: "Principal",
	KindText:      "Text",
	KindTimestamp: "Timestamp",
	KindUlid:      "Ulid",
	KindList:      "List",
	KindUnit:      "Unit",
	KindNone:      "None",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// kindRank fixes the cross-variant comparison order used by Cmp when two
// Values don't share a Kind. The rank is independent of the wire tag byte
// order so that Kind can gain new variants without reshuffling existing
// cross-type comparisons.
var kindRank = map[Kind]int{
	KindNone:      0,
	KindUnit:      1,
	KindBool:      2,
	KindInt:       3,
	KindInt128:    4,
	KindNat:       5,
	KindNat128:    6,
	KindFloat32:   7,
	KindFloat64:   8,
	KindDecimal:   9,
	KindTimestamp: 10,
	KindUlid:      11,
	KindPrincipal: 12,
	KindText:      13,
	KindBlob:      14,
	KindList:      15,
}

// Rank returns k's position in kindRank, the cross-variant order Cmp uses.
func (k Kind) Rank() uint8 { return uint8(kindRank[k]) }
