package value

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNonFinite is returned by NewFloat32/NewFloat64 for NaN and ±Inf
// inputs. Floating point ordering is only defined for finite values
// (spec.md §1 Non-goals); the store never needs to decide how NaN compares
// to anything.
var ErrNonFinite = errors.New("value: float must be finite (NaN and Inf are not representable)")

// Value is the tagged union of every scalar type coredb can store, compare,
// or hash. The zero Value is not a valid Value (it has no Kind); always
// construct one through a New* function or Unit()/None().
type Value struct {
	kind Kind

	b         bool
	blob      []byte
	dec       Decimal
	f32       float32
	f64       float64
	i         int64
	i128      Int128
	nat       uint64
	nat128    Nat128
	principal Principal
	text      string
	ts        uint64
	ulid      Ulid
	list      []Value
}

// Kind returns the variant discriminant. Tag reads more naturally at call
// sites that want the wire byte; both carry the same Kind value.
func (v Value) Kind() Kind { return v.kind }

// Tag returns the stable wire discriminant byte for this Value's variant.
func (v Value) Tag() uint8 { return uint8(v.kind) }

func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewBlob copies b so the stored Value is independent of later mutation of
// the caller's slice.
func NewBlob(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBlob, blob: cp}
}

func NewDecimalValue(d Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// NewFloat32 canonicalizes -0.0 to +0.0 and rejects NaN/Inf.
func NewFloat32(f float32) (Value, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Value{}, ErrNonFinite
	}
	if f == 0 {
		f = 0
	}
	return Value{kind: KindFloat32, f32: f}, nil
}

// NewFloat64 canonicalizes -0.0 to +0.0 and rejects NaN/Inf.
func NewFloat64(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrNonFinite
	}
	if f == 0 {
		f = 0
	}
	return Value{kind: KindFloat64, f64: f}, nil
}

func NewInt(i int64) Value          { return Value{kind: KindInt, i: i} }
func NewInt128(i Int128) Value      { return Value{kind: KindInt128, i128: i} }
func NewNat(n uint64) Value         { return Value{kind: KindNat, nat: n} }
func NewNat128(n Nat128) Value      { return Value{kind: KindNat128, nat128: n} }
func NewPrincipalValue(p Principal) Value { return Value{kind: KindPrincipal, principal: p} }
func NewText(s string) Value        { return Value{kind: KindText, text: s} }
func NewTimestamp(ms uint64) Value  { return Value{kind: KindTimestamp, ts: ms} }
func NewUlidValue(u Ulid) Value     { return Value{kind: KindUlid, ulid: u} }

// NewList copies the slice header but shares no backing array issues since
// each element is itself an immutable Value.
func NewList(vs []Value) Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return Value{kind: KindList, list: cp}
}

// Unit is the single-inhabitant "present but valueless" variant, distinct
// from None (absent).
func Unit() Value { return Value{kind: KindUnit} }

// None represents an absent optional field.
func None() Value { return Value{kind: KindNone} }

// IsNone reports whether v is the None variant; used by the query filter's
// IsNone/IsSome predicates and by the load executor's missing-field sort
// rule.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Accessors. Each panics if called against the wrong Kind: callers that
// don't already know the Kind should switch on Kind() first, exactly like
// the Rust original's enum match.

func (v Value) Bool() bool           { v.mustBe(KindBool); return v.b }
func (v Value) Blob() []byte         { v.mustBe(KindBlob); return v.blob }
func (v Value) Decimal() Decimal     { v.mustBe(KindDecimal); return v.dec }
func (v Value) Float32() float32     { v.mustBe(KindFloat32); return v.f32 }
func (v Value) Float64() float64     { v.mustBe(KindFloat64); return v.f64 }
func (v Value) Int() int64           { v.mustBe(KindInt); return v.i }
func (v Value) Int128() Int128       { v.mustBe(KindInt128); return v.i128 }
func (v Value) Nat() uint64          { v.mustBe(KindNat); return v.nat }
func (v Value) Nat128() Nat128       { v.mustBe(KindNat128); return v.nat128 }
func (v Value) Principal() Principal { v.mustBe(KindPrincipal); return v.principal }
func (v Value) Text() string         { v.mustBe(KindText); return v.text }
func (v Value) Timestamp() uint64    { v.mustBe(KindTimestamp); return v.ts }
func (v Value) Ulid() Ulid           { v.mustBe(KindUlid); return v.ulid }
func (v Value) List() []Value        { v.mustBe(KindList); return v.list }

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: accessor for %s called on %s", k, v.kind))
	}
}

// Cmp is a total order over all Values. Values of the same Kind compare by
// that Kind's natural order; Values of different Kind compare by the fixed
// kindRank table. Invariant 5 (spec.md §3): Cmp(a,b) == 0 iff
// HashValue(a) == HashValue(b).
func Cmp(a, b Value) int {
	if a.kind != b.kind {
		ra, rb := kindRank[a.kind], kindRank[b.kind]
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNone, KindUnit:
		return 0
	case KindBool:
		return cmpBool(a.b, b.b)
	case KindBlob:
		return cmpBytes(a.blob, b.blob)
	case KindDecimal:
		return cmpDecimal(a.dec, b.dec)
	case KindFloat32:
		return cmpFloat64(float64(a.f32), float64(b.f32))
	case KindFloat64:
		return cmpFloat64(a.f64, b.f64)
	case KindInt:
		return cmpInt64(a.i, b.i)
	case KindInt128:
		return cmpInt128(a.i128, b.i128)
	case KindNat:
		return cmpUint64(a.nat, b.nat)
	case KindNat128:
		return cmpNat128(a.nat128, b.nat128)
	case KindPrincipal:
		return cmpPrincipal(a.principal, b.principal)
	case KindText:
		return strings.Compare(a.text, b.text)
	case KindTimestamp:
		return cmpUint64(a.ts, b.ts)
	case KindUlid:
		return cmpUlid(a.ulid, b.ulid)
	case KindList:
		return cmpList(a.list, b.list)
	default:
		panic(fmt.Sprintf("value: Cmp: unhandled kind %s", a.kind))
	}
}

func cmpList(a, b []Value) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt64(int64(len(a)), int64(len(b)))
}

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func cmpBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return cmpInt64(int64(len(a)), int64(len(b)))
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindUnit:
		return "Unit"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindBlob:
		return fmt.Sprintf("Blob(%x)", v.blob)
	case KindDecimal:
		return v.dec.String()
	case KindFloat32:
		return fmt.Sprintf("%v", v.f32)
	case KindFloat64:
		return fmt.Sprintf("%v", v.f64)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindInt128:
		return v.i128.bigInt().String()
	case KindNat:
		return fmt.Sprintf("%d", v.nat)
	case KindNat128:
		return v.nat128.bigInt().String()
	case KindPrincipal:
		return v.principal.String()
	case KindText:
		return v.text
	case KindTimestamp:
		return fmt.Sprintf("Timestamp(%d)", v.ts)
	case KindUlid:
		return v.ulid.String()
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}
