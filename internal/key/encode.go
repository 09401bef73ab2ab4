package key

import (
	"encoding/binary"
	"math"
	"math/big"
	"strings"

	"github.com/dreamware/coredb/internal/value"
)

// signBias flips the sign bit of a two's-complement integer so that
// big-endian byte comparison of the biased form agrees with signed numeric
// order (the standard trick: the sign bit becomes the most significant
// comparison bit either way, so flipping it makes negative numbers compare
// less than positive ones byte-wise too).
const signBias = 0x8000000000000000

// EncodeDataKey renders a DataKey as order-preserving bytes: 8-byte
// big-endian entity id, then the composite Key's components in order
// (spec.md §4.1).
func EncodeDataKey(dk DataKey) []byte {
	buf := make([]byte, 0, 32)
	buf = appendUint64(buf, dk.EntityID)
	buf = appendKey(buf, dk.Key)
	return buf
}

// EncodeIndexKey renders an IndexKey as order-preserving bytes: entity id,
// index definition id, then the index's component values.
func EncodeIndexKey(ik IndexKey) []byte {
	buf := make([]byte, 0, 32)
	buf = appendUint64(buf, ik.EntityID)
	buf = appendUint64(buf, ik.IndexDefID)
	buf = appendKey(buf, ik.Values)
	return buf
}

func appendKey(buf []byte, k Key) []byte {
	for _, p := range k.Parts() {
		buf = appendIndexValue(buf, p)
	}
	return buf
}

func appendUint64(buf []byte, n uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], n)
	return append(buf, tmp[:]...)
}

// appendIndexValue appends the component Kind's rank byte (Kind.Rank, so
// values of different Kinds order as Cmp orders them) and tag byte,
// followed by its order-preserving payload encoding. A Kind's sentinel gets
// a payload-free marker byte above every real value of that Kind; the
// universal sentinel is a single 0xFF byte, above every rank byte.
func appendIndexValue(buf []byte, iv value.IndexValue) []byte {
	if value.CmpIndexValue(iv, value.UniversalMax()) == 0 {
		return append(buf, 0xFF)
	}
	if iv.IsSentinel() {
		buf = append(buf, iv.Kind().Rank(), uint8(iv.Kind()))
		buf = append(buf, 0xFE) // sorts after any real payload for this tag
		return buf
	}
	v := iv.Value()
	buf = append(buf, v.Kind().Rank(), v.Tag())
	buf = append(buf, 0x00) // marks "real value follows", sorts before 0xFE
	return appendValue(buf, v)
}

func appendValue(buf []byte, v value.Value) []byte {
	switch v.Kind() {
	case value.KindNone, value.KindUnit:
		return buf
	case value.KindBool:
		if v.Bool() {
			return append(buf, 1)
		}
		return append(buf, 0)
	case value.KindInt:
		return appendUint64(buf, uint64(v.Int())^signBias)
	case value.KindNat:
		return appendUint64(buf, v.Nat())
	case value.KindTimestamp:
		return appendUint64(buf, v.Timestamp())
	case value.KindInt128:
		i := v.Int128()
		buf = appendUint64(buf, uint64(i.Hi)^signBias)
		return appendUint64(buf, i.Lo)
	case value.KindNat128:
		n := v.Nat128()
		buf = appendUint64(buf, n.Hi)
		return appendUint64(buf, n.Lo)
	case value.KindFloat32:
		return appendUint32(buf, orderedFloatBits32(v.Float32()))
	case value.KindFloat64:
		return appendUint64(buf, orderedFloatBits64(v.Float64()))
	case value.KindUlid:
		u := v.Ulid()
		return append(buf, u[:]...)
	case value.KindBlob:
		return appendEscaped(buf, v.Blob())
	case value.KindText:
		return appendEscaped(buf, []byte(v.Text()))
	case value.KindPrincipal:
		return appendEscaped(buf, v.Principal().Bytes())
	case value.KindDecimal:
		return appendDecimal(buf, v.Decimal())
	case value.KindList:
		for _, e := range v.List() {
			buf = appendEscaped(buf, appendValue([]byte{e.Kind().Rank()}, e))
		}
		// An explicit extra terminator distinguishes "no more elements"
		// from a partially-matching next element, mirroring Cmp's
		// shorter-is-less rule for lists of unequal length.
		return append(buf, 0x00, 0x00)
	default:
		return buf
	}
}

func appendUint32(buf []byte, n uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], n)
	return append(buf, tmp[:]...)
}

func orderedFloatBits64(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits>>63 == 1 {
		return ^bits
	}
	return bits | signBias
}

func orderedFloatBits32(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits>>31 == 1 {
		return ^bits
	}
	return bits | 0x80000000
}

// appendEscaped appends an order-preserving, self-terminating encoding of
// arbitrary bytes: every 0x00 byte is escaped as 0x00 0xFF, and the whole
// run ends with 0x00 0x00. No encoded value is ever a true byte-prefix of
// another's, so lexicographic comparison of the escaped form matches
// lexicographic comparison (then length) of the original.
func appendEscaped(buf []byte, b []byte) []byte {
	for _, c := range b {
		if c == 0x00 {
			buf = append(buf, 0x00, 0xFF)
		} else {
			buf = append(buf, c)
		}
	}
	return append(buf, 0x00, 0x00)
}

// appendDecimal encodes a Decimal in normalized scientific form so that
// byte order matches numeric order regardless of how the value's scale was
// originally expressed (1.50 and 1.5 encode identically).
func appendDecimal(buf []byte, d value.Decimal) []byte {
	sign := d.Sign()
	if sign == 0 {
		return append(buf, 1) // sign byte: 0=neg, 1=zero, 2=pos
	}

	digits := decimalDigits(d.Mantissa())
	trimmed := strings.TrimRight(digits, "0")
	exp := int64(len(digits)) - int64(d.Scale())

	magnitude := appendUint64(nil, uint64(exp)^signBias)
	magnitude = appendEscaped(magnitude, []byte(trimmed))

	if sign > 0 {
		buf = append(buf, 2)
		return append(buf, magnitude...)
	}
	buf = append(buf, 0)
	inverted := make([]byte, len(magnitude))
	for i, b := range magnitude {
		inverted[i] = ^b
	}
	return append(buf, inverted...)
}

func decimalDigits(mantissa []byte) string {
	if len(mantissa) == 0 {
		return "0"
	}
	return new(big.Int).SetBytes(mantissa).String()
}
