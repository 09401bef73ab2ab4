package value

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/big"
)

// hashVersion participates in every HashValue output. Bump it whenever the
// canonical encoding below changes, so hashes computed under different
// encodings are never mistaken for one another (spec.md §6).
const hashVersion = 0x01

// HashValue computes the canonical 128-bit content fingerprint of v. It is
// stable across processes and architectures: integers are fixed-width
// big-endian, floats are canonicalized IEEE-754 bit patterns, and
// variable-length data is length-prefixed. HashValue(a) == HashValue(b) iff
// Cmp(a, b) == 0 (spec.md §3 invariant 5).
func HashValue(v Value) [16]byte {
	h := sha256.New()
	h.Write([]byte{hashVersion, v.Tag()})
	writeCanonical(h, v)
	sum := h.Sum(nil)
	var out [16]byte
	copy(out[:], sum[:16])
	return out
}

type byteWriter interface {
	Write(p []byte) (int, error)
}

func writeCanonical(h byteWriter, v Value) {
	switch v.kind {
	case KindNone, KindUnit:
		// Tag byte alone already written by the caller.
	case KindBool:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case KindBlob:
		writeLenPrefixed(h, v.blob)
	case KindDecimal:
		// Trailing zero digits are stripped first, so scales Cmp treats as
		// equal (1.50 and 1.5, or zero at any scale) hash alike.
		mant, scale := new(big.Int).SetBytes(v.dec.Mantissa()), v.dec.Scale()
		ten, q, r := big.NewInt(10), new(big.Int), new(big.Int)
		for scale > 0 && mant.Sign() != 0 {
			if q.QuoRem(mant, ten, r); r.Sign() != 0 {
				break
			}
			mant.Set(q)
			scale--
		}
		m := v.dec.Mantissa()
		if mant.Sign() == 0 {
			scale = 0
		} else {
			m = mant.Bytes()
		}
		h.Write([]byte{byte(int8(v.dec.Sign()))})
		writeU32(h, scale)
		writeLenPrefixed(h, m)
	case KindFloat32:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], math.Float32bits(v.f32))
		h.Write(buf[:])
	case KindFloat64:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.f64))
		h.Write(buf[:])
	case KindInt:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(v.i))
		h.Write(buf[:])
	case KindInt128:
		writeI128(h, v.i128)
	case KindNat:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v.nat)
		h.Write(buf[:])
	case KindNat128:
		var buf [16]byte
		binary.BigEndian.PutUint64(buf[0:8], v.nat128.Hi)
		binary.BigEndian.PutUint64(buf[8:16], v.nat128.Lo)
		h.Write(buf[:])
	case KindPrincipal:
		writeLenPrefixed(h, v.principal.Bytes())
	case KindText:
		writeLenPrefixed(h, []byte(v.text))
	case KindTimestamp:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v.ts)
		h.Write(buf[:])
	case KindUlid:
		h.Write(v.ulid[:])
	case KindList:
		writeU32(h, uint32(len(v.list)))
		for _, e := range v.list {
			child := HashValue(e)
			h.Write(child[:])
			h.Write([]byte{0xFF})
		}
	}
}

func writeU32(h byteWriter, n uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], n)
	h.Write(buf[:])
}

func writeLenPrefixed(h byteWriter, b []byte) {
	writeU32(h, uint32(len(b)))
	h.Write(b)
}

func writeI128(h byteWriter, i Int128) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(i.Hi))
	binary.BigEndian.PutUint64(buf[8:16], i.Lo)
	h.Write(buf[:])
}
