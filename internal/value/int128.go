package value

import "math/big"

// Int128 is a signed 128-bit integer represented as independent high/low
// halves; comparison, hashing, and key encoding work on the halves
// directly, and math/big is used only to render the value as a decimal
// string.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Nat128 is the unsigned counterpart of Int128.
type Nat128 struct {
	Hi uint64
	Lo uint64
}

func cmpInt128(a, b Int128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	if a.Lo == b.Lo {
		return 0
	}
	if a.Lo < b.Lo {
		return -1
	}
	return 1
}

func cmpNat128(a, b Nat128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	if a.Lo == b.Lo {
		return 0
	}
	if a.Lo < b.Lo {
		return -1
	}
	return 1
}

// bigInt renders the two's-complement 128-bit value as a math/big.Int, used
// only by Value.String.
func (i Int128) bigInt() *big.Int {
	hi := new(big.Int).SetInt64(i.Hi)
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(i.Lo)
	return hi.Add(hi, lo)
}

func (n Nat128) bigInt() *big.Int {
	hi := new(big.Int).SetUint64(n.Hi)
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(n.Lo)
	return hi.Add(hi, lo)
}
