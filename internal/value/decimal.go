package value

import (
	"fmt"
	"math/big"
)

// Decimal is an arbitrary-precision fixed-point number: sign * mantissa *
// 10^-scale. Mantissa is stored as an unsigned big-endian magnitude; sign is
// carried separately so that a mantissa of zero always canonicalizes to a
// single, unambiguous encoding regardless of the sign bit it arrived with.
type Decimal struct {
	mantissa []byte // big-endian, unsigned, no leading zero bytes (except a single 0x00 for zero)
	scale    uint32
	sign     int8 // -1, 0, or 1
}

// NewDecimal builds a Decimal from a sign (-1, 0, or 1), a base-10 scale,
// and an unsigned big-endian mantissa. A zero mantissa is canonicalized to
// sign 0 regardless of the sign argument, matching the float -0.0
// canonicalization rule elsewhere in this package.
func NewDecimal(sign int, scale uint32, mantissa []byte) (Decimal, error) {
	if sign < -1 || sign > 1 {
		return Decimal{}, fmt.Errorf("value: decimal sign must be -1, 0 or 1, got %d", sign)
	}
	m := trimLeadingZeros(mantissa)
	s := int8(sign)
	if len(m) == 0 {
		m = []byte{0}
		s = 0
	} else if s == 0 {
		return Decimal{}, fmt.Errorf("value: decimal sign is 0 but mantissa is nonzero")
	}
	return Decimal{sign: s, scale: scale, mantissa: m}, nil
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// Sign, Scale, and Mantissa expose the canonical components, used by the
// hash and byte encoders.
func (d Decimal) Sign() int        { return int(d.sign) }
func (d Decimal) Scale() uint32    { return d.scale }
func (d Decimal) Mantissa() []byte { return d.mantissa }

func (d Decimal) rat() *big.Rat {
	mag := new(big.Int).SetBytes(d.mantissa)
	if d.sign < 0 {
		mag.Neg(mag)
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale)), nil)
	return new(big.Rat).SetFrac(mag, denom)
}

// cmpDecimal orders two Decimals as real numbers, independent of how each
// chose to represent its scale (1.50 == 1.5).
func cmpDecimal(a, b Decimal) int {
	return a.rat().Cmp(b.rat())
}

func (d Decimal) String() string {
	return fmt.Sprintf("%s (scale %d)", d.rat().FloatString(int(d.scale)+2), d.scale)
}
