package value

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// genScalarValue produces an arbitrary Value of one of ten scalar Kinds;
// List values are not generated.
func genScalarValue(t *rapid.T) Value {
	switch rapid.IntRange(0, 9).Draw(t, "kind") {
	case 0:
		return NewBool(rapid.Bool().Draw(t, "b"))
	case 1:
		return NewBlob(rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "blob"))
	case 2:
		return NewInt(rapid.Int64().Draw(t, "i"))
	case 3:
		return NewNat(rapid.Uint64().Draw(t, "n"))
	case 4:
		f, err := NewFloat64(rapid.Float64Range(-1e9, 1e9).Draw(t, "f"))
		if err != nil {
			t.Fatal(err)
		}
		return f
	case 5:
		return NewText(rapid.String().Draw(t, "s"))
	case 6:
		return NewTimestamp(rapid.Uint64().Draw(t, "ts"))
	case 7:
		var u [16]byte
		copy(u[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "ulid"))
		return NewUlidValue(NewUlid(u))
	case 8:
		return Unit()
	default:
		return None()
	}
}

// TestPropertyHashStability asserts spec.md §8 invariant 6: hash equality
// iff value equality, for arbitrary scalar pairs.
func TestPropertyHashStability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genScalarValue(t)
		b := genScalarValue(t)
		eq := Cmp(a, b) == 0
		hashEq := HashValue(a) == HashValue(b)
		if eq != hashEq {
			t.Fatalf("Cmp equal=%v but hash equal=%v for a=%v b=%v", eq, hashEq, a, b)
		}
	})
}

// TestPropertyHashDeterministic asserts repeated hashing of the same value
// never changes.
func TestPropertyHashDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genScalarValue(t)
		if HashValue(v) != HashValue(v) {
			t.Fatalf("hash not stable for %v", v)
		}
	})
}

// TestPropertyFloatCanonicalization asserts spec.md §8 invariant 7.
func TestPropertyFloatCanonicalization(t *testing.T) {
	pos, err := NewFloat64(0)
	if err != nil {
		t.Fatal(err)
	}
	neg, err := NewFloat64(math.Copysign(0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if Cmp(pos, neg) != 0 {
		t.Fatal("canonicalized zero values must compare equal")
	}
}
