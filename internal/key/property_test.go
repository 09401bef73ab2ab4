package key

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"

	"github.com/dreamware/coredb/internal/value"
)

func genKeyComponent(t *rapid.T) value.IndexValue {
	switch rapid.IntRange(0, 4).Draw(t, "kind") {
	case 0:
		return value.FromValue(value.NewInt(rapid.Int64().Draw(t, "i")))
	case 1:
		return value.FromValue(value.NewNat(rapid.Uint64().Draw(t, "n")))
	case 2:
		return value.FromValue(value.NewText(rapid.String().Draw(t, "s")))
	case 3:
		f, err := value.NewFloat64(rapid.Float64Range(-1e6, 1e6).Draw(t, "f"))
		if err != nil {
			t.Fatal(err)
		}
		return value.FromValue(f)
	default:
		return value.FromValue(value.NewBool(rapid.Bool().Draw(t, "b")))
	}
}

// TestPropertyKeyOrderAgreesWithByteOrder is spec.md §8 invariant 5: for
// all k1, k2, k1.Cmp(k2) must equal the sign of comparing their encoded
// bytes.
func TestPropertyKeyOrderAgreesWithByteOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n1 := rapid.IntRange(0, 3).Draw(t, "n1")
		n2 := rapid.IntRange(0, 3).Draw(t, "n2")
		parts1 := make([]value.IndexValue, n1)
		for i := range parts1 {
			parts1[i] = genKeyComponent(t)
		}
		parts2 := make([]value.IndexValue, n2)
		for i := range parts2 {
			parts2[i] = genKeyComponent(t)
		}
		a := New(parts1...)
		b := New(parts2...)

		want := sign(Cmp(a, b))
		got := sign(bytes.Compare(
			EncodeDataKey(NewDataKey(7, a)),
			EncodeDataKey(NewDataKey(7, b)),
		))
		if want != got {
			t.Fatalf("order mismatch: Cmp=%d byteCmp=%d a=%s b=%s", want, got, a, b)
		}
	})
}
