package value

import "fmt"

// sentinelKind distinguishes a real value from the two synthetic upper
// bounds a composite Key can end in.
type sentinelKind uint8

const (
	sentinelNone sentinelKind = iota
	sentinelVariantMax
	sentinelUniversalMax
)

// IndexValue is the subset of Value usable as a key component, plus the
// reserved upper-bound sentinels used to synthesize exclusive range ends
// for prefix/range scans (spec.md §3, §4.1).
type IndexValue struct {
	v        Value
	sentinel sentinelKind
	// variantTag records which Kind a per-variant sentinel stands in for,
	// since sentinelVariantMax carries no real Value payload.
	variantTag Kind
}

// FromValue wraps a concrete Value as a real (non-sentinel) IndexValue.
func FromValue(v Value) IndexValue { return IndexValue{v: v} }

// SentinelMax returns the per-variant upper-bound sentinel for kind: it
// sorts after every real IndexValue of that same Kind, but before the
// universal sentinel and before every real value of a higher-ranked Kind.
func SentinelMax(kind Kind) IndexValue {
	return IndexValue{sentinel: sentinelVariantMax, variantTag: kind}
}

// UniversalMax returns the sentinel that sorts after every other
// IndexValue regardless of Kind. Key.WithLastMax uses this for an empty
// key's upper bound.
func UniversalMax() IndexValue {
	return IndexValue{sentinel: sentinelUniversalMax}
}

// IsSentinel reports whether iv is a synthetic bound rather than a real
// value.
func (iv IndexValue) IsSentinel() bool { return iv.sentinel != sentinelNone }

// Value returns the underlying Value. It panics if iv is a sentinel; check
// IsSentinel first.
func (iv IndexValue) Value() Value {
	if iv.sentinel != sentinelNone {
		panic("value: IndexValue.Value called on a sentinel")
	}
	return iv.v
}

// Kind returns the effective Kind for ranking purposes: the wrapped
// Value's Kind, or the sentinel's recorded variantTag, or the maximum rank
// for the universal sentinel.
func (iv IndexValue) Kind() Kind {
	if iv.sentinel == sentinelVariantMax {
		return iv.variantTag
	}
	if iv.sentinel == sentinelUniversalMax {
		return 0 // never compared by Kind directly; see CmpIndexValue
	}
	return iv.v.Kind()
}

// CmpIndexValue totally orders IndexValues: the universal sentinel is
// greatest; otherwise values are ranked by Kind, and within a Kind a
// variant sentinel sorts after every real value of that Kind.
func CmpIndexValue(a, b IndexValue) int {
	if a.sentinel == sentinelUniversalMax && b.sentinel == sentinelUniversalMax {
		return 0
	}
	if a.sentinel == sentinelUniversalMax {
		return 1
	}
	if b.sentinel == sentinelUniversalMax {
		return -1
	}

	ra, rb := kindRank[a.Kind()], kindRank[b.Kind()]
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	aSent := a.sentinel == sentinelVariantMax
	bSent := b.sentinel == sentinelVariantMax
	switch {
	case aSent && bSent:
		return 0
	case aSent:
		return 1
	case bSent:
		return -1
	default:
		return Cmp(a.v, b.v)
	}
}

func (iv IndexValue) String() string {
	switch iv.sentinel {
	case sentinelUniversalMax:
		return "<universal-max>"
	case sentinelVariantMax:
		return fmt.Sprintf("<%s-max>", iv.variantTag)
	default:
		return iv.v.String()
	}
}
