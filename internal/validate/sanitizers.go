package validate

import (
	"strings"

	"github.com/dreamware/coredb/internal/value"
)

// Sanitizer normalizes a Value in place, returning the normalized form
// (spec.md §4.4's sanitize_self: "in-place normalization"). Value is
// immutable once constructed, so "in place" here means "replace the
// field's stored Value with the sanitizer's output".
type Sanitizer func(v value.Value) value.Value

// NumClamp clamps a numeric value into [min, max].
func NumClamp(min, max value.Value) Sanitizer {
	return func(v value.Value) value.Value {
		if value.Cmp(v, min) < 0 {
			return min
		}
		if value.Cmp(v, max) > 0 {
			return max
		}
		return v
	}
}

// TextTrimSpace trims leading/trailing whitespace from a Text value.
func TextTrimSpace() Sanitizer {
	return func(v value.Value) value.Value {
		return value.NewText(strings.TrimSpace(v.Text()))
	}
}

// TextToLower lowercases a Text value.
func TextToLower() Sanitizer {
	return func(v value.Value) value.Value { return value.NewText(strings.ToLower(v.Text())) }
}

// TextToUpper uppercases a Text value.
func TextToUpper() Sanitizer {
	return func(v value.Value) value.Value { return value.NewText(strings.ToUpper(v.Text())) }
}

// FloatCanonicalize re-runs a Float64/Float32 value through its
// constructor so -0.0 collapses to 0.0 (spec.md §3 invariant 4). It is a
// no-op for any other Kind, since every Value already passed through its
// canonicalizing constructor at creation time (spec.md §8 property 7) —
// this sanitizer exists for values that were reconstructed by a codec
// that doesn't call the constructor, e.g. a naive float64 decode.
func FloatCanonicalize() Sanitizer {
	return func(v value.Value) value.Value {
		switch v.Kind() {
		case value.KindFloat64:
			canon, err := value.NewFloat64(v.Float64())
			if err != nil {
				return v
			}
			return canon
		case value.KindFloat32:
			canon, err := value.NewFloat32(v.Float32())
			if err != nil {
				return v
			}
			return canon
		default:
			return v
		}
	}
}
