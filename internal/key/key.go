package key

import (
	"strings"

	"github.com/dreamware/coredb/internal/value"
)

// Key is an ordered composite of key components (spec.md §3). A Key with
// zero components addresses an entity that has no primary-key fields
// ("Only" selector, spec.md §4.3).
type Key struct {
	parts []value.IndexValue
}

// New builds a Key from its components, in order.
func New(parts ...value.IndexValue) Key {
	cp := make([]value.IndexValue, len(parts))
	copy(cp, parts)
	return Key{parts: cp}
}

// Parts returns the component slice. Callers must not mutate it.
func (k Key) Parts() []value.IndexValue { return k.parts }

// Len reports the number of components.
func (k Key) Len() int { return len(k.parts) }

// Cmp totally orders two Keys lexicographically by component, then by
// length (a strict prefix sorts before any key it's a prefix of).
func Cmp(a, b Key) int {
	n := len(a.parts)
	if len(b.parts) < n {
		n = len(b.parts)
	}
	for i := 0; i < n; i++ {
		if c := value.CmpIndexValue(a.parts[i], b.parts[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.parts) < len(b.parts):
		return -1
	case len(a.parts) > len(b.parts):
		return 1
	default:
		return 0
	}
}

// WithLastMax returns a Key equal to k except its last component is
// replaced with that component's variant sentinel max, synthesizing an
// inclusive upper bound for a prefix scan over k. An empty key's
// WithLastMax is a single-element key holding the universal upper-bound
// sentinel (spec.md §3).
func (k Key) WithLastMax() Key {
	if len(k.parts) == 0 {
		return Key{parts: []value.IndexValue{value.UniversalMax()}}
	}
	out := make([]value.IndexValue, len(k.parts))
	copy(out, k.parts)
	last := out[len(out)-1]
	kind := value.KindNone
	if !last.IsSentinel() {
		kind = last.Value().Kind()
	} else {
		kind = last.Kind()
	}
	out[len(out)-1] = value.SentinelMax(kind)
	return Key{parts: out}
}

func (k Key) String() string {
	parts := make([]string, len(k.parts))
	for i, p := range k.parts {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
